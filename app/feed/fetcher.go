package feed

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mmcdole/gofeed"
)

// Fetcher retrieves and parses a single feed endpoint. The per-call
// timeout is carried by the caller's context.
type Fetcher struct {
	gofeedParser *gofeed.Parser
}

func NewFetcher(client *http.Client, userAgent string) *Fetcher {
	parser := gofeed.NewParser()
	parser.Client = client
	parser.UserAgent = userAgent

	return &Fetcher{
		gofeedParser: parser,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, source Source) ([]*gofeed.Item, error) {
	parsed, err := f.gofeedParser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed %s: %w", source.URL, err)
	}

	return parsed.Items, nil
}
