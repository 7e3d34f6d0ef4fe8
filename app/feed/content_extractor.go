package feed

import (
	"fmt"
	"strings"

	"github.com/go-shiori/go-readability"
)

// ContentExtractor pulls readable text out of an item's HTML content
// block. Used as a summary fallback when a feed entry carries no
// description. Operates on in-memory data only, never fetches.
type ContentExtractor struct{}

func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{}
}

func (e *ContentExtractor) Run(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("HTML data is empty")
	}

	article, err := readability.FromReader(strings.NewReader(string(data)), nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract content: %w", err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", fmt.Errorf("no text extracted from HTML data")
	}

	return text, nil
}
