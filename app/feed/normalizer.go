package feed

import (
	"cmp"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"
)

const (
	maxTitleLen   = 80
	maxSummaryLen = 120
	maxLinkLen    = 50

	ellipsis = "..."
)

var (
	tagRe = regexp.MustCompile(`<[^>]*>`)
	imgRe = regexp.MustCompile(`<img[^>]+src=["']([^"'\s>]+)["']`)
)

// Normalizer turns one raw feed entry into a canonical Item. Pure
// transform, no network or cache access; identical input always yields
// an identical Item.
type Normalizer struct {
	contentExtractor *ContentExtractor
}

func NewNormalizer() *Normalizer {
	return &Normalizer{
		contentExtractor: NewContentExtractor(),
	}
}

// Run normalizes a raw entry. An error means the entry is unusable and
// should be skipped; siblings are unaffected.
func (n *Normalizer) Run(raw *gofeed.Item, source Source) (Item, error) {
	if raw == nil {
		return Item{}, fmt.Errorf("raw item is nil")
	}

	key := cmp.Or(raw.GUID, raw.Link)
	if key == "" {
		return Item{}, fmt.Errorf("item has neither GUID nor link")
	}

	fullTitle := stripMarkup(raw.Title)
	if fullTitle == "" {
		return Item{}, fmt.Errorf("item %s has an empty title", key)
	}

	fullSummary := n.extractSummary(raw)

	item := Item{
		Key:         key,
		Title:       truncate(fullTitle, maxTitleLen),
		FullTitle:   fullTitle,
		Summary:     truncate(fullSummary, maxSummaryLen),
		FullSummary: fullSummary,
		DisplayLink: truncate(raw.Link, maxLinkLen),
		Link:        raw.Link,
		ImageURL:    extractImage(raw),
		SourceLabel: source.Label,
		SearchText:  strings.ToLower(fullTitle + " " + fullSummary),
	}

	if raw.PublishedParsed != nil {
		item.PublishedAt = *raw.PublishedParsed
	} else if raw.UpdatedParsed != nil {
		item.PublishedAt = *raw.UpdatedParsed
	}

	return item, nil
}

func (n *Normalizer) extractSummary(raw *gofeed.Item) string {
	if summary := stripMarkup(raw.Description); summary != "" {
		return summary
	}

	if raw.Content == "" {
		return ""
	}

	// Description is missing; fall back to the readable text of the
	// item's own content block.
	if text, err := n.contentExtractor.Run([]byte(raw.Content)); err == nil {
		return collapseWhitespace(text)
	}

	return stripMarkup(raw.Content)
}

// extractImage tries, in order: an explicit enclosure, a first embedded
// image inside the HTML body, a media:content extension attribute.
// Absence of an image is not an error.
func extractImage(raw *gofeed.Item) string {
	for _, enclosure := range raw.Enclosures {
		if enclosure != nil && enclosure.URL != "" {
			return enclosure.URL
		}
	}

	for _, body := range []string{raw.Content, raw.Description} {
		if match := imgRe.FindStringSubmatch(body); match != nil {
			return match[1]
		}
	}

	if media, ok := raw.Extensions["media"]; ok {
		for _, content := range media["content"] {
			if u := content.Attrs["url"]; u != "" {
				return u
			}
		}
	}

	return ""
}

// stripMarkup replaces tag-delimited spans with a single space, decodes
// HTML entities and collapses whitespace.
func stripMarkup(s string) string {
	if s == "" {
		return ""
	}

	s = tagRe.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)

	return collapseWhitespace(s)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts s down to max characters, appending an ellipsis marker
// when a cut happens. Operates on runes so multi-byte glyphs are never
// split.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max-len(ellipsis)]) + ellipsis
}
