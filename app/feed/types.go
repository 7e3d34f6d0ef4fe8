package feed

import (
	"time"
)

// Source is a single feed endpoint. The label is resolved from the
// endpoint's hostname at registry load time and never changes afterwards.
type Source struct {
	URL   string
	Label string
}

// Item is the canonical form of one feed entry. Built once by the
// Normalizer and immutable afterwards; discarded after routing and
// publishing, only the Key survives inside the dedup cache.
type Item struct {
	Key         string // GUID if present, otherwise the link
	Title       string // display title, at most 80 characters
	FullTitle   string
	Summary     string // display summary, at most 120 characters
	FullSummary string
	DisplayLink string // at most 50 characters
	Link        string
	ImageURL    string // empty when no image was found
	PublishedAt time.Time
	SourceLabel string
	SearchText  string // lowercased title + summary, matching only
}
