package publisher

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ualireza82-tech/newswire/app/feed"
)

// Payload is the broadcast event body for one (item, identity) pair.
// Handed to the broadcast channel immediately and not retained.
type Payload struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Handle      string    `json:"handle"`
	DisplayName string    `json:"display_name"`
	Avatar      string    `json:"avatar"`
	Verified    string    `json:"verified"`
	Text        string    `json:"text"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	IsSynthetic bool      `json:"is_synthetic"`
	SourceLabel string    `json:"source_label"`
	SourceLink  string    `json:"source_link"`
	Tags        []string  `json:"tags"`
}

// Composer builds broadcast payloads. Pure given its inputs except for
// id generation and the timestamp fallback.
type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

// Run composes the payload for one item and one matched identity. Each
// call yields a fresh surrogate id, so two identities broadcasting the
// same item produce distinct payloads.
func (c *Composer) Run(item feed.Item, identity Identity, tags []string) Payload {
	createdAt := item.PublishedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return Payload{
		ID:          uuid.NewString(),
		UserID:      identity.ID,
		Handle:      identity.Handle,
		DisplayName: identity.DisplayName,
		Avatar:      identity.Avatar,
		Verified:    identity.Verified,
		Text:        c.composeText(item, tags),
		ImageURL:    item.ImageURL,
		CreatedAt:   createdAt,
		IsSynthetic: true,
		SourceLabel: item.SourceLabel,
		SourceLink:  item.Link,
		Tags:        tags,
	}
}

// composeText renders the fixed section order: emphasized title, summary,
// read-more link, hashtag tokens, source attribution. Sections are
// separated by blank lines; empty sections are skipped.
func (c *Composer) composeText(item feed.Item, tags []string) string {
	var sections []string

	sections = append(sections, "<strong>"+item.Title+"</strong>")

	if item.Summary != "" {
		sections = append(sections, item.Summary)
	}

	if item.Link != "" {
		sections = append(sections,
			fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener">ادامه خبر</a>`, item.Link))
	}

	if len(tags) > 0 {
		tokens := make([]string, 0, len(tags))
		for _, tag := range tags {
			tokens = append(tokens, `<span class="hashtag">#`+tag+`</span>`)
		}
		sections = append(sections, strings.Join(tokens, " "))
	}

	sections = append(sections, "📰 منبع: "+item.SourceLabel)

	return strings.Join(sections, "\n\n")
}
