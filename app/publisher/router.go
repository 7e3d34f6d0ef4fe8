package publisher

import (
	"strings"
)

// Router decides which identities broadcast a given item. Matching is
// case-insensitive substring containment over the item's search text,
// no stemming or tokenization.
type Router struct {
	directory *Directory
}

func NewRouter(directory *Directory) *Router {
	return &Router{
		directory: directory,
	}
}

// Run returns the matched identities in fixed precedence: the catch-all
// first, the urgent identity next when its keyword set intersects the
// text, then the remaining topic identities in directory order. The
// result is duplicate-free; with a catch-all configured it is never
// empty.
func (r *Router) Run(searchText string) []Identity {
	text := strings.ToLower(searchText)

	var matched []Identity

	if catchAll := r.directory.CatchAll(); catchAll != nil {
		matched = append(matched, *catchAll)
	}

	if urgent := r.directory.Urgent(); urgent != nil && containsAny(text, urgent.Keywords) {
		matched = append(matched, *urgent)
	}

	for _, identity := range r.directory.All() {
		if identity.Role != RoleTopic {
			continue
		}
		if containsAny(text, identity.Keywords) {
			matched = append(matched, identity)
		}
	}

	return matched
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
