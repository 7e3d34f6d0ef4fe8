package publisher

// Role determines how an identity participates in routing.
type Role string

const (
	// RoleCatchAll receives every item regardless of keyword match.
	// Exactly one identity carries this role.
	RoleCatchAll Role = "catch_all"

	// RoleUrgent is matched against its urgency keyword set and ranked
	// right after the catch-all. Exactly one identity carries this role.
	RoleUrgent Role = "urgent"

	// RoleTopic matches when any of its keywords appears in the item
	// text. A topic identity with no keywords never matches.
	RoleTopic Role = "topic"
)

// Identity is a synthetic publisher account. Static and immutable after
// directory load.
type Identity struct {
	ID          string   `yaml:"id"`
	Handle      string   `yaml:"handle"`
	DisplayName string   `yaml:"display_name"`
	Avatar      string   `yaml:"avatar"`
	Verified    string   `yaml:"verified"`
	Role        Role     `yaml:"role"`
	Keywords    []string `yaml:"keywords"`
}
