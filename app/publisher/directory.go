package publisher

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Directory is the ordered set of synthetic publisher identities.
// Read-only after load, safe for concurrent use.
type Directory struct {
	identities []Identity
}

func defaultIdentities() []Identity {
	return []Identity{
		{
			ID:          "newswire",
			Handle:      "akhbar_lahzei",
			DisplayName: "اخبار لحظه‌ای",
			Avatar:      "/avatars/newswire.png",
			Verified:    "gold",
			Role:        RoleCatchAll,
		},
		{
			ID:          "breaking",
			Handle:      "khabar_fori",
			DisplayName: "خبر فوری",
			Avatar:      "/avatars/breaking.png",
			Verified:    "gold",
			Role:        RoleUrgent,
			Keywords:    []string{"فوری", "زلزله", "انفجار", "سانحه", "حادثه", "حمله"},
		},
		{
			ID:          "sport",
			Handle:      "varzesh_bot",
			DisplayName: "اخبار ورزشی",
			Avatar:      "/avatars/sport.png",
			Verified:    "blue",
			Role:        RoleTopic,
			Keywords:    []string{"پرسپولیس", "استقلال", "فوتبال", "لیگ برتر", "تیم ملی", "جام جهانی", "والیبال"},
		},
		{
			ID:          "tech",
			Handle:      "fanavari_bot",
			DisplayName: "اخبار فناوری",
			Avatar:      "/avatars/tech.png",
			Verified:    "blue",
			Role:        RoleTopic,
			Keywords:    []string{"فناوری", "هوش مصنوعی", "گوشی", "اپل", "سامسونگ", "استارتاپ", "اینترنت"},
		},
		{
			ID:          "economy",
			Handle:      "eqtesad_bot",
			DisplayName: "اخبار اقتصادی",
			Avatar:      "/avatars/economy.png",
			Verified:    "blue",
			Role:        RoleTopic,
			Keywords:    []string{"دلار", "بورس", "طلا", "سکه", "تورم", "اقتصاد", "بازار"},
		},
		{
			ID:          "politics",
			Handle:      "siasat_bot",
			DisplayName: "اخبار سیاسی",
			Avatar:      "/avatars/politics.png",
			Verified:    "blue",
			Role:        RoleTopic,
			Keywords:    []string{"انتخابات", "مجلس", "دولت", "وزیر", "رئیس جمهور", "سیاست"},
		},
	}
}

type directoryFile struct {
	Publishers []Identity `yaml:"publishers"`
}

// LoadDirectory builds the publisher directory. When path is empty the
// built-in identities are used, otherwise the YAML file at path replaces
// them entirely.
func LoadDirectory(path string) (*Directory, error) {
	identities := defaultIdentities()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read publishers file: %w", err)
		}

		var parsed directoryFile
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse publishers file: %w", err)
		}
		identities = parsed.Publishers
	}

	if err := validate(identities); err != nil {
		return nil, err
	}

	return &Directory{identities: identities}, nil
}

func validate(identities []Identity) error {
	catchAll := 0
	urgent := 0

	for _, identity := range identities {
		if identity.ID == "" {
			return fmt.Errorf("publisher with empty id")
		}

		switch identity.Role {
		case RoleCatchAll:
			catchAll++
		case RoleUrgent:
			urgent++
		case RoleTopic:
		default:
			return fmt.Errorf("publisher %s has unknown role %q", identity.ID, identity.Role)
		}
	}

	if catchAll > 1 {
		return fmt.Errorf("expected at most one catch-all publisher, found %d", catchAll)
	}
	if urgent > 1 {
		return fmt.Errorf("expected at most one urgent publisher, found %d", urgent)
	}

	return nil
}

// All returns the identities in directory order.
func (d *Directory) All() []Identity {
	return d.identities
}

func (d *Directory) Len() int {
	return len(d.identities)
}

// CatchAll returns the designated catch-all identity, or nil if none is
// configured.
func (d *Directory) CatchAll() *Identity {
	return d.byRole(RoleCatchAll)
}

// Urgent returns the designated urgent identity, or nil if none is
// configured.
func (d *Directory) Urgent() *Identity {
	return d.byRole(RoleUrgent)
}

func (d *Directory) byRole(role Role) *Identity {
	for i := range d.identities {
		if d.identities[i].Role == role {
			return &d.identities[i]
		}
	}
	return nil
}
