package publisher

import (
	"strings"
)

const maxHashtags = 3

// hashtagTable maps phrases to hashtag text. Order matters: tags are
// emitted in table order, so the most specific phrases come first.
var hashtagTable = []struct {
	Phrase string
	Tag    string
}{
	{"پرسپولیس", "پرسپولیس"},
	{"استقلال", "استقلال"},
	{"تیم ملی", "تیم_ملی"},
	{"لیگ برتر", "لیگ_برتر"},
	{"فوتبال", "فوتبال"},
	{"هوش مصنوعی", "هوش_مصنوعی"},
	{"فناوری", "فناوری"},
	{"دلار", "دلار"},
	{"بورس", "بورس"},
	{"طلا", "طلا"},
	{"تورم", "تورم"},
	{"زلزله", "زلزله"},
	{"انتخابات", "انتخابات"},
	{"مجلس", "مجلس"},
	{"دولت", "دولت"},
	{"ایران", "ایران"},
	{"تهران", "تهران"},
}

// ExtractHashtags derives up to three topical tags from the given text,
// in table order, deduplicated. Pure function.
func ExtractHashtags(text string) []string {
	lowered := strings.ToLower(text)

	var tags []string
	seen := make(map[string]struct{}, maxHashtags)

	for _, entry := range hashtagTable {
		if len(tags) == maxHashtags {
			break
		}
		if !strings.Contains(lowered, entry.Phrase) {
			continue
		}
		if _, ok := seen[entry.Tag]; ok {
			continue
		}
		seen[entry.Tag] = struct{}{}
		tags = append(tags, entry.Tag)
	}

	return tags
}
