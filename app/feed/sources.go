package feed

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// GenericLabel is used for sources whose hostname is not in the lookup table.
const GenericLabel = "خبرگزاری"

// sourceLabels maps hostname fragments to display labels. Checked in
// order, first fragment contained in the hostname wins.
var sourceLabels = []struct {
	Fragment string
	Label    string
}{
	{"isna", "ایسنا"},
	{"irna", "ایرنا"},
	{"mehrnews", "خبرگزاری مهر"},
	{"tasnimnews", "تسنیم"},
	{"khabaronline", "خبرآنلاین"},
	{"varzesh3", "ورزش سه"},
	{"zoomit", "زومیت"},
	{"digiato", "دیجیاتو"},
}

var defaultSourceURLs = []string{
	"https://www.isna.ir/rss",
	"https://www.irna.ir/rss",
	"https://www.mehrnews.com/rss",
	"https://www.tasnimnews.com/fa/rss/feed/0/8/0",
	"https://www.khabaronline.ir/rss",
	"https://www.varzesh3.com/rss/all",
	"https://www.zoomit.ir/feed/",
	"https://www.digiato.com/feed",
}

type sourcesFile struct {
	Sources []string `yaml:"sources"`
}

// LoadSources builds the source registry. When path is empty the built-in
// list is used, otherwise the YAML file at path replaces it entirely.
func LoadSources(path string) ([]Source, error) {
	urls := defaultSourceURLs

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read sources file: %w", err)
		}

		var parsed sourcesFile
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse sources file: %w", err)
		}
		if len(parsed.Sources) == 0 {
			return nil, fmt.Errorf("sources file %s contains no sources", path)
		}
		urls = parsed.Sources
	}

	sources := make([]Source, 0, len(urls))
	for _, u := range urls {
		sources = append(sources, Source{URL: u, Label: ResolveLabel(u)})
	}

	return sources, nil
}

// ResolveLabel derives a human-readable source label from a feed URL by
// matching its hostname against the lookup table.
func ResolveLabel(feedURL string) string {
	parsed, err := url.Parse(feedURL)
	if err != nil {
		return GenericLabel
	}

	host := strings.ToLower(parsed.Hostname())
	for _, entry := range sourceLabels {
		if strings.Contains(host, entry.Fragment) {
			return entry.Label
		}
	}

	return GenericLabel
}
