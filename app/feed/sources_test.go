package feed

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveLabel(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://www.isna.ir/rss", "ایسنا"},
		{"https://www.irna.ir/rss", "ایرنا"},
		{"https://www.varzesh3.com/rss/all", "ورزش سه"},
		{"https://www.zoomit.ir/feed/", "زومیت"},
		{"https://unknown-news.example.com/rss", GenericLabel},
		{"not a url at all", GenericLabel},
	}

	for _, tt := range tests {
		if got := ResolveLabel(tt.url); got != tt.expected {
			t.Errorf("ResolveLabel(%s): expected '%s', got '%s'", tt.url, tt.expected, got)
		}
	}
}

func TestLoadSources_Defaults(t *testing.T) {
	sources, err := LoadSources("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(sources) == 0 {
		t.Fatal("Expected built-in sources")
	}

	for _, source := range sources {
		if source.URL == "" {
			t.Error("Source with empty URL")
		}
		if source.Label == "" {
			t.Error("Source with empty label")
		}
	}
}

func TestLoadSources_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sources.yml")

	content := `sources:
  - https://www.isna.ir/rss
  - https://example.com/feed
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write sources file: %v", err)
	}

	sources, err := LoadSources(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(sources) != 2 {
		t.Fatalf("Expected 2 sources, got %d", len(sources))
	}
	if sources[0].Label != "ایسنا" {
		t.Errorf("Expected resolved label for known source, got '%s'", sources[0].Label)
	}
	if sources[1].Label != GenericLabel {
		t.Errorf("Expected generic label for unknown source, got '%s'", sources[1].Label)
	}
}

func TestLoadSources_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sources.yml")

	if err := os.WriteFile(path, []byte("sources: []\n"), 0644); err != nil {
		t.Fatalf("Failed to write sources file: %v", err)
	}

	if _, err := LoadSources(path); err == nil {
		t.Error("Expected error for empty sources file")
	}
}

func TestLoadSources_MissingFile(t *testing.T) {
	if _, err := LoadSources("/nonexistent/sources.yml"); err == nil {
		t.Error("Expected error for missing sources file")
	}
}
