package publisher

import (
	"testing"
)

func TestExtractHashtags_NoMatches(t *testing.T) {
	tags := ExtractHashtags("متنی بدون هیچ عبارت شناخته‌شده")

	if len(tags) != 0 {
		t.Errorf("Expected no tags, got %v", tags)
	}
}

func TestExtractHashtags_SingleMatch(t *testing.T) {
	tags := ExtractHashtags("پیروزی پرسپولیس در دربی")

	if len(tags) != 1 || tags[0] != "پرسپولیس" {
		t.Errorf("Expected [پرسپولیس], got %v", tags)
	}
}

func TestExtractHashtags_CapAtThreeInTableOrder(t *testing.T) {
	// Five known phrases; only the first three in table order survive.
	tags := ExtractHashtags("فوتبال و بورس و دلار در تهران و انتخابات")

	if len(tags) != 3 {
		t.Fatalf("Expected exactly 3 tags, got %d: %v", len(tags), tags)
	}

	expected := []string{"فوتبال", "دلار", "بورس"}
	for i, tag := range expected {
		if tags[i] != tag {
			t.Errorf("Expected tag %d to be '%s', got '%s'", i, tag, tags[i])
		}
	}
}

func TestExtractHashtags_MultiWordPhrase(t *testing.T) {
	tags := ExtractHashtags("پیشرفت هوش مصنوعی در صنعت")

	if len(tags) != 1 || tags[0] != "هوش_مصنوعی" {
		t.Errorf("Expected [هوش_مصنوعی], got %v", tags)
	}
}

func TestExtractHashtags_TitleAndSummaryCombined(t *testing.T) {
	tags := ExtractHashtags("نتیجه بازی استقلال" + " " + "گزارش کامل از لیگ برتر")

	expected := []string{"استقلال", "لیگ_برتر"}
	if len(tags) != 2 || tags[0] != expected[0] || tags[1] != expected[1] {
		t.Errorf("Expected %v, got %v", expected, tags)
	}
}

func TestExtractHashtags_Deduplicated(t *testing.T) {
	tags := ExtractHashtags("دلار دلار دلار")

	if len(tags) != 1 {
		t.Errorf("Expected a single deduplicated tag, got %v", tags)
	}
}
