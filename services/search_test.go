package services

import (
	"testing"

	"tourbooking/models"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Doi Suthep & Old City Tour": "doi-suthep-old-city-tour",
		"  Phi Phi Islands!! ":       "phi-phi-islands",
		"Café Crawl":                 "cafe-crawl",
		"---":                        "",
	}
	for in, want := range tests {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if s := similarity("temple", "temple"); s != 1 {
		t.Errorf("identical = %v", s)
	}
	if s := similarity("tempel", "temple"); s < 0.6 {
		t.Errorf("one swap = %v", s)
	}
	if s := similarity("", ""); s != 1 {
		t.Errorf("empty = %v", s)
	}
}

func TestSearchTours(t *testing.T) {
	tours := []models.Tour{
		{ID: 1, Slug: "doi-suthep", TitleEn: "Doi Suthep Temple Trek", TitleTh: "เดินป่าดอยสุเทพ", LocationEn: "Chiang Mai"},
		{ID: 2, Slug: "phi-phi", TitleEn: "Phi Phi Island Hopping", LocationEn: "Krabi"},
		{ID: 3, Slug: "night-market", TitleEn: "Night Market Food Walk", LocationEn: "Chiang Mai"},
	}

	got := SearchTours(tours, "island", "en", 10)
	if len(got) == 0 || got[0].ID != 2 {
		t.Fatalf("island = %+v", got)
	}

	got = SearchTours(tours, "tempel trek", "en", 10)
	if len(got) == 0 || got[0].ID != 1 {
		t.Fatalf("typo search = %+v", got)
	}

	got = SearchTours(tours, "chiang mai", "en", 10)
	if len(got) != 2 {
		t.Fatalf("location search returned %d results", len(got))
	}

	got = SearchTours(tours, "chiang mai", "th", 1)
	if len(got) != 1 {
		t.Fatalf("limit ignored: %d", len(got))
	}

	if got := SearchTours(tours, "   ", "en", 10); len(got) != 0 {
		t.Fatalf("blank query = %+v", got)
	}
	if got := SearchTours(nil, "island", "en", 10); len(got) != 0 {
		t.Fatalf("no tours = %+v", got)
	}
}
