package services

import (
	"strings"
	"testing"
	"time"

	"tourbooking/models"
)

func TestAlternates(t *testing.T) {
	alts := Alternates("https://tours.example.com", "/tours/doi")
	if len(alts) != 4 {
		t.Fatalf("len = %d", len(alts))
	}
	if alts[1].Lang != "th" || alts[1].Href != "https://tours.example.com/th/tours/doi" {
		t.Errorf("th = %+v", alts[1])
	}
	if alts[3].Lang != "x-default" || alts[3].Href != "https://tours.example.com/en/tours/doi" {
		t.Errorf("x-default = %+v", alts[3])
	}
	if home := Alternates("https://tours.example.com", "/"); home[0].Href != "https://tours.example.com/en" {
		t.Errorf("home = %+v", home[0])
	}
}

func TestSitemap(t *testing.T) {
	now := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
	tours := []models.Tour{{Slug: "doi-suthep", UpdatedAt: now}}

	out, err := Sitemap("https://tours.example.com", tours, now)
	if err != nil {
		t.Fatal(err)
	}
	body := string(out)
	if got := strings.Count(body, "<url>"); got != 9 {
		t.Errorf("%d urls, want 9", got)
	}
	for _, want := range []string{
		"<loc>https://tours.example.com/zh/tours/doi-suthep</loc>",
		`hreflang="x-default"`,
		"<lastmod>2030-05-01</lastmod>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("sitemap missing %s", want)
		}
	}
}
