package services

import (
	"sort"
	"strings"
	"unicode"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"tourbooking/dto"
	"tourbooking/models"
)

const maxSlugLen = 160

// NormalizeInput lowercases and transliterates s to ASCII
func NormalizeInput(s string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
}

// Slugify turns any title into lowercase ASCII words joined by dashes
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range NormalizeInput(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > maxSlugLen {
		slug = strings.Trim(slug[:maxSlugLen], "-")
	}
	return slug
}

// similarity is 1 minus the normalized Levenshtein distance
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1.0
	}
	distance := levenshtein.DistanceForStrings(ra, rb, levenshtein.DefaultOptions)
	return 1.0 - float64(distance)/float64(maxLen)
}

type scoredTour struct {
	tour  *models.Tour
	title string
	score int
}

// SearchTours ranks tours against a free-text query, tolerating typos and Thai or Chinese input
func SearchTours(tours []models.Tour, query, locale string, limit int) []dto.TourSearchResult {
	q := NormalizeInput(query)
	if q == "" {
		return []dto.TourSearchResult{}
	}

	locations := uniqueNormalized(tours)
	var matcher *closestmatch.ClosestMatch
	if len(locations) > 0 {
		matcher = closestmatch.New(locations, []int{2, 3})
	}
	closestLocation := ""
	if matcher != nil {
		closestLocation = matcher.Closest(q)
	}

	var scored []scoredTour
	for i := range tours {
		t := &tours[i]
		score := scoreTour(q, t, locale, closestLocation)
		if score > 0 {
			scored = append(scored, scoredTour{tour: t, title: t.Title(locale), score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].title < scored[j].title
	})
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}

	results := make([]dto.TourSearchResult, 0, len(scored))
	for _, s := range scored {
		results = append(results, dto.TourSearchResult{
			ID:       s.tour.ID,
			Slug:     s.tour.Slug,
			Title:    s.title,
			Location: s.tour.Location(locale),
		})
	}
	return results
}

func scoreTour(q string, t *models.Tour, locale, closestLocation string) int {
	score := 0
	titles := []string{NormalizeInput(t.TitleEn)}
	if locale != "en" {
		titles = append(titles, NormalizeInput(t.Title(locale)))
	}
	location := NormalizeInput(t.LocationEn)

	for _, title := range titles {
		if strings.Contains(title, q) {
			score += 20
			break
		}
	}
	if location != "" && strings.Contains(location, q) {
		score += 10
	}
	if closestLocation != "" && closestLocation == location && similarity(q, location) > 0.5 {
		score += 13
	}

	// word level typo tolerance
	for _, word := range strings.Fields(q) {
		if len(word) < 3 {
			continue
		}
		best := 0.0
		for _, title := range titles {
			for _, tw := range strings.Fields(title) {
				if s := similarity(word, tw); s > best {
					best = s
				}
			}
		}
		if best >= 0.75 {
			score += 5
		}
	}
	return score
}

func uniqueNormalized(tours []models.Tour) []string {
	seen := make(map[string]bool)
	list := make([]string, 0, len(tours))
	for i := range tours {
		v := NormalizeInput(tours[i].LocationEn)
		if v != "" && !seen[v] {
			seen[v] = true
			list = append(list, v)
		}
	}
	return list
}
