package i18n

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"tourbooking/constants"
)

const DefaultLocale = "en"

// Locales is the fixed set of UI languages, in display order
var Locales = []string{"en", "th", "zh"}

// IsLocale reports whether s is one of Locales
func IsLocale(s string) bool {
	for _, l := range Locales {
		if l == s {
			return true
		}
	}
	return false
}

// Resolve picks the locale for r: the locale cookie when it holds a known value,
// then the best Accept-Language match, then DefaultLocale.
func Resolve(r *http.Request) string {
	if cookie, err := r.Cookie(constants.LocaleCookieName); err == nil && IsLocale(cookie.Value) {
		return cookie.Value
	}
	if locale, ok := FromAcceptLanguage(r.Header.Get("Accept-Language")); ok {
		return locale
	}
	return DefaultLocale
}

// FromAcceptLanguage returns the highest-quality entry of header that is a known
// locale, either as the full tag or as its primary subtag.
func FromAcceptLanguage(header string) (string, bool) {
	if strings.TrimSpace(header) == "" {
		return "", false
	}
	// tags come back ordered by descending q; equal q keeps header order
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		tags = parseAcceptLenient(header)
	}
	for _, tag := range tags {
		full := strings.ToLower(tag.String())
		if IsLocale(full) {
			return full, true
		}
		base, _ := tag.Base()
		if IsLocale(base.String()) {
			return base.String(), true
		}
	}
	return "", false
}

type weightedTag struct {
	tag language.Tag
	q   float64
}

// parseAcceptLenient parses header entry by entry, dropping the ones that do not
// parse instead of rejecting the whole header.
func parseAcceptLenient(header string) []language.Tag {
	var entries []weightedTag
	for _, entry := range strings.Split(header, ",") {
		parts := strings.Split(entry, ";")
		tag, err := language.Parse(strings.TrimSpace(parts[0]))
		if err != nil {
			continue
		}
		q, ok := quality(parts[1:])
		if !ok || q <= 0 {
			continue
		}
		entries = append(entries, weightedTag{tag: tag, q: q})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].q > entries[j].q })

	tags := make([]language.Tag, len(entries))
	for i, e := range entries {
		tags[i] = e.tag
	}
	return tags
}

// quality reads the q parameter of an entry; a missing q means 1
func quality(params []string) (float64, bool) {
	for _, p := range params {
		key, value, found := strings.Cut(strings.TrimSpace(p), "=")
		if !found || !strings.EqualFold(strings.TrimSpace(key), "q") {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || q > 1 {
			return 0, false
		}
		return q, true
	}
	return 1, true
}

// FromPath returns the locale segment that starts path, if any
func FromPath(path string) (string, bool) {
	trimmed := strings.TrimPrefix(path, "/")
	segment := trimmed
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		segment = trimmed[:i]
	}
	if IsLocale(segment) {
		return segment, true
	}
	return "", false
}

// StripLocale removes a leading locale segment from path
func StripLocale(path string) string {
	locale, ok := FromPath(path)
	if !ok {
		return path
	}
	rest := strings.TrimPrefix(path, "/"+locale)
	if rest == "" {
		return "/"
	}
	return rest
}
