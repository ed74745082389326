package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tourbooking/constants"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		header string
		want   string
	}{
		{name: "cookie wins", cookie: "zh", header: "th-TH,en;q=0.8", want: "zh"},
		{name: "unknown cookie ignored", cookie: "fr", header: "th", want: "th"},
		{name: "region subtag", header: "th-TH,en;q=0.8", want: "th"},
		{name: "sorted by quality", header: "en;q=0.5,zh;q=0.9", want: "zh"},
		{name: "skips unknown languages", header: "fr-FR,de;q=0.9,zh-CN;q=0.7", want: "zh"},
		{name: "no match", header: "fr,de;q=0.5", want: DefaultLocale},
		{name: "empty", want: DefaultLocale},
		{name: "malformed header", header: ";;;q=abc", want: DefaultLocale},
		{name: "bad entry after match", header: "th, x", want: "th"},
		{name: "bad entries around match", header: "de, th;q=0.9, 1234", want: "th"},
		{name: "overlong subtag", header: "fr, zh;q=0.5, en-US-POSIX-xx-toolongsubtag;q=0.1", want: "zh"},
		{name: "lenient keeps quality order", header: "th;q=0.3, 1234, zh;q=0.8", want: "zh"},
		{name: "lenient drops zero quality", header: "th;q=0, x, zh;q=0.2", want: "zh"},
		{name: "zero quality excluded", header: "th;q=0, en;q=0.5", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: constants.LocaleCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			if got := Resolve(req); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveEveryAllowedCookie(t *testing.T) {
	for _, l := range Locales {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: constants.LocaleCookieName, Value: l})
		req.Header.Set("Accept-Language", "fr")
		if got := Resolve(req); got != l {
			t.Errorf("cookie %q resolved to %q", l, got)
		}
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"/th", "th", true},
		{"/th/tours/x", "th", true},
		{"/zh/", "zh", true},
		{"/thailand", "", false},
		{"/tours", "", false},
		{"/", "", false},
	}
	for _, tt := range tests {
		got, ok := FromPath(tt.path)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FromPath(%q) = %q, %v; want %q, %v", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestStripLocale(t *testing.T) {
	if got := StripLocale("/th/tours"); got != "/tours" {
		t.Errorf("got %q", got)
	}
	if got := StripLocale("/en"); got != "/" {
		t.Errorf("got %q", got)
	}
	if got := StripLocale("/tours"); got != "/tours" {
		t.Errorf("got %q", got)
	}
}

func TestT(t *testing.T) {
	if got := T("th", "nav.home"); got != "หน้าแรก" {
		t.Errorf("T(th) = %q", got)
	}
	if got := T("fr", "nav.home"); got != "Home" {
		t.Errorf("fallback to English = %q", got)
	}
	if got := T("en", "missing.key"); got != "missing.key" {
		t.Errorf("missing key = %q", got)
	}
}
