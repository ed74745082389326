package services

import (
	"encoding/xml"
	"time"

	"tourbooking/i18n"
	"tourbooking/models"
)

// Alternate is one hreflang link of a page
type Alternate struct {
	Lang string
	Href string
}

// Alternates lists the page at path (without locale) in every locale plus x-default
func Alternates(appURL, path string) []Alternate {
	if path == "/" {
		path = ""
	}
	alts := make([]Alternate, 0, len(i18n.Locales)+1)
	for _, l := range i18n.Locales {
		alts = append(alts, Alternate{Lang: l, Href: appURL + "/" + l + path})
	}
	alts = append(alts, Alternate{Lang: "x-default", Href: appURL + "/" + i18n.DefaultLocale + path})
	return alts
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string        `xml:"loc"`
	LastMod    string        `xml:"lastmod,omitempty"`
	ChangeFreq string        `xml:"changefreq,omitempty"`
	Priority   string        `xml:"priority,omitempty"`
	Links      []sitemapLink `xml:"xhtml:link"`
}

type sitemapLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// Sitemap renders home, catalog and every tour page in every locale
func Sitemap(appURL string, tours []models.Tour, now time.Time) ([]byte, error) {
	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTML: "http://www.w3.org/1999/xhtml",
	}

	add := func(path, lastMod, freq, priority string) {
		links := make([]sitemapLink, 0, len(i18n.Locales)+1)
		for _, alt := range Alternates(appURL, path) {
			links = append(links, sitemapLink{Rel: "alternate", Hreflang: alt.Lang, Href: alt.Href})
		}
		p := path
		if p == "/" {
			p = ""
		}
		for _, l := range i18n.Locales {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        appURL + "/" + l + p,
				LastMod:    lastMod,
				ChangeFreq: freq,
				Priority:   priority,
				Links:      links,
			})
		}
	}

	today := now.Format("2006-01-02")
	add("/", today, "daily", "1.0")
	add("/tours", today, "daily", "0.9")
	for _, t := range tours {
		add("/tours/"+t.Slug, t.UpdatedAt.Format("2006-01-02"), "weekly", "0.8")
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

// RobotsTxt allows the public site and points crawlers at the sitemap
func RobotsTxt(appURL string) string {
	return "User-agent: *\nAllow: /\nDisallow: /admin\nDisallow: /api\n\nSitemap: " + appURL + "/sitemap.xml\n"
}
