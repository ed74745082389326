// Package templates holds the server-rendered pages, embedded into the binary.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"tourbooking/i18n"
	"tourbooking/services"
)

//go:embed *.html
var files embed.FS

// Raw HTML in descriptions is escaped since WithUnsafe is not set
var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Linkify, extension.Table),
	goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
)

// Markdown renders admin-authored markdown to HTML
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

func money(amount decimal.Decimal, currency string) string {
	return fmt.Sprintf("%s %s", currency, amount.StringFixedBank(2))
}

// Funcs are available to every page
func Funcs() template.FuncMap {
	return template.FuncMap{
		"t":        i18n.T,
		"tf":       func(locale, key string, args ...interface{}) string { return fmt.Sprintf(i18n.T(locale, key), args...) },
		"markdown": Markdown,
		"cdn":      services.OptimizedImageURL,
		"money":    money,
		"upper":    strings.ToUpper,
		"locales":  func() []string { return i18n.Locales },
		"seq": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i + 1
			}
			return out
		},
	}
}

// New parses every embedded page
func New() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files, "*.html")
}
