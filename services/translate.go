package services

import (
	"context"
	"html"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/api/translate/v2"

	"tourbooking/services/logger"
)

// Translator fills non-English text through Google Translate. Every failure falls back to the source text.
type Translator struct {
	svc     *translate.Service
	timeout time.Duration
	logger  logger.Logger
}

func NewTranslator(svc *translate.Service, timeout time.Duration, log logger.Logger) *Translator {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if log == nil {
		log = logger.Nop{}
	}
	return &Translator{svc: svc, timeout: timeout, logger: log}
}

// apiLanguage maps a site locale to the code Google expects
func apiLanguage(locale string) string {
	if locale == "zh" {
		return "zh-CN"
	}
	return locale
}

// TranslateText returns text in target. It returns text unchanged when source equals target,
// when text is blank, when no client is configured, or on any error or timeout.
func (t *Translator) TranslateText(ctx context.Context, text, source, target string) string {
	if source == "" {
		source = "en"
	}
	if source == target || strings.TrimSpace(text) == "" || t == nil || t.svc == nil {
		return text
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.svc.Translations.List([]string{text}, apiLanguage(target)).
		Source(apiLanguage(source)).
		Format("text").
		Context(ctx).
		Do()
	if err != nil {
		t.logger.Warn("translate %s->%s failed: %v", source, target, err)
		return text
	}
	if resp == nil || len(resp.Translations) == 0 || resp.Translations[0].TranslatedText == "" {
		return text
	}
	return html.UnescapeString(resp.Translations[0].TranslatedText)
}

// Field is one text slot to fill in another locale
type Field struct {
	Source string
	Target string
	Dest   *string
}

// FillMissing translates every field whose destination is empty, concurrently.
// Destinations never end up empty when the source is not.
func (t *Translator) FillMissing(ctx context.Context, fields []Field) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, f := range fields {
		f := f
		if f.Dest == nil || strings.TrimSpace(*f.Dest) != "" || strings.TrimSpace(f.Source) == "" {
			continue
		}
		g.Go(func() error {
			*f.Dest = t.TranslateText(gctx, f.Source, "en", f.Target)
			return nil
		})
	}
	_ = g.Wait()
}
