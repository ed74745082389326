package config

import (
	"context"
	"log"

	"google.golang.org/api/option"
	"google.golang.org/api/translate/v2"
)

var Translate *translate.Service

// ConnectTranslate returns nil when no API key is configured; translation then passes text through.
func ConnectTranslate(ctx context.Context, cfg *Config) (*translate.Service, error) {
	if cfg.GoogleTranslateAPIKey == "" {
		log.Println("GOOGLE_TRANSLATE_API_KEY not set, auto-translation disabled")
		return nil, nil
	}
	return translate.NewService(ctx, option.WithAPIKey(cfg.GoogleTranslateAPIKey))
}
