package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const minSessionSecretLen = 32

// Config holds everything read from the environment at startup
type Config struct {
	Port     string
	Env      string
	LogLevel string
	LogDir   string

	DBDriver          string
	DatabaseURL       string
	DatabaseAuthToken string

	SessionSecret string
	AdminEmail    string
	AdminPassword string
	AppURL        string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	AuthURL       string
	AuthAnonKey   string
	AuthJWTSecret string

	GoogleTranslateAPIKey string
	TranslateTimeout      time.Duration

	RedisAddr     string
	RedisUser     string
	RedisPassword string

	CORSOrigins []string
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env not loaded, using process environment: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

// Load reads the environment. It fails when SESSION_SECRET is missing or shorter than 32 characters.
func Load() (*Config, error) {
	cfg := &Config{
		Port:     getEnv("PORT", "8083"),
		Env:      getEnv("ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogDir:   getEnv("LOG_DIR", ""),

		DBDriver:          strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		DatabaseAuthToken: getEnv("DATABASE_AUTH_TOKEN", ""),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		AppURL:        strings.TrimRight(getEnv("APP_URL", "http://localhost:8083"), "/"),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),

		AuthURL:       getEnv("AUTH_URL", ""),
		AuthAnonKey:   getEnv("AUTH_ANON_KEY", ""),
		AuthJWTSecret: getEnv("AUTH_JWT_SECRET", ""),

		GoogleTranslateAPIKey: getEnv("GOOGLE_TRANSLATE_API_KEY", ""),
		TranslateTimeout:      10 * time.Second,

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisUser:     getEnv("REDIS_USER", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}

	if secs := getEnv("TRANSLATE_TIMEOUT_SECONDS", ""); secs != "" {
		n, err := strconv.Atoi(secs)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid TRANSLATE_TIMEOUT_SECONDS %q", secs)
		}
		cfg.TranslateTimeout = time.Duration(n) * time.Second
	}

	if origins := getEnv("CORS_ORIGINS", ""); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.SessionSecret) < minSessionSecretLen {
		return fmt.Errorf("SESSION_SECRET must be set and at least %d characters", minSessionSecretLen)
	}
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DBDriver == "postgres" && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required for postgres")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "prod"
}
