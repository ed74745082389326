package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"

	"tourbooking/models"
)

// InitApp connects every backing service and returns the engine, the websocket hub and the scheduler
func InitApp(cfg *Config) (*gin.Engine, *melody.Melody, *cron.Cron, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Request-ID")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = allowOrigin(cfg)
	configCors.MaxAge = 12 * time.Hour
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	if err := initComponents(cfg); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize components: %v", err)
	}

	m := melody.New()
	m.Config.MaxMessageSize = 1024

	c := cron.New()

	return router, m, c, nil
}

func allowOrigin(cfg *Config) func(string) bool {
	allowed := map[string]bool{cfg.AppURL: true}
	for _, o := range cfg.CORSOrigins {
		allowed[o] = true
	}
	return func(origin string) bool {
		if cfg.Env == "dev" {
			return true
		}
		return allowed[origin]
	}
}

func initComponents(cfg *Config) error {
	var err error

	DB, err = ConnectDB(cfg)
	if err != nil {
		return err
	}
	if err := models.Migrate(DB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := SeedAdmin(DB, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	RedisClient, err = ConnectRedis(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	Cloudinary, err = ConnectCloudinary(cfg)
	if err != nil {
		return fmt.Errorf("failed to init Cloudinary: %v", err)
	}

	Translate, err = ConnectTranslate(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to init translate client: %v", err)
	}

	log.Println("All components initialized successfully")
	return nil
}
