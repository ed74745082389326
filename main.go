package main

import (
	"io"
	"log"
	"os"
	"time"

	"tourbooking/config"
	"tourbooking/jobs"
	"tourbooking/routes"
	"tourbooking/services"
	"tourbooking/services/logger"
)

// @title        Tour booking API
// @version      1.0
// @description  Multi-locale tour catalog, bookings and back office API.
// @BasePath     /
func main() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	level := logger.ParseLevel(cfg.LogLevel)
	appLogger := logger.NewDefaultLogger(level)
	if cfg.LogDir != "" {
		logFile, err := logger.OpenDailyFile(cfg.LogDir, time.Now())
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer logFile.Close()
		appLogger = logger.NewLogger(io.MultiWriter(os.Stdout, logFile), level)
	}

	router, m, c, err := config.InitApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	svc, err := routes.NewServices(cfg, routes.Backends{
		DB:         config.DB,
		Redis:      config.RedisClient,
		Cloudinary: config.Cloudinary,
		Translate:  config.Translate,
		Melody:     m,
	}, appLogger)
	if err != nil {
		log.Fatalf("Failed to build services: %v", err)
	}

	sweepers := map[string]jobs.Sweeper{"auth sync dedup": svc.Dedup}
	if mem, ok := svc.Limiter.(*services.MemoryRateLimiter); ok {
		sweepers["login limiter"] = mem
	}
	if err := jobs.InitCronJobs(c, appLogger, sweepers); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	if err := routes.SetupRoutes(router, svc); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	appLogger.Info("server starting on port %s (%s)", cfg.Port, cfg.Env)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
