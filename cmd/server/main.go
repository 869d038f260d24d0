// Package main is the entry point for the fraud assessment service.
// It loads the rule catalog, connects the stores, and serves the HTTP
// API.
package main

import (
	"log"
	"time"

	"veristate/internal/catalog"
	"veristate/internal/config"
	"veristate/internal/handlers"
	"veristate/internal/logger"
	"veristate/internal/repositories"
	"veristate/internal/repositories/cache"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()

	zlog, err := logger.New(config.GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// The catalog is loaded once; a malformed catalog is fatal at
	// startup, never at evaluation time.
	cat, err := catalog.Load(config.CatalogPath())
	if err != nil {
		zlog.Fatal("failed to load rule catalog", zap.Error(err))
	}
	zlog.Info("rule catalog loaded",
		zap.String("path", config.CatalogPath()),
		zap.Int("checks", len(cat.Checks())),
	)

	db, err := repositories.InitDB()
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zlog.Fatal("failed to get database instance", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		zlog.Fatal("failed to ping database", zap.Error(err))
	}
	zlog.Info("connected to database")

	var evalCache *cache.EvaluationCache
	if config.GetEnv("REDIS_ENABLED", "true") == "true" {
		client := cache.NewRedisClient(&cache.RedisConfig{
			Host:     config.GetEnv("REDIS_HOST", "localhost"),
			Port:     config.GetEnv("REDIS_PORT", "6379"),
			Password: config.GetEnv("REDIS_PASSWORD", ""),
			DB:       config.GetIntEnv("REDIS_DB", 0),
		})
		evalCache = cache.NewEvaluationCache(client, 24*time.Hour)
		defer evalCache.Close()
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 32 << 20, // uploads are policy-checked downstream
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,HEAD",
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use("/api", limiter.New(limiter.Config{
		Max:        config.GetIntEnv("RATE_LIMIT", 120),
		Expiration: time.Minute,
	}))

	handlers.SetupRoutes(app, db, cat, evalCache, zlog)

	port := config.GetEnv("PORT", "8080")
	zlog.Info("starting server", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
