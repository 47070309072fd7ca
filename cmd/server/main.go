package main

import (
	"hacktheshell/internal/app"
	"hacktheshell/pkg/cache"
	"hacktheshell/pkg/config"
	"hacktheshell/pkg/database"
	"hacktheshell/pkg/logger"
	"hacktheshell/pkg/queue"
	"hacktheshell/pkg/s3"

	"github.com/redis/go-redis/v9"
)

// @title           HackTheShell API
// @version         1.0
// @description     Content management API for the HackTheShell security blog and tool catalog

// @host      localhost:5000
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if !cfg.HasJWTSecret() {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg, log)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	var redisClient *redis.Client
	if rc, err := cache.NewRedisClient(cfg); err != nil {
		log.Warn("Redis unavailable, rate limiting and config cache disabled: %v", err)
	} else {
		redisClient = rc
	}

	var s3Client *s3.Client
	if sc, err := s3.NewClient(cfg); err != nil {
		log.Warn("S3 unavailable, media uploads disabled: %v", err)
	} else {
		s3Client = sc
	}

	var queueClient *queue.Client
	if cfg.QueueEnabled() {
		if qc, err := queue.NewRabbitMQClient(cfg, log); err != nil {
			log.Warn("RabbitMQ unavailable, publish events disabled: %v", err)
		} else {
			queueClient = qc
		}
	}

	app.Run(cfg, log, db, s3Client, queueClient, redisClient)
}
