package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mindmetrics/prediction-api/internal/api"
	"github.com/mindmetrics/prediction-api/internal/core/service"
	"github.com/mindmetrics/prediction-api/internal/infrastructure/db/mongo"
	"github.com/mindmetrics/prediction-api/internal/infrastructure/db/redis"
	"github.com/mindmetrics/prediction-api/internal/infrastructure/mail"
	"github.com/mindmetrics/prediction-api/internal/infrastructure/queue"
	"github.com/mindmetrics/prediction-api/internal/pkg/config"
	"github.com/mindmetrics/prediction-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Infrastructure ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongo.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	resetRegistry := redis.NewResetTokenRegistry(rdb)

	// --- Background mail delivery ---
	sender := mail.NewLogSender(cfg.ResetLinkBase, log)
	mailer := queue.NewMailDispatcher(cfg.MailWorkers, sender, log)
	mailer.Start(ctx)

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authService := service.NewAuthService(
		userRepo, resetRegistry, tokenService, mailer,
		cfg.AccessTokenTTL, cfg.ResetTokenTTL, log,
	)
	predictionService := service.NewPredictionService(log)

	// --- HTTP server ---
	e := api.NewRouter(authService, predictionService, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	// --- Graceful shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	cancel() // stop mail workers

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
