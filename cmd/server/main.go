package main

import (
	"log/slog"
	"net/http"
	"os"

	"cosmogen-server/internal/catalog"
	"cosmogen-server/internal/generation"
	"cosmogen-server/internal/metrics"
	"cosmogen-server/internal/middleware"
	"cosmogen-server/internal/server"
	"cosmogen-server/internal/shared/config"
	"cosmogen-server/internal/shared/database"
	"cosmogen-server/internal/shared/logger"
	"cosmogen-server/internal/shared/redis"
)

func main() {
	if err := config.Init(); err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	logger.Init()
	log := slog.With("component", "main")

	db, err := database.Connect()
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}()

	if err := db.RunMigrations(); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	cache, err := redis.Connect()
	if err != nil {
		log.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := cache.Close(); err != nil {
			log.Error("Failed to close Redis", "error", err)
		}
	}()

	m := metrics.New()

	catalogService := catalog.NewService(slog.Default())
	generationRepo := generation.NewRepository(db, slog.Default())
	generationService := generation.NewService(generationRepo, cache, m, slog.Default())

	routes := server.NewRoutes(db, cache, catalogService, generationService, m, slog.Default())
	mux := routes.Setup()

	cfg := config.GlobalConfig

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond:         cfg.RateLimit.RequestsPerSecond,
		BurstSize:                 cfg.RateLimit.BurstSize,
		GenerateRequestsPerSecond: cfg.RateLimit.GenerateRequestsPerSecond,
		GenerateBurstSize:         cfg.RateLimit.GenerateBurstSize,
		Enabled:                   cfg.RateLimit.Enabled,
		TrustProxy:                cfg.Server.Environment == "production",
	}, m)
	corsMiddleware := middleware.NewCORS()

	handler := corsMiddleware.Middleware(rateLimiter.Middleware(mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	log.Info("Server starting",
		"port", cfg.Server.Port,
		"environment", cfg.Server.Environment,
	)

	if err := srv.ListenAndServe(); err != nil {
		log.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
