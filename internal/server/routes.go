package server

import (
	"log/slog"
	"net/http"

	authHandlers "cosmogen-server/internal/auth/handlers"
	"cosmogen-server/internal/catalog"
	catalogHandlers "cosmogen-server/internal/catalog/handlers"
	"cosmogen-server/internal/generation"
	generationHandlers "cosmogen-server/internal/generation/handlers"
	"cosmogen-server/internal/metrics"
	"cosmogen-server/internal/middleware"
	serverHandlers "cosmogen-server/internal/server/handlers"
	"cosmogen-server/internal/shared/database"
	"cosmogen-server/internal/shared/redis"
)

type Routes struct {
	db                *database.DB
	cache             *redis.Client
	catalogService    *catalog.Service
	generationService *generation.Service
	metrics           *metrics.Metrics
	logger            *slog.Logger
}

func NewRoutes(db *database.DB, cache *redis.Client, catalogService *catalog.Service, generationService *generation.Service, m *metrics.Metrics, logger *slog.Logger) *Routes {
	return &Routes{
		db:                db,
		cache:             cache,
		catalogService:    catalogService,
		generationService: generationService,
		metrics:           m,
		logger:            logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db, r.cache)
	classificationsHandler := catalogHandlers.NewClassificationsHandler(r.catalogService)
	generateHandler := generationHandlers.NewGenerateHandler(r.generationService)
	generationsHandler := generationHandlers.NewGenerationsHandler(r.generationService)
	tokenHandler := authHandlers.NewTokenHandler()
	logoutHandler := authHandlers.NewLogoutHandler()

	// Public endpoints
	mux.Handle("/api/server/health", healthHandler)
	mux.HandleFunc("/api/classifications", classificationsHandler.List)
	mux.HandleFunc("/api/classifications/{key}", classificationsHandler.Get)
	mux.HandleFunc("/api/generate/single", generateHandler.Single)
	mux.HandleFunc("/api/generate/binary", generateHandler.Binary)
	mux.HandleFunc("/api/generate/merger", generateHandler.Merger)
	mux.HandleFunc("/api/generations", generationsHandler.List)
	mux.HandleFunc("GET /api/generations/{id}", generationsHandler.Get)

	// Protected endpoints (authenticated users)
	mux.Handle("/api/generate/population", middleware.JWTMiddleware(http.HandlerFunc(generateHandler.Population)))

	// Admin-only endpoints (authenticated + admin role)
	mux.Handle("DELETE /api/generations/{id}", middleware.RequireAdmin(http.HandlerFunc(generationsHandler.Delete)))

	// Auth endpoints
	mux.Handle("/auth/token", tokenHandler)
	mux.Handle("/auth/logout", logoutHandler)

	// Observability
	mux.Handle("/metrics", r.metrics.Handler())

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{"/api/server/health", "/api/classifications", "/api/generate/single", "/api/generate/binary", "/api/generate/merger", "/api/generations"},
		"protected_endpoints", []string{"/api/generate/population"},
		"admin_endpoints", []string{"DELETE /api/generations/{id}"},
		"auth_endpoints", []string{"/auth/token", "/auth/logout"},
	)

	return mux
}
