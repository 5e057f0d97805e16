package handlers

import (
	"log/slog"
	"net/http"

	"cosmogen-server/internal/auth"
	"cosmogen-server/internal/shared/config"
	"cosmogen-server/internal/shared/cookies"
	"cosmogen-server/internal/shared/errors"
	"cosmogen-server/internal/shared/response"
)

type TokenResponse struct {
	Token string `json:"token"`
}

// TokenHandler issues a signed admin token for local development. Production
// deployments mint tokens out of band and this endpoint refuses to serve.
type TokenHandler struct{}

func NewTokenHandler() *TokenHandler {
	return &TokenHandler{}
}

func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "auth_token")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	cfg := config.GlobalConfig
	if cfg.Server.Environment == "production" {
		response.Error(w, r, logger, errors.Forbidden("token endpoint is disabled in production"))
		return
	}

	token, err := auth.GenerateJWT(cfg.Admin.Subject, cfg.Admin.DisplayName, "admin")
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to generate token", err))
		return
	}

	cookies.SetAuthCookie(w, token)
	logger.Info("Development admin token issued", "subject", cfg.Admin.Subject)

	response.Success(w, http.StatusOK, TokenResponse{Token: token})
}
