package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"cosmogen-server/internal/generation"
	"cosmogen-server/internal/shared/errors"
	"cosmogen-server/internal/shared/response"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type GenerationsHandler struct {
	service *generation.Service
}

func NewGenerationsHandler(service *generation.Service) *GenerationsHandler {
	return &GenerationsHandler{service: service}
}

func (h *GenerationsHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "list_generations")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	limit, err := queryInt(r, "limit", defaultListLimit)
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid limit", err))
		return
	}
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}

	offset, err := queryInt(r, "offset", 0)
	if err != nil || offset < 0 {
		response.Error(w, r, logger, errors.Validation("invalid offset"))
		return
	}

	records, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if records == nil {
		records = []generation.GenerationRecord{}
	}

	response.Success(w, http.StatusOK, records)
}

func (h *GenerationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_generation")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	id, ok := pathID(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.GetResult(r.Context(), id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, resp)
}

func (h *GenerationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "delete_generation")

	if r.Method != http.MethodDelete {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	id, ok := pathID(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusNoContent, nil)
}

func pathID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (int, bool) {
	idStr := r.PathValue("id")
	if idStr == "" {
		response.Error(w, r, logger, errors.Validation("generation ID is required"))
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid generation ID format", err))
		return 0, false
	}

	return id, true
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
