package handlers

import (
	"log/slog"
	"net/http"

	"cosmogen-server/internal/catalog"
	"cosmogen-server/internal/shared/errors"
	"cosmogen-server/internal/shared/response"
)

type ClassificationsHandler struct {
	service *catalog.Service
}

func NewClassificationsHandler(service *catalog.Service) *ClassificationsHandler {
	return &ClassificationsHandler{service: service}
}

func (h *ClassificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "list_classifications")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	summaries, err := h.service.List(r.URL.Query().Get("category"))
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, summaries)
}

func (h *ClassificationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_classification")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	key := r.PathValue("key")
	if key == "" {
		response.Error(w, r, logger, errors.Validation("classification key is required"))
		return
	}

	def, err := h.service.Get(key)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, def)
}
