package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"cosmogen-server/internal/generation"
	"cosmogen-server/internal/shared/errors"
	"cosmogen-server/internal/shared/response"
)

type GenerateHandler struct {
	service *generation.Service
}

func NewGenerateHandler(service *generation.Service) *GenerateHandler {
	return &GenerateHandler{service: service}
}

type SingleRequest struct {
	// Classification may be empty, which selects one by discoverability.
	Classification string             `json:"classification"`
	Seed           int64              `json:"seed"`
	Overrides      map[string]float64 `json:"overrides,omitempty"`
}

type PairRequest struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Seed      int64  `json:"seed"`
}

type PopulationRequest struct {
	Classification string `json:"classification"`
	Count          int    `json:"count"`
	Seed           int64  `json:"seed"`
}

func (h *GenerateHandler) Single(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "generate_single")

	var req SingleRequest
	if !decodeRequest(w, r, logger, &req) {
		return
	}

	resp, err := h.service.Single(r.Context(), req.Classification, req.Seed, req.Overrides)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, resp)
}

func (h *GenerateHandler) Binary(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "generate_binary")

	var req PairRequest
	if !decodeRequest(w, r, logger, &req) {
		return
	}

	result, err := h.service.Binary(r.Context(), req.Primary, req.Secondary, req.Seed)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, result)
}

func (h *GenerateHandler) Merger(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "generate_merger")

	var req PairRequest
	if !decodeRequest(w, r, logger, &req) {
		return
	}

	sequence, err := h.service.Merger(r.Context(), req.Primary, req.Secondary, req.Seed)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, sequence)
}

func (h *GenerateHandler) Population(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "generate_population")

	var req PopulationRequest
	if !decodeRequest(w, r, logger, &req) {
		return
	}

	members, err := h.service.Population(r.Context(), req.Classification, req.Count, req.Seed)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, members)
}

// decodeRequest enforces POST with a JSON body; it writes the error
// response itself and reports whether the handler should continue.
func decodeRequest(w http.ResponseWriter, r *http.Request, logger *slog.Logger, into any) bool {
	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return false
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(into); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return false
	}

	return true
}
