package handlers_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cosmogen-server/internal/astro/generate"
	"cosmogen-server/internal/generation"
	"cosmogen-server/internal/generation/handlers"
	"cosmogen-server/internal/metrics"
	"cosmogen-server/internal/shared/config"
)

// newGenerateHandler wires a service without a database; the tests below
// only exercise paths that never reach the repository.
func newGenerateHandler(t *testing.T) *handlers.GenerateHandler {
	t.Helper()

	previous := config.GlobalConfig
	config.GlobalConfig = &config.Config{
		Generation: config.GenerationConfig{
			DefaultQuality:       "high",
			MaxPopulationSize:    100,
			RadiatedMassFraction: 0.05,
			ReferenceDistancePc:  1e6,
			CacheTTL:             time.Minute,
		},
	}
	t.Cleanup(func() { config.GlobalConfig = previous })

	repo := generation.NewRepository(nil, slog.Default())
	service := generation.NewService(repo, nil, metrics.New(), slog.Default())
	return handlers.NewGenerateHandler(service)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestGenerateSingleMethodNotAllowed(t *testing.T) {
	h := newGenerateHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/generate/single", nil)
	rec := httptest.NewRecorder()
	h.Single(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestGenerateSingleInvalidBody(t *testing.T) {
	h := newGenerateHandler(t)

	rec := postJSON(t, h.Single, "/api/generate/single", `{"seed": "not a number"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateSingleUnknownClassification(t *testing.T) {
	h := newGenerateHandler(t)

	rec := postJSON(t, h.Single, "/api/generate/single", `{"classification":"not_a_real_class","seed":1}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateSingleInvalidOverride(t *testing.T) {
	h := newGenerateHandler(t)

	rec := postJSON(t, h.Single, "/api/generate/single", `{"classification":"stellar_mass","seed":1,"overrides":{"mass":-1}}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateBinaryUnknownProgenitor(t *testing.T) {
	h := newGenerateHandler(t)

	rec := postJSON(t, h.Binary, "/api/generate/binary", `{"primary":"stellar_mass","secondary":"not_a_real_class","seed":1}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGenerateBinarySuccess(t *testing.T) {
	h := newGenerateHandler(t)

	rec := postJSON(t, h.Binary, "/api/generate/binary", `{"primary":"stellar_mass","secondary":"stellar_mass","seed":42}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var result generate.BinaryResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Greater(t, result.SeparationM, 0.0)
	require.True(t, result.Primary.Config.Binary.IsBinary)
}

func TestGenerateMergerSuccess(t *testing.T) {
	h := newGenerateHandler(t)

	rec := postJSON(t, h.Merger, "/api/generate/merger", `{"primary":"spiral","secondary":"spiral","seed":7}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var sequence []*generate.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sequence))
	require.Len(t, sequence, 3)
	require.Equal(t, "elliptical", sequence[2].Config.ClassificationKey)
}

func TestGeneratePopulationSuccess(t *testing.T) {
	h := newGenerateHandler(t)

	rec := postJSON(t, h.Population, "/api/generate/population", `{"classification":"main_sequence","count":25,"seed":3}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var members []*generate.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &members))
	require.Len(t, members, 25)
}

func TestGeneratePopulationCountCapped(t *testing.T) {
	h := newGenerateHandler(t)

	rec := postJSON(t, h.Population, "/api/generate/population", `{"classification":"main_sequence","count":1000,"seed":3}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGeneratePopulationRejectsZeroCount(t *testing.T) {
	h := newGenerateHandler(t)

	rec := postJSON(t, h.Population, "/api/generate/population", `{"classification":"main_sequence","count":0,"seed":3}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
