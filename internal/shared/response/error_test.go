package response_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"cosmogen-server/internal/shared/errors"
	"cosmogen-server/internal/shared/response"
)

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"unknown classification", errors.UnknownClassificationf("classification not found: %q", "nope"), http.StatusNotFound},
		{"invalid override", errors.WrapInvalidOverride("override rejected", nil), http.StatusBadRequest},
		{"composition failed", errors.WrapCompositionFailed("composite generation failed", nil), http.StatusUnprocessableEntity},
		{"validation", errors.Validation("bad input"), http.StatusBadRequest},
		{"not found", errors.NotFoundf("missing"), http.StatusNotFound},
		{"unauthorized", errors.Unauthorized("no token"), http.StatusUnauthorized},
		{"forbidden", errors.Forbidden("admins only"), http.StatusForbidden},
		{"method", errors.MethodNotAllowed(http.MethodPatch), http.StatusMethodNotAllowed},
		{"internal", errors.WrapInternal("boom", nil), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			response.Error(rec, req, slog.Default(), tc.err)

			require.Equal(t, tc.code, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, string(errors.GetType(tc.err)), body.Error)
			require.Equal(t, tc.code, body.Code)
		})
	}
}

func TestSuccessWritesJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Success(rec, http.StatusCreated, map[string]int{"n": 1})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"n":1}`, rec.Body.String())
}
