package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/fyyur/internal/middleware"
)

func serveLogged(t *testing.T, h http.HandlerFunc, path string) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	// Simulate what chimiddleware.RequestID does: inject a known ID into context.
	ctx := context.WithValue(req.Context(), chimiddleware.RequestIDKey, "test-req-id")
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	middleware.NewSlogLogger(logger)(h).ServeHTTP(rec, req)

	var logEntry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
	return logEntry
}

// TestSlogLogger_logsRequestFields verifies that the SlogLogger middleware
// writes a structured JSON log line containing method, path, status, size,
// duration, and the request ID placed in context by chi's RequestID middleware.
func TestSlogLogger_logsRequestFields(t *testing.T) {
	logEntry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<h1>Venues</h1>"))
	}, "/venues")

	require.Equal(t, "INFO", logEntry["level"])
	require.Equal(t, "GET", logEntry["method"])
	require.Equal(t, "/venues", logEntry["path"])
	require.EqualValues(t, http.StatusOK, logEntry["status"])
	require.EqualValues(t, len("<h1>Venues</h1>"), logEntry["bytes"])
	require.Equal(t, "test-req-id", logEntry["request_id"])
	require.NotNil(t, logEntry["duration_ms"])
}

func TestSlogLogger_implicitOK(t *testing.T) {
	logEntry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {}, "/shows")

	require.EqualValues(t, http.StatusOK, logEntry["status"])
}

func TestSlogLogger_serverErrorAtErrorLevel(t *testing.T) {
	logEntry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, "/venues/1")

	require.Equal(t, "ERROR", logEntry["level"])
	require.EqualValues(t, http.StatusInternalServerError, logEntry["status"])
}
