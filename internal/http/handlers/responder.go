package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/preston-bernstein/nba-recipes-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-recipes-service/internal/http/requestutil"
	"github.com/preston-bernstein/nba-recipes-service/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeErrorBody(w, r, status, map[string]any{"error": message}, logger)
}

// writeErrorBody adds requestId to body when one is known.
func writeErrorBody(w http.ResponseWriter, r *http.Request, status int, body map[string]any, logger *slog.Logger) {
	if reqID := requestID(r); reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

func requestID(r *http.Request) string {
	if r == nil {
		return ""
	}
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	return reqID
}

func requireMethod(w http.ResponseWriter, r *http.Request, logger *slog.Logger, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}

// pathID parses an integer path value. ok is false for anything that is not a base-10 int.
func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	return id, err == nil
}

// NotFound answers unknown routes with a JSON 404.
func NotFound(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "not found", logger)
	}
}
