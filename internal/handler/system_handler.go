package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler serves the greeting and health endpoints.
type SystemHandler struct {
	db     Pinger
	logger zerolog.Logger
}

// NewSystemHandler creates a new system handler.
func NewSystemHandler(db Pinger, logger zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		db:     db,
		logger: logger.With().Str("handler", "system").Logger(),
	}
}

// Hello handles GET /api/hello requests.
func (h *SystemHandler) Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Hello World"})
}

// Health handles GET /health requests.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error().Err(err).Msg("database ping failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
