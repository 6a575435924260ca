package handler

import (
	"log/slog"
	"net/http"

	"github.com/crmstack/crm-backend/internal/service"
)

// StatsHandler serves the liveness greeting and aggregate counters that the
// background jobs consume
type StatsHandler struct {
	statsService service.StatsService
	logger       *slog.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService service.StatsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		logger:       logger,
	}
}

// HelloResponse is the liveness greeting payload
type HelloResponse struct {
	Hello string `json:"hello"`
}

// Hello handles GET /hello
func (h *StatsHandler) Hello(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, HelloResponse{Hello: "Hello, CRM!"})
}

// Stats handles GET /stats
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Stats(r.Context())
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, stats)
}
