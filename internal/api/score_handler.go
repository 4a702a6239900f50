package api

import (
	"log/slog"
	"net/http"

	"github.com/hablaconmigo/habla-api/internal/api/shared"
	"github.com/hablaconmigo/habla-api/internal/platform/logger"
	"github.com/hablaconmigo/habla-api/internal/service/scoring"
)

// ScoreHandler handles unified-score HTTP requests.
type ScoreHandler struct {
	scorer scoring.Service
	logger *slog.Logger
}

// NewScoreHandler creates a new ScoreHandler.
func NewScoreHandler(scorer scoring.Service, log *slog.Logger) *ScoreHandler {
	if scorer == nil {
		panic("scorer cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ScoreHandler{
		scorer: scorer,
		logger: log.With(slog.String("component", "score_handler")),
	}
}

// Score handles GET /api/score requests.
func (h *ScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	score, err := h.scorer.UnifiedScore(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to compute score", err)
		return
	}

	log.Debug("score served",
		slog.Float64("score", score.Score),
		slog.String("band", string(score.Band)))
	shared.RespondWithJSON(w, r, http.StatusOK, score)
}
