package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hablaconmigo/habla-api/internal/api/shared"
	"github.com/hablaconmigo/habla-api/internal/platform/logger"
	"github.com/hablaconmigo/habla-api/internal/service/comprehension"
)

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// AnalyzeHandler handles comprehension analysis HTTP requests.
type AnalyzeHandler struct {
	analyzer comprehension.Service
	logger   *slog.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(analyzer comprehension.Service, log *slog.Logger) *AnalyzeHandler {
	if analyzer == nil {
		panic("analyzer cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &AnalyzeHandler{
		analyzer: analyzer,
		logger:   log.With(slog.String("component", "analyze_handler")),
	}
}

// Analyze handles POST /api/analyze requests.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	analysis, err := h.analyzer.Analyze(r.Context(), req.Text)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("text analyzed",
		slog.Int("total_words", analysis.TotalWords),
		slog.Float64("comprehension_pct", analysis.ComprehensionPct))
	shared.RespondWithJSON(w, r, http.StatusOK, analysis)
}
