package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hablaconmigo/habla-api/internal/api/shared"
	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/platform/logger"
	"github.com/hablaconmigo/habla-api/internal/service/wordforms"
)

// RegenerateRequest is the body of POST /api/word-forms/regenerate.
// An empty body means a non-forced run.
type RegenerateRequest struct {
	Force bool `json:"force"`
}

// WordFormHandler handles word-form expansion HTTP requests.
type WordFormHandler struct {
	expander wordforms.Service
	logger   *slog.Logger
}

// NewWordFormHandler creates a new WordFormHandler.
func NewWordFormHandler(expander wordforms.Service, log *slog.Logger) *WordFormHandler {
	if expander == nil {
		panic("expander cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &WordFormHandler{
		expander: expander,
		logger:   log.With(slog.String("component", "wordform_handler")),
	}
}

// Regenerate handles POST /api/word-forms/regenerate requests.
func (h *WordFormHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.expander.Regenerate(r.Context(), req.Force)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to regenerate word forms", err)
		return
	}

	log.Info("word forms regenerated",
		slog.Bool("force", req.Force),
		slog.Int("words_processed", result.WordsProcessed),
		slog.Int("forms_generated", result.FormsGenerated))
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// WordFormsResponse is the body of GET /api/vocabulary/{id}/forms.
type WordFormsResponse struct {
	Forms []*domain.WordForm `json:"forms"`
	Count int                `json:"count"`
}

// FormsForWord handles GET /api/vocabulary/{id}/forms requests.
func (h *WordFormHandler) FormsForWord(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid vocabulary item ID")
		return
	}

	forms, err := h.expander.FormsForWord(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, WordFormsResponse{Forms: forms, Count: len(forms)})
}
