package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hablaconmigo/habla-api/internal/api/shared"
	"github.com/hablaconmigo/habla-api/internal/platform/logger"
	"github.com/hablaconmigo/habla-api/internal/service/review"
)

// SubmitAnswerRequest is the body of POST /api/review/{id}/answer.
type SubmitAnswerRequest struct {
	Quality int `json:"quality"`
}

// ReviewHandler handles review-loop HTTP requests.
type ReviewHandler struct {
	reviewService review.Service
	logger        *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService review.Service, log *slog.Logger) *ReviewHandler {
	if reviewService == nil {
		panic("reviewService cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ReviewHandler{
		reviewService: reviewService,
		logger:        log.With(slog.String("component", "review_handler")),
	}
}

// Next handles GET /api/review/next requests. An optional limit query
// parameter caps the batch; the service default applies otherwise.
func (h *ReviewHandler) Next(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	limit, ok := parseQueryInt(w, r, "limit")
	if !ok {
		return
	}

	items, err := h.reviewService.Next(r.Context(), limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to fetch review queue", err)
		return
	}

	response := ReviewQueueResponse{
		Items: make([]ReviewItemResponse, 0, len(items)),
		Count: len(items),
	}
	for _, item := range items {
		response.Items = append(response.Items, reviewItemToResponse(item))
	}

	log.Debug("review queue served", slog.Int("count", response.Count))
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// SubmitAnswer handles POST /api/review/{id}/answer requests.
func (h *ReviewHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid vocabulary item ID")
		return
	}

	var req SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.reviewService.SubmitAnswer(r.Context(), id, req.Quality)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("answer accepted",
		slog.String("vocabulary_id", id.String()),
		slog.Int("quality", req.Quality),
		slog.Bool("passed", result.Passed))
	shared.RespondWithJSON(w, r, http.StatusOK, SubmitAnswerResponse{
		Progress: progressToResponse(result.Progress),
		Passed:   result.Passed,
		Session:  result.Session,
	})
}

// Session handles GET /api/review/session requests.
func (h *ReviewHandler) Session(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.reviewService.Session())
}

// ResetSession handles POST /api/review/session/reset requests. The
// learner calls this at the start of a fresh sitting.
func (h *ReviewHandler) ResetSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	h.reviewService.ResetSession()

	log.Info("review session reset")
	w.WriteHeader(http.StatusNoContent)
}
