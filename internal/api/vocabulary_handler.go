package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hablaconmigo/habla-api/internal/api/shared"
	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/platform/logger"
	"github.com/hablaconmigo/habla-api/internal/service/vocabulary"
)

// VocabularyListResponse is the body of GET /api/vocabulary.
type VocabularyListResponse struct {
	Items  []VocabularyItemResponse `json:"items"`
	Count  int                      `json:"count"`
	Limit  int                      `json:"limit"`
	Offset int                      `json:"offset"`
}

// VocabularyHandler handles vocabulary CRUD HTTP requests.
type VocabularyHandler struct {
	vocabService vocabulary.Service
	logger       *slog.Logger
}

// NewVocabularyHandler creates a new VocabularyHandler.
func NewVocabularyHandler(vocabService vocabulary.Service, log *slog.Logger) *VocabularyHandler {
	if vocabService == nil {
		panic("vocabService cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &VocabularyHandler{
		vocabService: vocabService,
		logger:       log.With(slog.String("component", "vocabulary_handler")),
	}
}

// Add handles POST /api/vocabulary requests.
func (h *VocabularyHandler) Add(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req vocabulary.AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.vocabService.Add(r.Context(), req)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	log.Info("vocabulary item added",
		slog.String("id", item.ID.String()),
		slog.String("lemma", item.Lemma))
	shared.RespondWithJSON(w, r, http.StatusCreated, itemToResponse(item))
}

// Get handles GET /api/vocabulary/{id} requests.
func (h *VocabularyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid vocabulary item ID")
		return
	}

	item, err := h.vocabService.Get(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// List handles GET /api/vocabulary requests with optional limit,
// offset, and status query parameters. With status, only items whose
// progress is in that state are returned.
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	limit, ok := parseQueryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := parseQueryInt(w, r, "offset")
	if !ok {
		return
	}

	var items []*domain.VocabularyItem
	var err error
	if status := r.URL.Query().Get("status"); status != "" {
		items, err = h.vocabService.ListByStatus(r.Context(), domain.ProgressStatus(status), limit, offset)
	} else {
		items, err = h.vocabService.List(r.Context(), limit, offset)
	}
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to list vocabulary", err)
		return
	}

	response := VocabularyListResponse{
		Items:  make([]VocabularyItemResponse, 0, len(items)),
		Count:  len(items),
		Limit:  limit,
		Offset: offset,
	}
	for _, item := range items {
		response.Items = append(response.Items, itemToResponse(item))
	}

	log.Debug("vocabulary listed", slog.Int("count", response.Count))
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// UpdateTranslationRequest is the body of PUT /api/vocabulary/{id}/translation.
type UpdateTranslationRequest struct {
	Translation string `json:"translation"`
}

// UpdateTranslation handles PUT /api/vocabulary/{id}/translation requests.
func (h *VocabularyHandler) UpdateTranslation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid vocabulary item ID")
		return
	}

	var req UpdateTranslationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.vocabService.UpdateTranslation(r.Context(), id, req.Translation); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	log.Info("translation updated", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/vocabulary/{id} requests.
func (h *VocabularyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid vocabulary item ID")
		return
	}

	if err := h.vocabService.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	log.Info("vocabulary item deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// parseQueryInt reads a non-negative integer query parameter, writing a
// 400 response and returning ok=false when the value is malformed. A
// missing parameter yields zero, which services treat as their default.
func parseQueryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, name+" must be a non-negative integer")
		return 0, false
	}
	return parsed, true
}
