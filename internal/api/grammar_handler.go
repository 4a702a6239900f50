package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hablaconmigo/habla-api/internal/api/shared"
	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/platform/logger"
	"github.com/hablaconmigo/habla-api/internal/service/grammar"
)

// CreateTopicRequest is the body of POST /api/grammar/topics.
type CreateTopicRequest struct {
	Title     string `json:"title"`
	CEFRLevel string `json:"cefr_level"`
}

// GrammarTopicsResponse is the body of GET /api/grammar/topics.
type GrammarTopicsResponse struct {
	Topics []*grammar.TopicWithStatus `json:"topics"`
	Count  int                        `json:"count"`
}

// SetTopicProgressRequest is the body of PUT /api/grammar/topics/{id}/progress.
type SetTopicProgressRequest struct {
	Status string `json:"status"`
}

// GrammarHandler handles grammar taxonomy HTTP requests.
type GrammarHandler struct {
	grammarService grammar.Service
	logger         *slog.Logger
}

// NewGrammarHandler creates a new GrammarHandler.
func NewGrammarHandler(grammarService grammar.Service, log *slog.Logger) *GrammarHandler {
	if grammarService == nil {
		panic("grammarService cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &GrammarHandler{
		grammarService: grammarService,
		logger:         log.With(slog.String("component", "grammar_handler")),
	}
}

// CreateTopic handles POST /api/grammar/topics requests.
func (h *GrammarHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	topic, err := h.grammarService.CreateTopic(r.Context(), req.Title, domain.CEFRLevel(req.CEFRLevel))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	log.Info("grammar topic created",
		slog.String("id", topic.ID.String()),
		slog.String("title", topic.Title))
	shared.RespondWithJSON(w, r, http.StatusCreated, topic)
}

// ListTopics handles GET /api/grammar/topics requests with an optional
// level query parameter restricting results to one CEFR band.
func (h *GrammarHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	var topics []*grammar.TopicWithStatus
	var err error
	if level := r.URL.Query().Get("level"); level != "" {
		topics, err = h.grammarService.TopicsByLevel(r.Context(), domain.CEFRLevel(level))
	} else {
		topics, err = h.grammarService.Topics(r.Context())
	}
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GrammarTopicsResponse{
		Topics: topics,
		Count:  len(topics),
	})
}

// SetProgress handles PUT /api/grammar/topics/{id}/progress requests.
func (h *GrammarHandler) SetProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid grammar topic ID")
		return
	}

	var req SetTopicProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	progress, err := h.grammarService.SetProgress(r.Context(), id, domain.GrammarStatus(req.Status))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	log.Info("grammar progress updated",
		slog.String("topic_id", id.String()),
		slog.String("status", string(progress.Status)))
	shared.RespondWithJSON(w, r, http.StatusOK, progress)
}
