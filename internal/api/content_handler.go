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
	"github.com/hablaconmigo/habla-api/internal/service/content"
)

// ContentPackagesResponse is the body of GET /api/content-packages.
type ContentPackagesResponse struct {
	Packages []*domain.ContentPackage `json:"packages"`
	Count    int                      `json:"count"`
}

// ContentHandler handles content package HTTP requests.
type ContentHandler struct {
	contentService content.Service
	logger         *slog.Logger
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService content.Service, log *slog.Logger) *ContentHandler {
	if contentService == nil {
		panic("contentService cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ContentHandler{
		contentService: contentService,
		logger:         log.With(slog.String("component", "content_handler")),
	}
}

// Import handles POST /api/content-packages requests.
func (h *ContentHandler) Import(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req content.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	pkg, err := h.contentService.Import(r.Context(), req)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	log.Info("content package imported",
		slog.String("id", pkg.ID.String()),
		slog.Int("word_count", len(pkg.Words)))
	shared.RespondWithJSON(w, r, http.StatusCreated, pkg)
}

// List handles GET /api/content-packages requests.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	packages, err := h.contentService.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to list content packages", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ContentPackagesResponse{
		Packages: packages,
		Count:    len(packages),
	})
}

// Get handles GET /api/content-packages/{id} requests.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid content package ID")
		return
	}

	pkg, err := h.contentService.Get(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, pkg)
}

// Delete handles DELETE /api/content-packages/{id} requests.
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid content package ID")
		return
	}

	if err := h.contentService.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	log.Info("content package deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}
