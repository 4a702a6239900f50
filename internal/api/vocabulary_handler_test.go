package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/service/vocabulary"
)

// mockVocabularyService is a function-field mock of vocabulary.Service.
type mockVocabularyService struct {
	addFn               func(ctx context.Context, req vocabulary.AddRequest) (*domain.VocabularyItem, error)
	getFn               func(ctx context.Context, id uuid.UUID) (*domain.VocabularyItem, error)
	listFn              func(ctx context.Context, limit, offset int) ([]*domain.VocabularyItem, error)
	listByStatusFn      func(ctx context.Context, status domain.ProgressStatus, limit, offset int) ([]*domain.VocabularyItem, error)
	updateTranslationFn func(ctx context.Context, id uuid.UUID, translation string) error
	deleteFn            func(ctx context.Context, id uuid.UUID) error
}

func (m *mockVocabularyService) Add(ctx context.Context, req vocabulary.AddRequest) (*domain.VocabularyItem, error) {
	return m.addFn(ctx, req)
}

func (m *mockVocabularyService) Get(ctx context.Context, id uuid.UUID) (*domain.VocabularyItem, error) {
	return m.getFn(ctx, id)
}

func (m *mockVocabularyService) List(ctx context.Context, limit, offset int) ([]*domain.VocabularyItem, error) {
	return m.listFn(ctx, limit, offset)
}

func (m *mockVocabularyService) ListByStatus(ctx context.Context, status domain.ProgressStatus, limit, offset int) ([]*domain.VocabularyItem, error) {
	return m.listByStatusFn(ctx, status, limit, offset)
}

func (m *mockVocabularyService) UpdateTranslation(ctx context.Context, id uuid.UUID, translation string) error {
	return m.updateTranslationFn(ctx, id, translation)
}

func (m *mockVocabularyService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func newVocabularyRouter(service vocabulary.Service) http.Handler {
	handler := NewVocabularyHandler(service, nil)
	r := chi.NewRouter()
	r.Post("/api/vocabulary", handler.Add)
	r.Get("/api/vocabulary", handler.List)
	r.Get("/api/vocabulary/{id}", handler.Get)
	r.Put("/api/vocabulary/{id}/translation", handler.UpdateTranslation)
	r.Delete("/api/vocabulary/{id}", handler.Delete)
	return r
}

func TestVocabularyAdd(t *testing.T) {
	t.Run("creates an item", func(t *testing.T) {
		item := testVocabularyItem("hablar")
		service := &mockVocabularyService{
			addFn: func(ctx context.Context, req vocabulary.AddRequest) (*domain.VocabularyItem, error) {
				assert.Equal(t, "hablo", req.Word)
				assert.Equal(t, "greetings", req.Category)
				return item, nil
			},
		}

		body := bytes.NewBufferString(`{"word": "hablo", "category": "greetings"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/vocabulary", body)
		rr := httptest.NewRecorder()
		newVocabularyRouter(service).ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		var resp VocabularyItemResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, item.ID.String(), resp.ID)
		assert.Equal(t, "hablar", resp.Lemma)
		assert.Equal(t, "A1", resp.CEFRLevel)
	})

	t.Run("duplicate lemma maps to 409", func(t *testing.T) {
		service := &mockVocabularyService{
			addFn: func(ctx context.Context, req vocabulary.AddRequest) (*domain.VocabularyItem, error) {
				return nil, vocabulary.ErrDuplicateLemma
			},
		}

		body := bytes.NewBufferString(`{"word": "hablo"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/vocabulary", body)
		rr := httptest.NewRecorder()
		newVocabularyRouter(service).ServeHTTP(rr, req)

		require.Equal(t, http.StatusConflict, rr.Code)
		var resp errorBody
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Word is already in your vocabulary", resp.Error)
	})

	t.Run("empty word maps to 400", func(t *testing.T) {
		service := &mockVocabularyService{
			addFn: func(ctx context.Context, req vocabulary.AddRequest) (*domain.VocabularyItem, error) {
				return nil, vocabulary.ErrEmptyWord
			},
		}

		body := bytes.NewBufferString(`{"word": "   "}`)
		req := httptest.NewRequest(http.MethodPost, "/api/vocabulary", body)
		rr := httptest.NewRecorder()
		newVocabularyRouter(service).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		service := &mockVocabularyService{}

		body := bytes.NewBufferString(`{"word":`)
		req := httptest.NewRequest(http.MethodPost, "/api/vocabulary", body)
		rr := httptest.NewRecorder()
		newVocabularyRouter(service).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestVocabularyList(t *testing.T) {
	t.Run("passes pagination through", func(t *testing.T) {
		items := []*domain.VocabularyItem{testVocabularyItem("hablar"), testVocabularyItem("comer")}
		var gotLimit, gotOffset int
		service := &mockVocabularyService{
			listFn: func(ctx context.Context, limit, offset int) ([]*domain.VocabularyItem, error) {
				gotLimit, gotOffset = limit, offset
				return items, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/vocabulary?limit=10&offset=20", nil)
		rr := httptest.NewRecorder()
		newVocabularyRouter(service).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 10, gotLimit)
		assert.Equal(t, 20, gotOffset)

		var resp VocabularyListResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 2, resp.Count)
		assert.Equal(t, 10, resp.Limit)
		assert.Equal(t, 20, resp.Offset)
	})

	t.Run("status filter routes to ListByStatus", func(t *testing.T) {
		var gotStatus domain.ProgressStatus
		service := &mockVocabularyService{
			listByStatusFn: func(ctx context.Context, status domain.ProgressStatus, limit, offset int) ([]*domain.VocabularyItem, error) {
				gotStatus = status
				return []*domain.VocabularyItem{testVocabularyItem("hablar")}, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/vocabulary?status=learned", nil)
		rr := httptest.NewRecorder()
		newVocabularyRouter(service).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, domain.ProgressStatusLearned, gotStatus)
	})

	t.Run("unknown status maps to 400", func(t *testing.T) {
		service := &mockVocabularyService{
			listByStatusFn: func(ctx context.Context, status domain.ProgressStatus, limit, offset int) ([]*domain.VocabularyItem, error) {
				return nil, vocabulary.ErrInvalidStatus
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/vocabulary?status=mastered", nil)
		rr := httptest.NewRecorder()
		newVocabularyRouter(service).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed offset", func(t *testing.T) {
		service := &mockVocabularyService{}

		req := httptest.NewRequest(http.MethodGet, "/api/vocabulary?offset=-3", nil)
		rr := httptest.NewRecorder()
		newVocabularyRouter(service).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestVocabularyGet(t *testing.T) {
	t.Run("returns the item", func(t *testing.T) {
		item := testVocabularyItem("hablar")
		service := &mockVocabularyService{
			getFn: func(ctx context.Context, id uuid.UUID) (*domain.VocabularyItem, error) {
				assert.Equal(t, item.ID, id)
				return item, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/vocabulary/"+item.ID.String(), nil)
		rr := httptest.NewRecorder()
		newVocabularyRouter(service).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp VocabularyItemResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "hablar", resp.Lemma)
	})

	t.Run("unknown item maps to 404", func(t *testing.T) {
		service := &mockVocabularyService{
			getFn: func(ctx context.Context, id uuid.UUID) (*domain.VocabularyItem, error) {
				return nil, vocabulary.ErrItemNotFound
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/vocabulary/"+uuid.NewString(), nil)
		rr := httptest.NewRecorder()
		newVocabularyRouter(service).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestVocabularyUpdateTranslation(t *testing.T) {
	t.Run("updates the translation", func(t *testing.T) {
		id := uuid.New()
		var gotTranslation string
		service := &mockVocabularyService{
			updateTranslationFn: func(_ context.Context, gotID uuid.UUID, translation string) error {
				assert.Equal(t, id, gotID)
				gotTranslation = translation
				return nil
			},
		}

		body := bytes.NewBufferString(`{"translation": "the house"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/vocabulary/"+id.String()+"/translation", body)
		rr := httptest.NewRecorder()
		newVocabularyRouter(service).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "the house", gotTranslation)
	})

	t.Run("empty translation maps to 400", func(t *testing.T) {
		service := &mockVocabularyService{
			updateTranslationFn: func(context.Context, uuid.UUID, string) error {
				return domain.ErrValidation
			},
		}

		body := bytes.NewBufferString(`{"translation": ""}`)
		req := httptest.NewRequest(http.MethodPut, "/api/vocabulary/"+uuid.NewString()+"/translation", body)
		rr := httptest.NewRecorder()
		newVocabularyRouter(service).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestVocabularyDelete(t *testing.T) {
	t.Run("deletes the item", func(t *testing.T) {
		id := uuid.New()
		service := &mockVocabularyService{
			deleteFn: func(ctx context.Context, gotID uuid.UUID) error {
				assert.Equal(t, id, gotID)
				return nil
			},
		}

		req := httptest.NewRequest(http.MethodDelete, "/api/vocabulary/"+id.String(), nil)
		rr := httptest.NewRecorder()
		newVocabularyRouter(service).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Zero(t, rr.Body.Len())
	})

	t.Run("invalid ID", func(t *testing.T) {
		service := &mockVocabularyService{}

		req := httptest.NewRequest(http.MethodDelete, "/api/vocabulary/nope", nil)
		rr := httptest.NewRecorder()
		newVocabularyRouter(service).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown item maps to 404", func(t *testing.T) {
		service := &mockVocabularyService{
			deleteFn: func(ctx context.Context, id uuid.UUID) error {
				return vocabulary.ErrItemNotFound
			},
		}

		req := httptest.NewRequest(http.MethodDelete, "/api/vocabulary/"+uuid.NewString(), nil)
		rr := httptest.NewRecorder()
		newVocabularyRouter(service).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
