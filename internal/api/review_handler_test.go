package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/events"
	"github.com/hablaconmigo/habla-api/internal/service/review"
)

// mockReviewService is a function-field mock of review.Service.
type mockReviewService struct {
	nextFn         func(ctx context.Context, limit int) ([]*review.ReviewItem, error)
	submitAnswerFn func(ctx context.Context, vocabularyID uuid.UUID, quality int) (*review.SubmitResult, error)

	session      events.SessionSnapshot
	sessionReset bool
}

func (m *mockReviewService) Next(ctx context.Context, limit int) ([]*review.ReviewItem, error) {
	return m.nextFn(ctx, limit)
}

func (m *mockReviewService) SubmitAnswer(
	ctx context.Context,
	vocabularyID uuid.UUID,
	quality int,
) (*review.SubmitResult, error) {
	return m.submitAnswerFn(ctx, vocabularyID, quality)
}

func (m *mockReviewService) Session() events.SessionSnapshot { return m.session }

func (m *mockReviewService) ResetSession() { m.sessionReset = true }

func newReviewRouter(service review.Service) http.Handler {
	handler := NewReviewHandler(service, nil)
	r := chi.NewRouter()
	r.Get("/api/review/next", handler.Next)
	r.Post("/api/review/{id}/answer", handler.SubmitAnswer)
	r.Get("/api/review/session", handler.Session)
	r.Post("/api/review/session/reset", handler.ResetSession)
	return r
}

func testVocabularyItem(lemma string) *domain.VocabularyItem {
	now := time.Now().UTC()
	return &domain.VocabularyItem{
		ID:          uuid.New(),
		Lemma:       lemma,
		Translation: "to speak",
		CEFRLevel:   domain.CEFRLevelA1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestReviewNext(t *testing.T) {
	item := testVocabularyItem("hablar")
	record := &domain.ProgressRecord{
		VocabularyID: item.ID,
		EaseFactor:   2.5,
		Status:       domain.ProgressStatusLearning,
		NextReviewAt: time.Now().UTC(),
	}

	t.Run("returns due items", func(t *testing.T) {
		var gotLimit int
		service := &mockReviewService{
			nextFn: func(ctx context.Context, limit int) ([]*review.ReviewItem, error) {
				gotLimit = limit
				return []*review.ReviewItem{{Item: item, Progress: record}}, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/review/next?limit=5", nil)
		rr := httptest.NewRecorder()
		newReviewRouter(service).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 5, gotLimit)

		var resp ReviewQueueResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 1, resp.Count)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, item.ID.String(), resp.Items[0].Item.ID)
		assert.Equal(t, "hablar", resp.Items[0].Item.Lemma)
		assert.Equal(t, "learning", resp.Items[0].Progress.Status)
		assert.Nil(t, resp.Items[0].Progress.LastReviewedAt)
	})

	t.Run("empty queue", func(t *testing.T) {
		service := &mockReviewService{
			nextFn: func(ctx context.Context, limit int) ([]*review.ReviewItem, error) {
				return nil, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/review/next", nil)
		rr := httptest.NewRecorder()
		newReviewRouter(service).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp ReviewQueueResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 0, resp.Count)
		assert.NotNil(t, resp.Items)
	})

	t.Run("malformed limit", func(t *testing.T) {
		service := &mockReviewService{
			nextFn: func(ctx context.Context, limit int) ([]*review.ReviewItem, error) {
				t.Fatal("service should not be called")
				return nil, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/review/next?limit=abc", nil)
		rr := httptest.NewRecorder()
		newReviewRouter(service).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		service := &mockReviewService{
			nextFn: func(ctx context.Context, limit int) ([]*review.ReviewItem, error) {
				return nil, errors.New("database down")
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/review/next", nil)
		rr := httptest.NewRecorder()
		newReviewRouter(service).ServeHTTP(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		var resp errorBody
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.NotContains(t, resp.Error, "database down")
	})
}

// errorBody mirrors shared.ErrorResponse for decoding in tests.
type errorBody struct {
	Error string `json:"error"`
}

func TestReviewSubmitAnswer(t *testing.T) {
	item := testVocabularyItem("hablar")

	t.Run("grades an answer", func(t *testing.T) {
		reviewed := time.Now().UTC()
		service := &mockReviewService{
			submitAnswerFn: func(ctx context.Context, vocabularyID uuid.UUID, quality int) (*review.SubmitResult, error) {
				assert.Equal(t, item.ID, vocabularyID)
				assert.Equal(t, 4, quality)
				return &review.SubmitResult{
					Progress: &domain.ProgressRecord{
						VocabularyID:   vocabularyID,
						EaseFactor:     2.5,
						IntervalDays:   1,
						Repetitions:    1,
						TimesCorrect:   1,
						Status:         domain.ProgressStatusLearning,
						NextReviewAt:   reviewed.AddDate(0, 0, 1),
						LastReviewedAt: reviewed,
					},
					Passed:  true,
					Session: events.SessionSnapshot{ItemsReviewed: 1, CorrectAnswers: 1, Accuracy: 100},
				}, nil
			},
		}

		body := bytes.NewBufferString(`{"quality": 4}`)
		req := httptest.NewRequest(http.MethodPost, "/api/review/"+item.ID.String()+"/answer", body)
		rr := httptest.NewRecorder()
		newReviewRouter(service).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp SubmitAnswerResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.Passed)
		assert.Equal(t, 1, resp.Progress.IntervalDays)
		require.NotNil(t, resp.Progress.LastReviewedAt)
		assert.Equal(t, 1, resp.Session.ItemsReviewed)
		assert.InDelta(t, 100.0, resp.Session.Accuracy, 0.001)
	})

	t.Run("invalid item ID", func(t *testing.T) {
		service := &mockReviewService{}

		body := bytes.NewBufferString(`{"quality": 4}`)
		req := httptest.NewRequest(http.MethodPost, "/api/review/not-a-uuid/answer", body)
		rr := httptest.NewRecorder()
		newReviewRouter(service).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		service := &mockReviewService{}

		body := bytes.NewBufferString(`{"quality":`)
		req := httptest.NewRequest(http.MethodPost, "/api/review/"+item.ID.String()+"/answer", body)
		rr := httptest.NewRecorder()
		newReviewRouter(service).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid quality maps to 400", func(t *testing.T) {
		service := &mockReviewService{
			submitAnswerFn: func(ctx context.Context, vocabularyID uuid.UUID, quality int) (*review.SubmitResult, error) {
				return nil, review.ErrInvalidQuality
			},
		}

		body := bytes.NewBufferString(`{"quality": 9}`)
		req := httptest.NewRequest(http.MethodPost, "/api/review/"+item.ID.String()+"/answer", body)
		rr := httptest.NewRecorder()
		newReviewRouter(service).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown item maps to 404", func(t *testing.T) {
		service := &mockReviewService{
			submitAnswerFn: func(ctx context.Context, vocabularyID uuid.UUID, quality int) (*review.SubmitResult, error) {
				return nil, review.ErrItemNotFound
			},
		}

		body := bytes.NewBufferString(`{"quality": 3}`)
		req := httptest.NewRequest(http.MethodPost, "/api/review/"+uuid.NewString()+"/answer", body)
		rr := httptest.NewRecorder()
		newReviewRouter(service).ServeHTTP(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		var resp errorBody
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Vocabulary item not found", resp.Error)
	})
}

func TestReviewSession(t *testing.T) {
	t.Run("returns session counters", func(t *testing.T) {
		service := &mockReviewService{
			session: events.SessionSnapshot{
				ItemsReviewed:  4,
				CorrectAnswers: 3,
				Accuracy:       75.0,
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/review/session", nil)
		rr := httptest.NewRecorder()
		newReviewRouter(service).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var snapshot events.SessionSnapshot
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &snapshot))
		assert.Equal(t, 4, snapshot.ItemsReviewed)
		assert.Equal(t, 3, snapshot.CorrectAnswers)
		assert.InDelta(t, 75.0, snapshot.Accuracy, 0.001)
	})

	t.Run("reset zeroes the sitting", func(t *testing.T) {
		service := &mockReviewService{}

		req := httptest.NewRequest(http.MethodPost, "/api/review/session/reset", nil)
		rr := httptest.NewRecorder()
		newReviewRouter(service).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.True(t, service.sessionReset)
	})
}
