package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/service/scoring"
)

// mockScoringService is a function-field mock of scoring.Service.
type mockScoringService struct {
	unifiedScoreFn func(ctx context.Context) (*scoring.UnifiedScore, error)
}

func (m *mockScoringService) UnifiedScore(ctx context.Context) (*scoring.UnifiedScore, error) {
	return m.unifiedScoreFn(ctx)
}

func TestScore(t *testing.T) {
	t.Run("returns the unified score", func(t *testing.T) {
		service := &mockScoringService{
			unifiedScoreFn: func(ctx context.Context) (*scoring.UnifiedScore, error) {
				return &scoring.UnifiedScore{
					Score:    52.5,
					Band:     domain.CEFRLevelB1,
					Sublevel: "B1.1",
					Speaking: scoring.SpeakingDimension{Score: 87.5, Capped: true},
				}, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/score", nil)
		rr := httptest.NewRecorder()
		NewScoreHandler(service, nil).Score(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp scoring.UnifiedScore
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.InDelta(t, 52.5, resp.Score, 0.001)
		assert.Equal(t, domain.CEFRLevelB1, resp.Band)
		assert.Equal(t, "B1.1", resp.Sublevel)
		assert.True(t, resp.Speaking.Capped)
	})

	t.Run("service failure", func(t *testing.T) {
		service := &mockScoringService{
			unifiedScoreFn: func(ctx context.Context) (*scoring.UnifiedScore, error) {
				return nil, errors.New("store unavailable")
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/score", nil)
		rr := httptest.NewRecorder()
		NewScoreHandler(service, nil).Score(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		var resp errorBody
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "An internal error occurred", resp.Error)
	})
}
