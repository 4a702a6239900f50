package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hablaconmigo/habla-api/internal/domain"
)

func TestNewProgressRecord(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	record, err := domain.NewProgressRecord(id)
	require.NoError(t, err)

	assert.Equal(t, id, record.VocabularyID)
	assert.Equal(t, domain.ProgressStatusNew, record.Status)
	assert.InDelta(t, 2.5, record.EaseFactor, 1e-9)
	assert.Equal(t, 1, record.IntervalDays)
	assert.True(t, record.LastReviewedAt.IsZero())
	assert.False(t, record.NextReviewAt.After(time.Now().UTC()), "new items are due immediately")

	_, err = domain.NewProgressRecord(uuid.Nil)
	assert.ErrorIs(t, err, domain.ErrEmptyProgressVocabularyID)
}

func TestProgressRecordValidate(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	valid := func() *domain.ProgressRecord {
		return &domain.ProgressRecord{
			VocabularyID:   uuid.New(),
			EaseFactor:     2.5,
			IntervalDays:   3,
			Status:         domain.ProgressStatusLearning,
			NextReviewAt:   now.AddDate(0, 0, 3),
			LastReviewedAt: now,
		}
	}

	assert.NoError(t, valid().Validate())

	r := valid()
	r.EaseFactor = 1.2
	assert.ErrorIs(t, r.Validate(), domain.ErrInvalidEaseFactor)

	r = valid()
	r.IntervalDays = -1
	assert.ErrorIs(t, r.Validate(), domain.ErrInvalidInterval)

	r = valid()
	r.Status = domain.ProgressStatus("mastered")
	assert.ErrorIs(t, r.Validate(), domain.ErrInvalidProgressStatus)

	r = valid()
	r.NextReviewAt = r.LastReviewedAt.Add(-time.Hour)
	assert.ErrorIs(t, r.Validate(), domain.ErrReviewOrderViolated)
}

func TestProgressRecordIsDue(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 23, 14, 0, 0, 0, time.UTC)
	startOfToday := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)

	r := &domain.ProgressRecord{
		Status:       domain.ProgressStatusLearned,
		NextReviewAt: now,
	}
	assert.True(t, r.IsDue(now, startOfToday), "due exactly at the scheduled time")

	r = &domain.ProgressRecord{
		Status:         domain.ProgressStatusLearning,
		NextReviewAt:   now.AddDate(0, 0, 2),
		LastReviewedAt: startOfToday.Add(-2 * time.Hour),
	}
	assert.True(t, r.IsDue(now, startOfToday), "learning item last seen yesterday gets daily exposure")

	r.LastReviewedAt = startOfToday.Add(9 * time.Hour)
	assert.False(t, r.IsDue(now, startOfToday), "already reviewed today")
}
