package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ProgressStatus is the learning state of a vocabulary item. It is a
// deterministic function of the item's review history and is never set
// directly by callers; the srs package derives it on every submission.
type ProgressStatus string

// Possible progress status values
const (
	// ProgressStatusNew marks an item that has never been reviewed.
	ProgressStatusNew ProgressStatus = "new"

	// ProgressStatusLearning marks an item under active study.
	ProgressStatusLearning ProgressStatus = "learning"

	// ProgressStatusStruggling marks an item failed more than twice.
	ProgressStatusStruggling ProgressStatus = "struggling"

	// ProgressStatusLearned marks an item answered correctly at least
	// four times with a scheduling interval of a week or longer.
	ProgressStatusLearned ProgressStatus = "learned"
)

// IsValid reports whether the status is one of the defined values.
func (s ProgressStatus) IsValid() bool {
	switch s {
	case ProgressStatusNew, ProgressStatusLearning, ProgressStatusStruggling, ProgressStatusLearned:
		return true
	default:
		return false
	}
}

// Common validation errors for ProgressRecord
var (
	ErrEmptyProgressVocabularyID = errors.New("progress record vocabulary ID cannot be empty")
	ErrInvalidInterval           = errors.New("interval must be greater than or equal to 0")
	ErrInvalidEaseFactor         = errors.New("ease factor must be at least 1.3")
	ErrInvalidProgressStatus     = errors.New("invalid progress status")
	ErrReviewOrderViolated       = errors.New("next review cannot precede last review")
)

// MinEaseFactor is the floor the SM-2 variant never drops below.
const MinEaseFactor = 1.3

// ProgressRecord tracks the spaced-repetition state for one vocabulary
// item (1:1 with VocabularyItem). It holds the SM-2 scheduling state
// plus correctness counters that drive the status derivation.
type ProgressRecord struct {
	VocabularyID   uuid.UUID      `json:"vocabulary_id"`
	EaseFactor     float64        `json:"ease_factor"`
	IntervalDays   int            `json:"interval_days"`
	Repetitions    int            `json:"repetitions"`
	TimesCorrect   int            `json:"times_correct"`
	TimesIncorrect int            `json:"times_incorrect"`
	Status         ProgressStatus `json:"status"`
	NextReviewAt   time.Time      `json:"next_review_at"`
	LastReviewedAt time.Time      `json:"last_reviewed_at"` // zero until first review
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// NewProgressRecord creates progress state for a freshly added
// vocabulary item. The item starts as "new" with the default ease
// factor and is due immediately.
func NewProgressRecord(vocabularyID uuid.UUID) (*ProgressRecord, error) {
	now := time.Now().UTC()
	record := &ProgressRecord{
		VocabularyID:   vocabularyID,
		EaseFactor:     2.5,
		IntervalDays:   1,
		Repetitions:    0,
		TimesCorrect:   0,
		TimesIncorrect: 0,
		Status:         ProgressStatusNew,
		NextReviewAt:   now, // available for review immediately
		LastReviewedAt: time.Time{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the ProgressRecord has valid data.
// Returns an error if any field fails validation.
func (p *ProgressRecord) Validate() error {
	if p.VocabularyID == uuid.Nil {
		return ErrEmptyProgressVocabularyID
	}

	if p.IntervalDays < 0 {
		return ErrInvalidInterval
	}

	if p.EaseFactor < MinEaseFactor {
		return ErrInvalidEaseFactor
	}

	if !p.Status.IsValid() {
		return ErrInvalidProgressStatus
	}

	if !p.LastReviewedAt.IsZero() && !p.NextReviewAt.IsZero() &&
		p.NextReviewAt.Before(p.LastReviewedAt) {
		return ErrReviewOrderViolated
	}

	return nil
}

// IsDue reports whether the record is due for review at the given
// moment. An item is due when its scheduled time has arrived, or when
// it is in active study (learning or struggling) and has not yet been
// reviewed today. The second clause guarantees daily exposure to
// actively-learning items regardless of the computed interval.
func (p *ProgressRecord) IsDue(now, startOfToday time.Time) bool {
	if !p.NextReviewAt.After(now) {
		return true
	}

	if p.Status == ProgressStatusLearning || p.Status == ProgressStatusStruggling {
		return p.LastReviewedAt.IsZero() || p.LastReviewedAt.Before(startOfToday)
	}

	return false
}
