package review

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/events"
)

// Common error types for the review service
var (
	// ErrItemNotFound indicates that the vocabulary item does not exist.
	ErrItemNotFound = errors.New("vocabulary item not found")

	// ErrInvalidQuality indicates a quality grade outside 0-5.
	ErrInvalidQuality = errors.New("quality must be between 0 and 5")
)

// ReviewItem pairs a due vocabulary item with its scheduling state so
// the caller can render the prompt and the progress context together.
type ReviewItem struct {
	Item     *domain.VocabularyItem `json:"item"`
	Progress *domain.ProgressRecord `json:"progress"`
}

// SubmitResult is the outcome of grading one answer.
type SubmitResult struct {
	// Progress is the rescheduled record after applying the grade.
	Progress *domain.ProgressRecord `json:"progress"`

	// Passed reports whether the grade counted as a successful recall.
	Passed bool `json:"passed"`

	// Session is the session state after counting this answer.
	Session events.SessionSnapshot `json:"session"`
}

// Service provides the review loop operations.
type Service interface {
	// Next returns up to limit vocabulary items due for review right
	// now, struggling items first. A non-positive limit falls back to
	// the configured default. An empty slice means nothing is due.
	Next(ctx context.Context, limit int) ([]*ReviewItem, error)

	// SubmitAnswer grades a recall of the given quality (0-5) for the
	// item, atomically reschedules its progress record, updates the
	// session counters, and emits a ReviewEvent.
	//
	// Returns ErrItemNotFound if the item does not exist and
	// ErrInvalidQuality for grades outside 0-5. A vocabulary item
	// without a progress record returns domain.ErrInconsistentState;
	// records are created with their items, so this indicates a bug
	// rather than a recoverable condition.
	SubmitAnswer(ctx context.Context, vocabularyID uuid.UUID, quality int) (*SubmitResult, error)

	// Session returns the current session counters.
	Session() events.SessionSnapshot

	// ResetSession zeroes the session counters. Called when the learner
	// starts a fresh sitting.
	ResetSession()
}
