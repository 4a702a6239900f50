package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionSnapshot captures the state of the active review session at
// the moment an event was emitted.
type SessionSnapshot struct {
	// ItemsReviewed is the number of answers graded so far this session.
	ItemsReviewed int `json:"items_reviewed"`

	// CorrectAnswers is the number of those answers that passed.
	CorrectAnswers int `json:"correct_answers"`

	// Accuracy is CorrectAnswers/ItemsReviewed as a percentage, or zero
	// when nothing has been reviewed yet.
	Accuracy float64 `json:"accuracy"`
}

// ReviewEvent records the outcome of a single graded review.
type ReviewEvent struct {
	// ID is a unique identifier for this event.
	ID uuid.UUID `json:"id"`

	// VocabularyID identifies the reviewed vocabulary item.
	VocabularyID uuid.UUID `json:"vocabulary_id"`

	// Lemma is the reviewed item's base form, carried so handlers do
	// not need a store round trip to log something meaningful.
	Lemma string `json:"lemma"`

	// Quality is the 0-5 grade the learner gave.
	Quality int `json:"quality"`

	// Passed reports whether the grade counted as a successful recall.
	Passed bool `json:"passed"`

	// Session is a snapshot of the session the answer belongs to.
	Session SessionSnapshot `json:"session"`

	// CreatedAt is the timestamp when the event was created.
	CreatedAt time.Time `json:"created_at"`
}

// NewReviewEvent creates a ReviewEvent for a graded answer.
func NewReviewEvent(vocabularyID uuid.UUID, lemma string, quality int, passed bool, session SessionSnapshot) *ReviewEvent {
	return &ReviewEvent{
		ID:           uuid.New(),
		VocabularyID: vocabularyID,
		Lemma:        lemma,
		Quality:      quality,
		Passed:       passed,
		Session:      session,
		CreatedAt:    time.Now().UTC(),
	}
}

// ReviewHandler defines an interface for components that react to
// review outcomes.
type ReviewHandler interface {
	// HandleReview processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleReview(ctx context.Context, event *ReviewEvent) error
}

// ReviewEmitter defines an interface for components that publish
// review events. Services emit through this interface without direct
// knowledge of the registered handlers.
type ReviewEmitter interface {
	// EmitReview publishes the given event to all registered handlers.
	EmitReview(ctx context.Context, event *ReviewEvent) error
}
