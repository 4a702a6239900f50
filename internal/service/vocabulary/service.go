package vocabulary

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hablaconmigo/habla-api/internal/domain"
)

// Common error types for the vocabulary service
var (
	// ErrDuplicateLemma indicates the lemma is already in the vocabulary.
	ErrDuplicateLemma = errors.New("lemma already in vocabulary")

	// ErrItemNotFound indicates that the vocabulary item does not exist.
	ErrItemNotFound = errors.New("vocabulary item not found")

	// ErrEmptyWord indicates the submitted word was empty.
	ErrEmptyWord = errors.New("word cannot be empty")

	// ErrInvalidStatus indicates an unrecognized progress status filter.
	ErrInvalidStatus = errors.New("invalid progress status filter")
)

// AddRequest carries the caller-supplied fields for a new vocabulary
// item. Only Word is required; the service fills in the rest.
type AddRequest struct {
	Word            string `json:"word"`
	Translation     string `json:"translation,omitempty"`
	Category        string `json:"category,omitempty"`
	ExampleSentence string `json:"example_sentence,omitempty"`
}

// Service manages the vocabulary list.
type Service interface {
	// Add normalizes the word to its lemma and stores it with an
	// initial progress record. A missing translation is resolved from
	// the frequency index, then from the translation provider; if both
	// fail the item is stored without one.
	// Returns ErrDuplicateLemma if the lemma is already stored.
	Add(ctx context.Context, req AddRequest) (*domain.VocabularyItem, error)

	// Get retrieves one vocabulary item.
	// Returns ErrItemNotFound if the item does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.VocabularyItem, error)

	// List returns vocabulary items, newest first, with limit/offset
	// pagination.
	List(ctx context.Context, limit, offset int) ([]*domain.VocabularyItem, error)

	// ListByStatus returns items whose progress record is in the given
	// status, paginated like List. Returns ErrInvalidStatus for an
	// unrecognized status value.
	ListByStatus(ctx context.Context, status domain.ProgressStatus, limit, offset int) ([]*domain.VocabularyItem, error)

	// UpdateTranslation fixes up the stored translation for an item,
	// the only mutation items support after creation.
	// Returns ErrItemNotFound if the item does not exist.
	UpdateTranslation(ctx context.Context, id uuid.UUID, translation string) error

	// Delete removes an item along with its progress record and cached
	// word forms. Returns ErrItemNotFound if the item does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
