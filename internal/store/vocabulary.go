package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/hablaconmigo/habla-api/internal/domain"
)

// VocabularyStore defines the interface for vocabulary item persistence.
type VocabularyStore interface {
	// Create saves a new vocabulary item.
	// Returns ErrLemmaExists if an item with the same lemma already exists.
	// Returns validation errors wrapped in ErrInvalidEntity for bad data.
	Create(ctx context.Context, item *domain.VocabularyItem) error

	// GetByID retrieves a vocabulary item by its unique ID.
	// Returns ErrVocabularyNotFound if the item does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabularyItem, error)

	// GetByLemma retrieves a vocabulary item by its lemma (exact,
	// lowercase match). Returns ErrVocabularyNotFound if absent.
	GetByLemma(ctx context.Context, lemma string) (*domain.VocabularyItem, error)

	// List returns vocabulary items ordered by creation time, newest
	// first, with limit/offset pagination.
	List(ctx context.Context, limit, offset int) ([]*domain.VocabularyItem, error)

	// Count returns the total number of vocabulary items.
	Count(ctx context.Context) (int, error)

	// UpdateTranslation replaces the translation of an existing item.
	// Returns ErrVocabularyNotFound if the item does not exist.
	UpdateTranslation(ctx context.Context, id uuid.UUID, translation string) error

	// Delete removes a vocabulary item. Progress records and word forms
	// are removed by the schema's cascade rules.
	// Returns ErrVocabularyNotFound if the item does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a VocabularyStore bound to the given transaction so
	// item creation and progress-record creation can commit atomically.
	WithTx(tx *sql.Tx) VocabularyStore
}
