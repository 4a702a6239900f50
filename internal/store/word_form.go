package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/hablaconmigo/habla-api/internal/domain"
)

// WordFormStore defines the interface for word form persistence.
// Forms act as a cache over the morphological generator: unique on
// (base word, form, form type), inserted in bulk, wiped only on forced
// regeneration.
type WordFormStore interface {
	// CreateMultiple saves the given forms, skipping any that collide
	// with an already-cached (base word, form, form type) combination.
	// Returns the number of forms actually inserted.
	//
	// Run within a transaction (via WithTx and store.RunInTransaction)
	// when inserting forms for multiple base words so a regeneration
	// commits atomically.
	CreateMultiple(ctx context.Context, forms []*domain.WordForm) (int, error)

	// FindByBaseWord returns all cached forms for a base word.
	FindByBaseWord(ctx context.Context, baseWordID uuid.UUID) ([]*domain.WordForm, error)

	// AllFormStrings returns the full set of cached form strings across
	// all base words, mapped to their base word ID. The comprehension
	// analyzer matches raw tokens against this set to recover
	// conjugated and pluralized surface forms.
	AllFormStrings(ctx context.Context) (map[string]uuid.UUID, error)

	// Count returns the total number of cached forms.
	Count(ctx context.Context) (int, error)

	// DeleteGenerated removes all unverified forms. Verified forms
	// survive a forced regeneration.
	DeleteGenerated(ctx context.Context) error

	// WithTx returns a WordFormStore bound to the given transaction.
	WithTx(tx *sql.Tx) WordFormStore
}
