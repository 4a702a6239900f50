package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/hablaconmigo/habla-api/internal/domain"
)

// ContentPackageStore defines the interface for imported content
// package persistence. Packages carry their extracted word lists; the
// scorer's content dimension asks how many packages are consumable
// against the learner's known vocabulary.
type ContentPackageStore interface {
	// Create saves a package together with its extracted words.
	// Run within a transaction when the word list is large.
	Create(ctx context.Context, pkg *domain.ContentPackage) error

	// GetByID retrieves a package with its word list.
	// Returns ErrContentPackageNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentPackage, error)

	// List returns all packages with their word lists, newest first.
	List(ctx context.Context) ([]*domain.ContentPackage, error)

	// Delete removes a package and its words.
	// Returns ErrContentPackageNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a ContentPackageStore bound to the given transaction.
	WithTx(tx *sql.Tx) ContentPackageStore
}
