package content

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hablaconmigo/habla-api/internal/domain"
)

// ErrPackageNotFound indicates that the content package does not exist.
var ErrPackageNotFound = errors.New("content package not found")

// ImportRequest carries the material to import. Source is optional
// free-form provenance (a URL, a book title).
type ImportRequest struct {
	Title  string `json:"title"`
	Source string `json:"source,omitempty"`
	Text   string `json:"text"`
}

// Service imports and manages content packages.
type Service interface {
	// Import tokenizes and lemmatizes the text, drops stop words, and
	// stores the package with its extracted lemma list.
	Import(ctx context.Context, req ImportRequest) (*domain.ContentPackage, error)

	// List returns all packages, newest first.
	List(ctx context.Context) ([]*domain.ContentPackage, error)

	// Get retrieves a single package with its word list.
	// Returns ErrPackageNotFound if absent.
	Get(ctx context.Context, id uuid.UUID) (*domain.ContentPackage, error)

	// Delete removes a package and its words.
	// Returns ErrPackageNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
