package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/hablaconmigo/habla-api/internal/domain"
)

// ProgressStore defines the interface for progress record persistence.
// Records are 1:1 with vocabulary items and keyed by vocabulary ID.
type ProgressStore interface {
	// Create saves the initial progress record for a vocabulary item.
	// Returns ErrDuplicate if a record already exists for the item.
	Create(ctx context.Context, record *domain.ProgressRecord) error

	// Get retrieves the progress record for a vocabulary item.
	// Returns ErrProgressNotFound if no record exists.
	Get(ctx context.Context, vocabularyID uuid.UUID) (*domain.ProgressRecord, error)

	// GetForUpdate retrieves the progress record with a row-level lock
	// (SELECT ... FOR UPDATE). Must be called within a transaction; it is
	// the first step of the atomic read-modify-write a review submission
	// performs. Returns ErrProgressNotFound if no record exists.
	GetForUpdate(ctx context.Context, vocabularyID uuid.UUID) (*domain.ProgressRecord, error)

	// Update persists new scheduling state for an existing record.
	// Returns ErrProgressNotFound if no record exists.
	Update(ctx context.Context, record *domain.ProgressRecord) error

	// FindDue returns progress records due for review at the given
	// moment: scheduled time arrived, or in active study (learning or
	// struggling) and not yet reviewed today. Struggling items come
	// first, then ascending next-review time.
	FindDue(ctx context.Context, now, startOfToday time.Time, limit int) ([]*domain.ProgressRecord, error)

	// FindByStatus returns records in the given status with limit/offset
	// pagination, ordered by ascending next-review time.
	FindByStatus(ctx context.Context, status domain.ProgressStatus, limit, offset int) ([]*domain.ProgressRecord, error)

	// CountByStatus returns the number of records per status.
	CountByStatus(ctx context.Context) (map[domain.ProgressStatus]int, error)

	// WithTx returns a ProgressStore bound to the given transaction.
	WithTx(tx *sql.Tx) ProgressStore
}
