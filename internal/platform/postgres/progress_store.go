package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/platform/logger"
	"github.com/hablaconmigo/habla-api/internal/store"
)

// PostgresProgressStore implements the store.ProgressStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProgressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProgressStore creates a new PostgreSQL implementation of
// the ProgressStore interface. If logger is nil, a default logger will
// be used.
func NewPostgresProgressStore(db store.DBTX, logger *slog.Logger) *PostgresProgressStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProgressStore{
		db:     db,
		logger: logger.With(slog.String("component", "progress_store")),
	}
}

// Ensure PostgresProgressStore implements store.ProgressStore interface
var _ store.ProgressStore = (*PostgresProgressStore)(nil)

const progressColumns = `
	vocabulary_id, ease_factor, interval_days, repetitions,
	times_correct, times_incorrect, status, next_review_at,
	last_reviewed_at, created_at, updated_at
`

// Create implements store.ProgressStore.Create.
func (s *PostgresProgressStore) Create(ctx context.Context, record *domain.ProgressRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("progress record validation failed during create",
			slog.String("error", err.Error()),
			slog.String("vocabulary_id", record.VocabularyID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO vocabulary_progress (` + progressColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		record.VocabularyID,
		record.EaseFactor,
		record.IntervalDays,
		record.Repetitions,
		record.TimesCorrect,
		record.TimesIncorrect,
		record.Status,
		record.NextReviewAt,
		nullableTime(record.LastReviewedAt),
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: progress for vocabulary %s", store.ErrDuplicate, record.VocabularyID)
		}
		log.Error("failed to create progress record",
			slog.String("error", err.Error()),
			slog.String("vocabulary_id", record.VocabularyID.String()))
		return MapError(err)
	}

	return nil
}

// Get implements store.ProgressStore.Get.
func (s *PostgresProgressStore) Get(ctx context.Context, vocabularyID uuid.UUID) (*domain.ProgressRecord, error) {
	query := `SELECT ` + progressColumns + ` FROM vocabulary_progress WHERE vocabulary_id = $1`
	return s.scanRecord(s.db.QueryRowContext(ctx, query, vocabularyID))
}

// GetForUpdate implements store.ProgressStore.GetForUpdate. The row
// lock holds until the surrounding transaction commits or rolls back.
func (s *PostgresProgressStore) GetForUpdate(ctx context.Context, vocabularyID uuid.UUID) (*domain.ProgressRecord, error) {
	query := `SELECT ` + progressColumns + ` FROM vocabulary_progress WHERE vocabulary_id = $1 FOR UPDATE`
	return s.scanRecord(s.db.QueryRowContext(ctx, query, vocabularyID))
}

func (s *PostgresProgressStore) scanRecord(row *sql.Row) (*domain.ProgressRecord, error) {
	var record domain.ProgressRecord
	var lastReviewed sql.NullTime

	err := row.Scan(
		&record.VocabularyID,
		&record.EaseFactor,
		&record.IntervalDays,
		&record.Repetitions,
		&record.TimesCorrect,
		&record.TimesIncorrect,
		&record.Status,
		&record.NextReviewAt,
		&lastReviewed,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProgressNotFound
		}
		return nil, MapError(err)
	}

	if lastReviewed.Valid {
		record.LastReviewedAt = lastReviewed.Time
	}

	return &record, nil
}

// Update implements store.ProgressStore.Update.
func (s *PostgresProgressStore) Update(ctx context.Context, record *domain.ProgressRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE vocabulary_progress
		SET ease_factor = $1, interval_days = $2, repetitions = $3,
		    times_correct = $4, times_incorrect = $5, status = $6,
		    next_review_at = $7, last_reviewed_at = $8, updated_at = $9
		WHERE vocabulary_id = $10
	`,
		record.EaseFactor,
		record.IntervalDays,
		record.Repetitions,
		record.TimesCorrect,
		record.TimesIncorrect,
		record.Status,
		record.NextReviewAt,
		nullableTime(record.LastReviewedAt),
		record.UpdatedAt,
		record.VocabularyID,
	)
	if err != nil {
		log.Error("failed to update progress record",
			slog.String("error", err.Error()),
			slog.String("vocabulary_id", record.VocabularyID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "progress record"); err != nil {
		return store.ErrProgressNotFound
	}

	return nil
}

// FindDue implements store.ProgressStore.FindDue. The predicate mirrors
// domain.ProgressRecord.IsDue; struggling items come first so the
// hardest material leads every session.
func (s *PostgresProgressStore) FindDue(
	ctx context.Context,
	now, startOfToday time.Time,
	limit int,
) ([]*domain.ProgressRecord, error) {
	query := `
		SELECT ` + progressColumns + `
		FROM vocabulary_progress
		WHERE next_review_at <= $1
		   OR (status IN ('learning', 'struggling')
		       AND (last_reviewed_at IS NULL OR last_reviewed_at < $2))
		ORDER BY (status = 'struggling') DESC, next_review_at ASC
		LIMIT $3
	`
	return s.queryRecords(ctx, query, now, startOfToday, limit)
}

// FindByStatus implements store.ProgressStore.FindByStatus.
func (s *PostgresProgressStore) FindByStatus(
	ctx context.Context,
	status domain.ProgressStatus,
	limit, offset int,
) ([]*domain.ProgressRecord, error) {
	query := `
		SELECT ` + progressColumns + `
		FROM vocabulary_progress
		WHERE status = $1
		ORDER BY next_review_at ASC
		LIMIT $2 OFFSET $3
	`
	return s.queryRecords(ctx, query, status, limit, offset)
}

func (s *PostgresProgressStore) queryRecords(ctx context.Context, query string, args ...any) ([]*domain.ProgressRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var records []*domain.ProgressRecord
	for rows.Next() {
		var record domain.ProgressRecord
		var lastReviewed sql.NullTime

		if err := rows.Scan(
			&record.VocabularyID,
			&record.EaseFactor,
			&record.IntervalDays,
			&record.Repetitions,
			&record.TimesCorrect,
			&record.TimesIncorrect,
			&record.Status,
			&record.NextReviewAt,
			&lastReviewed,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, MapError(err)
		}

		if lastReviewed.Valid {
			record.LastReviewedAt = lastReviewed.Time
		}

		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return records, nil
}

// CountByStatus implements store.ProgressStore.CountByStatus.
func (s *PostgresProgressStore) CountByStatus(ctx context.Context) (map[domain.ProgressStatus]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT status, COUNT(*)
		FROM vocabulary_progress
		GROUP BY status
	`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[domain.ProgressStatus]int)
	for rows.Next() {
		var status domain.ProgressStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, MapError(err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return counts, nil
}

// WithTx implements store.ProgressStore.WithTx.
func (s *PostgresProgressStore) WithTx(tx *sql.Tx) store.ProgressStore {
	return &PostgresProgressStore{
		db:     tx,
		logger: s.logger,
	}
}

// nullableTime maps the zero time onto SQL NULL. LastReviewedAt is zero
// until the first review.
func nullableTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
