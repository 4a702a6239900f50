package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/platform/logger"
	"github.com/hablaconmigo/habla-api/internal/store"
)

// PostgresVocabularyStore implements the store.VocabularyStore interface
// using a PostgreSQL database as the storage backend.
type PostgresVocabularyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresVocabularyStore creates a new PostgreSQL implementation of
// the VocabularyStore interface. It accepts a database connection or
// transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresVocabularyStore(db store.DBTX, logger *slog.Logger) *PostgresVocabularyStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresVocabularyStore{
		db:     db,
		logger: logger.With(slog.String("component", "vocabulary_store")),
	}
}

// Ensure PostgresVocabularyStore implements store.VocabularyStore interface
var _ store.VocabularyStore = (*PostgresVocabularyStore)(nil)

// Create implements store.VocabularyStore.Create.
// Returns store.ErrLemmaExists when the lemma is already stored.
func (s *PostgresVocabularyStore) Create(ctx context.Context, item *domain.VocabularyItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("vocabulary item validation failed during create",
			slog.String("error", err.Error()),
			slog.String("lemma", item.Lemma))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO vocabulary (id, lemma, translation, category, cefr_level, example_sentence, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		item.ID,
		item.Lemma,
		item.Translation,
		item.Category,
		item.CEFRLevel,
		item.ExampleSentence,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate lemma during vocabulary creation",
				slog.String("lemma", item.Lemma))
			return fmt.Errorf("%w: %q", store.ErrLemmaExists, item.Lemma)
		}

		log.Error("failed to create vocabulary item",
			slog.String("error", err.Error()),
			slog.String("lemma", item.Lemma))
		return MapError(err)
	}

	log.Info("vocabulary item created",
		slog.String("vocabulary_id", item.ID.String()),
		slog.String("lemma", item.Lemma))
	return nil
}

// GetByID implements store.VocabularyStore.GetByID.
func (s *PostgresVocabularyStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabularyItem, error) {
	query := `
		SELECT id, lemma, translation, category, cefr_level, example_sentence, created_at, updated_at
		FROM vocabulary
		WHERE id = $1
	`
	return s.scanItem(s.db.QueryRowContext(ctx, query, id))
}

// GetByLemma implements store.VocabularyStore.GetByLemma.
func (s *PostgresVocabularyStore) GetByLemma(ctx context.Context, lemma string) (*domain.VocabularyItem, error) {
	query := `
		SELECT id, lemma, translation, category, cefr_level, example_sentence, created_at, updated_at
		FROM vocabulary
		WHERE lemma = $1
	`
	return s.scanItem(s.db.QueryRowContext(ctx, query, lemma))
}

func (s *PostgresVocabularyStore) scanItem(row *sql.Row) (*domain.VocabularyItem, error) {
	var item domain.VocabularyItem
	err := row.Scan(
		&item.ID,
		&item.Lemma,
		&item.Translation,
		&item.Category,
		&item.CEFRLevel,
		&item.ExampleSentence,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrVocabularyNotFound
		}
		return nil, MapError(err)
	}

	return &item, nil
}

// List implements store.VocabularyStore.List.
func (s *PostgresVocabularyStore) List(ctx context.Context, limit, offset int) ([]*domain.VocabularyItem, error) {
	query := `
		SELECT id, lemma, translation, category, cefr_level, example_sentence, created_at, updated_at
		FROM vocabulary
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]*domain.VocabularyItem, 0, limit)
	for rows.Next() {
		var item domain.VocabularyItem
		if err := rows.Scan(
			&item.ID,
			&item.Lemma,
			&item.Translation,
			&item.Category,
			&item.CEFRLevel,
			&item.ExampleSentence,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return items, nil
}

// Count implements store.VocabularyStore.Count.
func (s *PostgresVocabularyStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vocabulary`).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// UpdateTranslation implements store.VocabularyStore.UpdateTranslation.
func (s *PostgresVocabularyStore) UpdateTranslation(ctx context.Context, id uuid.UUID, translation string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `
		UPDATE vocabulary
		SET translation = $1, updated_at = NOW()
		WHERE id = $2
	`, translation, id)
	if err != nil {
		log.Error("failed to update vocabulary translation",
			slog.String("error", err.Error()),
			slog.String("vocabulary_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "vocabulary item"); err != nil {
		return store.ErrVocabularyNotFound
	}

	return nil
}

// Delete implements store.VocabularyStore.Delete. Progress records and
// word forms go with the item via ON DELETE CASCADE.
func (s *PostgresVocabularyStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM vocabulary WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete vocabulary item",
			slog.String("error", err.Error()),
			slog.String("vocabulary_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "vocabulary item"); err != nil {
		return store.ErrVocabularyNotFound
	}

	log.Info("vocabulary item deleted",
		slog.String("vocabulary_id", id.String()))
	return nil
}

// WithTx implements store.VocabularyStore.WithTx.
func (s *PostgresVocabularyStore) WithTx(tx *sql.Tx) store.VocabularyStore {
	return &PostgresVocabularyStore{
		db:     tx,
		logger: s.logger,
	}
}
