package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/platform/logger"
	"github.com/hablaconmigo/habla-api/internal/store"
)

// PostgresWordFormStore implements the store.WordFormStore interface
// using a PostgreSQL database as the storage backend.
type PostgresWordFormStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresWordFormStore creates a new PostgreSQL implementation of
// the WordFormStore interface. If logger is nil, a default logger will
// be used.
func NewPostgresWordFormStore(db store.DBTX, logger *slog.Logger) *PostgresWordFormStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresWordFormStore{
		db:     db,
		logger: logger.With(slog.String("component", "word_form_store")),
	}
}

// Ensure PostgresWordFormStore implements store.WordFormStore interface
var _ store.WordFormStore = (*PostgresWordFormStore)(nil)

// CreateMultiple implements store.WordFormStore.CreateMultiple. Forms
// colliding with a cached (base word, form, form type) row are skipped
// via ON CONFLICT DO NOTHING so re-running a non-forced expansion is a
// no-op.
func (s *PostgresWordFormStore) CreateMultiple(ctx context.Context, forms []*domain.WordForm) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO word_forms (id, base_word_id, form, form_type, person, number, gender, tense, mood, verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (base_word_id, form, form_type) DO NOTHING
	`

	inserted := 0
	for _, form := range forms {
		if err := form.Validate(); err != nil {
			log.Warn("skipping invalid word form",
				slog.String("error", err.Error()),
				slog.String("form", form.Form))
			continue
		}

		result, err := s.db.ExecContext(
			ctx,
			query,
			form.ID,
			form.BaseWordID,
			form.Form,
			form.FormType,
			form.Person,
			form.Number,
			form.Gender,
			form.Tense,
			form.Mood,
			form.Verified,
			form.CreatedAt,
		)
		if err != nil {
			log.Error("failed to insert word form",
				slog.String("error", err.Error()),
				slog.String("form", form.Form),
				slog.String("base_word_id", form.BaseWordID.String()))
			return inserted, MapError(err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return inserted, MapError(err)
		}
		inserted += int(rows)
	}

	return inserted, nil
}

// FindByBaseWord implements store.WordFormStore.FindByBaseWord.
func (s *PostgresWordFormStore) FindByBaseWord(ctx context.Context, baseWordID uuid.UUID) ([]*domain.WordForm, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, base_word_id, form, form_type, person, number, gender, tense, mood, verified, created_at
		FROM word_forms
		WHERE base_word_id = $1
		ORDER BY form_type, form
	`, baseWordID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var forms []*domain.WordForm
	for rows.Next() {
		var form domain.WordForm
		if err := rows.Scan(
			&form.ID,
			&form.BaseWordID,
			&form.Form,
			&form.FormType,
			&form.Person,
			&form.Number,
			&form.Gender,
			&form.Tense,
			&form.Mood,
			&form.Verified,
			&form.CreatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		forms = append(forms, &form)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return forms, nil
}

// AllFormStrings implements store.WordFormStore.AllFormStrings. When
// the same surface form is cached for several base words the first row
// wins; the analyzer only needs membership plus one owning item.
func (s *PostgresWordFormStore) AllFormStrings(ctx context.Context) (map[string]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT form, base_word_id FROM word_forms`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	forms := make(map[string]uuid.UUID)
	for rows.Next() {
		var form string
		var baseWordID uuid.UUID
		if err := rows.Scan(&form, &baseWordID); err != nil {
			return nil, MapError(err)
		}
		if _, ok := forms[form]; !ok {
			forms[form] = baseWordID
		}
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return forms, nil
}

// Count implements store.WordFormStore.Count.
func (s *PostgresWordFormStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM word_forms`).Scan(&count); err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// DeleteGenerated implements store.WordFormStore.DeleteGenerated.
func (s *PostgresWordFormStore) DeleteGenerated(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM word_forms WHERE verified = FALSE`)
	if err != nil {
		log.Error("failed to delete generated word forms",
			slog.String("error", err.Error()))
		return MapError(err)
	}

	if rows, err := result.RowsAffected(); err == nil {
		log.Info("generated word forms deleted", slog.Int64("count", rows))
	}

	return nil
}

// WithTx implements store.WordFormStore.WithTx.
func (s *PostgresWordFormStore) WithTx(tx *sql.Tx) store.WordFormStore {
	return &PostgresWordFormStore{
		db:     tx,
		logger: s.logger,
	}
}
