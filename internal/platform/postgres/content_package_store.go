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

// PostgresContentPackageStore implements the store.ContentPackageStore
// interface using a PostgreSQL database as the storage backend.
type PostgresContentPackageStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresContentPackageStore creates a new PostgreSQL implementation
// of the ContentPackageStore interface. If logger is nil, a default
// logger will be used.
func NewPostgresContentPackageStore(db store.DBTX, logger *slog.Logger) *PostgresContentPackageStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresContentPackageStore{
		db:     db,
		logger: logger.With(slog.String("component", "content_package_store")),
	}
}

// Ensure PostgresContentPackageStore implements store.ContentPackageStore interface
var _ store.ContentPackageStore = (*PostgresContentPackageStore)(nil)

// Create implements store.ContentPackageStore.Create.
func (s *PostgresContentPackageStore) Create(ctx context.Context, pkg *domain.ContentPackage) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := pkg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO content_packages (id, title, source, created_at)
		VALUES ($1, $2, $3, $4)
	`, pkg.ID, pkg.Title, pkg.Source, pkg.CreatedAt)
	if err != nil {
		log.Error("failed to create content package",
			slog.String("error", err.Error()),
			slog.String("title", pkg.Title))
		return MapError(err)
	}

	for position, word := range pkg.Words {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO content_package_words (package_id, word, position)
			VALUES ($1, $2, $3)
			ON CONFLICT (package_id, word) DO NOTHING
		`, pkg.ID, word, position)
		if err != nil {
			log.Error("failed to insert content package word",
				slog.String("error", err.Error()),
				slog.String("package_id", pkg.ID.String()),
				slog.String("word", word))
			return MapError(err)
		}
	}

	log.Info("content package created",
		slog.String("package_id", pkg.ID.String()),
		slog.String("title", pkg.Title),
		slog.Int("word_count", len(pkg.Words)))
	return nil
}

// GetByID implements store.ContentPackageStore.GetByID.
func (s *PostgresContentPackageStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentPackage, error) {
	var pkg domain.ContentPackage
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, source, created_at
		FROM content_packages
		WHERE id = $1
	`, id).Scan(&pkg.ID, &pkg.Title, &pkg.Source, &pkg.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrContentPackageNotFound
		}
		return nil, MapError(err)
	}

	words, err := s.packageWords(ctx, pkg.ID)
	if err != nil {
		return nil, err
	}
	pkg.Words = words

	return &pkg, nil
}

// List implements store.ContentPackageStore.List.
func (s *PostgresContentPackageStore) List(ctx context.Context) ([]*domain.ContentPackage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, source, created_at
		FROM content_packages
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var packages []*domain.ContentPackage
	for rows.Next() {
		var pkg domain.ContentPackage
		if err := rows.Scan(&pkg.ID, &pkg.Title, &pkg.Source, &pkg.CreatedAt); err != nil {
			return nil, MapError(err)
		}
		packages = append(packages, &pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	for _, pkg := range packages {
		words, err := s.packageWords(ctx, pkg.ID)
		if err != nil {
			return nil, err
		}
		pkg.Words = words
	}

	return packages, nil
}

func (s *PostgresContentPackageStore) packageWords(ctx context.Context, packageID uuid.UUID) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT word
		FROM content_package_words
		WHERE package_id = $1
		ORDER BY position
	`, packageID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, MapError(err)
		}
		words = append(words, word)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return words, nil
}

// Delete implements store.ContentPackageStore.Delete. Words go with the
// package via ON DELETE CASCADE.
func (s *PostgresContentPackageStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM content_packages WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "content package"); err != nil {
		return store.ErrContentPackageNotFound
	}

	return nil
}

// WithTx implements store.ContentPackageStore.WithTx.
func (s *PostgresContentPackageStore) WithTx(tx *sql.Tx) store.ContentPackageStore {
	return &PostgresContentPackageStore{
		db:     tx,
		logger: s.logger,
	}
}
