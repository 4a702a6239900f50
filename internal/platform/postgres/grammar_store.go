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

// PostgresGrammarStore implements the store.GrammarStore interface
// using a PostgreSQL database as the storage backend.
type PostgresGrammarStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresGrammarStore creates a new PostgreSQL implementation of
// the GrammarStore interface. If logger is nil, a default logger will
// be used.
func NewPostgresGrammarStore(db store.DBTX, logger *slog.Logger) *PostgresGrammarStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresGrammarStore{
		db:     db,
		logger: logger.With(slog.String("component", "grammar_store")),
	}
}

// Ensure PostgresGrammarStore implements store.GrammarStore interface
var _ store.GrammarStore = (*PostgresGrammarStore)(nil)

// CreateTopic implements store.GrammarStore.CreateTopic.
func (s *PostgresGrammarStore) CreateTopic(ctx context.Context, topic *domain.GrammarTopic) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := topic.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO grammar_topics (id, title, cefr_level, created_at)
		VALUES ($1, $2, $3, $4)
	`, topic.ID, topic.Title, topic.CEFRLevel, topic.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: topic %q", store.ErrDuplicate, topic.Title)
		}
		log.Error("failed to create grammar topic",
			slog.String("error", err.Error()),
			slog.String("title", topic.Title))
		return MapError(err)
	}

	return nil
}

// ListTopics implements store.GrammarStore.ListTopics.
func (s *PostgresGrammarStore) ListTopics(ctx context.Context) ([]*domain.GrammarTopic, error) {
	return s.queryTopics(ctx, `
		SELECT id, title, cefr_level, created_at
		FROM grammar_topics
		ORDER BY cefr_level, title
	`)
}

// ListTopicsByLevel implements store.GrammarStore.ListTopicsByLevel.
func (s *PostgresGrammarStore) ListTopicsByLevel(ctx context.Context, level domain.CEFRLevel) ([]*domain.GrammarTopic, error) {
	return s.queryTopics(ctx, `
		SELECT id, title, cefr_level, created_at
		FROM grammar_topics
		WHERE cefr_level = $1
		ORDER BY title
	`, level)
}

func (s *PostgresGrammarStore) queryTopics(ctx context.Context, query string, args ...any) ([]*domain.GrammarTopic, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var topics []*domain.GrammarTopic
	for rows.Next() {
		var topic domain.GrammarTopic
		if err := rows.Scan(&topic.ID, &topic.Title, &topic.CEFRLevel, &topic.CreatedAt); err != nil {
			return nil, MapError(err)
		}
		topics = append(topics, &topic)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return topics, nil
}

// GetProgress implements store.GrammarStore.GetProgress.
func (s *PostgresGrammarStore) GetProgress(ctx context.Context, topicID uuid.UUID) (*domain.GrammarProgress, error) {
	var progress domain.GrammarProgress
	err := s.db.QueryRowContext(ctx, `
		SELECT topic_id, status, updated_at
		FROM grammar_progress
		WHERE topic_id = $1
	`, topicID).Scan(&progress.TopicID, &progress.Status, &progress.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrGrammarTopicNotFound
		}
		return nil, MapError(err)
	}

	return &progress, nil
}

// UpsertProgress implements store.GrammarStore.UpsertProgress.
func (s *PostgresGrammarStore) UpsertProgress(ctx context.Context, progress *domain.GrammarProgress) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := progress.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO grammar_progress (topic_id, status, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (topic_id) DO UPDATE
		SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at
	`, progress.TopicID, progress.Status, progress.UpdatedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: topic %s does not exist", store.ErrInvalidEntity, progress.TopicID)
		}
		log.Error("failed to upsert grammar progress",
			slog.String("error", err.Error()),
			slog.String("topic_id", progress.TopicID.String()))
		return MapError(err)
	}

	return nil
}

// ListProgress implements store.GrammarStore.ListProgress.
func (s *PostgresGrammarStore) ListProgress(ctx context.Context) (map[uuid.UUID]domain.GrammarStatus, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT topic_id, status FROM grammar_progress`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	progress := make(map[uuid.UUID]domain.GrammarStatus)
	for rows.Next() {
		var topicID uuid.UUID
		var status domain.GrammarStatus
		if err := rows.Scan(&topicID, &status); err != nil {
			return nil, MapError(err)
		}
		progress[topicID] = status
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return progress, nil
}

// WithTx implements store.GrammarStore.WithTx.
func (s *PostgresGrammarStore) WithTx(tx *sql.Tx) store.GrammarStore {
	return &PostgresGrammarStore{
		db:     tx,
		logger: s.logger,
	}
}
