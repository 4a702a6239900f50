package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/hablaconmigo/habla-api/internal/domain"
)

// GrammarStore defines the interface for the grammar taxonomy and the
// learner's per-topic mastery state.
type GrammarStore interface {
	// CreateTopic saves a taxonomy entry.
	// Returns ErrDuplicate if a topic with the same title exists.
	CreateTopic(ctx context.Context, topic *domain.GrammarTopic) error

	// ListTopics returns the full taxonomy ordered by CEFR level then title.
	ListTopics(ctx context.Context) ([]*domain.GrammarTopic, error)

	// ListTopicsByLevel returns the taxonomy entries pinned to one band.
	ListTopicsByLevel(ctx context.Context, level domain.CEFRLevel) ([]*domain.GrammarTopic, error)

	// GetProgress retrieves the mastery state for a topic.
	// Returns ErrGrammarTopicNotFound if the topic has never been touched.
	GetProgress(ctx context.Context, topicID uuid.UUID) (*domain.GrammarProgress, error)

	// UpsertProgress creates or replaces the mastery state for a topic.
	UpsertProgress(ctx context.Context, progress *domain.GrammarProgress) error

	// ListProgress returns mastery state for every touched topic, keyed
	// by topic ID. Topics absent from the map count as new.
	ListProgress(ctx context.Context) (map[uuid.UUID]domain.GrammarStatus, error)

	// WithTx returns a GrammarStore bound to the given transaction.
	WithTx(tx *sql.Tx) GrammarStore
}
