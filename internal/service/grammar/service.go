package grammar

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hablaconmigo/habla-api/internal/domain"
)

// Common error types for the grammar service
var (
	// ErrTopicNotFound indicates that the grammar topic does not exist.
	ErrTopicNotFound = errors.New("grammar topic not found")

	// ErrDuplicateTopic indicates a topic with the same title exists.
	ErrDuplicateTopic = errors.New("grammar topic already exists")

	// ErrInvalidStatus indicates an unrecognized mastery status.
	ErrInvalidStatus = errors.New("invalid grammar status")
)

// TopicWithStatus pairs a taxonomy entry with the learner's mastery
// state. Topics the learner has never touched report "new".
type TopicWithStatus struct {
	Topic  *domain.GrammarTopic `json:"topic"`
	Status domain.GrammarStatus `json:"status"`
}

// Service manages the grammar taxonomy and mastery tracking.
type Service interface {
	// CreateTopic adds a taxonomy entry pinned to a CEFR band.
	// Returns ErrDuplicateTopic if the title is already taken.
	CreateTopic(ctx context.Context, title string, level domain.CEFRLevel) (*domain.GrammarTopic, error)

	// Topics returns the full taxonomy with mastery state, ordered by
	// CEFR level then title.
	Topics(ctx context.Context) ([]*TopicWithStatus, error)

	// TopicsByLevel returns the taxonomy entries pinned to one band,
	// with mastery state.
	TopicsByLevel(ctx context.Context, level domain.CEFRLevel) ([]*TopicWithStatus, error)

	// SetProgress records the learner's mastery state for a topic.
	// Returns ErrTopicNotFound for an unknown topic and ErrInvalidStatus
	// for an unrecognized status value.
	SetProgress(ctx context.Context, topicID uuid.UUID, status domain.GrammarStatus) (*domain.GrammarProgress, error)
}
