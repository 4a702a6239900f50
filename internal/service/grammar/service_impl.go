package grammar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/platform/logger"
	"github.com/hablaconmigo/habla-api/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

// serviceImpl implements the Service interface.
type serviceImpl struct {
	grammarStore store.GrammarStore
	logger       *slog.Logger
}

// NewService creates a new grammar Service implementation.
func NewService(grammarStore store.GrammarStore, log *slog.Logger) Service {
	if grammarStore == nil {
		panic("grammarStore cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &serviceImpl{
		grammarStore: grammarStore,
		logger:       log.With(slog.String("component", "grammar_service")),
	}
}

// CreateTopic implements Service.CreateTopic.
func (s *serviceImpl) CreateTopic(ctx context.Context, title string, level domain.CEFRLevel) (*domain.GrammarTopic, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	topic, err := domain.NewGrammarTopic(title, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.grammarStore.CreateTopic(ctx, topic); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrDuplicateTopic
		}
		return nil, fmt.Errorf("failed to create grammar topic: %w", err)
	}

	log.Info("grammar topic created",
		slog.String("id", topic.ID.String()),
		slog.String("title", topic.Title),
		slog.String("cefr_level", string(topic.CEFRLevel)))
	return topic, nil
}

// Topics implements Service.Topics.
func (s *serviceImpl) Topics(ctx context.Context) ([]*TopicWithStatus, error) {
	topics, err := s.grammarStore.ListTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list grammar topics: %w", err)
	}
	return s.withStatuses(ctx, topics)
}

// TopicsByLevel implements Service.TopicsByLevel.
func (s *serviceImpl) TopicsByLevel(ctx context.Context, level domain.CEFRLevel) ([]*TopicWithStatus, error) {
	if !level.IsValid() {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, domain.ErrVocabularyLevelInvalid)
	}

	topics, err := s.grammarStore.ListTopicsByLevel(ctx, level)
	if err != nil {
		return nil, fmt.Errorf("failed to list grammar topics: %w", err)
	}
	return s.withStatuses(ctx, topics)
}

func (s *serviceImpl) withStatuses(ctx context.Context, topics []*domain.GrammarTopic) ([]*TopicWithStatus, error) {
	progress, err := s.grammarStore.ListProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list grammar progress: %w", err)
	}

	result := make([]*TopicWithStatus, 0, len(topics))
	for _, topic := range topics {
		status, ok := progress[topic.ID]
		if !ok {
			status = domain.GrammarStatusNew
		}
		result = append(result, &TopicWithStatus{Topic: topic, Status: status})
	}
	return result, nil
}

// SetProgress implements Service.SetProgress.
func (s *serviceImpl) SetProgress(ctx context.Context, topicID uuid.UUID, status domain.GrammarStatus) (*domain.GrammarProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	if err := s.topicExists(ctx, topicID); err != nil {
		return nil, err
	}

	previous := domain.GrammarStatusNew
	if current, err := s.grammarStore.GetProgress(ctx, topicID); err == nil {
		previous = current.Status
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to read grammar progress: %w", err)
	}

	progress := &domain.GrammarProgress{
		TopicID:   topicID,
		Status:    status,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.grammarStore.UpsertProgress(ctx, progress); err != nil {
		return nil, fmt.Errorf("failed to save grammar progress: %w", err)
	}

	log.Info("grammar progress updated",
		slog.String("topic_id", topicID.String()),
		slog.String("from", string(previous)),
		slog.String("to", string(status)))
	return progress, nil
}

func (s *serviceImpl) topicExists(ctx context.Context, topicID uuid.UUID) error {
	topics, err := s.grammarStore.ListTopics(ctx)
	if err != nil {
		return fmt.Errorf("failed to list grammar topics: %w", err)
	}
	for _, topic := range topics {
		if topic.ID == topicID {
			return nil
		}
	}
	return ErrTopicNotFound
}
