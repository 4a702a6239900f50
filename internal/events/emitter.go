package events

import (
	"context"
	"log/slog"
	"sync"
)

// InMemoryReviewEmitter is a simple implementation of the ReviewEmitter
// interface that stores registered handlers in memory and dispatches
// events to them synchronously.
type InMemoryReviewEmitter struct {
	handlers []ReviewHandler
	mu       sync.RWMutex
	logger   *slog.Logger
}

// Ensure interface compliance
var _ ReviewEmitter = (*InMemoryReviewEmitter)(nil)

// NewInMemoryReviewEmitter creates a new instance of InMemoryReviewEmitter.
func NewInMemoryReviewEmitter(logger *slog.Logger) *InMemoryReviewEmitter {
	return &InMemoryReviewEmitter{
		handlers: make([]ReviewHandler, 0),
		logger:   logger.With(slog.String("component", "review_emitter")),
	}
}

// RegisterHandler adds a new handler to receive review events.
func (e *InMemoryReviewEmitter) RegisterHandler(handler ReviewHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, handler)
	e.logger.Debug("registered review handler", "handler_count", len(e.handlers))
}

// EmitReview publishes the given event to all registered handlers.
// If a handler returns an error, the event is still delivered to the
// remaining handlers and the first error encountered is returned.
func (e *InMemoryReviewEmitter) EmitReview(ctx context.Context, event *ReviewEvent) error {
	e.mu.RLock()
	handlers := make([]ReviewHandler, len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.RUnlock()

	e.logger.Debug("emitting review event",
		"event_id", event.ID,
		"vocabulary_id", event.VocabularyID,
		"passed", event.Passed,
		"handler_count", len(handlers))

	var firstErr error
	for i, handler := range handlers {
		if err := handler.HandleReview(ctx, event); err != nil {
			e.logger.Error("handler failed to process review event",
				"error", err,
				"handler_index", i,
				"event_id", event.ID)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
