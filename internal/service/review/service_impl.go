package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/domain/srs"
	"github.com/hablaconmigo/habla-api/internal/events"
	"github.com/hablaconmigo/habla-api/internal/platform/logger"
	"github.com/hablaconmigo/habla-api/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

// passThreshold is the lowest quality grade that counts as a
// successful recall.
const passThreshold = 3

// serviceImpl implements the Service interface.
type serviceImpl struct {
	db            *sql.DB
	vocabStore    store.VocabularyStore
	progressStore store.ProgressStore
	srsService    srs.Service
	emitter       events.ReviewEmitter
	defaultLimit  int
	logger        *slog.Logger

	// runTx is swappable so tests can exercise SubmitAnswer without a
	// live database.
	runTx func(ctx context.Context, fn store.TxFn) error

	mu      sync.Mutex
	session events.SessionSnapshot
}

// NewService creates a new review Service implementation.
func NewService(
	db *sql.DB,
	vocabStore store.VocabularyStore,
	progressStore store.ProgressStore,
	srsService srs.Service,
	emitter events.ReviewEmitter,
	defaultLimit int,
	log *slog.Logger,
) Service {
	if vocabStore == nil {
		panic("vocabStore cannot be nil")
	}
	if progressStore == nil {
		panic("progressStore cannot be nil")
	}
	if srsService == nil {
		panic("srsService cannot be nil")
	}
	if emitter == nil {
		panic("emitter cannot be nil")
	}
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	if log == nil {
		log = slog.Default()
	}

	s := &serviceImpl{
		db:            db,
		vocabStore:    vocabStore,
		progressStore: progressStore,
		srsService:    srsService,
		emitter:       emitter,
		defaultLimit:  defaultLimit,
		logger:        log.With(slog.String("component", "review_service")),
	}
	s.runTx = func(ctx context.Context, fn store.TxFn) error {
		return store.RunInTransaction(ctx, s.db, fn)
	}
	return s
}

// Next implements Service.Next.
func (s *serviceImpl) Next(ctx context.Context, limit int) ([]*ReviewItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = s.defaultLimit
	}

	now := time.Now().UTC()
	year, month, day := now.Date()
	startOfToday := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	records, err := s.progressStore.FindDue(ctx, now, startOfToday, limit)
	if err != nil {
		log.Error("failed to find due progress records",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to find due items: %w", err)
	}

	items := make([]*ReviewItem, 0, len(records))
	for _, record := range records {
		item, err := s.vocabStore.GetByID(ctx, record.VocabularyID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Cascade rules remove progress with its item, so a
				// dangling record means the item vanished mid-request.
				log.Warn("due progress record has no vocabulary item, skipping",
					slog.String("vocabulary_id", record.VocabularyID.String()))
				continue
			}
			return nil, fmt.Errorf("failed to load vocabulary item: %w", err)
		}
		items = append(items, &ReviewItem{Item: item, Progress: record})
	}

	log.Debug("retrieved due review items",
		slog.Int("requested", limit),
		slog.Int("returned", len(items)))
	return items, nil
}

// SubmitAnswer implements Service.SubmitAnswer.
func (s *serviceImpl) SubmitAnswer(
	ctx context.Context,
	vocabularyID uuid.UUID,
	quality int,
) (*SubmitResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if quality < 0 || quality > 5 {
		log.Warn("invalid review quality",
			slog.String("vocabulary_id", vocabularyID.String()),
			slog.Int("quality", quality))
		return nil, ErrInvalidQuality
	}

	log.Debug("processing review answer",
		slog.String("vocabulary_id", vocabularyID.String()),
		slog.Int("quality", quality))

	var (
		item    *domain.VocabularyItem
		updated *domain.ProgressRecord
	)
	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		vocabStore := s.vocabStore.WithTx(tx)
		progressStore := s.progressStore.WithTx(tx)

		var err error
		item, err = vocabStore.GetByID(ctx, vocabularyID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrItemNotFound
			}
			return fmt.Errorf("failed to get vocabulary item: %w", err)
		}

		record, err := progressStore.GetForUpdate(ctx, vocabularyID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Error("vocabulary item has no progress record",
					slog.String("vocabulary_id", vocabularyID.String()),
					slog.String("lemma", item.Lemma))
				return domain.ErrInconsistentState
			}
			return fmt.Errorf("failed to lock progress record: %w", err)
		}

		updated, err = s.srsService.SubmitReview(record, quality, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to compute next schedule: %w", err)
		}

		if err := progressStore.Update(ctx, updated); err != nil {
			return fmt.Errorf("failed to persist progress record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	passed := quality >= passThreshold
	snapshot := s.countAnswer(passed)

	event := events.NewReviewEvent(vocabularyID, item.Lemma, quality, passed, snapshot)
	if err := s.emitter.EmitReview(ctx, event); err != nil {
		// The review itself is already committed; a handler failure is
		// the handler's problem, not the learner's.
		log.Error("failed to emit review event",
			slog.String("error", err.Error()),
			slog.String("vocabulary_id", vocabularyID.String()))
	}

	log.Info("review answer processed",
		slog.String("vocabulary_id", vocabularyID.String()),
		slog.String("lemma", item.Lemma),
		slog.Int("quality", quality),
		slog.Bool("passed", passed),
		slog.String("status", string(updated.Status)),
		slog.Int("interval_days", updated.IntervalDays))

	return &SubmitResult{
		Progress: updated,
		Passed:   passed,
		Session:  snapshot,
	}, nil
}

// countAnswer updates the session counters and returns the new snapshot.
func (s *serviceImpl) countAnswer(passed bool) events.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.ItemsReviewed++
	if passed {
		s.session.CorrectAnswers++
	}
	s.session.Accuracy = float64(s.session.CorrectAnswers) / float64(s.session.ItemsReviewed) * 100
	return s.session
}

// Session implements Service.Session.
func (s *serviceImpl) Session() events.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// ResetSession implements Service.ResetSession.
func (s *serviceImpl) ResetSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = events.SessionSnapshot{}
}
