package vocabulary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/generation"
	"github.com/hablaconmigo/habla-api/internal/language"
	"github.com/hablaconmigo/habla-api/internal/platform/logger"
	"github.com/hablaconmigo/habla-api/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

// serviceImpl implements the Service interface.
type serviceImpl struct {
	db            *sql.DB
	vocabStore    store.VocabularyStore
	progressStore store.ProgressStore
	lemmatizer    *language.Lemmatizer
	index         language.Index
	translator    generation.TranslationProvider
	logger        *slog.Logger

	runTx func(ctx context.Context, fn store.TxFn) error
}

// NewService creates a new vocabulary Service implementation. The
// translator may be nil; words absent from the frequency index are
// then stored without a translation.
func NewService(
	db *sql.DB,
	vocabStore store.VocabularyStore,
	progressStore store.ProgressStore,
	lemmatizer *language.Lemmatizer,
	index language.Index,
	translator generation.TranslationProvider,
	log *slog.Logger,
) Service {
	if vocabStore == nil {
		panic("vocabStore cannot be nil")
	}
	if progressStore == nil {
		panic("progressStore cannot be nil")
	}
	if lemmatizer == nil {
		panic("lemmatizer cannot be nil")
	}
	if index == nil {
		panic("index cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	s := &serviceImpl{
		db:            db,
		vocabStore:    vocabStore,
		progressStore: progressStore,
		lemmatizer:    lemmatizer,
		index:         index,
		translator:    translator,
		logger:        log.With(slog.String("component", "vocabulary_service")),
	}
	s.runTx = func(ctx context.Context, fn store.TxFn) error {
		return store.RunInTransaction(ctx, s.db, fn)
	}
	return s
}

// Add implements Service.Add.
func (s *serviceImpl) Add(ctx context.Context, req AddRequest) (*domain.VocabularyItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	word := language.Normalize(req.Word)
	if word == "" {
		return nil, ErrEmptyWord
	}

	lemma := s.lemmatizer.Lemmatize(word)

	// Check for the lemma before resolving a translation so a duplicate
	// never costs a model call. The create below still maps
	// ErrLemmaExists in case of a concurrent insert.
	if _, err := s.vocabStore.GetByLemma(ctx, lemma); err == nil {
		return nil, ErrDuplicateLemma
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing lemma: %w", err)
	}

	translation := strings.TrimSpace(req.Translation)
	if translation == "" {
		translation = s.resolveTranslation(ctx, log, lemma)
	}

	item, err := domain.NewVocabularyItem(
		lemma,
		translation,
		req.Category,
		s.index.EstimateCEFR(lemma),
		req.ExampleSentence,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	record, err := domain.NewProgressRecord(item.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to build progress record: %w", err)
	}

	err = s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.vocabStore.WithTx(tx).Create(ctx, item); err != nil {
			if errors.Is(err, store.ErrLemmaExists) {
				return ErrDuplicateLemma
			}
			return fmt.Errorf("failed to create vocabulary item: %w", err)
		}
		if err := s.progressStore.WithTx(tx).Create(ctx, record); err != nil {
			return fmt.Errorf("failed to create progress record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("vocabulary item added",
		slog.String("id", item.ID.String()),
		slog.String("word", word),
		slog.String("lemma", lemma),
		slog.String("cefr_level", string(item.CEFRLevel)))
	return item, nil
}

// resolveTranslation finds a translation for the lemma, preferring the
// static index over a model call.
func (s *serviceImpl) resolveTranslation(ctx context.Context, log *slog.Logger, lemma string) string {
	if translation, ok := s.index.Translation(lemma); ok {
		return translation
	}

	if s.translator == nil {
		return ""
	}

	translation, err := s.translator.Translate(ctx, lemma)
	if err != nil {
		log.Warn("failed to translate lemma, storing without translation",
			slog.String("lemma", lemma),
			slog.String("error", err.Error()))
		return ""
	}
	return translation
}

// Get implements Service.Get.
func (s *serviceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.VocabularyItem, error) {
	item, err := s.vocabStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get vocabulary item: %w", err)
	}
	return item, nil
}

// List implements Service.List.
func (s *serviceImpl) List(ctx context.Context, limit, offset int) ([]*domain.VocabularyItem, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.vocabStore.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list vocabulary items: %w", err)
	}
	return items, nil
}

// UpdateTranslation implements Service.UpdateTranslation.
func (s *serviceImpl) UpdateTranslation(ctx context.Context, id uuid.UUID, translation string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	translation = strings.TrimSpace(translation)
	if translation == "" {
		return fmt.Errorf("%w: translation cannot be empty", domain.ErrValidation)
	}

	if err := s.vocabStore.UpdateTranslation(ctx, id, translation); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to update translation: %w", err)
	}

	log.Info("translation updated", slog.String("id", id.String()))
	return nil
}

// ListByStatus implements Service.ListByStatus.
func (s *serviceImpl) ListByStatus(ctx context.Context, status domain.ProgressStatus, limit, offset int) ([]*domain.VocabularyItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	records, err := s.progressStore.FindByStatus(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find progress records: %w", err)
	}

	items := make([]*domain.VocabularyItem, 0, len(records))
	for _, record := range records {
		item, err := s.vocabStore.GetByID(ctx, record.VocabularyID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Warn("progress record without vocabulary item, skipping",
					slog.String("vocabulary_id", record.VocabularyID.String()))
				continue
			}
			return nil, fmt.Errorf("failed to get vocabulary item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Delete implements Service.Delete.
func (s *serviceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.vocabStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to delete vocabulary item: %w", err)
	}

	log.Info("vocabulary item deleted", slog.String("id", id.String()))
	return nil
}
