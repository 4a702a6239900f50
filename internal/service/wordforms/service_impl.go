package wordforms

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/generation"
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
	wordFormStore store.WordFormStore
	grammarStore  store.GrammarStore
	generator     generation.MorphologicalGenerator
	batchSize     int
	logger        *slog.Logger

	runTx func(ctx context.Context, fn store.TxFn) error
}

// NewService creates a new word-form expansion Service implementation.
func NewService(
	db *sql.DB,
	vocabStore store.VocabularyStore,
	progressStore store.ProgressStore,
	wordFormStore store.WordFormStore,
	grammarStore store.GrammarStore,
	generator generation.MorphologicalGenerator,
	batchSize int,
	log *slog.Logger,
) Service {
	if vocabStore == nil {
		panic("vocabStore cannot be nil")
	}
	if progressStore == nil {
		panic("progressStore cannot be nil")
	}
	if wordFormStore == nil {
		panic("wordFormStore cannot be nil")
	}
	if grammarStore == nil {
		panic("grammarStore cannot be nil")
	}
	if generator == nil {
		panic("generator cannot be nil")
	}
	if batchSize <= 0 {
		batchSize = 10
	}
	if log == nil {
		log = slog.Default()
	}

	s := &serviceImpl{
		db:            db,
		vocabStore:    vocabStore,
		progressStore: progressStore,
		wordFormStore: wordFormStore,
		grammarStore:  grammarStore,
		generator:     generator,
		batchSize:     batchSize,
		logger:        log.With(slog.String("component", "wordform_service")),
	}
	s.runTx = func(ctx context.Context, fn store.TxFn) error {
		return store.RunInTransaction(ctx, s.db, fn)
	}
	return s
}

// Regenerate implements Service.Regenerate.
func (s *serviceImpl) Regenerate(ctx context.Context, force bool) (*RegenerateResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	total, err := s.vocabStore.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count vocabulary: %w", err)
	}
	if total == 0 {
		return &RegenerateResult{}, nil
	}

	items, err := s.vocabStore.List(ctx, total, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list vocabulary: %w", err)
	}

	items, err = s.studiedOnly(ctx, items, total)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return &RegenerateResult{}, nil
	}

	tenses, err := unlockedTenses(ctx, s.grammarStore)
	if err != nil {
		return nil, err
	}

	log.Info("starting word form regeneration",
		slog.Int("words", len(items)),
		slog.Bool("force", force),
		slog.Any("tenses", tenses))

	if force {
		if err := s.wordFormStore.DeleteGenerated(ctx); err != nil {
			return nil, fmt.Errorf("failed to wipe generated forms: %w", err)
		}
	}

	inserted := 0
	for start := 0; start < len(items); start += s.batchSize {
		end := start + s.batchSize
		if end > len(items) {
			end = len(items)
		}
		batch := items[start:end]

		forms := s.expandBatch(ctx, log, batch, tenses)

		err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
			n, err := s.wordFormStore.WithTx(tx).CreateMultiple(ctx, forms)
			if err != nil {
				return fmt.Errorf("failed to insert word forms: %w", err)
			}
			inserted += n
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	cached, err := s.wordFormStore.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count cached forms: %w", err)
	}

	result := &RegenerateResult{
		WordsProcessed: len(items),
		FormsGenerated: inserted,
		Multiplier:     float64(cached) / float64(len(items)),
	}

	log.Info("word form regeneration finished",
		slog.Int("words_processed", result.WordsProcessed),
		slog.Int("forms_generated", result.FormsGenerated),
		slog.Float64("multiplier", result.Multiplier))
	return result, nil
}

// studiedOnly filters the items to those the learner has started
// studying (learning, struggling, or learned). Brand-new items wait
// for their first review before earning forms.
func (s *serviceImpl) studiedOnly(
	ctx context.Context,
	items []*domain.VocabularyItem,
	total int,
) ([]*domain.VocabularyItem, error) {
	studied := make(map[uuid.UUID]struct{}, len(items))
	for _, status := range []domain.ProgressStatus{
		domain.ProgressStatusLearning,
		domain.ProgressStatusStruggling,
		domain.ProgressStatusLearned,
	} {
		records, err := s.progressStore.FindByStatus(ctx, status, total, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to find %s records: %w", status, err)
		}
		for _, record := range records {
			studied[record.VocabularyID] = struct{}{}
		}
	}

	filtered := make([]*domain.VocabularyItem, 0, len(studied))
	for _, item := range items {
		if _, ok := studied[item.ID]; ok {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// expandBatch produces the domain word forms for one slice of
// vocabulary items: a batch generator call when possible, per-word
// fallback when not, base form only when everything fails.
func (s *serviceImpl) expandBatch(
	ctx context.Context,
	log *slog.Logger,
	items []*domain.VocabularyItem,
	tenses []string,
) []*domain.WordForm {
	reqs := make([]generation.FormRequest, 0, len(items))
	for _, item := range items {
		req := generation.FormRequest{Word: item.Lemma, POS: guessPOS(item.Lemma)}
		if req.POS == "verb" {
			req.Tenses = tenses
		}
		reqs = append(reqs, req)
	}

	byWord, err := s.generator.GenerateFormsBatch(ctx, reqs)
	if err != nil {
		log.Warn("batch generation failed, falling back to per-word calls",
			slog.Int("batch_size", len(reqs)),
			slog.String("error", err.Error()))
		byWord = make(map[string][]generation.GeneratedForm, len(reqs))
		for _, req := range reqs {
			generated, err := s.generator.GenerateForms(ctx, req)
			if err != nil {
				log.Warn("form generation failed, keeping base form only",
					slog.String("word", req.Word),
					slog.String("error", err.Error()))
				continue
			}
			byWord[req.Word] = generated
		}
	}

	var forms []*domain.WordForm
	for _, item := range items {
		forms = append(forms, s.itemForms(log, item, byWord[item.Lemma])...)
	}
	return forms
}

// itemForms converts generator output for one item into domain word
// forms, always prepending the base form. Malformed entries are
// skipped with a warning.
func (s *serviceImpl) itemForms(
	log *slog.Logger,
	item *domain.VocabularyItem,
	generated []generation.GeneratedForm,
) []*domain.WordForm {
	forms := make([]*domain.WordForm, 0, len(generated)+1)

	base, err := domain.NewWordForm(item.ID, item.Lemma, domain.WordFormTypeBase)
	if err != nil {
		log.Warn("failed to build base form",
			slog.String("lemma", item.Lemma),
			slog.String("error", err.Error()))
		return forms
	}
	forms = append(forms, base)

	for _, g := range generated {
		formType := domain.WordFormType(strings.TrimSpace(g.FormType))
		if formType == domain.WordFormTypeBase {
			continue // the base form is ours to add, not the model's
		}

		wf, err := domain.NewWordForm(item.ID, g.Form, formType)
		if err != nil {
			log.Warn("skipping malformed generated form",
				slog.String("lemma", item.Lemma),
				slog.String("form", g.Form),
				slog.String("form_type", g.FormType),
				slog.String("error", err.Error()))
			continue
		}

		wf.Person = g.Person
		wf.Number = g.Number
		wf.Gender = g.Gender
		wf.Tense = g.Tense
		wf.Mood = g.Mood
		forms = append(forms, wf)
	}

	return forms
}

// FormsForWord implements Service.FormsForWord.
func (s *serviceImpl) FormsForWord(ctx context.Context, baseWordID uuid.UUID) ([]*domain.WordForm, error) {
	forms, err := s.wordFormStore.FindByBaseWord(ctx, baseWordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load word forms: %w", err)
	}
	return forms, nil
}
