package comprehension

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/language"
	"github.com/hablaconmigo/habla-api/internal/store"
)

// fakeVocabStore serves a fixed vocabulary and fails the test on any
// mutation, backing the analyzer's read-only guarantee.
type fakeVocabStore struct {
	t     *testing.T
	items []*domain.VocabularyItem
}

func (f *fakeVocabStore) Create(context.Context, *domain.VocabularyItem) error {
	f.t.Fatal("analyzer must not create vocabulary items")
	return nil
}

func (f *fakeVocabStore) GetByID(context.Context, uuid.UUID) (*domain.VocabularyItem, error) {
	return nil, store.ErrVocabularyNotFound
}

func (f *fakeVocabStore) GetByLemma(context.Context, string) (*domain.VocabularyItem, error) {
	return nil, store.ErrVocabularyNotFound
}

func (f *fakeVocabStore) List(context.Context, int, int) ([]*domain.VocabularyItem, error) {
	return f.items, nil
}

func (f *fakeVocabStore) Count(context.Context) (int, error) { return len(f.items), nil }

func (f *fakeVocabStore) UpdateTranslation(context.Context, uuid.UUID, string) error {
	f.t.Fatal("analyzer must not update vocabulary items")
	return nil
}

func (f *fakeVocabStore) Delete(context.Context, uuid.UUID) error {
	f.t.Fatal("analyzer must not delete vocabulary items")
	return nil
}

func (f *fakeVocabStore) WithTx(*sql.Tx) store.VocabularyStore { return f }

type fakeProgressStore struct {
	t        *testing.T
	byStatus map[domain.ProgressStatus][]uuid.UUID
}

func (f *fakeProgressStore) Create(context.Context, *domain.ProgressRecord) error {
	f.t.Fatal("analyzer must not create progress records")
	return nil
}

func (f *fakeProgressStore) Get(context.Context, uuid.UUID) (*domain.ProgressRecord, error) {
	return nil, store.ErrProgressNotFound
}

func (f *fakeProgressStore) GetForUpdate(context.Context, uuid.UUID) (*domain.ProgressRecord, error) {
	return nil, store.ErrProgressNotFound
}

func (f *fakeProgressStore) Update(context.Context, *domain.ProgressRecord) error {
	f.t.Fatal("analyzer must not update progress records")
	return nil
}

func (f *fakeProgressStore) FindDue(context.Context, time.Time, time.Time, int) ([]*domain.ProgressRecord, error) {
	return nil, nil
}

func (f *fakeProgressStore) FindByStatus(_ context.Context, status domain.ProgressStatus, _, _ int) ([]*domain.ProgressRecord, error) {
	records := make([]*domain.ProgressRecord, 0, len(f.byStatus[status]))
	for _, id := range f.byStatus[status] {
		record, err := domain.NewProgressRecord(id)
		require.NoError(f.t, err)
		record.Status = status
		records = append(records, record)
	}
	return records, nil
}

func (f *fakeProgressStore) CountByStatus(context.Context) (map[domain.ProgressStatus]int, error) {
	return nil, nil
}

func (f *fakeProgressStore) WithTx(*sql.Tx) store.ProgressStore { return f }

type fakeWordFormStore struct {
	forms map[string]uuid.UUID
}

func (f *fakeWordFormStore) CreateMultiple(context.Context, []*domain.WordForm) (int, error) {
	return 0, nil
}

func (f *fakeWordFormStore) FindByBaseWord(context.Context, uuid.UUID) ([]*domain.WordForm, error) {
	return nil, nil
}

func (f *fakeWordFormStore) AllFormStrings(context.Context) (map[string]uuid.UUID, error) {
	if f.forms == nil {
		return map[string]uuid.UUID{}, nil
	}
	return f.forms, nil
}

func (f *fakeWordFormStore) Count(context.Context) (int, error) { return len(f.forms), nil }

func (f *fakeWordFormStore) DeleteGenerated(context.Context) error { return nil }

func (f *fakeWordFormStore) WithTx(*sql.Tx) store.WordFormStore { return f }

type learnerState struct {
	vocab    *fakeVocabStore
	byID     map[string]uuid.UUID
	statuses map[domain.ProgressStatus][]uuid.UUID
}

func newLearnerState(t *testing.T) *learnerState {
	t.Helper()
	return &learnerState{
		vocab:    &fakeVocabStore{t: t},
		byID:     make(map[string]uuid.UUID),
		statuses: make(map[domain.ProgressStatus][]uuid.UUID),
	}
}

func (ls *learnerState) add(t *testing.T, lemma string, status domain.ProgressStatus) {
	t.Helper()
	item, err := domain.NewVocabularyItem(lemma, "t", "", domain.CEFRLevelA1, "")
	require.NoError(t, err)
	ls.vocab.items = append(ls.vocab.items, item)
	ls.byID[lemma] = item.ID
	ls.statuses[status] = append(ls.statuses[status], item.ID)
}

func newTestService(t *testing.T, ls *learnerState, forms map[string]uuid.UUID) Service {
	t.Helper()

	index, err := language.NewEmbeddedIndex()
	require.NoError(t, err)

	return NewService(
		ls.vocab,
		&fakeProgressStore{t: t, byStatus: ls.statuses},
		&fakeWordFormStore{forms: forms},
		language.NewLemmatizer(index),
		index,
		slog.Default(),
	)
}

func TestAnalyzeCountsLemmaOnce(t *testing.T) {
	t.Parallel()

	ls := newLearnerState(t)
	ls.add(t, "hablar", domain.ProgressStatusLearned)

	svc := newTestService(t, ls, nil)

	// Both "hablo" and "hablé" reduce to the learned lemma "hablar"
	// and must count once toward known, not twice.
	analysis, err := svc.Analyze(context.Background(), "Hablo español. Ayer hablé con María.")
	require.NoError(t, err)

	assert.Equal(t, 6, analysis.TotalWords)
	assert.Equal(t, 1, analysis.KnownCount)
	assert.Equal(t, 0, analysis.LearningCount)

	// Unique lemmas: hablar, español, ayer, maría ("con" is a stop
	// word). Comprehensible: hablar + con. 2/5 = 40%.
	assert.Equal(t, 4, analysis.UniqueWords)
	assert.InDelta(t, 40.0, analysis.ComprehensionPct, 0.001)
	assert.Equal(t, "Difficult", analysis.Difficulty)
	assert.False(t, analysis.ReadyToConsume)
}

func TestAnalyzeMatchesCachedWordForms(t *testing.T) {
	t.Parallel()

	ls := newLearnerState(t)
	ls.add(t, "hablar", domain.ProgressStatusLearning)

	forms := map[string]uuid.UUID{"hablo": ls.byID["hablar"]}
	svc := newTestService(t, ls, forms)

	analysis, err := svc.Analyze(context.Background(), "Hablo español")
	require.NoError(t, err)

	assert.Equal(t, 1, analysis.WordFormsMatched)
	assert.Equal(t, 1, analysis.LearningCount)
	assert.Equal(t, 0, analysis.KnownCount)
	// español is the only lemma not covered: (1 form + 1 learning) / 2,
	// clipped to 100.
	assert.InDelta(t, 100.0, analysis.ComprehensionPct, 0.001)
}

func TestAnalyzeNewWordDetails(t *testing.T) {
	t.Parallel()

	ls := newLearnerState(t)
	svc := newTestService(t, ls, nil)

	text := "El libro está sobre la mesa grande. Me gusta el libro."
	analysis, err := svc.Analyze(context.Background(), text)
	require.NoError(t, err)

	require.NotEmpty(t, analysis.NewWords)

	byLemma := make(map[string]WordDetail)
	for _, d := range analysis.NewWords {
		byLemma[d.Lemma] = d
	}

	libro, ok := byLemma["libro"]
	require.True(t, ok)
	assert.Equal(t, 2, libro.Occurrences)
	assert.Equal(t, []string{"libro"}, libro.OriginalForms)
	assert.NotEmpty(t, libro.Translation)
	assert.NotEmpty(t, libro.ContextSentences)
	assert.Less(t, libro.FrequencyRank, language.UnknownRank)

	// Details come back sorted by ascending frequency rank.
	for i := 1; i < len(analysis.NewWords); i++ {
		assert.LessOrEqual(t,
			analysis.NewWords[i-1].FrequencyRank,
			analysis.NewWords[i].FrequencyRank)
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newLearnerState(t), nil)

	analysis, err := svc.Analyze(context.Background(), "   \n  ")
	assert.Nil(t, analysis)
	assert.ErrorIs(t, err, domain.ErrEmptyText)
}

func TestAnalyzeFullyKnownText(t *testing.T) {
	t.Parallel()

	ls := newLearnerState(t)
	ls.add(t, "casa", domain.ProgressStatusLearned)
	ls.add(t, "grande", domain.ProgressStatusLearned)

	svc := newTestService(t, ls, nil)

	analysis, err := svc.Analyze(context.Background(), "La casa grande")
	require.NoError(t, err)

	assert.InDelta(t, 100.0, analysis.ComprehensionPct, 0.001)
	assert.Equal(t, "Very Easy", analysis.Difficulty)
	assert.True(t, analysis.ReadyToConsume)
	assert.Empty(t, analysis.NewWords)
	assert.Contains(t, analysis.Recommendation, "Perfect for your level")
}

func TestDifficultyLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Very Easy", difficultyLabel(97))
	assert.Equal(t, "Easy", difficultyLabel(90))
	assert.Equal(t, "Moderate", difficultyLabel(75))
	assert.Equal(t, "Challenging", difficultyLabel(60))
	assert.Equal(t, "Difficult", difficultyLabel(30))
}
