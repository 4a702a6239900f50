package scoring

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/generation"
	"github.com/hablaconmigo/habla-api/internal/language"
	"github.com/hablaconmigo/habla-api/internal/store"
)

type fakeVocabStore struct {
	items []*domain.VocabularyItem
}

func (f *fakeVocabStore) Create(context.Context, *domain.VocabularyItem) error { return nil }

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

func (f *fakeVocabStore) UpdateTranslation(context.Context, uuid.UUID, string) error { return nil }

func (f *fakeVocabStore) Delete(context.Context, uuid.UUID) error { return nil }

func (f *fakeVocabStore) WithTx(*sql.Tx) store.VocabularyStore { return f }

type fakeProgressStore struct {
	byStatus map[domain.ProgressStatus][]uuid.UUID
}

func (f *fakeProgressStore) Create(context.Context, *domain.ProgressRecord) error { return nil }

func (f *fakeProgressStore) Get(context.Context, uuid.UUID) (*domain.ProgressRecord, error) {
	return nil, store.ErrProgressNotFound
}

func (f *fakeProgressStore) GetForUpdate(context.Context, uuid.UUID) (*domain.ProgressRecord, error) {
	return nil, store.ErrProgressNotFound
}

func (f *fakeProgressStore) Update(context.Context, *domain.ProgressRecord) error { return nil }

func (f *fakeProgressStore) FindDue(context.Context, time.Time, time.Time, int) ([]*domain.ProgressRecord, error) {
	return nil, nil
}

func (f *fakeProgressStore) FindByStatus(_ context.Context, status domain.ProgressStatus, _, _ int) ([]*domain.ProgressRecord, error) {
	var records []*domain.ProgressRecord
	for _, id := range f.byStatus[status] {
		record := &domain.ProgressRecord{
			VocabularyID: id,
			EaseFactor:   2.5,
			IntervalDays: 1,
			Status:       status,
			NextReviewAt: time.Now(),
		}
		records = append(records, record)
	}
	return records, nil
}

func (f *fakeProgressStore) CountByStatus(context.Context) (map[domain.ProgressStatus]int, error) {
	counts := make(map[domain.ProgressStatus]int)
	for status, ids := range f.byStatus {
		counts[status] = len(ids)
	}
	return counts, nil
}

func (f *fakeProgressStore) WithTx(*sql.Tx) store.ProgressStore { return f }

type fakeGrammarStore struct {
	topics   []*domain.GrammarTopic
	progress map[uuid.UUID]domain.GrammarStatus
}

func (f *fakeGrammarStore) CreateTopic(context.Context, *domain.GrammarTopic) error { return nil }

func (f *fakeGrammarStore) ListTopics(context.Context) ([]*domain.GrammarTopic, error) {
	return f.topics, nil
}

func (f *fakeGrammarStore) ListTopicsByLevel(context.Context, domain.CEFRLevel) ([]*domain.GrammarTopic, error) {
	return nil, nil
}

func (f *fakeGrammarStore) GetProgress(context.Context, uuid.UUID) (*domain.GrammarProgress, error) {
	return nil, store.ErrGrammarTopicNotFound
}

func (f *fakeGrammarStore) UpsertProgress(context.Context, *domain.GrammarProgress) error { return nil }

func (f *fakeGrammarStore) ListProgress(context.Context) (map[uuid.UUID]domain.GrammarStatus, error) {
	return f.progress, nil
}

func (f *fakeGrammarStore) WithTx(*sql.Tx) store.GrammarStore { return f }

type fakeContentStore struct {
	packages []*domain.ContentPackage
}

func (f *fakeContentStore) Create(context.Context, *domain.ContentPackage) error { return nil }

func (f *fakeContentStore) GetByID(context.Context, uuid.UUID) (*domain.ContentPackage, error) {
	return nil, store.ErrContentPackageNotFound
}

func (f *fakeContentStore) List(context.Context) ([]*domain.ContentPackage, error) {
	return f.packages, nil
}

func (f *fakeContentStore) Delete(context.Context, uuid.UUID) error { return nil }

func (f *fakeContentStore) WithTx(*sql.Tx) store.ContentPackageStore { return f }

type failingScorer struct{}

func (failingScorer) Accuracy(context.Context) (float64, error) {
	return 0, errors.New("no microphone")
}

// learnerFixture assembles the store fakes for one scoring scenario.
type learnerFixture struct {
	vocab    *fakeVocabStore
	progress *fakeProgressStore
	grammar  *fakeGrammarStore
	content  *fakeContentStore
}

func newFixture() *learnerFixture {
	return &learnerFixture{
		vocab:    &fakeVocabStore{},
		progress: &fakeProgressStore{byStatus: make(map[domain.ProgressStatus][]uuid.UUID)},
		grammar:  &fakeGrammarStore{progress: make(map[uuid.UUID]domain.GrammarStatus)},
		content:  &fakeContentStore{},
	}
}

func (fx *learnerFixture) addWord(t *testing.T, lemma string, status domain.ProgressStatus) {
	t.Helper()
	item, err := domain.NewVocabularyItem(lemma, "t", "", domain.CEFRLevelA1, "")
	require.NoError(t, err)
	fx.vocab.items = append(fx.vocab.items, item)
	fx.progress.byStatus[status] = append(fx.progress.byStatus[status], item.ID)
}

func (fx *learnerFixture) addTopic(t *testing.T, title string, level domain.CEFRLevel, status domain.GrammarStatus) {
	t.Helper()
	topic, err := domain.NewGrammarTopic(title, level)
	require.NoError(t, err)
	fx.grammar.topics = append(fx.grammar.topics, topic)
	if status != domain.GrammarStatusNew {
		fx.grammar.progress[topic.ID] = status
	}
}

// testIndex pins four A1 and two A2 reference lemmas.
func testIndex() language.Index {
	return language.NewStaticIndex([]language.Entry{
		{Rank: 10, Lemma: "casa", POS: "noun", Translation: "house", Level: domain.CEFRLevelA1},
		{Rank: 20, Lemma: "hablar", POS: "verb", Translation: "to speak", Level: domain.CEFRLevelA1},
		{Rank: 30, Lemma: "comer", POS: "verb", Translation: "to eat", Level: domain.CEFRLevelA1},
		{Rank: 40, Lemma: "agua", POS: "noun", Translation: "water", Level: domain.CEFRLevelA1},
		{Rank: 600, Lemma: "ciudad", POS: "noun", Translation: "city", Level: domain.CEFRLevelA2},
		{Rank: 700, Lemma: "trabajo", POS: "noun", Translation: "work", Level: domain.CEFRLevelA2},
	})
}

func newTestService(fx *learnerFixture, scorer generation.PronunciationScorer) Service {
	return NewService(
		fx.vocab,
		fx.progress,
		fx.grammar,
		fx.content,
		testIndex(),
		scorer,
		slog.Default(),
	)
}

func TestBandMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		score    float64
		band     domain.CEFRLevel
		sublevel string
	}{
		{0, domain.CEFRLevelA1, "A1.1"},
		{12.5, domain.CEFRLevelA1, "A1.2"},
		{24.9, domain.CEFRLevelA1, "A1.2"},
		{25, domain.CEFRLevelA2, "A2.1"},
		{37.5, domain.CEFRLevelA2, "A2.2"},
		{50, domain.CEFRLevelB1, "B1.1"},
		{65, domain.CEFRLevelB1, "B1.2"},
		{70, domain.CEFRLevelB2, "B2.1"},
		{80, domain.CEFRLevelB2, "B2.2"},
		{85, domain.CEFRLevelC1, "C1.1"},
		{92, domain.CEFRLevelC1, "C1.2"},
		{95, domain.CEFRLevelC2, "C2.1"},
		{100, domain.CEFRLevelC2, "C2.2"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.band, bandFor(tc.score), "score %.1f", tc.score)
		assert.Equal(t, tc.sublevel, sublevelFor(tc.score), "score %.1f", tc.score)
	}
}

func TestVocabularyLadder(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	// All four A1 reference lemmas learned, nothing from A2.
	for _, lemma := range []string{"casa", "hablar", "comer", "agua"} {
		fx.addWord(t, lemma, domain.ProgressStatusLearned)
	}

	svc := newTestService(fx, &generation.StaticPronunciationScorer{})

	result, err := svc.UnifiedScore(context.Background())
	require.NoError(t, err)

	// Full A1 coverage crosses exactly the A1 band width.
	assert.InDelta(t, 25.0, result.Vocabulary.Score, 0.001)
	assert.Equal(t, 4, result.Vocabulary.Learned)
	assert.Equal(t, 4, result.Vocabulary.Total)
}

func TestVocabularyWeightsLearningAtHalf(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	fx.addWord(t, "casa", domain.ProgressStatusLearned)
	fx.addWord(t, "hablar", domain.ProgressStatusLearning)

	svc := newTestService(fx, &generation.StaticPronunciationScorer{})

	result, err := svc.UnifiedScore(context.Background())
	require.NoError(t, err)

	// (1.0 + 0.5) / 4 A1 lemmas = 37.5% coverage of a 25-wide band.
	assert.InDelta(t, 9.375, result.Vocabulary.Score, 0.001)
}

func TestGrammarDimensionWeights(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	fx.addTopic(t, "Present Tense", domain.CEFRLevelA1, domain.GrammarStatusMastered)
	fx.addTopic(t, "Noun Plurals", domain.CEFRLevelA1, domain.GrammarStatusLearned)
	fx.addTopic(t, "Preterite Tense", domain.CEFRLevelA2, domain.GrammarStatusLearning)
	fx.addTopic(t, "Subjunctive", domain.CEFRLevelB1, domain.GrammarStatusNew)

	svc := newTestService(fx, &generation.StaticPronunciationScorer{})

	result, err := svc.UnifiedScore(context.Background())
	require.NoError(t, err)

	// (1.0 + 0.75 + 0.5 + 0) / 4 = 56.25
	assert.InDelta(t, 56.25, result.Grammar.Score, 0.001)
	assert.Equal(t, 1, result.Grammar.Mastered)
	assert.Equal(t, 1, result.Grammar.Learned)
	assert.Equal(t, 1, result.Grammar.Learning)
	assert.Equal(t, 1, result.Grammar.New)
}

func TestSpeakingCap(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFixture(), &generation.StaticPronunciationScorer{Percent: 98})

	result, err := svc.UnifiedScore(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, SpeakingCap, result.Speaking.Score, 0.001)
	assert.True(t, result.Speaking.Capped)
}

func TestSpeakingFailureScoresZero(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFixture(), failingScorer{})

	result, err := svc.UnifiedScore(context.Background())
	require.NoError(t, err)

	assert.Zero(t, result.Speaking.Score)
	assert.False(t, result.Speaking.Capped)
}

func TestContentDimension(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	for _, lemma := range []string{"casa", "hablar", "comer", "agua"} {
		fx.addWord(t, lemma, domain.ProgressStatusLearned)
	}

	ready, err := domain.NewContentPackage("Easy reader", "import",
		[]string{"casa", "hablar", "comer", "agua", "ciudad"}) // 4/5 known
	require.NoError(t, err)
	hard, err := domain.NewContentPackage("News article", "import",
		[]string{"ciudad", "trabajo", "casa"}) // 1/3 known
	require.NoError(t, err)
	fx.content.packages = []*domain.ContentPackage{ready, hard}

	svc := newTestService(fx, &generation.StaticPronunciationScorer{})

	result, err := svc.UnifiedScore(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Content.ReadyPackages)
	assert.Equal(t, 2, result.Content.TotalPackages)
	assert.InDelta(t, 50.0, result.Content.Score, 0.001)
}

func TestUnifiedScoreBlendsWeights(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	for _, lemma := range []string{"casa", "hablar", "comer", "agua"} {
		fx.addWord(t, lemma, domain.ProgressStatusLearned)
	}
	fx.addTopic(t, "Present Tense", domain.CEFRLevelA1, domain.GrammarStatusMastered)

	svc := newTestService(fx, &generation.StaticPronunciationScorer{Percent: 50})

	result, err := svc.UnifiedScore(context.Background())
	require.NoError(t, err)

	// vocab 25*.30 + grammar 100*.35 + speaking 50*.20 + content 0*.15
	expected := 25*WeightVocabulary + 100*WeightGrammar + 50*WeightSpeaking
	assert.InDelta(t, expected, result.Score, 0.001)
	assert.Equal(t, domain.CEFRLevelB1, result.Band)
	assert.Equal(t, "B1.1", result.Sublevel)
}

func TestGatingIndependentOfScore(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	// Full A1 vocabulary and grammar mastery, nothing at A2.
	for _, lemma := range []string{"casa", "hablar", "comer", "agua"} {
		fx.addWord(t, lemma, domain.ProgressStatusLearned)
	}
	fx.addTopic(t, "Present Tense", domain.CEFRLevelA1, domain.GrammarStatusMastered)
	fx.addTopic(t, "Preterite Tense", domain.CEFRLevelA2, domain.GrammarStatusNew)

	svc := newTestService(fx, &generation.StaticPronunciationScorer{})

	result, err := svc.UnifiedScore(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Gates, 5) // A1 through C1; C2 has no next level
	a1 := result.Gates[0]
	assert.Equal(t, domain.CEFRLevelA1, a1.Level)
	assert.InDelta(t, 100.0, a1.VocabMastery, 0.001)
	assert.InDelta(t, 100.0, a1.GrammarMastery, 0.001)
	assert.True(t, a1.NextUnlocked)

	a2 := result.Gates[1]
	assert.Equal(t, domain.CEFRLevelA2, a2.Level)
	assert.False(t, a2.NextUnlocked)
}

func TestGateRequiresBothDimensions(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	// Vocabulary complete at A1 but the A1 grammar topic is untouched.
	for _, lemma := range []string{"casa", "hablar", "comer", "agua"} {
		fx.addWord(t, lemma, domain.ProgressStatusLearned)
	}
	fx.addTopic(t, "Present Tense", domain.CEFRLevelA1, domain.GrammarStatusNew)

	svc := newTestService(fx, &generation.StaticPronunciationScorer{})

	result, err := svc.UnifiedScore(context.Background())
	require.NoError(t, err)

	a1 := result.Gates[0]
	assert.InDelta(t, 100.0, a1.VocabMastery, 0.001)
	assert.Zero(t, a1.GrammarMastery)
	assert.False(t, a1.NextUnlocked)
}
