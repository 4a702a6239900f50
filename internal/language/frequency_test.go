package language_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/language"
)

func TestEmbeddedIndex(t *testing.T) {
	t.Parallel()

	idx, err := language.NewEmbeddedIndex()
	require.NoError(t, err)

	t.Run("rank lookup", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 150, idx.Rank("hablar"))
		assert.Equal(t, 95, idx.Rank("casa"))
		assert.Equal(t, language.UnknownRank, idx.Rank("zanahoria"))
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 150, idx.Rank("HABLAR"))
	})

	t.Run("translation", func(t *testing.T) {
		t.Parallel()
		tr, ok := idx.Translation("hablar")
		require.True(t, ok)
		assert.Equal(t, "to speak", tr)

		_, ok = idx.Translation("zanahoria")
		assert.False(t, ok)
	})

	t.Run("cefr from explicit level", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, domain.CEFRLevelA1, idx.EstimateCEFR("casa"))
		assert.Equal(t, domain.CEFRLevelB1, idx.EstimateCEFR("casar"))
		assert.Equal(t, domain.CEFRLevelC2, idx.EstimateCEFR("zanahoria"), "unknown lemmas estimate from the sentinel rank")
	})

	t.Run("reference lemmas pinned to one level", func(t *testing.T) {
		t.Parallel()
		a2 := idx.ReferenceLemmas(domain.CEFRLevelA2)
		assert.NotEmpty(t, a2)
		assert.Contains(t, a2, "perro")
		assert.NotContains(t, a2, "casa", "A1 lemma must not appear in the A2 slice")
	})
}

func TestEstimateCEFRByRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rank int
		want domain.CEFRLevel
	}{
		{rank: 1, want: domain.CEFRLevelA1},
		{rank: 500, want: domain.CEFRLevelA1},
		{rank: 501, want: domain.CEFRLevelA2},
		{rank: 1500, want: domain.CEFRLevelA2},
		{rank: 3000, want: domain.CEFRLevelB1},
		{rank: 5000, want: domain.CEFRLevelB2},
		{rank: 8000, want: domain.CEFRLevelC1},
		{rank: 8001, want: domain.CEFRLevelC2},
		{rank: language.UnknownRank, want: domain.CEFRLevelC2},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, language.EstimateCEFRByRank(tc.rank), "rank %d", tc.rank)
	}
}

func TestFrequencyTier(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "top100", language.FrequencyTier(95))
	assert.Equal(t, "top500", language.FrequencyTier(150))
	assert.Equal(t, "top1000", language.FrequencyTier(750))
	assert.Equal(t, "top2500", language.FrequencyTier(2400))
	assert.Equal(t, "top5000", language.FrequencyTier(4100))
	assert.Equal(t, "uncommon", language.FrequencyTier(language.UnknownRank))
}

func TestStopWords(t *testing.T) {
	t.Parallel()

	for _, w := range []string{"el", "la", "de", "que", "y", "con", "por"} {
		assert.True(t, language.IsStopWord(w), "stop word %q", w)
	}

	assert.False(t, language.IsStopWord("casa"))
	assert.False(t, language.IsStopWord("hablar"))
}
