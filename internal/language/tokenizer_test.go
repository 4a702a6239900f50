package language_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hablaconmigo/habla-api/internal/language"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercases", in: "Hola Mundo", want: "hola mundo"},
		{name: "keeps diacritics", in: "¿Qué día es?", want: "qué día es"},
		{name: "strips punctuation", in: "¡Hola, amigo!", want: "hola amigo"},
		{name: "collapses whitespace", in: "uno   dos\n\ttres", want: "uno dos tres"},
		{name: "empty input", in: "", want: ""},
		{name: "only punctuation", in: "¡¿?!...", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, language.Normalize(tc.in))
		})
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "plain sentence",
			in:   "Hablo español todos los días.",
			want: []string{"hablo", "español", "todos", "los", "días"},
		},
		{
			name: "drops single letters and digits",
			in:   "Tengo 2 gatos y 15 libros",
			want: []string{"tengo", "gatos", "libros"},
		},
		{
			name: "keeps alphanumeric tokens",
			in:   "El modelo a380 vuela",
			want: []string{"el", "modelo", "a380", "vuela"},
		},
		{
			name: "empty text",
			in:   "",
			want: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, language.Tokenize(tc.in))
		})
	}
}

func TestExtractSentences(t *testing.T) {
	t.Parallel()

	text := "Me gusta la playa. ¿Vienes conmigo mañana? Sí. ¡Qué buena idea tienes!"
	got := language.ExtractSentences(text)

	assert.Equal(t, []string{
		"Me gusta la playa",
		"Vienes conmigo mañana",
		"Qué buena idea tienes",
	}, got, "sentences of 10 runes or fewer are dropped")
}

func TestFindWordContext(t *testing.T) {
	t.Parallel()

	sentences := []string{
		"Mi casa es grande",
		"Las casas del pueblo son blancas",
		"Vivo en una casa pequeña",
		"La casa azul está lejos",
	}

	got := language.FindWordContext("casa", sentences, 2)
	assert.Len(t, got, 2, "results are capped at max")
	assert.Equal(t, "Mi casa es grande", got[0])

	assert.Empty(t, language.FindWordContext("perro", sentences, 3))

	// Matching is case-insensitive on both sides.
	got = language.FindWordContext("CASA", sentences, 10)
	assert.Len(t, got, 4)
}
