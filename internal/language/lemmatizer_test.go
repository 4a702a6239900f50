package language_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hablaconmigo/habla-api/internal/language"
)

func newTestLemmatizer(t *testing.T) *language.Lemmatizer {
	t.Helper()
	idx, err := language.NewEmbeddedIndex()
	require.NoError(t, err, "embedded lexicon should parse")
	return language.NewLemmatizer(idx)
}

func TestLemmatizeIrregularVerbs(t *testing.T) {
	t.Parallel()
	lem := newTestLemmatizer(t)

	cases := map[string]string{
		"soy":      "ser",
		"es":       "ser",
		"fueron":   "ser",
		"estoy":    "estar",
		"estuvo":   "estar",
		"tengo":    "tener",
		"tienen":   "tener",
		"hizo":     "hacer",
		"voy":      "ir",
		"iban":     "ir",
		"puedo":    "poder",
		"dijo":     "decir",
		"vino":     "venir",
		"quiero":   "querer",
		"supo":     "saber",
		"dio":      "dar",
		"visto":    "ver",
		"siento":   "sentir",
		"pienso":   "pensar",
		"duermen":  "dormir",
		"vuelve":   "volver",
		"sigo":     "seguir",
		"entiendo": "entender",
	}

	for form, want := range cases {
		assert.Equal(t, want, lem.Lemmatize(form), "form %q", form)
	}
}

func TestLemmatizeRegularConjugations(t *testing.T) {
	t.Parallel()
	lem := newTestLemmatizer(t)

	cases := map[string]string{
		// Present
		"hablo":    "hablar",
		"hablas":   "hablar",
		"habla":    "hablar",
		"hablamos": "hablar",
		"hablan":   "hablar",
		"comemos":  "comer",
		"comen":    "comer",
		"vivimos":  "vivir",
		// Preterite
		"hablé":    "hablar",
		"habló":    "hablar",
		"hablaste": "hablar",
		"hablaron": "hablar",
		"comí":     "comer",
		"comieron": "comer",
		// Imperfect
		"hablaba":    "hablar",
		"hablábamos": "hablar",
		"comía":      "comer",
		// Future
		"hablaré": "hablar",
		"hablará": "hablar",
		// Gerund and participle
		"hablando": "hablar",
		"hablado":  "hablar",
		"comiendo": "comer",
		"vivido":   "vivir",
	}

	for form, want := range cases {
		assert.Equal(t, want, lem.Lemmatize(form), "form %q", form)
	}
}

func TestLemmatizeAmbiguityResolution(t *testing.T) {
	t.Parallel()
	lem := newTestLemmatizer(t)

	// "bajo" (adjective, rank 420) outranks "bajar" (verb, rank 1100),
	// so the feminine and plural adjective forms resolve to the
	// adjective reading.
	assert.Equal(t, "bajo", lem.Lemmatize("baja"))
	assert.Equal(t, "bajo", lem.Lemmatize("bajas"))

	// "casa" (rank 95) outranks both "caso" (130) and "casar" (2600):
	// the noun survives untouched and its plural strips back to it.
	assert.Equal(t, "casa", lem.Lemmatize("casa"))
	assert.Equal(t, "casa", lem.Lemmatize("casas"))

	// "trabajo" is both a noun (rank 258) and a form of "trabajar"
	// (278); the more common noun wins.
	assert.Equal(t, "trabajo", lem.Lemmatize("trabajo"))

	// No verb reading exists for "dinero", so it stays as written.
	assert.Equal(t, "dinero", lem.Lemmatize("dinero"))

	// An -as word with no reading in the index at all defaults to the
	// verb form, and the resulting infinitive is stable.
	assert.Equal(t, "zutanar", lem.Lemmatize("zutanas"))
	assert.Equal(t, "zanahoriar", lem.Lemmatize("zanahorias"))
	assert.Equal(t, "zutanar", lem.Lemmatize("zutanar"))
}

func TestLemmatizePlurals(t *testing.T) {
	t.Parallel()
	lem := newTestLemmatizer(t)

	assert.Equal(t, "ciudad", lem.Lemmatize("ciudades"))
	assert.Equal(t, "mesa", lem.Lemmatize("mesas"))
	assert.Equal(t, "amigo", lem.Lemmatize("amigos"))
	assert.Equal(t, "libro", lem.Lemmatize("libros"))

	// Plural stripping requires the singular to exist in the index.
	assert.Equal(t, "tamales", lem.Lemmatize("tamales"))
}

func TestLemmatizeProperNamesUntouched(t *testing.T) {
	t.Parallel()
	lem := newTestLemmatizer(t)

	for _, name := range []string{"maría", "carlos", "ana", "diego"} {
		assert.Equal(t, name, lem.Lemmatize(name), "name %q", name)
	}
}

func TestLemmatizeKnownLemmasPassThrough(t *testing.T) {
	t.Parallel()
	lem := newTestLemmatizer(t)

	// Words the index lists as lemmas must never be reshaped by the
	// suffix rules, however verb-like they look.
	for _, word := range []string{"país", "café", "español", "ayer", "comer", "hablar", "bajo"} {
		assert.Equal(t, word, lem.Lemmatize(word), "lemma %q", word)
	}
}

func TestLemmatizeIdempotent(t *testing.T) {
	t.Parallel()
	lem := newTestLemmatizer(t)

	words := []string{
		"hablo", "hablé", "hablaban", "hablando", "comieron", "vivimos",
		"casas", "bajas", "ciudades", "amigos", "maría", "fueron",
		"trabajo", "dinero", "zanahorias", "país", "café", "comiendo",
		"entendí", "durmió", "estábamos", "quisieron", "pelo", "examen",
	}

	for _, w := range words {
		once := lem.Lemmatize(w)
		assert.Equal(t, once, lem.Lemmatize(once), "lemmatize twice of %q", w)
	}
}

func TestLemmatizeEmptyAndWhitespace(t *testing.T) {
	t.Parallel()
	lem := newTestLemmatizer(t)

	assert.Equal(t, "", lem.Lemmatize(""))
	assert.Equal(t, "", lem.Lemmatize("   "))
	assert.Equal(t, "hablar", lem.Lemmatize("  HABLO  "))
}
