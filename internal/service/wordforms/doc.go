// Package wordforms expands base vocabulary items into their inflected
// surface forms: verb conjugations, noun plurals, and adjective
// agreement forms.
//
// Which forms get requested depends on the learner's grammar progress.
// The A1 baseline (present tense, plurals, agreement) is always on;
// learned or mastered grammar topics unlock further tenses. String
// generation is delegated to a MorphologicalGenerator; results are
// cached in the word-form store and only wiped on a forced
// regeneration. Generator failures degrade to base forms and never
// abort a run.
package wordforms
