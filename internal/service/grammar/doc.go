// Package grammar manages the grammar topic taxonomy and the learner's
// per-topic mastery state. Learned and mastered topics unlock verb
// tenses for word-form generation and feed the grammar dimension of the
// unified CEFR score.
package grammar
