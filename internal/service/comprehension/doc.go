// Package comprehension analyzes Spanish text against the learner's
// vocabulary.
//
// A text's unique lemmas are partitioned into known, learning, and new;
// raw tokens are additionally matched against the cached word-form set,
// which is where grammar knowledge pays off: a learner who stored
// "hablar" and generated its present-tense forms gets credit for
// "hablo" in the wild. The analyzer is strictly read-only; it never
// adds words to the vocabulary.
package comprehension
