// Package review exposes the review loop: fetching the next batch of
// due vocabulary items and grading submitted answers.
//
// Submissions run as an atomic read-modify-write: the progress record
// is locked inside a transaction, rescheduled by the srs package, and
// persisted before the transaction commits. The service also keeps a
// lightweight in-memory session counter (items reviewed, correct,
// accuracy) and emits a ReviewEvent after every graded answer so
// reward handling stays out of the scheduling path.
package review
