// Package events provides types and interfaces for decoupled event
// publication.
//
// The review service emits a ReviewEvent after every graded answer.
// Consumers that care about review outcomes (streak tracking, reward
// handling, analytics) register handlers at wiring time; the service
// never learns who is listening. This keeps reward logic and other
// side effects out of the scheduling path.
package events
