// Package srs implements the spaced-repetition scheduling math: an SM-2
// variant over quality grades 0-5 with a fixed early schedule, a capped
// growth phase, and deterministic status derivation. All functions are
// pure; persistence and transactions are the caller's concern.
package srs

// Params defines all configurable parameters for the SRS algorithm.
type Params struct {
	// MinEaseFactor is the floor for the ease factor. The SM-2 penalty
	// formula can push the ease factor arbitrarily low; it is clamped
	// here so intervals keep growing for difficult items.
	MinEaseFactor float64

	// MaxIntervalDays caps interval growth in the ease-factor phase.
	MaxIntervalDays int

	// EarlySchedule maps repetition count to a fixed interval in days
	// for the first few successful reviews. Beyond the schedule the
	// interval grows multiplicatively by the ease factor.
	EarlySchedule map[int]int

	// FailureIntervalDays is the interval assigned after a failed review.
	FailureIntervalDays int

	// StrugglingThreshold is the number of total failures after which a
	// failed item is marked struggling rather than learning.
	StrugglingThreshold int

	// LearnedMinCorrect and LearnedMinIntervalDays gate the learned
	// status: both must be met after a successful review.
	LearnedMinCorrect      int
	LearnedMinIntervalDays int
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor:   1.3,
		MaxIntervalDays: 90,

		// First four successful reviews: 1, 3, 7, 14 days.
		EarlySchedule: map[int]int{
			0: 1,
			1: 3,
			2: 7,
			3: 14,
		},

		FailureIntervalDays: 1,
		StrugglingThreshold: 2,

		LearnedMinCorrect:      4,
		LearnedMinIntervalDays: 7,
	}
}
