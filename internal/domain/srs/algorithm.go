package srs

import (
	"math"
	"time"

	"github.com/hablaconmigo/habla-api/internal/domain"
)

// nextEaseFactor applies the SM-2 ease-factor update for the given
// recall quality and clamps the result at the configured floor.
//
// The adjustment is 0.1 - (5-q)*(0.08 + (5-q)*0.02): quality 5 gains
// 0.1, quality 4 is almost neutral, and lower grades penalize
// progressively harder. The update runs on every submission, pass or
// fail.
func nextEaseFactor(currentEF float64, quality int, params *Params) float64 {
	penalty := float64(5 - quality)
	newEF := currentEF + 0.1 - penalty*(0.08+penalty*0.02)

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}

	return newEF
}

// nextPassInterval determines the interval after a successful review.
//
// The first few repetitions follow the fixed early schedule; after that
// the interval grows by the ease factor, capped at MaxIntervalDays.
func nextPassInterval(currentInterval, repetitions int, easeFactor float64, params *Params) int {
	if interval, ok := params.EarlySchedule[repetitions]; ok {
		return interval
	}

	interval := int(math.Round(float64(currentInterval) * easeFactor))
	if interval > params.MaxIntervalDays {
		interval = params.MaxIntervalDays
	}
	if interval < 1 {
		interval = 1
	}

	return interval
}

// deriveStatus computes the progress status from the update history.
// Status is never set directly: it is a deterministic function of the
// correctness counters, the new interval, and whether the last
// submission passed.
func deriveStatus(record *domain.ProgressRecord, passed bool, params *Params) domain.ProgressStatus {
	if !passed {
		if record.TimesIncorrect > params.StrugglingThreshold {
			return domain.ProgressStatusStruggling
		}
		return domain.ProgressStatusLearning
	}

	if record.TimesCorrect >= params.LearnedMinCorrect &&
		record.IntervalDays >= params.LearnedMinIntervalDays {
		return domain.ProgressStatusLearned
	}

	if record.TimesCorrect >= 1 {
		return domain.ProgressStatusLearning
	}

	return record.Status
}

// nextRecord creates a new ProgressRecord with updated scheduling state
// for the given review quality. The original record is not modified;
// following the immutable update pattern the function returns a fresh
// copy so callers can diff old and new state.
func nextRecord(
	record *domain.ProgressRecord,
	quality int,
	now time.Time,
	params *Params,
) *domain.ProgressRecord {
	newRecord := &domain.ProgressRecord{
		VocabularyID:   record.VocabularyID,
		EaseFactor:     record.EaseFactor,
		IntervalDays:   record.IntervalDays,
		Repetitions:    record.Repetitions,
		TimesCorrect:   record.TimesCorrect,
		TimesIncorrect: record.TimesIncorrect,
		Status:         record.Status,
		NextReviewAt:   record.NextReviewAt,
		LastReviewedAt: record.LastReviewedAt,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}

	passed := quality >= 3

	if passed {
		newRecord.TimesCorrect++
		newRecord.IntervalDays = nextPassInterval(
			record.IntervalDays,
			record.Repetitions,
			record.EaseFactor,
			params,
		)
		newRecord.Repetitions++
	} else {
		newRecord.TimesIncorrect++
		newRecord.Repetitions = 0
		newRecord.IntervalDays = params.FailureIntervalDays
	}

	// Ease factor updates on every call, regardless of outcome.
	newRecord.EaseFactor = nextEaseFactor(record.EaseFactor, quality, params)

	newRecord.Status = deriveStatus(newRecord, passed, params)
	newRecord.LastReviewedAt = now
	newRecord.NextReviewAt = now.AddDate(0, 0, newRecord.IntervalDays)
	newRecord.UpdatedAt = now

	return newRecord
}
