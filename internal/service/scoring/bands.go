package scoring

import (
	"fmt"

	"github.com/hablaconmigo/habla-api/internal/domain"
)

// bandRange is the half-open score interval [Lo, Hi) a CEFR band
// occupies on the 0-100 scale. C2's upper bound is inclusive.
type bandRange struct {
	Level domain.CEFRLevel
	Lo    float64
	Hi    float64
}

// bandRanges pins each band to its score interval. The widths also
// serve as the per-level contribution of the vocabulary ladder: full
// coverage of a level's reference vocabulary moves the vocabulary
// score across that level's band.
var bandRanges = []bandRange{
	{domain.CEFRLevelA1, 0, 25},
	{domain.CEFRLevelA2, 25, 50},
	{domain.CEFRLevelB1, 50, 70},
	{domain.CEFRLevelB2, 70, 85},
	{domain.CEFRLevelC1, 85, 95},
	{domain.CEFRLevelC2, 95, 100},
}

// bandFor maps a 0-100 score to its CEFR band.
func bandFor(score float64) domain.CEFRLevel {
	for _, b := range bandRanges {
		if score < b.Hi {
			return b.Level
		}
	}
	return domain.CEFRLevelC2
}

// sublevelFor splits a band at its midpoint: the lower half is ".1",
// the upper half ".2".
func sublevelFor(score float64) string {
	for _, b := range bandRanges {
		if score < b.Hi || b.Level == domain.CEFRLevelC2 {
			mid := (b.Lo + b.Hi) / 2
			if score < mid {
				return fmt.Sprintf("%s.1", b.Level)
			}
			return fmt.Sprintf("%s.2", b.Level)
		}
	}
	return string(domain.CEFRLevelC2) + ".2"
}

// bandWidth returns the score width of a level's band.
func bandWidth(level domain.CEFRLevel) float64 {
	for _, b := range bandRanges {
		if b.Level == level {
			return b.Hi - b.Lo
		}
	}
	return 0
}

// clip bounds a score to [0, 100].
func clip(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
