package generation

import "context"

// StaticPronunciationScorer is a PronunciationScorer that reports a
// fixed accuracy. It stands in until a speech-practice pipeline feeds
// real scores; zero means "no speaking evidence yet" and keeps the
// speaking dimension of the unified score honest.
type StaticPronunciationScorer struct {
	Percent float64
}

// Ensure interface compliance
var _ PronunciationScorer = (*StaticPronunciationScorer)(nil)

// Accuracy implements PronunciationScorer.Accuracy.
func (s *StaticPronunciationScorer) Accuracy(context.Context) (float64, error) {
	return s.Percent, nil
}
