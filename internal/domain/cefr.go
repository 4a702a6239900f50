package domain

// CEFRLevel is one band of the six-band Common European Framework of
// Reference for Languages proficiency scale.
type CEFRLevel string

// CEFR bands, ordered from beginner to mastery.
const (
	CEFRLevelA1 CEFRLevel = "A1"
	CEFRLevelA2 CEFRLevel = "A2"
	CEFRLevelB1 CEFRLevel = "B1"
	CEFRLevelB2 CEFRLevel = "B2"
	CEFRLevelC1 CEFRLevel = "C1"
	CEFRLevelC2 CEFRLevel = "C2"
)

// CEFRLevels lists all bands in ascending order.
var CEFRLevels = []CEFRLevel{
	CEFRLevelA1, CEFRLevelA2, CEFRLevelB1, CEFRLevelB2, CEFRLevelC1, CEFRLevelC2,
}

// IsValid reports whether the level is one of the six CEFR bands.
func (l CEFRLevel) IsValid() bool {
	switch l {
	case CEFRLevelA1, CEFRLevelA2, CEFRLevelB1, CEFRLevelB2, CEFRLevelC1, CEFRLevelC2:
		return true
	default:
		return false
	}
}

// Next returns the band above l, or l itself for C2.
func (l CEFRLevel) Next() CEFRLevel {
	for i, level := range CEFRLevels {
		if level == l && i < len(CEFRLevels)-1 {
			return CEFRLevels[i+1]
		}
	}
	return l
}
