package claims

import "regexp"

// Hedging scoring measures how much a sentence speculates rather than
// asserts. Hedging confidence above 0.6 rejects the sentence as non-factual.

const hedgingRejectThreshold = 0.6

type hedgePattern struct {
	label  string
	weight float64
	re     *regexp.Regexp
}

var hedgePatterns = []hedgePattern{
	{"modal-verb", 0.35,
		regexp.MustCompile(`(?i)\b(?:might|may|could|would|should)\s+(?:be|have|see|mean|bring|help|reach)\b`)},
	{"approximation", 0.3,
		regexp.MustCompile(`(?i)\b(?:roughly|approximately|about|around|nearly|almost|up\s+to|as\s+many\s+as|as\s+much\s+as|an\s+estimated|some\s+\d)\b`)},
	{"conditional", 0.3,
		regexp.MustCompile(`(?i)\b(?:if\s+(?:enacted|passed|approved|elected)|unless|assuming|provided\s+that|in\s+the\s+event)\b`)},
	{"belief-verb", 0.35,
		regexp.MustCompile(`(?i)\b(?:we|i)\s+(?:believe|think|expect|hope|anticipate|feel)\b`)},
	{"future-intent", 0.3,
		regexp.MustCompile(`(?i)\b(?:plans?\s+to|intends?\s+to|aims?\s+to|hopes?\s+to|is\s+expected\s+to|will\s+likely|could\s+eventually)\b`)},
	{"vague-scale", 0.2,
		regexp.MustCompile(`(?i)\b(?:many|several|a\s+number\s+of|countless|significant(?:ly)?)\b`)},
}

// hedgingScore returns the cumulative hedge weight, capped at 1.0.
func hedgingScore(sentence string) float64 {
	var score float64
	for _, p := range hedgePatterns {
		if p.re.MatchString(sentence) {
			score += p.weight
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
