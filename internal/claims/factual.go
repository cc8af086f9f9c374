package claims

import "regexp"

// Factual-element density measures how many checkable specifics a sentence
// carries. Sentences scoring below 0.3 are rejected as non-factual.

const densityRejectThreshold = 0.3

type densityPattern struct {
	label  string
	weight float64
	re     *regexp.Regexp
}

var densityPatterns = []densityPattern{
	{"currency", 0.3,
		regexp.MustCompile(`\$\s?\d[\d,]*(?:\.\d+)?\s*(?:million|billion|trillion|thousand)?`)},
	{"percentage", 0.3,
		regexp.MustCompile(`\d+(?:\.\d+)?\s*(?:%|percent|percentage\s+points?)`)},
	{"specific-number", 0.25,
		regexp.MustCompile(`\b\d[\d,]*\b`)},
	{"dated-reference", 0.25,
		regexp.MustCompile(`\b(?:(?:19|20)\d{2}|January|February|March|April|May|June|July|August|September|October|November|December)\b`)},
	{"named-legislation", 0.35,
		regexp.MustCompile(`\b(?:the\s+[A-Z][A-Za-z ]{2,40}\s+Act|H\.\s?R\.\s?\d+|S\.\s?\d+|House\s+Bill\s+\d+|Senate\s+Bill\s+\d+)\b`)},
	{"past-action-verb", 0.2,
		regexp.MustCompile(`(?i)\b(?:voted|signed|passed|introduced|announced|filed|secured|delivered|won|raised|created|cut|funded|opened|enacted|sponsored)\b`)},
}

// factualDensity returns the cumulative density score, capped at 1.0.
func factualDensity(sentence string) float64 {
	var score float64
	for _, p := range densityPatterns {
		if p.re.MatchString(sentence) {
			score += p.weight
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
