package claims

import "regexp"

// Private-data detection flags sentences whose claims rest on data the
// speaker controls and the public cannot inspect. Weighted phrase families
// sum toward a 0.7 threshold; an explicit public or named-source attribution
// short-circuits the test.

const privateDataThreshold = 0.7

type privateDataPattern struct {
	label  string
	weight float64
	re     *regexp.Regexp
}

var privateDataPatterns = []privateDataPattern{
	{"internal-data", 0.7,
		regexp.MustCompile(`(?i)\b(?:our\s+)?internal\s+(?:polling|polls|numbers|data|modeling|analysis)\b`)},
	{"self-referential-data", 0.5,
		regexp.MustCompile(`(?i)\bour\s+(?:polling|polls|numbers|data|analysis|research|models?)\b`)},
	{"campaign-controlled", 0.4,
		regexp.MustCompile(`(?i)\b(?:campaign|the\s+team)(?:'s)?\s+(?:polling|data|numbers|analysis)\b`)},
	{"unsourced-data", 0.3,
		regexp.MustCompile(`(?i)\b(?:polling|data|numbers|the\s+numbers|research)\s+(?:show|shows|indicate|indicates|tell\s+us|prove|proves)\b`)},
	{"self-favoring-result", 0.2,
		regexp.MustCompile(`(?i)\b(?:shows?\s+(?:we|us)|we\s+are\s+(?:ahead|leading|winning)|points\s+ahead)\b`)},
}

// publicSourceAttribution recognizes named public sources; matching one
// short-circuits private-data detection.
var publicSourceAttribution = regexp.MustCompile(`(?i)\b(?:according\s+to\s+(?:the\s+)?[A-Z]|gallup|pew|quinnipiac|marist|census|bureau\s+of|congressional\s+budget\s+office|bls|published\s+(?:poll|survey|study)|public\s+(?:poll|polling|filing|records?)|nonpartisan)`)

// privateDataScore returns the cumulative weight and whether the sentence
// qualifies as a private-data claim.
func privateDataScore(sentence string) (float64, bool) {
	if publicSourceAttribution.MatchString(sentence) {
		return 0, false
	}
	var score float64
	matched := false
	for _, p := range privateDataPatterns {
		if p.re.MatchString(sentence) {
			score += p.weight
			matched = true
		}
	}
	return score, matched && score >= privateDataThreshold
}
