package claims

import "regexp"

// Hearsay detection flags sentences that report what someone else said.
// Verifying one requires confirming both the attribution (that the person
// said it) and the underlying claim.

const hearsayThreshold = 0.8

type hearsayPattern struct {
	label  string
	weight float64
	re     *regexp.Regexp
}

var hearsayPatterns = []hearsayPattern{
	{"audience-reference", 0.9,
		regexp.MustCompile(`(?i)\bas\s+you\s+(?:heard|saw)\s+[A-Z][A-Za-z'\-]*(?:\s+[A-Z][A-Za-z'\-]+)*\s+say\b`)},
	{"told-reporter", 0.8,
		regexp.MustCompile(`(?i)\b[A-Z][A-Za-z'\-]+\s+told\s+(?:me|us|reporters|the\s+\w+)\s+that\b`)},
	{"reported-speech", 0.8,
		regexp.MustCompile(`(?i)\b(?:he|she|they|[A-Z][A-Za-z'\-]+)\s+(?:said|claimed|stated|admitted|acknowledged|testified)\s+that\b`)},
	{"quoting-remarks", 0.5,
		regexp.MustCompile(`(?i)\bin\s+(?:his|her|their)\s+(?:own\s+)?(?:words|remarks|speech)\b`)},
	{"per-account", 0.4,
		regexp.MustCompile(`(?i)\bby\s+(?:his|her|their)\s+own\s+(?:account|admission)\b`)},
}

const hearsayNote = "verification requires confirming both the attribution and the underlying claim"

// hearsayScore returns the max-weight match and whether the sentence
// qualifies as hearsay.
func hearsayScore(sentence string) (float64, bool) {
	var score float64
	for _, p := range hearsayPatterns {
		if p.re.MatchString(sentence) {
			score += p.weight
		}
	}
	return score, score >= hearsayThreshold
}
