package verify

import (
	"math"
	"strings"

	"github.com/edforman-75/presscheck/internal/claims"
	"github.com/edforman-75/presscheck/internal/model"
)

// countMismatchScore sits below contradictionCeiling so a wrong count from
// a credible source resolves as contradicted rather than unsupported.
const countMismatchScore = 0.2

// Numeric consistency compares the claim's declared numbers against numerals
// extracted from an evidence excerpt under unit-aware tolerance: exact for
// counts, a 15% band for currency, ratio-based for percentages. The maximum
// consistency across all evidence items wins.

// consistencyAgainst scores one excerpt against the claim, returning the
// consistency in [0, 1] and the comparison method used.
func consistencyAgainst(claim model.Claim, excerpt string) (float64, model.VerificationMethod) {
	if len(claim.NumericClaims) == 0 {
		return textOverlap(claim.Statement, excerpt), model.MethodExact
	}

	evidenceNumbers := claims.ExtractNumericClaims(excerpt)
	if len(evidenceNumbers) == 0 {
		return 0, model.MethodNumericRange
	}

	best := 0.0
	for _, cn := range claim.NumericClaims {
		for _, en := range evidenceNumbers {
			if cn.Kind != en.Kind {
				continue
			}
			if c := numericConsistency(cn, en); c > best {
				best = c
			}
		}
	}
	return best, model.MethodNumericRange
}

// numericConsistency scores one claim-number against one evidence-number.
func numericConsistency(cn, en model.NumericClaim) float64 {
	if cn.Value == 0 && en.Value == 0 {
		return 1
	}
	if cn.Value == 0 || en.Value == 0 {
		return 0
	}

	switch cn.Kind {
	case model.NumericCount:
		// Counts carry no tolerance band; any mismatch reads as a
		// contradiction, not partial support.
		if cn.Value == en.Value {
			return 1
		}
		return countMismatchScore
	case model.NumericPercentage:
		// Ratio of the smaller to the larger value.
		return clamp01(math.Min(cn.Value, en.Value) / math.Max(cn.Value, en.Value))
	default:
		// Currency: 1 - relative difference keeps values inside the
		// 15% band in the 0.85-1.0 range.
		return clamp01(1 - relDiff(cn.Value, en.Value))
	}
}

func relDiff(a, b float64) float64 {
	return math.Abs(a-b) / math.Max(math.Abs(a), math.Abs(b))
}

// textOverlap measures content-word overlap between claim and excerpt for
// claims without numeric assertions.
func textOverlap(statement, excerpt string) float64 {
	claimWords := contentWords(statement)
	if len(claimWords) == 0 {
		return 0
	}
	excerptSet := make(map[string]bool)
	for _, w := range contentWords(excerpt) {
		excerptSet[w] = true
	}
	hits := 0
	for _, w := range claimWords {
		if excerptSet[w] {
			hits++
		}
	}
	return float64(hits) / float64(len(claimWords))
}

// stopwords excluded from query building and overlap scoring.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true,
	"has": true, "have": true, "he": true, "her": true, "his": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"our": true, "she": true, "that": true, "the": true, "their": true,
	"they": true, "this": true, "to": true, "was": true, "we": true,
	"were": true, "will": true, "with": true, "now": true, "than": true,
}

func contentWords(text string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, `.,;:!?"'()[]`+"“”")
		if len(w) < 3 || stopwords[w] {
			continue
		}
		words = append(words, w)
	}
	return words
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
