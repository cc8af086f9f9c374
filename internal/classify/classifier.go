// Package classify assigns a release type, subtypes, and topic tags to raw
// press-release text using weighted indicator rules. Classification is
// deterministic and side-effect-free.
package classify

import (
	"github.com/edforman-75/presscheck/internal/model"
)

// Classify scores the text against every type's rule set and returns the
// winning type with its score breakdown, plus subtype and issue detections.
func Classify(text string) model.ClassificationResult {
	scores := make(map[model.ReleaseType]int, len(scanOrder))
	indicators := make(map[model.ReleaseType][]string, len(scanOrder))
	for _, t := range scanOrder {
		scores[t] = 0
	}

	for _, t := range scanOrder {
		for _, r := range typeRules[t] {
			if r.re.MatchString(text) {
				scores[t] += r.weight
				indicators[t] = append(indicators[t], r.label)
			}
		}
	}
	dynamicScores(text, scores, indicators)

	winner := model.TypeUnknown
	best := 0
	for _, t := range scanOrder {
		if scores[t] > best {
			best = scores[t]
			winner = t
		}
	}

	result := model.ClassificationResult{
		ReleaseType: winner,
		Confidence:  scoreConfidence(best),
		Score:       best,
		Indicators:  indicators[winner],
		AllScores:   scores,
	}
	if winner == model.TypeUnknown {
		return result
	}

	result.Subtypes = detectSubtypes(text, winner)
	result.Issues = detectIssues(text)
	return result
}

// scoreConfidence maps a winning score to a confidence tier.
func scoreConfidence(score int) model.Confidence {
	switch {
	case score >= 10:
		return model.ConfidenceHigh
	case score >= 5:
		return model.ConfidenceMedium
	case score > 0:
		return model.ConfidenceLow
	default:
		return model.ConfidenceNone
	}
}
