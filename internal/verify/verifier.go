// Package verify grounds extracted claims against external evidence. The
// pure Verify decision table turns evidence consistency into a status and
// confidence; Ground supplies evidence through injected search and fetch
// collaborators.
package verify

import (
	"fmt"

	"github.com/edforman-75/presscheck/internal/model"
)

// Decision-table thresholds.
const (
	trueThreshold        = 0.85
	misleadingThreshold  = 0.55
	credibleSourceScore  = 0.7
	contradictionCeiling = 0.35

	hedgePenaltyPerMarker = 0.05
	hedgePenaltyCap       = 0.2
)

// Verify applies the decision table to a claim and its evidence. It never
// fails; absence of evidence yields Unsupported.
func Verify(claim model.Claim, evidence []model.Evidence) model.VerificationResult {
	if len(evidence) == 0 {
		conf := 0.45
		if claim.HasDeniabilityMarkers() {
			conf = 0.4
		}
		return finish(claim, model.VerificationResult{
			Status:     model.StatusUnsupported,
			Confidence: conf,
			Method:     model.MethodExact,
			Notes:      "no evidence found for this claim",
		})
	}

	// A credible contradicting source overrides consistency scoring. Zero
	// match confidence means the source never addressed the claim, which
	// is not a contradiction.
	for _, ev := range evidence {
		if !ev.SupportsClaim && ev.MatchConfidence > 0 && ev.CredibilityScore >= credibleSourceScore {
			return finish(claim, model.VerificationResult{
				Status:     model.StatusFalse,
				Confidence: ev.CredibilityScore,
				Method:     method(claim),
				Evidence:   evidence,
				Notes:      fmt.Sprintf("contradicted by credible source %s", ev.Domain),
			})
		}
	}

	best := 0.0
	for _, ev := range evidence {
		if ev.MatchConfidence > best {
			best = ev.MatchConfidence
		}
	}

	result := model.VerificationResult{
		Method:   method(claim),
		Evidence: evidence,
	}
	switch {
	case best >= trueThreshold:
		result.Status = model.StatusTrue
		result.Confidence = best
	case best >= misleadingThreshold:
		result.Status = model.StatusMisleading
		result.Confidence = best
		result.Notes = "evidence partially matches the claimed values"
	case best > 0:
		result.Status = model.StatusFalse
		result.Confidence = 1 - best
		result.Notes = "evidence diverges from the claimed values"
	default:
		result.Status = model.StatusUnsupported
		result.Confidence = 0.45
		result.Notes = "evidence did not address the claim"
	}
	return finish(claim, result)
}

// method picks the comparison method recorded on the result.
func method(claim model.Claim) model.VerificationMethod {
	if len(claim.NumericClaims) > 0 {
		return model.MethodNumericRange
	}
	return model.MethodExact
}

// finish applies the post-hoc hedge penalty for claims carrying deniability
// markers: 0.05 per marker, capped at 0.2, floored at zero confidence.
func finish(claim model.Claim, result model.VerificationResult) model.VerificationResult {
	if !claim.HasDeniabilityMarkers() {
		return result
	}
	penalty := hedgePenaltyPerMarker * float64(len(claim.DeniabilityLabels))
	if penalty > hedgePenaltyCap {
		penalty = hedgePenaltyCap
	}
	result.Confidence -= penalty
	if result.Confidence < 0 {
		result.Confidence = 0
	}
	if result.Notes != "" {
		result.Notes += "; "
	}
	result.Notes += "confidence reduced for deniability markers"
	return result
}
