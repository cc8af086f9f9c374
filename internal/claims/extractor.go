// Package claims segments press-release text into sentences and classifies
// each into a verifiability category. Categories are mutually exclusive and
// tested in a fixed priority order: private data, plausible deniability,
// hearsay, comparative, then hedging rejection and a factual-density gate
// before a sentence qualifies as a standard claim.
package claims

import (
	"regexp"
	"strings"

	"github.com/edforman-75/presscheck/internal/model"
)

const attributionBonus = 0.15

// sentenceAttribution captures "said X" / "according to X" attributions
// inside a claim sentence.
var sentenceAttribution = regexp.MustCompile(`(?:\bsaid\s+|\baccording\s+to\s+)((?:[A-Z][A-Za-z'\-]+\.?\s+){0,2}[A-Z][A-Za-z'\-]+)`)

// Extract classifies every sentence in the text and returns the claims in
// document order.
func Extract(text string) []model.Claim {
	var out []model.Claim
	scanner := newSentenceScanner(text)
	index := 0
	for {
		sentence, _, ok := scanner.Next()
		if !ok {
			break
		}
		idx := index
		index++
		if len(sentence) < 20 {
			continue
		}
		if claim, ok := classifySentence(sentence, idx); ok {
			out = append(out, claim)
		}
	}
	return out
}

// ExtractNonFactual returns sentences rejected by the hedging and density
// gates, with the reason for rejection.
func ExtractNonFactual(text string) []model.NonFactualStatement {
	var out []model.NonFactualStatement
	scanner := newSentenceScanner(text)
	index := 0
	for {
		sentence, _, ok := scanner.Next()
		if !ok {
			break
		}
		idx := index
		index++
		if len(sentence) < 20 {
			continue
		}
		// Only sentences that reach the hedging/density gates can be
		// rejected as non-factual.
		if _, matched := privateDataScore(sentence); matched {
			continue
		}
		if _, _, matched := deniabilityScore(sentence); matched {
			continue
		}
		if _, matched := hearsayScore(sentence); matched {
			continue
		}
		if _, matched := comparativeMatch(sentence); matched {
			continue
		}
		if hedge := hedgingScore(sentence); hedge > hedgingRejectThreshold {
			out = append(out, model.NonFactualStatement{
				Statement:     sentence,
				SentenceIndex: idx,
				Reason:        "hedged or speculative language",
				Score:         hedge,
			})
			continue
		}
		if density := factualDensity(sentence); density < densityRejectThreshold {
			out = append(out, model.NonFactualStatement{
				Statement:     sentence,
				SentenceIndex: idx,
				Reason:        "insufficient factual specifics",
				Score:         density,
			})
		}
	}
	return out
}

// classifySentence runs the fixed priority chain over one sentence. The
// second return is false when the sentence fails both gates.
func classifySentence(sentence string, idx int) (model.Claim, bool) {
	claim := model.Claim{
		Statement:     sentence,
		SentenceIndex: idx,
		NumericClaims: ExtractNumericClaims(sentence),
		Attribution:   captureAttribution(sentence),
	}

	if score, matched := privateDataScore(sentence); matched {
		claim.Category = model.CategoryPrivateData
		claim.Verifiable = false
		claim.VerificationType = model.VerifyUnverifiable
		claim.Confidence = clamp01(score)
		claim.Notes = "relies on campaign-controlled or unsourced private data"
		return claim, true
	}

	if score, labels, matched := deniabilityScore(sentence); matched {
		claim.Category = model.CategoryPlausibleDeniability
		claim.Verifiable = false
		claim.VerificationType = model.VerifyExtractUnderlying
		claim.Confidence = clamp01(score)
		claim.DeniabilityLabels = labels
		claim.Notes = "deniable phrasing implies a claim without asserting it"
		return claim, true
	}

	if score, matched := hearsayScore(sentence); matched {
		claim.Category = model.CategoryHearsay
		claim.Verifiable = true
		claim.VerificationType = model.VerifyTwoStep
		claim.Confidence = clamp01(score)
		claim.Notes = hearsayNote
		return claim, true
	}

	if plan, matched := comparativeMatch(sentence); matched {
		claim.Category = model.CategoryComparative
		claim.Verifiable = true
		claim.VerificationType = model.VerifyMultiStepComparative
		claim.Plan = plan
		claim.Confidence = blendConfidence(sentence, claim.Attribution)
		return claim, true
	}

	hedge := hedgingScore(sentence)
	if hedge > hedgingRejectThreshold {
		return model.Claim{}, false
	}
	density := factualDensity(sentence)
	if density < densityRejectThreshold {
		return model.Claim{}, false
	}

	claim.Category = model.CategoryStandard
	claim.Verifiable = true
	claim.VerificationType = model.VerifyStandard
	claim.Confidence = blendConfidence(sentence, claim.Attribution)
	return claim, true
}

// blendConfidence combines factual density, the hedging penalty, and an
// attribution bonus into the claim confidence.
func blendConfidence(sentence, attribution string) float64 {
	conf := 0.3 + 0.5*factualDensity(sentence) - 0.3*hedgingScore(sentence)
	if attribution != "" {
		conf += attributionBonus
	}
	return clamp01(conf)
}

// captureAttribution finds an in-sentence source attribution, if any.
func captureAttribution(sentence string) string {
	m := sentenceAttribution.FindStringSubmatch(sentence)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
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
