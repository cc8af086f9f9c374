package verify

import (
	"context"
	"fmt"
	"strings"

	"github.com/edforman-75/presscheck/internal/model"
)

// SearchFunc is the injected search collaborator: a query in, ranked
// candidate URLs out.
type SearchFunc func(ctx context.Context, query string) ([]model.SearchResult, error)

// FetchFunc is the injected fetch collaborator: it returns raw or summarized
// page content for a URL, optionally guided by a prompt.
type FetchFunc func(ctx context.Context, url, prompt string) (string, error)

// DefaultMaxCandidates bounds search/fetch calls per claim.
const DefaultMaxCandidates = 3

const maxExcerptLen = 600

// Grounder runs the grounding protocol for claims.
type Grounder struct {
	MaxCandidates int
}

// NewGrounder creates a Grounder with the default candidate budget.
func NewGrounder() *Grounder {
	return &Grounder{MaxCandidates: DefaultMaxCandidates}
}

// Ground builds a search query for the claim, evaluates candidate evidence
// in descending rank order, and applies the decision table. Candidates are
// evaluated sequentially; a high-confidence verdict short-circuits the rest.
// Fetch failures are recorded as error attempts and never abort grounding:
// callers always receive a VerificationResult.
func (g *Grounder) Ground(ctx context.Context, claim model.Claim, search SearchFunc, fetch FetchFunc) model.VerificationResult {
	maxCandidates := g.MaxCandidates
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}

	query := BuildQuery(claim)
	results, err := search(ctx, query)
	if err != nil {
		res := Verify(claim, nil)
		res.Notes = fmt.Sprintf("search failed: %v", err)
		return res
	}
	if len(results) > maxCandidates {
		results = results[:maxCandidates]
	}

	var evidence []model.Evidence
	var attempts []model.GroundingAttempt

	for _, candidate := range results {
		select {
		case <-ctx.Done():
			attempts = append(attempts, model.GroundingAttempt{URL: candidate.URL, Status: "skipped", Error: ctx.Err().Error()})
			continue
		default:
		}

		content, err := fetch(ctx, candidate.URL, fetchPrompt(claim))
		if err != nil {
			attempts = append(attempts, model.GroundingAttempt{URL: candidate.URL, Status: "error", Error: err.Error()})
			continue
		}

		ev := buildEvidence(claim, candidate.URL, content)
		evidence = append(evidence, ev)
		attempts = append(attempts, model.GroundingAttempt{URL: candidate.URL, Status: "evaluated"})

		// Short-circuit on a credible source reaching a strong verdict
		// either way; lower-ranked candidates cannot change it.
		contradiction := len(claim.NumericClaims) > 0 &&
			ev.MatchConfidence > 0 && ev.MatchConfidence < contradictionCeiling
		if ev.CredibilityScore >= credibleSourceScore &&
			(ev.MatchConfidence >= trueThreshold || contradiction) {
			break
		}
	}

	result := Verify(claim, evidence)
	result.Attempts = attempts
	if len(evidence) == 0 && len(attempts) > 0 {
		result.Notes = "insufficient data: no candidate produced usable evidence"
	}
	return result
}

// buildEvidence scores one fetched page against the claim.
func buildEvidence(claim model.Claim, url, content string) model.Evidence {
	domain, tier, score := ClassifyDomain(url)
	consistency, _ := consistencyAgainst(claim, content)

	excerpt := strings.TrimSpace(content)
	if len(excerpt) > maxExcerptLen {
		excerpt = excerpt[:maxExcerptLen]
	}

	return model.Evidence{
		URL:              url,
		Domain:           domain,
		CredibilityTier:  tier,
		CredibilityScore: score,
		SupportsClaim:    consistency >= misleadingThreshold,
		MatchConfidence:  consistency,
		Excerpt:          excerpt,
	}
}

// BuildQuery derives a search query from the claim: content words plus
// numeric tokens plus the attribution.
func BuildQuery(claim model.Claim) string {
	terms := contentWords(claim.Statement)
	if len(terms) > 10 {
		terms = terms[:10]
	}
	for _, nc := range claim.NumericClaims {
		terms = append(terms, nc.RawText)
	}
	if claim.Attribution != "" {
		terms = append(terms, claim.Attribution)
	}
	return strings.Join(terms, " ")
}

// fetchPrompt guides a summarizing fetch collaborator toward the facts the
// claim needs checked.
func fetchPrompt(claim model.Claim) string {
	var b strings.Builder
	b.WriteString("Extract facts and figures relevant to this claim: ")
	b.WriteString(claim.Statement)
	if len(claim.NumericClaims) > 0 {
		b.WriteString(" Report any values for:")
		for _, nc := range claim.NumericClaims {
			b.WriteString(" ")
			b.WriteString(nc.RawText)
		}
	}
	return b.String()
}
