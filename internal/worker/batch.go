package worker

import (
	"context"
	"sort"

	"github.com/edforman-75/presscheck/internal/model"
	"github.com/edforman-75/presscheck/internal/verify"
)

// GroundJob grounds one claim through the injected collaborators.
type GroundJob struct {
	Index    int
	Claim    model.Claim
	Grounder *verify.Grounder
	Search   verify.SearchFunc
	Fetch    verify.FetchFunc
}

// GroundResult pairs a claim's verification result with its batch index.
type GroundResult struct {
	Index  int
	Claim  model.Claim
	Result model.VerificationResult
}

// GetError always returns nil: grounding never fails outright, failures are
// folded into the VerificationResult.
func (r *GroundResult) GetError() error { return nil }

// Execute runs the grounding protocol for the job's claim.
func (j *GroundJob) Execute(ctx context.Context) Result {
	return &GroundResult{
		Index:  j.Index,
		Claim:  j.Claim,
		Result: j.Grounder.Ground(ctx, j.Claim, j.Search, j.Fetch),
	}
}

// BatchVerifier grounds batches of claims concurrently. Claims share no
// state, so they fan out across the pool; evidence evaluation within one
// claim stays sequential for deterministic short-circuiting.
type BatchVerifier struct {
	grounder    *verify.Grounder
	search      verify.SearchFunc
	fetch       verify.FetchFunc
	concurrency int
}

// NewBatchVerifier creates a batch verifier over the given collaborators.
func NewBatchVerifier(grounder *verify.Grounder, search verify.SearchFunc, fetch verify.FetchFunc, concurrency int) *BatchVerifier {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &BatchVerifier{
		grounder:    grounder,
		search:      search,
		fetch:       fetch,
		concurrency: concurrency,
	}
}

// VerifyBatch grounds every claim and returns results in claim order.
func (b *BatchVerifier) VerifyBatch(ctx context.Context, claims []model.Claim) []model.VerificationResult {
	if len(claims) == 0 {
		return nil
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()
	for i, claim := range claims {
		pool.Submit(&GroundJob{
			Index:    i,
			Claim:    claim,
			Grounder: b.grounder,
			Search:   b.search,
			Fetch:    b.fetch,
		})
	}

	raw := pool.Wait()
	ground := make([]*GroundResult, 0, len(raw))
	for _, r := range raw {
		ground = append(ground, r.(*GroundResult))
	}
	sort.Slice(ground, func(i, j int) bool { return ground[i].Index < ground[j].Index })

	results := make([]model.VerificationResult, len(claims))
	for _, g := range ground {
		results[g.Index] = g.Result
	}
	// Claims the pool never reached (cancelled context) still get a result.
	for i := range results {
		if results[i].Status == "" {
			results[i] = model.VerificationResult{
				Status:     model.StatusUnsupported,
				Confidence: 0.4,
				Method:     model.MethodExact,
				Notes:      "grounding cancelled before evaluation",
			}
		}
	}
	return results
}
