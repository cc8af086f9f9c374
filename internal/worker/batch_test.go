package worker

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/edforman-75/presscheck/internal/model"
	"github.com/edforman-75/presscheck/internal/verify"
)

func numericClaim(statement, raw string, value float64) model.Claim {
	return model.Claim{
		Statement:        statement,
		Category:         model.CategoryStandard,
		Verifiable:       true,
		VerificationType: model.VerifyStandard,
		NumericClaims: []model.NumericClaim{
			{Kind: model.NumericCurrency, Value: value, RawText: raw},
		},
	}
}

func TestVerifyBatch_OnePerClaimInOrder(t *testing.T) {
	var claims []model.Claim
	for i := 0; i < 12; i++ {
		claims = append(claims, numericClaim(
			fmt.Sprintf("Project %d costs $%d million.", i, i+1),
			fmt.Sprintf("$%d million", i+1),
			float64(i+1)*1e6,
		))
	}

	search := func(ctx context.Context, query string) ([]model.SearchResult, error) {
		return []model.SearchResult{{URL: "https://www.congress.gov/report"}}, nil
	}
	// Echo the claim's own figure back so every claim verifies true.
	fetch := func(ctx context.Context, url, prompt string) (string, error) {
		for _, c := range claims {
			if strings.Contains(prompt, c.Statement) {
				return "The report lists " + c.NumericClaims[0].RawText + " in spending.", nil
			}
		}
		return "", fmt.Errorf("unexpected prompt")
	}

	b := NewBatchVerifier(verify.NewGrounder(), search, fetch, 4)
	results := b.VerifyBatch(context.Background(), claims)

	if len(results) != len(claims) {
		t.Fatalf("Expected %d results, got %d", len(claims), len(results))
	}
	for i, r := range results {
		if r.Status != model.StatusTrue {
			t.Errorf("Claim %d: expected true, got %s (%s)", i, r.Status, r.Notes)
		}
		if len(r.Evidence) == 0 || !strings.Contains(r.Evidence[0].Excerpt, claims[i].NumericClaims[0].RawText) {
			t.Errorf("Claim %d: result not aligned with its own claim", i)
		}
	}
}

func TestVerifyBatch_Empty(t *testing.T) {
	b := NewBatchVerifier(verify.NewGrounder(), nil, nil, 2)
	if results := b.VerifyBatch(context.Background(), nil); results != nil {
		t.Errorf("Expected nil results for empty batch, got %v", results)
	}
}

func TestVerifyBatch_CancelledContextStillYieldsResults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	claims := []model.Claim{
		numericClaim("The fund holds $2 million.", "$2 million", 2e6),
		numericClaim("The fund holds $3 million.", "$3 million", 3e6),
	}
	search := func(ctx context.Context, query string) ([]model.SearchResult, error) {
		return nil, ctx.Err()
	}

	b := NewBatchVerifier(verify.NewGrounder(), search, nil, 2)
	results := b.VerifyBatch(ctx, claims)
	if len(results) != len(claims) {
		t.Fatalf("Every claim gets a result even under cancellation; got %d", len(results))
	}
	for i, r := range results {
		if r.Status != model.StatusUnsupported {
			t.Errorf("Claim %d: expected unsupported, got %s", i, r.Status)
		}
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	l := NewLimiter(1, 3)
	for i := 0; i < 3; i++ {
		if !l.Allow("https://example.com/page") {
			t.Fatalf("Call %d should fit the burst", i)
		}
	}
	if l.Allow("https://example.com/page") {
		t.Error("Burst exhausted; call should be limited")
	}
	// Other domains have their own budget.
	if !l.Allow("https://other.example.org/page") {
		t.Error("A fresh domain must not share the exhausted budget")
	}
}

func TestLimiter_ZeroRateMeansUnlimited(t *testing.T) {
	l := NewLimiter(0, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for i := 0; i < 10; i++ {
		if err := l.Wait(ctx, "https://example.com/"); err != nil {
			t.Fatalf("Unlimited limiter must never block: %v", err)
		}
	}
}

func TestLimiter_BadURL(t *testing.T) {
	l := NewLimiter(1, 1)
	if l.Allow("://not a url") {
		t.Error("Unparseable URLs must be denied")
	}
}
