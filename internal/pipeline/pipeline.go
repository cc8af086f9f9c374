package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/edforman-75/presscheck/internal/cache"
	"github.com/edforman-75/presscheck/internal/claims"
	"github.com/edforman-75/presscheck/internal/classify"
	"github.com/edforman-75/presscheck/internal/collab"
	"github.com/edforman-75/presscheck/internal/model"
	"github.com/edforman-75/presscheck/internal/quote"
	"github.com/edforman-75/presscheck/internal/structure"
	"github.com/edforman-75/presscheck/internal/verify"
	"github.com/edforman-75/presscheck/internal/worker"
)

// Pipeline wires the extractors, the grounding engine, and the default
// collaborators behind one entry point.
type Pipeline struct {
	grounder *verify.Grounder
	batch    *worker.BatchVerifier
	searcher *collab.Searcher
	fetcher  *collab.Fetcher
	renderer *Renderer
	config   *model.Config
}

// NewPipeline creates a pipeline with the given configuration.
func NewPipeline(cfg *model.Config) *Pipeline {
	var store cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			store = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 2*cfg.Cache.MemoryTTL)
		}
	}

	summarizer, err := collab.NewSummarizer(cfg.LLM)
	if err != nil {
		fmt.Printf("Warning: failed to initialize LLM provider: %v\n", err)
		summarizer = nil
	}

	grounder := verify.NewGrounder()
	if cfg.Grounding.MaxCandidates > 0 {
		grounder.MaxCandidates = cfg.Grounding.MaxCandidates
	}

	searcher := collab.NewSearcher(cfg.Search, cfg.HTTP, store)
	fetcher := collab.NewFetcher(cfg.HTTP, store, summarizer)

	return &Pipeline{
		grounder: grounder,
		batch:    worker.NewBatchVerifier(grounder, searcher.Search, fetcher.Fetch, cfg.Concurrency.BatchWorkers),
		searcher: searcher,
		fetcher:  fetcher,
		renderer: NewRenderer(cfg.Output.IncludeFooter),
		config:   cfg,
	}
}

// Report is the complete analysis of one press release.
type Report struct {
	Source        string                      `json:"source,omitempty"`
	CheckedAt     time.Time                   `json:"checked_at"`
	Parse         model.ParseResult           `json:"parse"`
	Claims        []model.Claim               `json:"claims,omitempty"`
	NonFactual    []model.NonFactualStatement `json:"non_factual,omitempty"`
	Verifications []model.VerificationResult  `json:"verifications,omitempty"`
}

// Parse validates the input and runs the structural extractor, the quote
// resolver, and the classifier. Only validation errors escape.
func (p *Pipeline) Parse(text string) (*model.ParseResult, error) {
	if err := validateInput(text, p.config.Validation.MaxBytes); err != nil {
		return nil, err
	}

	st := structure.Extract(text)
	return &model.ParseResult{
		Structure:      st,
		Quotes:         quote.Extract(text, st.Headline, st.Subhead, st.Dateline),
		Classification: classify.Classify(text),
	}, nil
}

// ExtractClaims validates the input and runs claim extraction, returning
// both accepted claims and rejected non-factual statements.
func (p *Pipeline) ExtractClaims(text string) ([]model.Claim, []model.NonFactualStatement, error) {
	if err := validateInput(text, p.config.Validation.MaxBytes); err != nil {
		return nil, nil, err
	}
	return claims.Extract(text), claims.ExtractNonFactual(text), nil
}

// VerifyClaim grounds a single claim through the default collaborators.
func (p *Pipeline) VerifyClaim(ctx context.Context, claim model.Claim) model.VerificationResult {
	return p.grounder.Ground(ctx, claim, p.searcher.Search, p.fetcher.Fetch)
}

// VerifyClaims grounds a batch of claims concurrently; results come back in
// claim order, one per claim.
func (p *Pipeline) VerifyClaims(ctx context.Context, cs []model.Claim) []model.VerificationResult {
	return p.batch.VerifyBatch(ctx, cs)
}

// Check runs the full analysis: parse, extract claims, and ground every
// verifiable claim.
func (p *Pipeline) Check(ctx context.Context, source, text string) (*Report, error) {
	parsed, err := p.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	extracted, nonFactual, err := p.ExtractClaims(text)
	if err != nil {
		return nil, fmt.Errorf("extract claims: %w", err)
	}

	verifiable := make([]model.Claim, 0, len(extracted))
	for _, c := range extracted {
		if c.Verifiable {
			verifiable = append(verifiable, c)
		}
	}

	return &Report{
		Source:        source,
		CheckedAt:     time.Now().UTC(),
		Parse:         *parsed,
		Claims:        extracted,
		NonFactual:    nonFactual,
		Verifications: p.batch.VerifyBatch(ctx, verifiable),
	}, nil
}

// RenderReport renders the report to the configured outputs.
func (p *Pipeline) RenderReport(report *Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}
