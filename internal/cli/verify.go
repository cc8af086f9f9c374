package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/edforman-75/presscheck/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON string
	outMD   string
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Parse a release and ground its claims against external sources",
	Long: `Verify runs the full analysis:
- Parse structure, quotes, and classification
- Extract factual claims
- Ground each verifiable claim through the search and fetch collaborators
- Apply the verdict decision table (true, misleading, false, unsupported)

A search endpoint must be configured for grounding to find candidates;
without one every claim comes back unsupported.

Example:
  presscheck verify release.txt --json report.json --md report.md
  presscheck verify release.txt --search-endpoint https://search.example/api --llm`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path")
	verifyCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path")

	verifyCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall verification timeout")
	verifyCmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent override")
	verifyCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable collaborator cache")
	verifyCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	verifyCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification")
	verifyCmd.Flags().StringVar(&searchEndpoint, "search-endpoint", "", "search collaborator endpoint URL")
	verifyCmd.Flags().IntVar(&maxCandidates, "max-candidates", 0, "max evidence candidates per claim")

	verifyCmd.Flags().BoolVar(&llmEnabled, "llm", false, "summarize fetched pages with an LLM")
	verifyCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runVerify(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	p := pipeline.NewPipeline(cfg)

	if verbose {
		fmt.Fprintf(os.Stderr, "Verifying: %s\n", args[0])
	}

	report, err := p.Check(ctx, args[0], text)
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Extracted %d claims, grounded %d\n", len(report.Claims), len(report.Verifications))
	}

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}
