package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/edforman-75/presscheck/internal/model"
	"github.com/edforman-75/presscheck/internal/pipeline"
	"github.com/spf13/cobra"
)

var showRejected bool

// claimsCmd represents the claims command
var claimsCmd = &cobra.Command{
	Use:   "claims <file>",
	Short: "Extract checkable factual claims from a press release",
	Long: `Claims splits the release into sentences and classifies each one:
- private_data: internal or campaign-controlled figures, unverifiable
- plausible_deniability: assertion smuggled behind deniable framing
- hearsay: the claim is that someone said something
- comparative: needs a multi-step verification plan
- standard: directly checkable factual statement

Hedged or number-free sentences are rejected as non-factual.

Example:
  presscheck claims release.txt
  presscheck claims release.txt --rejected`,
	Args: cobra.ExactArgs(1),
	RunE: runClaims,
}

func init() {
	rootCmd.AddCommand(claimsCmd)

	claimsCmd.Flags().BoolVar(&showRejected, "rejected", false, "include rejected non-factual statements")
}

func runClaims(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	extracted, nonFactual, err := pipeline.NewPipeline(cfg).ExtractClaims(text)
	if err != nil {
		return fmt.Errorf("extract claims: %w", err)
	}

	out := struct {
		Claims     []model.Claim               `json:"claims"`
		NonFactual []model.NonFactualStatement `json:"non_factual,omitempty"`
	}{Claims: extracted}
	if showRejected {
		out.NonFactual = nonFactual
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Extracted %d claims, rejected %d statements\n", len(extracted), len(nonFactual))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
