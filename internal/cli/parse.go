package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/edforman-75/presscheck/internal/pipeline"
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a press release into structure, quotes, and classification",
	Long: `Parse extracts the structural parts of a press release:
- Headline, subhead, and dateline with confidence tiers
- Quoted statements resolved to named speakers
- Release type with subtype and issue detections
- Release timing, contact block, and boilerplate

Output is JSON on stdout. Use "-" to read from stdin.

Example:
  presscheck parse release.txt
  cat release.txt | presscheck parse -`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	result, err := pipeline.NewPipeline(cfg).Parse(text)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
