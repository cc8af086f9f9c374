package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/edforman-75/presscheck/internal/pipeline"
	"github.com/edforman-75/presscheck/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <listfile>",
	Short: "Verify multiple press releases in parallel",
	Long: `Batch processes multiple release files concurrently:
- Read file paths from the list file (one per line, # comments allowed)
- Analyze files in parallel with a configurable worker count
- Claim grounding within each file also fans out across workers
- Write a JSON and Markdown report per release

Example:
  presscheck batch releases.txt
  presscheck batch releases.txt --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./presscheck-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	batchCmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent override")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable collaborator cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	batchCmd.Flags().StringVar(&searchEndpoint, "search-endpoint", "", "search collaborator endpoint URL")
	batchCmd.Flags().IntVar(&maxCandidates, "max-candidates", 0, "max evidence candidates per claim")

	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "summarize fetched pages with an LLM")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

// checkJob analyzes one release file on the batch pool.
type checkJob struct {
	path string
	pipe *pipeline.Pipeline
}

// checkResult pairs a file path with its report or failure.
type checkResult struct {
	path   string
	report *pipeline.Report
	err    error
}

func (r *checkResult) GetError() error { return r.err }

func (j *checkJob) Execute(ctx context.Context) worker.Result {
	text, err := readInput(j.path)
	if err != nil {
		return &checkResult{path: j.path, err: err}
	}
	report, err := j.pipe.Check(ctx, j.path, text)
	return &checkResult{path: j.path, report: report, err: err}
}

func runBatch(cmd *cobra.Command, args []string) error {
	listFile := args[0]
	timeout = batchTimeout

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.BatchWorkers = concurrency

	paths, err := readListFile(listFile)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no file paths in %s", listFile)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Processing %d releases with %d workers\n", len(paths), concurrency)

	p := pipeline.NewPipeline(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	pool := worker.NewPool(ctx, concurrency)
	pool.Start()
	for _, path := range paths {
		pool.Submit(&checkJob{path: path, pipe: p})
	}
	results := pool.Wait()

	successCount := 0
	failureCount := 0
	for _, r := range results {
		res := r.(*checkResult)
		if res.err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", res.path, res.err)
			continue
		}
		successCount++

		slug := sanitizeFilename(res.path)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")
		if err := p.RenderReport(res.report, jsonPath, mdPath, false); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", res.path, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "OK   %s (%s, %d claims)\n",
			res.path, res.report.Parse.Classification.ReleaseType, len(res.report.Claims))
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d succeeded, %d failed, reports in %s\n", successCount, failureCount, outputDir)
	if failureCount > 0 && successCount == 0 {
		return fmt.Errorf("all %d releases failed", failureCount)
	}
	return nil
}

// readListFile reads file paths, one per line, skipping blanks and comments.
func readListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return paths, nil
}

// sanitizeFilename turns a file path into a safe report basename.
func sanitizeFilename(s string) string {
	s = filepath.Base(s)
	if ext := filepath.Ext(s); ext != "" {
		s = strings.TrimSuffix(s, ext)
	}
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_", " ", "-",
	)
	s = replacer.Replace(s)
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "report"
	}
	return s
}
