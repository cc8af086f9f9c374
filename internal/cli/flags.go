package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/edforman-75/presscheck/internal/model"
	"github.com/spf13/viper"
)

var (
	timeout        time.Duration
	userAgent      string
	noCache        bool
	noFooter       bool
	insecureTLS    bool
	searchEndpoint string
	maxCandidates  int
	llmEnabled     bool
	llmModel       string
)

// buildConfig assembles engine configuration from defaults, the viper config
// file, and command flags, in ascending priority.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if timeout > 0 {
		cfg.HTTP.Timeout = timeout
	}
	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if searchEndpoint != "" {
		cfg.Search.Endpoint = searchEndpoint
	}
	if cfg.Search.APIKey == "" {
		cfg.Search.APIKey = os.Getenv("PRESSCHECK_SEARCH_API_KEY")
	}
	if maxCandidates > 0 {
		cfg.Grounding.MaxCandidates = maxCandidates
	}

	if llmEnabled {
		cfg.LLM.Provider = "openai"
		if llmModel != "" {
			cfg.LLM.Model = llmModel
		}
		if cfg.LLM.APIKey == "" {
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	return cfg, nil
}

// readInput reads the release text from a file path, or from stdin when the
// path is "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
