package model

import "time"

// Config is the engine configuration, loadable from
// ~/.presscheck/config.yaml via viper and overridable with PRESSCHECK_* env
// vars and CLI flags.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Search      SearchConfig      `yaml:"search" mapstructure:"search"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Grounding   GroundingConfig   `yaml:"grounding" mapstructure:"grounding"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Validation  ValidationConfig  `yaml:"validation" mapstructure:"validation"`
}

// HTTPConfig controls the default fetch collaborator.
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	InsecureTLS   bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
	RatePerSecond float64       `yaml:"rate_per_second" mapstructure:"rate_per_second"`
	RateBurst     int           `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// SearchConfig controls the default search collaborator.
type SearchConfig struct {
	Endpoint   string `yaml:"endpoint" mapstructure:"endpoint"`
	APIKey     string `yaml:"api_key" mapstructure:"api_key"`
	MaxResults int    `yaml:"max_results" mapstructure:"max_results"`
}

// CacheConfig controls collaborator result caching.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig bounds parallel work.
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers" mapstructure:"batch_workers"`
}

// GroundingConfig tunes the grounding engine.
type GroundingConfig struct {
	MaxCandidates int `yaml:"max_candidates" mapstructure:"max_candidates"`
}

// LLMConfig configures the optional summarizing fetch collaborator.
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"`
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"api_key"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// ValidationConfig bounds the technical-validation precondition.
type ValidationConfig struct {
	MaxBytes int `yaml:"max_bytes" mapstructure:"max_bytes"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "Presscheck/0.1 (+https://github.com/edforman-75/presscheck)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
			RatePerSecond: 2,
			RateBurst:     5,
		},
		Search: SearchConfig{
			MaxResults: 5,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
		Grounding: GroundingConfig{
			MaxCandidates: 3,
		},
		LLM: LLMConfig{
			MaxTokens: 1000,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
		Validation: ValidationConfig{
			MaxBytes: 1 << 20,
		},
	}
}
