package collab

import (
	"context"
	"fmt"
	"strings"

	"github.com/edforman-75/presscheck/internal/model"
	openai "github.com/sashabaranov/go-openai"
)

const summarizerSystemPrompt = `You condense web page content for a fact-checking engine.
Report only facts and figures found in the page. Do not speculate, do not
add outside knowledge, and say "no relevant content" when the page does not
address the request.`

// maxSummarizeInput bounds how much page text is sent per request.
const maxSummarizeInput = 12000

// Summarizer condenses fetched page content through an OpenAI-compatible
// chat endpoint, guided by the grounding engine's per-claim prompt.
type Summarizer struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewSummarizer builds a Summarizer from the LLM config. It returns nil when
// no provider is configured, which disables summarization.
func NewSummarizer(cfg model.LLMConfig) (*Summarizer, error) {
	if cfg.Provider == "" {
		return nil, nil
	}
	if cfg.APIKey == "" && cfg.BaseURL == "" {
		return nil, fmt.Errorf("LLM provider %q requires an API key or base URL", cfg.Provider)
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	chatModel := cfg.Model
	if chatModel == "" {
		chatModel = "gpt-4o-mini"
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1000
	}

	return &Summarizer{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     chatModel,
		maxTokens: maxTokens,
	}, nil
}

// Summarize condenses content according to prompt.
func (s *Summarizer) Summarize(ctx context.Context, content, prompt string) (string, error) {
	if len(content) > maxSummarizeInput {
		content = content[:maxSummarizeInput]
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summarizerSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt + "\n\nPage content:\n" + content},
		},
	})
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("summarize: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
