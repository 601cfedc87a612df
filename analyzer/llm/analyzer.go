// Package llm forwards analysis prompts to an OpenAI-compatible model.
// The model is the external reasoner; this adapter only transports the
// prompt and parses the structured reply.
package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/doclens/doclens/analyzer"
	"github.com/doclens/doclens/document"
)

const maxAttempts = 3

// Analyzer implements analyzer.Analyzer over an OpenAI-compatible chat API.
type Analyzer struct {
	client llms.Model
}

// Config holds connection settings for the reasoning model.
type Config struct {
	// BaseURL of the OpenAI-compatible endpoint, e.g. http://localhost:11434/v1
	BaseURL string `yaml:"baseURL"`
	// Model identifier, e.g. "gpt-4o-mini" or "qwen2.5:3b"
	Model string `yaml:"model"`
	// APIKey is optional; local endpoints accept any token.
	APIKey string `yaml:"apiKey"`
}

// New creates an Analyzer for the configured endpoint.
func New(cfg Config) (*Analyzer, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("llm: model is required")
	}
	token := cfg.APIKey
	if token == "" {
		// Local OpenAI-compatible services accept any non-empty token.
		token = "none"
	}
	opts := []openai.Option{
		openai.WithToken(token),
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	client, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}
	return &Analyzer{client: client}, nil
}

// Analyze sends the batch prompt to the model and parses its JSON verdicts.
// Malformed replies are retried a bounded number of times.
func (a *Analyzer) Analyze(ctx context.Context, query string, docs []analyzer.Input) ([]document.Analysis, error) {
	prompt := analyzer.BuildPrompt(query, docs)
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(prompt)},
		},
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		response, err := a.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			return nil, err
		}
		if len(response.Choices) == 0 {
			return nil, nil
		}
		analyses, err := analyzer.ParseResponse(response.Choices[0].Content)
		if err == nil {
			return analyses, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
