package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/logger"
	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/model"
)

// OpenAIProvider backs the search collaborator with OpenAI chat completions
type OpenAIProvider struct {
	client    *openai.Client
	modelName string
	timeout   time.Duration
	logger    *zap.Logger
}

// NewOpenAIProvider creates an OpenAI-backed search provider
func NewOpenAIProvider(cfg Config, log *zap.Logger) (*OpenAIProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("openai api key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	modelName := strings.TrimSpace(cfg.Model)
	if modelName == "" {
		modelName = openai.GPT4oMini
	}

	return &OpenAIProvider{
		client:    openai.NewClientWithConfig(clientConfig),
		modelName: modelName,
		timeout:   cfg.Timeout,
		logger:    log,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Search asks the chat model for simulated search results for the query
func (p *OpenAIProvider) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	prompt := buildPrompt(query)

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	p.logger.Debug("openai search request",
		zap.String("query", query),
		zap.String("model", p.modelName),
	)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You simulate a web search engine for resume verification. Respond with strict JSON only.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.2,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("openai: %w: %s", ErrQuotaExceeded, apiErr.Message)
		}
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		p.logger.Warn("openai returned no choices", zap.String("query", query))
		return nil, nil
	}

	raw := resp.Choices[0].Message.Content

	p.logger.Debug("openai search response",
		zap.String("query", query),
		zap.String("response_preview", logger.TruncateForLog(raw, 200)),
	)

	return decodeResults(p.logger, p.Name(), query, raw), nil
}
