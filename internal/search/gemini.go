package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/logger"
	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/model"
)

const defaultGeminiModel = "gemini-2.0-flash-lite-001"

// GeminiProvider backs the search collaborator with the Gemini API
type GeminiProvider struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
	logger    *zap.Logger
}

// NewGeminiProvider creates a Gemini-backed search provider
func NewGeminiProvider(ctx context.Context, cfg Config, log *zap.Logger) (*GeminiProvider, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	modelName := strings.TrimSpace(cfg.Model)
	if modelName == "" {
		modelName = defaultGeminiModel
	}

	return &GeminiProvider{
		client:    client,
		modelName: modelName,
		timeout:   cfg.Timeout,
		logger:    log,
	}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Search asks Gemini for simulated search results for the query
func (p *GeminiProvider) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	prompt := buildPrompt(query)

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	p.logger.Debug("gemini search request",
		zap.String("query", query),
		zap.String("model", p.modelName),
	)

	resp, err := p.client.Models.GenerateContent(ctx, p.modelName, genai.Text(prompt), nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
			return nil, fmt.Errorf("gemini: %w: %s", ErrQuotaExceeded, apiErr.Message)
		}
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Text == "" {
				continue
			}
			builder.WriteString(part.Text)
		}
	}
	raw := builder.String()

	p.logger.Debug("gemini search response",
		zap.String("query", query),
		zap.String("response_preview", logger.TruncateForLog(raw, 200)),
	)

	return decodeResults(p.logger, p.Name(), query, raw), nil
}
