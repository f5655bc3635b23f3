package search

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	_ "embed"

	"go.uber.org/zap"

	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/logger"
	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/model"
)

// ErrQuotaExceeded marks an upstream rate/quota failure. Callers check it
// with errors.Is and map it to a "try again later" outcome; it is never
// retried here.
var ErrQuotaExceeded = errors.New("search quota exceeded")

// Provider is the search collaborator: it answers a free-text query with
// simulated search results backed by a generative model.
//
// Contract: a malformed upstream response degrades to an empty result set,
// not an error. Quota exhaustion wraps ErrQuotaExceeded. Anything else is a
// generic failure.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Search returns the results for one query
	Search(ctx context.Context, query string) ([]model.SearchResult, error)
}

//go:embed prompt.md
var promptTemplate string

// buildPrompt renders the verification prompt for one query
func buildPrompt(query string) string {
	return strings.ReplaceAll(promptTemplate, "{{QUERY}}", query)
}

// decodeResults parses the model's JSON output into search results.
// Generative backends occasionally wrap output in markdown fences or emit
// junk; fences are stripped and unparseable payloads degrade to an empty
// result set with a warning.
func decodeResults(log *zap.Logger, providerName, query, raw string) []model.SearchResult {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var results []model.SearchResult
	if err := json.Unmarshal([]byte(text), &results); err != nil {
		log.Warn("malformed search output, treating as empty",
			zap.String("provider", providerName),
			zap.String("query", query),
			zap.String("output_preview", logger.TruncateForLog(raw, 200)),
			zap.Error(err),
		)
		return nil
	}
	return results
}
