package search

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/model"
)

// LimitedProvider throttles upstream calls so a batch of claims does not
// burn through the provider's quota
type LimitedProvider struct {
	next    Provider
	limiter *rate.Limiter
}

// WithRateLimit wraps a provider with a request rate limit
func WithRateLimit(next Provider, requestsPerSecond float64, burst int) *LimitedProvider {
	if burst <= 0 {
		burst = 1
	}
	return &LimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Name returns the wrapped provider's name
func (p *LimitedProvider) Name() string {
	return p.next.Name()
}

// Search waits for rate limit clearance before calling the provider
func (p *LimitedProvider) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	return p.next.Search(ctx, query)
}
