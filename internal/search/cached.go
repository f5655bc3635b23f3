package search

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/cache"
	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/model"
)

// CachedProvider memoizes search results by exact query text. Concurrent
// lookups of the same query collapse into a single upstream call.
type CachedProvider struct {
	next   Provider
	store  cache.Cache
	group  singleflight.Group
	logger *zap.Logger
}

// WithCache wraps a provider with query-result caching. Entry lifetime is
// owned by the store: each cache layer applies its own configured TTL.
func WithCache(next Provider, store cache.Cache, log *zap.Logger) *CachedProvider {
	return &CachedProvider{
		next:   next,
		store:  store,
		logger: log,
	}
}

// Name returns the wrapped provider's name
func (p *CachedProvider) Name() string {
	return p.next.Name()
}

// Search serves from cache when possible. Errors are never cached, so a
// failed query is retried on the next call.
func (p *CachedProvider) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	key := cache.Key(query)

	if data, found := p.store.Get(key); found {
		var results []model.SearchResult
		if err := json.Unmarshal(data, &results); err == nil {
			p.logger.Debug("search cache hit", zap.String("query", query))
			return results, nil
		}
		// Corrupt entry, drop it and fall through to the provider
		_ = p.store.Delete(key)
	}

	v, err, _ := p.group.Do(key, func() (interface{}, error) {
		results, err := p.next.Search(ctx, query)
		if err != nil {
			return nil, err
		}

		if data, err := json.Marshal(results); err == nil {
			if err := p.store.Set(key, data, 0); err != nil {
				p.logger.Warn("search cache write failed", zap.String("query", query), zap.Error(err))
			}
		}
		return results, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]model.SearchResult), nil
}
