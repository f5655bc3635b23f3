package search

import (
	"context"
	"testing"
	"time"
)

func TestLimitedProvider_PassesThrough(t *testing.T) {
	upstream := &countingProvider{}
	provider := WithRateLimit(upstream, 100, 1)

	if provider.Name() != "counting" {
		t.Errorf("Name() = %s, want counting", provider.Name())
	}

	if _, err := provider.Search(context.Background(), "q"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upstream.calls != 1 {
		t.Errorf("expected one upstream call, got %d", upstream.calls)
	}
}

func TestLimitedProvider_CanceledContext(t *testing.T) {
	upstream := &countingProvider{}
	// Tiny rate with an exhausted burst forces Wait to block
	provider := WithRateLimit(upstream, 0.001, 1)

	ctx := context.Background()
	if _, err := provider.Search(ctx, "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cancelCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	if _, err := provider.Search(cancelCtx, "second"); err == nil {
		t.Fatal("expected context deadline error while waiting for rate limit")
	}
	if upstream.calls != 1 {
		t.Errorf("rate-limited call must not reach upstream, calls = %d", upstream.calls)
	}
}
