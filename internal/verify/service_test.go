package verify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/model"
	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/search"
)

// stubSearcher returns canned results per query substring and records the
// queries it was asked
type stubSearcher struct {
	results map[string][]model.SearchResult
	err     error
	errOn   string // query substring that triggers err; empty means always
	queries []string
}

func (s *stubSearcher) Search(_ context.Context, query string) ([]model.SearchResult, error) {
	s.queries = append(s.queries, query)
	if s.err != nil && (s.errOn == "" || strings.Contains(query, s.errOn)) {
		return nil, s.err
	}
	for sub, res := range s.results {
		if strings.Contains(query, sub) {
			return res, nil
		}
	}
	return nil, nil
}

var googleResults = []model.SearchResult{
	{
		Title:   "Google Careers - Software Engineering",
		URL:     "https://careers.google.com/jobs",
		Snippet: "Apply to Software Engineer jobs at Google...",
	},
	{
		Title:   "Google | LinkedIn",
		URL:     "https://www.linkedin.com/company/google/",
		Snippet: "Google is a multinational technology company.",
	},
}

func TestService_VerifyInternships_FullFootprint(t *testing.T) {
	stub := &stubSearcher{results: map[string][]model.SearchResult{"Google": googleResults}}
	svc := New(stub, zap.NewNop())

	claims := []model.ClaimedInternship{{Company: "Google", Role: "Software Engineer"}}
	results, err := svc.VerifyInternships(context.Background(), claims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]model.VerificationResult{
		"Google - Software Engineer": {
			WebsiteFound:         true,
			LinkedInFound:        true,
			MultipleSourcesFound: true,
			RoleMatch:            true,
			TrustScore:           1.00,
			Verdict:              model.VerdictHigh,
			RoleReason:           "Role verified via public digital footprint",
			MaturityLevel:        model.MaturityGlobal,
		},
	}
	if diff := cmp.Diff(want, results); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestService_VerifyInternships_QueryTemplates(t *testing.T) {
	stub := &stubSearcher{}
	svc := New(stub, zap.NewNop())

	claims := []model.ClaimedInternship{{Company: "Acme", Role: "Designer"}}
	if _, err := svc.VerifyInternships(context.Background(), claims); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"Acme official website linkedin",
		"Acme Designer internship",
		"Designer at Acme linkedin",
	}
	if diff := cmp.Diff(want, stub.queries); diff != "" {
		t.Errorf("queries mismatch (-want +got):\n%s", diff)
	}
}

func TestService_VerifyInternships_NoEvidence(t *testing.T) {
	stub := &stubSearcher{}
	svc := New(stub, zap.NewNop())

	claims := []model.ClaimedInternship{{Company: "Ghost Startup", Role: "Engineer"}}
	results, err := svc.VerifyInternships(context.Background(), claims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := results["Ghost Startup - Engineer"]
	if got.WebsiteFound || got.LinkedInFound || got.MultipleSourcesFound || got.RoleMatch {
		t.Errorf("expected all signals false, got %+v", got)
	}
	if got.TrustScore != 0.0 {
		t.Errorf("expected score 0.0, got %v", got.TrustScore)
	}
	if got.Verdict != model.VerdictLow {
		t.Errorf("expected Low verdict, got %s", got.Verdict)
	}
	if got.MaturityLevel != model.MaturityUnknown {
		t.Errorf("expected Unknown maturity, got %s", got.MaturityLevel)
	}
}

func TestService_VerifyInternships_DuplicateKeyLaterWins(t *testing.T) {
	// Same company+role twice; only the second pass (queries 4-6) sees
	// results, so the surviving entry must reflect the later claim
	callCount := 0
	counting := searcherFunc(func(ctx context.Context, query string) ([]model.SearchResult, error) {
		callCount++
		if callCount > 3 {
			return googleResults, nil
		}
		return nil, nil
	})
	svc := New(counting, zap.NewNop())

	claims := []model.ClaimedInternship{
		{Company: "Google", Role: "Software Engineer"},
		{Company: "Google", Role: "Software Engineer"},
	}
	results, err := svc.VerifyInternships(context.Background(), claims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(results))
	}
	got := results["Google - Software Engineer"]
	if got.Verdict != model.VerdictHigh {
		t.Errorf("expected the later claim's result to win, got %+v", got)
	}
}

type searcherFunc func(ctx context.Context, query string) ([]model.SearchResult, error)

func (f searcherFunc) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	return f(ctx, query)
}

func TestService_VerifyInternships_QuotaErrorPropagates(t *testing.T) {
	quotaErr := fmt.Errorf("gemini: %w: daily limit", search.ErrQuotaExceeded)
	stub := &stubSearcher{err: quotaErr}
	svc := New(stub, zap.NewNop())

	claims := []model.ClaimedInternship{{Company: "Google", Role: "Engineer"}}
	_, err := svc.VerifyInternships(context.Background(), claims)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, search.ErrQuotaExceeded) {
		t.Errorf("quota error kind lost through the orchestrator: %v", err)
	}
}

func TestService_VerifyInternships_FailureAbortsBatch(t *testing.T) {
	// Failure on the second claim aborts the batch: no partial results
	stub := &stubSearcher{err: errors.New("upstream down"), errOn: "Broken"}
	stub.results = map[string][]model.SearchResult{"Google": googleResults}
	svc := New(stub, zap.NewNop())

	claims := []model.ClaimedInternship{
		{Company: "Google", Role: "Software Engineer"},
		{Company: "Broken Co", Role: "Engineer"},
	}
	results, err := svc.VerifyInternships(context.Background(), claims)
	if err == nil {
		t.Fatal("expected an error")
	}
	if results != nil {
		t.Errorf("expected no partial results, got %v", results)
	}
}
