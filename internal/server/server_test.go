package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/model"
	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/search"
)

type stubVerifier struct {
	results map[string]model.VerificationResult
	err     error
}

func (s *stubVerifier) VerifyInternships(_ context.Context, _ []model.ClaimedInternship) (map[string]model.VerificationResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func doVerify(t *testing.T, verifier Verifier, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := New(verifier, zap.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/verify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleVerify_OK(t *testing.T) {
	verifier := &stubVerifier{
		results: map[string]model.VerificationResult{
			"Google - Software Engineer": {
				WebsiteFound:  true,
				LinkedInFound: true,
				TrustScore:    1.0,
				Verdict:       model.VerdictHigh,
				RoleReason:    "Role verified via public digital footprint",
				MaturityLevel: model.MaturityGlobal,
			},
		},
	}

	rec := doVerify(t, verifier, `{"internships":[{"company":"Google","role":"Software Engineer"}]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		VerificationResults map[string]model.VerificationResult `json:"verification_results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	got, ok := resp.VerificationResults["Google - Software Engineer"]
	if !ok {
		t.Fatalf("missing result entry, body: %s", rec.Body.String())
	}
	if got.Verdict != model.VerdictHigh || got.TrustScore != 1.0 {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestHandleVerify_QuotaExceededMapsTo429(t *testing.T) {
	verifier := &stubVerifier{err: fmt.Errorf("gemini: %w: daily limit", search.ErrQuotaExceeded)}

	rec := doVerify(t, verifier, `{"internships":[{"company":"Google","role":"Engineer"}]}`)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "try again later") {
		t.Errorf("expected retry-later detail, got %s", rec.Body.String())
	}
}

func TestHandleVerify_GenericFailureMapsTo500(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("upstream exploded")}

	rec := doVerify(t, verifier, `{"internships":[{"company":"Acme","role":"Engineer"}]}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "upstream exploded") {
		t.Errorf("expected failure message in detail, got %s", rec.Body.String())
	}
}

func TestHandleVerify_BadPayload(t *testing.T) {
	verifier := &stubVerifier{}

	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json"},
		{"empty internships", `{"internships":[]}`},
		{"missing field", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doVerify(t, verifier, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestHealthz(t *testing.T) {
	router := New(&stubVerifier{}, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
