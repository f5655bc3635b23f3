package verify

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/model"
	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/score"
	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/signal"
)

// queryTemplates are the fixed queries issued per claim, in order
var queryTemplates = []func(company, role string) string{
	func(company, _ string) string { return fmt.Sprintf("%s official website linkedin", company) },
	func(company, role string) string { return fmt.Sprintf("%s %s internship", company, role) },
	func(company, role string) string { return fmt.Sprintf("%s at %s linkedin", role, company) },
}

// Searcher is the capability the orchestrator needs from the search
// collaborator. Implementations may cache or rate-limit internally.
type Searcher interface {
	Search(ctx context.Context, query string) ([]model.SearchResult, error)
}

// Service orchestrates verification: it gathers search results per claim,
// extracts signals, scores them, and assembles the result record.
type Service struct {
	searcher  Searcher
	extractor *signal.Extractor
	scorer    *score.Scorer
	logger    *zap.Logger
}

// New creates a verification service
func New(searcher Searcher, log *zap.Logger) *Service {
	return &Service{
		searcher:  searcher,
		extractor: signal.NewExtractor(),
		scorer:    score.NewScorer(),
		logger:    log,
	}
}

// VerifyInternships verifies each claim in input order and returns results
// keyed by "{company} - {role}". Identically keyed claims overwrite earlier
// entries, so the later claim wins. Claims are processed strictly
// sequentially; a search failure aborts the whole batch and propagates,
// including quota errors, which callers distinguish with errors.Is.
func (s *Service) VerifyInternships(ctx context.Context, claims []model.ClaimedInternship) (map[string]model.VerificationResult, error) {
	results := make(map[string]model.VerificationResult, len(claims))

	for _, claim := range claims {
		result, err := s.verifyOne(ctx, claim)
		if err != nil {
			return nil, fmt.Errorf("verify %q: %w", claim.Key(), err)
		}
		results[claim.Key()] = result
	}

	return results, nil
}

func (s *Service) verifyOne(ctx context.Context, claim model.ClaimedInternship) (model.VerificationResult, error) {
	// Results from all templates are concatenated as-is. Duplicates across
	// queries are kept: the extractor tolerates them and de-duplicating
	// here would change the multi-source signal.
	var searchResults []model.SearchResult
	for _, template := range queryTemplates {
		query := template(claim.Company, claim.Role)

		res, err := s.searcher.Search(ctx, query)
		if err != nil {
			return model.VerificationResult{}, err
		}
		searchResults = append(searchResults, res...)
	}

	signals := s.extractor.Extract(claim.Company, claim.Role, searchResults)
	trustScore := s.scorer.Calculate(signals)
	verdict := s.scorer.Verdict(trustScore)

	s.logger.Debug("claim verified",
		zap.String("claim", claim.Key()),
		zap.Int("search_results", len(searchResults)),
		zap.Float64("trust_score", trustScore),
		zap.String("verdict", string(verdict)),
		zap.String("maturity", string(signals.Maturity)),
	)

	return model.VerificationResult{
		WebsiteFound:         signals.WebsiteFound,
		LinkedInFound:        signals.LinkedInFound,
		MultipleSourcesFound: signals.MultipleSourcesFound,
		RoleMatch:            signals.RoleMatch,
		TrustScore:           trustScore,
		Verdict:              verdict,
		RoleReason:           signals.RoleReason,
		MaturityLevel:        signals.Maturity,
	}, nil
}
