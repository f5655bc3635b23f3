package signal

import (
	"strings"

	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/model"
	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/util"
)

// Role reasons reported alongside the role-match signal
const (
	ReasonRoleVerified      = "Role verified via public digital footprint"
	ReasonRoleNotAssociated = "Role Not Associated with This Company"
	ReasonNoPublicEvidence  = "No public evidence of this role at the company"
)

// roleStopWords are generic title fillers that carry no role identity
var roleStopWords = map[string]bool{
	"intern":     true,
	"internship": true,
	"trainee":    true,
	"associate":  true,
	"junior":     true,
	"senior":     true,
	"part-time":  true,
	"full-time":  true,
}

// socialDomains disqualify a domain from counting as the company's own website
var socialDomains = []string{"linkedin", "facebook", "twitter"}

// Extractor derives trust signals from search results for a claimed internship
type Extractor struct {
	maturity *MaturityClassifier
}

// NewExtractor creates a new signal extractor
func NewExtractor() *Extractor {
	return &Extractor{maturity: NewMaturityClassifier()}
}

// Extract derives the full signal set for one claim from a batch of search
// results. Matching is deliberately substring-based: it trades precision for
// simplicity and is expected to produce occasional false positives.
func (e *Extractor) Extract(company, role string, results []model.SearchResult) model.SignalSet {
	normCompany := util.Normalize(company)
	companyNoSpace := strings.ReplaceAll(normCompany, " ", "")

	meaningful := meaningfulTokens(role)

	var (
		websiteFound  bool
		linkedinFound bool
		roleMatch     bool
		companySeen   bool
	)
	domains := make(map[string]bool)

	for _, r := range results {
		domain := util.ExtractDomain(r.URL)
		if domain == "" {
			continue
		}
		domains[domain] = true

		if strings.Contains(strings.ReplaceAll(domain, "-", ""), companyNoSpace) && !containsAny(domain, socialDomains) {
			websiteFound = true
		}

		if util.IsLinkedInCompanyURL(r.URL) {
			linkedinFound = true
		}

		content := strings.ToLower(r.Title + " " + r.Snippet)

		companyInResult := strings.Contains(content, normCompany) ||
			strings.Contains(strings.ReplaceAll(content, " ", ""), companyNoSpace)
		if !companyInResult {
			continue
		}
		companySeen = true

		matchCount := 0
		for token := range meaningful {
			if strings.Contains(content, token) {
				matchCount++
			}
		}

		// A single-token role needs one hit, a multi-token role needs two.
		// A role made entirely of filler words is inconclusive.
		switch {
		case len(meaningful) == 0:
		case len(meaningful) == 1:
			if matchCount >= 1 {
				roleMatch = true
			}
		default:
			if matchCount >= 2 {
				roleMatch = true
			}
		}
	}

	roleReason := ReasonRoleVerified
	if !roleMatch {
		if companySeen {
			roleReason = ReasonRoleNotAssociated
		} else {
			roleReason = ReasonNoPublicEvidence
		}
	}

	return model.SignalSet{
		WebsiteFound:         websiteFound,
		LinkedInFound:        linkedinFound,
		MultipleSourcesFound: len(domains) >= 2,
		RoleMatch:            roleMatch,
		RoleReason:           roleReason,
		Maturity:             e.maturity.Classify(normCompany, results),
	}
}

// meaningfulTokens splits a role title into the tokens that identify the role,
// dropping stop words and tokens of two characters or fewer
func meaningfulTokens(role string) map[string]bool {
	tokens := make(map[string]bool)
	for _, t := range strings.Fields(util.Normalize(role)) {
		if roleStopWords[t] || len(t) <= 2 {
			continue
		}
		tokens[t] = true
	}
	return tokens
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
