package model

// MaturityLevel buckets a company by size and public visibility.
// It caps the maximum attainable trust score.
type MaturityLevel string

const (
	MaturityGlobal      MaturityLevel = "Global"      // Well-known multinational brands
	MaturityEstablished MaturityLevel = "Established" // Large but non-global companies
	MaturitySME         MaturityLevel = "SME"         // Small/medium with some public presence
	MaturityUnknown     MaturityLevel = "Unknown"     // No recognizable footprint
)

// Verdict is the coarse three-level trust label derived from the score
type Verdict string

const (
	VerdictHigh   Verdict = "High"
	VerdictMedium Verdict = "Medium"
	VerdictLow    Verdict = "Low"
)

// SignalSet holds the trust signals derived from search results for one claim.
// It is ephemeral: produced by the extractor, consumed by the scorer.
type SignalSet struct {
	WebsiteFound         bool
	LinkedInFound        bool
	MultipleSourcesFound bool
	RoleMatch            bool
	RoleReason           string
	Maturity             MaturityLevel
}

// VerificationResult is the final per-claim record returned to the caller
type VerificationResult struct {
	WebsiteFound         bool          `json:"website_found"`
	LinkedInFound        bool          `json:"linkedin_found"`
	MultipleSourcesFound bool          `json:"multiple_sources_found"`
	RoleMatch            bool          `json:"role_match"`
	TrustScore           float64       `json:"trust_score"`
	Verdict              Verdict       `json:"verdict"`
	RoleReason           string        `json:"role_reason"`
	MaturityLevel        MaturityLevel `json:"maturity_level"`
}
