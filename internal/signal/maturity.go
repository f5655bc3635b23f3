package signal

import (
	"strings"

	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/model"
	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/util"
)

// maturityTier pairs a maturity level with the company names that map to it.
// Tiers are checked in order; the first match wins.
type maturityTier struct {
	level model.MaturityLevel
	names []string
}

// knownTiers holds the bounded vocabulary of recognizable company names.
// Membership is a substring test against the normalized company name.
var knownTiers = []maturityTier{
	{
		level: model.MaturityGlobal,
		names: []string{
			"google", "amazon", "microsoft", "apple", "facebook", "meta",
			"netflix", "tesla", "ibm", "oracle", "salesforce", "adobe",
			"intel", "nvidia", "samsung", "sony", "toyota", "cocacola", "pepsi",
		},
	},
	{
		level: model.MaturityEstablished,
		names: []string{
			"zoho", "freshworks", "flipkart", "swiggy", "zomato", "paytm",
			"uber", "airbnb", "stripe", "spotify", "shopify", "slack",
			"atlassian", "infosys", "tcs", "wipro", "hcl", "accenture",
			"deloitte", "kpmg", "pwc", "ey", "capgemini", "cognizant",
		},
	},
}

// scaleKeywords are snippet phrases that signal company scale. Two or more
// distinct hits across all snippets upgrade an unlisted company to Established.
var scaleKeywords = []string{
	"fortune 500", "nasdaq", "nyse", "publicly traded", "multinational",
	"global offices", "headquarters in", "thousands of employees",
	"leader in", "established in", "founded in 19", "founded in 18",
}

// directoryDomains are social networks and company directories whose presence
// does not indicate the company runs its own website
var directoryDomains = []string{
	"linkedin", "facebook", "twitter", "instagram", "glassdoor", "crunchbase",
}

// MaturityClassifier buckets a company into a maturity tier using known-name
// lists and keyword heuristics over search snippets
type MaturityClassifier struct{}

// NewMaturityClassifier creates a new maturity classifier
func NewMaturityClassifier() *MaturityClassifier {
	return &MaturityClassifier{}
}

// Classify returns the maturity tier for a normalized company name.
// List checks take precedence over keyword and footprint heuristics.
func (c *MaturityClassifier) Classify(normalizedCompany string, results []model.SearchResult) model.MaturityLevel {
	companyLower := strings.ToLower(normalizedCompany)

	for _, tier := range knownTiers {
		for _, name := range tier.names {
			if strings.Contains(companyLower, name) {
				return tier.level
			}
		}
	}

	// Scale keywords across all snippets
	var combined strings.Builder
	for i, r := range results {
		if i > 0 {
			combined.WriteString(" ")
		}
		combined.WriteString(strings.ToLower(r.Snippet))
	}
	snippets := combined.String()

	hits := 0
	for _, kw := range scaleKeywords {
		if strings.Contains(snippets, kw) {
			hits++
		}
	}
	if hits >= 2 {
		return model.MaturityEstablished
	}

	// A LinkedIn company page or any non-directory domain still indicates a
	// real, if small, presence
	hasLinkedIn := false
	hasWebsite := false
	for _, r := range results {
		if strings.Contains(r.URL, "linkedin.com/company") {
			hasLinkedIn = true
		}
		domain := util.ExtractDomain(r.URL)
		if domain != "" && !containsAny(domain, directoryDomains) {
			hasWebsite = true
		}
	}
	if hasWebsite || hasLinkedIn {
		return model.MaturitySME
	}

	return model.MaturityUnknown
}
