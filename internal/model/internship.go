package model

// ClaimedInternship represents a single internship claim taken from a resume
type ClaimedInternship struct {
	Company string `json:"company" yaml:"company"` // Name of the company
	Role    string `json:"role" yaml:"role"`       // Role title as claimed
}

// Key returns the map key under which this claim's result is reported.
// Claims with identical company and role collapse to the same key.
func (c ClaimedInternship) Key() string {
	return c.Company + " - " + c.Role
}

// SearchResult is one record returned by the search collaborator
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}
