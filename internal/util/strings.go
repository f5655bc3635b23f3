package util

import (
	"net/url"
	"strings"
)

// Normalize lowercases and trims the input. Empty input yields "".
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ExtractDomain returns the host component of a URL with a leading "www."
// stripped. Malformed or host-less input yields "" and never fails.
func ExtractDomain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	domain := parsed.Host
	domain = strings.TrimPrefix(domain, "www.")
	return domain
}

// IsLinkedInCompanyURL reports whether the URL points at a LinkedIn company
// page: the domain contains "linkedin.com" and the path has a "/company/"
// segment. Profile URLs (linkedin.com/in/...) do not qualify.
func IsLinkedInCompanyURL(rawURL string) bool {
	domain := ExtractDomain(rawURL)
	return strings.Contains(domain, "linkedin.com") && strings.Contains(rawURL, "/company/")
}
