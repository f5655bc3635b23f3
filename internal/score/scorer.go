package score

import (
	"math"

	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/model"
)

// Signal weights. The four signals together can reach exactly 1.0.
const (
	weightWebsite         = 0.25
	weightLinkedIn        = 0.20
	weightMultipleSources = 0.25
	weightRoleMatch       = 0.30
)

// roleMismatchCap limits the score when the claimed role has no support,
// regardless of how visible the company is
const roleMismatchCap = 0.55

// maturityCaps limit the score by company visibility: an unknown company can
// never reach a High verdict on substring evidence alone
var maturityCaps = map[model.MaturityLevel]float64{
	model.MaturityGlobal:      1.00,
	model.MaturityEstablished: 0.90,
	model.MaturitySME:         0.85,
	model.MaturityUnknown:     0.60,
}

// Scorer maps a signal set to a trust score and verdict
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Calculate computes the trust score in [0,1] for a signal set. The weighted
// base score is clamped by the maturity cap, then by the role-mismatch cap,
// and rounded to two decimals (ties away from zero).
func (s *Scorer) Calculate(signals model.SignalSet) float64 {
	base := 0.0
	if signals.WebsiteFound {
		base += weightWebsite
	}
	if signals.LinkedInFound {
		base += weightLinkedIn
	}
	if signals.MultipleSourcesFound {
		base += weightMultipleSources
	}
	if signals.RoleMatch {
		base += weightRoleMatch
	}

	ceiling, ok := maturityCaps[signals.Maturity]
	if !ok {
		ceiling = maturityCaps[model.MaturityUnknown]
	}

	score := math.Min(base, ceiling)

	if !signals.RoleMatch {
		score = math.Min(score, roleMismatchCap)
	}

	return math.Round(score*100) / 100
}

// Verdict maps a trust score to its three-level label.
// Boundaries are inclusive on the lower end: 0.70 is High, 0.40 is Medium.
func (s *Scorer) Verdict(score float64) model.Verdict {
	switch {
	case score >= 0.70:
		return model.VerdictHigh
	case score >= 0.40:
		return model.VerdictMedium
	default:
		return model.VerdictLow
	}
}
