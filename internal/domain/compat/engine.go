// Package compat computes the pairwise compatibility score used to rank the
// discovery feed. Everything here is pure: no I/O, no shared state, the same
// inputs always produce the same score.
package compat

import "math"

// Category weights are a product policy decision and live only here.
// Sexual orientation is deliberately excluded from scoring: differing
// orientations between the two parties are treated as desirable in this
// matching domain, so the category carries zero weight.
const (
	WeightGoals        = 0.35
	WeightLifestyle    = 0.25
	WeightLocation     = 0.20
	WeightDemographics = 0.15
	WeightPersonality  = 0.05
	WeightOrientation  = 0.0
)

// Breakdown carries the unrounded per-category sub-scores, each on a 0-100
// scale, plus the weighted total.
type Breakdown struct {
	Goals        float64 `json:"goals"`
	Lifestyle    float64 `json:"lifestyle"`
	Location     float64 `json:"location"`
	Demographics float64 `json:"demographics"`
	Personality  float64 `json:"personality"`
	Total        int     `json:"total"`
}

// Score returns the weighted compatibility total in [0,100].
func Score(a, b Profile, pa, pb Preferences) int {
	return Compute(a, b, pa, pb).Total
}

// Compute evaluates all five categories and combines them. Missing optional
// fields degrade to each category's neutral contribution; well-formed input
// never produces an out-of-range result.
func Compute(a, b Profile, pa, pb Preferences) Breakdown {
	bd := Breakdown{
		Goals:        goalsScore(pa, pb),
		Lifestyle:    lifestyleScore(a, b, pa, pb),
		Location:     locationScore(a, b, pa, pb),
		Demographics: demographicsScore(a, b, pa, pb),
		Personality:  personalityScore(a, b),
	}

	total := bd.Goals*WeightGoals +
		bd.Lifestyle*WeightLifestyle +
		bd.Location*WeightLocation +
		bd.Demographics*WeightDemographics +
		bd.Personality*WeightPersonality

	bd.Total = int(math.Round(clampScore(total)))
	return bd
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
