package compat

// lifestyleScore starts from a neutral base of 50 and adds practical and
// cultural alignment on top; the raw sum can exceed 100 and is clamped.
func lifestyleScore(a, b Profile, pa, pb Preferences) float64 {
	total := 50.0

	total += arrangementOverlapScore(
		pa.HousingPreferences, pb.HousingPreferences,
		housingTable, 25, housingDefault,
	)
	total += arrangementOverlapScore(
		pa.FinancialArrangements, pb.FinancialArrangements,
		financialTable, 25, financialDefault,
	)
	total += religionScore(a.Religion, b.Religion)
	total += politicalScore(a.PoliticalViews, b.PoliticalViews)
	total += sharedLanguagesScore(a.Languages, b.Languages)
	total += stanceScore(smokingTable, pa.Smoking, pb.Smoking)
	total += stanceScore(drinkingTable, pa.Drinking, pb.Drinking)
	total += stanceScore(petsTable, pa.Pets, pb.Pets)
	total += ethnicityScore(a.Ethnicities, b.Ethnicities)

	return clampScore(total)
}

func religionScore(a, b string) float64 {
	na := norm(a)
	nb := norm(b)
	if na != "" && na == nb {
		return 15
	}
	if _, ok := religionNeutralAnswers[na]; ok {
		return 10
	}
	if _, ok := religionNeutralAnswers[nb]; ok {
		return 10
	}
	return 5
}

func politicalScore(a, b string) float64 {
	na := norm(a)
	nb := norm(b)
	if na == answerPreferNotToSay || nb == answerPreferNotToSay {
		return politicalPreferNotToSay
	}
	if v, ok := pairLookup(politicalTable, na, nb); ok {
		return v
	}
	return politicalDefault
}

// 3 points per shared spoken language, capped at 10.
func sharedLanguagesScore(a, b []string) float64 {
	pts := 3.0 * float64(sharedCount(a, b))
	if pts > 10 {
		return 10
	}
	return pts
}

// stanceScore covers the single-category smoking/drinking/pet fields; a
// blank answer on either side contributes the neutral 5.
func stanceScore(t pairTable, a, b string) float64 {
	na := norm(a)
	nb := norm(b)
	if na == "" || nb == "" {
		return stanceNeutral
	}
	if v, ok := pairLookup(t, na, nb); ok {
		return v
	}
	return stanceNeutral
}

func ethnicityScore(a, b []string) float64 {
	if frac := overlapFraction(a, b); frac > 0 {
		return frac * 10
	}
	if containsNorm(a, "multiracial") || containsNorm(b, "multiracial") {
		return 8
	}
	return 7
}
