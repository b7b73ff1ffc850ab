package compat

// ageRelaxYears widens each side's stated age range when the strict mutual
// check fails, awarding partial credit for near misses.
const ageRelaxYears = 3

// demographicsScore is age-range mutual containment (up to 50) plus mutual
// gender-preference match (up to 50).
func demographicsScore(a, b Profile, pa, pb Preferences) float64 {
	total := agePairScore(a.Age, b.Age, pa, pb)
	total += genderPairScore(a.Genders, b.Genders, pa.GenderPreference, pb.GenderPreference)
	return clampScore(total)
}

func agePairScore(ageA, ageB int, pa, pb Preferences) float64 {
	if ageWithin(ageB, pa, 0) && ageWithin(ageA, pb, 0) {
		return 50
	}
	if ageWithin(ageB, pa, ageRelaxYears) && ageWithin(ageA, pb, ageRelaxYears) {
		return 30
	}
	return 10
}

// An unstated range (both bounds zero) accepts any age.
func ageWithin(age int, p Preferences, relax int) bool {
	if p.AgeMin <= 0 && p.AgeMax <= 0 {
		return true
	}
	return age >= p.AgeMin-relax && age <= p.AgeMax+relax
}

func genderPairScore(gendersA, gendersB, prefA, prefB []string) float64 {
	aAccepted := genderAccepted(gendersA, prefB)
	bAccepted := genderAccepted(gendersB, prefA)
	switch {
	case aAccepted && bAccepted:
		return 50
	case aAccepted || bAccepted:
		return 25
	default:
		return 0
	}
}

// An empty accepted-gender list is a wildcard.
func genderAccepted(genders, accepted []string) bool {
	if len(normList(accepted)) == 0 {
		return true
	}
	return sharedCount(genders, accepted) > 0
}
