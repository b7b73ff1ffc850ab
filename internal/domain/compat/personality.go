package compat

import "strings"

// personalityScore starts from a base of 20 and layers hobby, media, zodiac,
// personality-type, love-language and bio-keyword affinity on top. The raw
// sum can exceed 100 and is clamped.
func personalityScore(a, b Profile) float64 {
	total := 20.0

	total += cappedPerMatch(sharedCount(a.Hobbies, b.Hobbies), 4, 25)
	total += mediaInterestsScore(a.Interests, b.Interests)
	total += zodiacScore(a.Zodiac, b.Zodiac)
	total += personalityTypeScore(a.PersonalityType, b.PersonalityType)
	total += loveLanguageScore(a.LoveLanguages, b.LoveLanguages)
	total += bioKeywordScore(a.Bio, b.Bio)

	return clampScore(total)
}

func cappedPerMatch(matches int, perMatch, limit float64) float64 {
	pts := perMatch * float64(matches)
	if pts > limit {
		return limit
	}
	return pts
}

// Media sub-lists carry different weights and caps: taste in movies and
// music says more about day-to-day compatibility than the long tail of
// books and shows.
func mediaInterestsScore(a, b Interests) float64 {
	total := cappedPerMatch(sharedCount(a.Movies, b.Movies), 3, 10)
	total += cappedPerMatch(sharedCount(a.Music, b.Music), 3, 10)
	total += cappedPerMatch(sharedCount(a.Books, b.Books), 2.5, 8)
	total += cappedPerMatch(sharedCount(a.TVShows, b.TVShows), 2.5, 7)
	return total
}

func zodiacScore(a, b string) float64 {
	na := norm(a)
	nb := norm(b)
	if na == answerPreferNotToSay || nb == answerPreferNotToSay || na == "" || nb == "" {
		return 8
	}
	if containsNorm(zodiacCompatible[na], nb) {
		return 15
	}
	if na == nb {
		return 12
	}
	return 7
}

// personalityTypeScore runs the tiered MBTI rules: curated pair tables
// first, then a shared-letter fallback over the 4-letter codes.
func personalityTypeScore(a, b string) float64 {
	na := norm(a)
	nb := norm(b)
	if na == "" || nb == "" || na == answerDontKnow || nb == answerDontKnow {
		return 8
	}
	if len(na) != 4 || len(nb) != 4 {
		return 8
	}
	if na == nb {
		return 12
	}
	if v, ok := pairLookup(mbtiGoldenPairs, na, nb); ok {
		return v
	}
	if v, ok := pairLookup(mbtiCompanionPairs, na, nb); ok {
		return v
	}
	if v, ok := pairLookup(mbtiMirrorPairs, na, nb); ok {
		return v
	}

	shared := 0
	for i := 0; i < 4; i++ {
		if na[i] == nb[i] {
			shared++
		}
	}
	middleMatch := na[1] == nb[1] && na[2] == nb[2]

	switch shared {
	case 3:
		return 11
	case 2:
		if middleMatch {
			return 10
		}
		return 9
	case 1:
		if na[0] == nb[0] {
			return 8
		}
		return 7
	default:
		if v, ok := pairLookup(mbtiChallengingPairs, na, nb); ok {
			return v
		}
		return 7
	}
}

// Love languages: proportional credit for overlap, a flat 4 otherwise.
func loveLanguageScore(a, b []string) float64 {
	if frac := overlapFraction(a, b); frac > 0 {
		return frac * 8
	}
	return 4
}

// bioKeywordScore compares keyword sets extracted from the two free-text
// bios: 2 points per shared keyword, capped at 8.
func bioKeywordScore(a, b string) float64 {
	ka := bioKeywords(a)
	if len(ka) == 0 {
		return 0
	}
	kb := bioKeywords(b)

	shared := 0
	for w := range ka {
		if _, ok := kb[w]; ok {
			shared++
		}
	}
	return cappedPerMatch(shared, 2, 8)
}

// bioKeywords lowercases the bio, strips punctuation, and keeps non-stopword
// words longer than three characters.
func bioKeywords(bio string) map[string]struct{} {
	words := strings.FieldsFunc(strings.ToLower(bio), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})

	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		if len(w) <= 3 {
			continue
		}
		if _, stop := bioStopwords[w]; stop {
			continue
		}
		out[w] = struct{}{}
	}
	return out
}
