package compat

// The scoring formula leans on finite lookup tables rather than procedural
// branching so that coverage gaps fall through to an auditable default.
// Keys are normalized (lowercase, trimmed) category values. All pairwise
// tables are stored one-directional and read through pairLookup, which
// checks both orders.

type pairTable map[string]map[string]float64

func pairLookup(t pairTable, a, b string) (float64, bool) {
	if row, ok := t[a]; ok {
		if v, ok := row[b]; ok {
			return v, true
		}
	}
	if row, ok := t[b]; ok {
		if v, ok := row[a]; ok {
			return v, true
		}
	}
	return 0, false
}

// bestPairScore scans every cross pair of the two lists and returns the
// highest table value, or def when no pair is listed.
func bestPairScore(t pairTable, a, b []string, def float64) float64 {
	best := -1.0
	for _, av := range normList(a) {
		for _, bv := range normList(b) {
			if v, ok := pairLookup(t, av, bv); ok && v > best {
				best = v
			}
		}
	}
	if best < 0 {
		return def
	}
	return best
}

const (
	answerPreferNotToSay = "prefer not to say"
	answerDontKnow       = "don't know"
)

// Primary reasons that count as adjacent when there is no exact match.
var compatibleReasons = pairTable{
	"financial":     {"companionship": 1, "marriage": 1},
	"companionship": {"travel": 1, "marriage": 1, "coparenting": 1},
	"coparenting":   {"marriage": 1},
	"travel":        {"marriage": 1},
}

// Relationship-type matrix over {platonic, romantic, open}. Cross pairs stay
// in the 20-25 band: the product treats mixed expectations as negotiable,
// never as a hard mismatch.
var relationshipTypeTable = pairTable{
	"platonic": {"platonic": 30, "romantic": 20, "open": 25},
	"romantic": {"romantic": 30, "open": 25},
	"open":     {"open": 30},
}

const relationshipTypeNeutral = 20

// Children-arrangement fallback when the two multi-select lists share
// nothing directly. Values are on the 0-15 component scale.
var childrenArrangementTable = pairTable{
	"biological": {"surrogacy": 12, "coparenting": 11, "adoption": 10},
	"adoption":   {"fostering": 12, "coparenting": 10, "surrogacy": 9},
	"surrogacy":  {"coparenting": 10},
	"fostering":  {"coparenting": 10},
}

const childrenArrangementDefault = 8

// Housing fallback, 0-25 component scale.
var housingTable = pairTable{
	"live together":       {"flexible": 20, "split time": 16, "separate residences": 10},
	"separate residences": {"flexible": 20, "split time": 18},
	"split time":          {"flexible": 20},
}

const housingDefault = 12

// Financial-arrangement fallback, 0-25 component scale. Provider/receiver is
// the one complementary pair that outranks a same-value overlap.
var financialTable = pairTable{
	"provider":     {"receiver": 25, "flexible": 18, "independent": 8},
	"receiver":     {"flexible": 18, "independent": 8},
	"split evenly": {"independent": 20, "flexible": 20},
	"independent":  {"flexible": 18},
}

const financialDefault = 12

// Political views, symmetric 7x7 over named categories, 0-15 scale.
// "Prefer not to say" on either side short-circuits to 10 in code.
var politicalTable = pairTable{
	"liberal":      {"liberal": 15, "progressive": 13, "moderate": 10, "conservative": 4, "libertarian": 6, "apolitical": 8, "other": 8},
	"progressive":  {"progressive": 15, "moderate": 9, "conservative": 3, "libertarian": 5, "apolitical": 8, "other": 8},
	"moderate":     {"moderate": 15, "conservative": 10, "libertarian": 10, "apolitical": 9, "other": 9},
	"conservative": {"conservative": 15, "libertarian": 11, "apolitical": 8, "other": 8},
	"libertarian":  {"libertarian": 15, "apolitical": 9, "other": 8},
	"apolitical":   {"apolitical": 15, "other": 10},
	"other":        {"other": 15},
}

const (
	politicalPreferNotToSay = 10
	politicalDefault        = 7
)

// Religion answers treated as open-ended rather than a mismatch.
var religionNeutralAnswers = map[string]struct{}{
	answerPreferNotToSay:          {},
	"agnostic":                    {},
	"spiritual but not religious": {},
}

// Smoking/drinking/pet stances, each on a 0-10 scale with a 5-point neutral
// default when either side left the field blank.
var smokingTable = pairTable{
	"never":     {"never": 10, "socially": 6, "regularly": 2},
	"socially":  {"socially": 10, "regularly": 7},
	"regularly": {"regularly": 10},
}

var drinkingTable = pairTable{
	"never":     {"never": 10, "socially": 7, "regularly": 3},
	"socially":  {"socially": 10, "regularly": 8},
	"regularly": {"regularly": 10},
}

var petsTable = pairTable{
	"love pets": {"love pets": 10, "have pets": 10, "no pets": 5, "allergic": 3},
	"have pets": {"have pets": 10, "no pets": 4, "allergic": 2},
	"no pets":   {"no pets": 10, "allergic": 8},
	"allergic":  {"allergic": 9},
}

const stanceNeutral = 5

// Zodiac signs considered highly compatible (element trines plus the usual
// air/fire and earth/water crossings). Symmetric by construction; the
// symmetry test guards against edits breaking that.
var zodiacCompatible = map[string][]string{
	"aries":       {"leo", "sagittarius", "gemini", "aquarius"},
	"taurus":      {"virgo", "capricorn", "cancer", "pisces"},
	"gemini":      {"libra", "aquarius", "aries", "leo"},
	"cancer":      {"scorpio", "pisces", "taurus", "virgo"},
	"leo":         {"aries", "sagittarius", "gemini", "libra"},
	"virgo":       {"taurus", "capricorn", "cancer", "scorpio"},
	"libra":       {"gemini", "aquarius", "leo", "sagittarius"},
	"scorpio":     {"cancer", "pisces", "virgo", "capricorn"},
	"sagittarius": {"aries", "leo", "libra", "aquarius"},
	"capricorn":   {"taurus", "virgo", "scorpio", "pisces"},
	"aquarius":    {"gemini", "libra", "aries", "sagittarius"},
	"pisces":      {"cancer", "scorpio", "taurus", "capricorn"},
}

// Curated MBTI pair tiers, checked before the shared-letter fallback.
var mbtiGoldenPairs = pairTable{
	"intj": {"enfp": 15},
	"intp": {"enfj": 15},
	"infj": {"entp": 15},
	"infp": {"entj": 15},
	"istj": {"esfp": 15},
	"isfj": {"estp": 15},
	"istp": {"esfj": 15},
	"isfp": {"estj": 15},
}

// Companion pairs: same attitude and functions, opposite lifestyle letter.
var mbtiCompanionPairs = pairTable{
	"intj": {"intp": 14},
	"infj": {"infp": 14},
	"istj": {"istp": 14},
	"isfj": {"isfp": 14},
	"entj": {"entp": 14},
	"enfj": {"enfp": 14},
	"estj": {"estp": 14},
	"esfj": {"esfp": 14},
}

// Mirror pairs: the same function stack reordered (attitude and lifestyle
// letters both flipped). Curated, not exhaustive: pairs left out fall
// through to the shared-letter rules.
var mbtiMirrorPairs = pairTable{
	"intj": {"entp": 13},
	"intp": {"entj": 13},
	"infj": {"enfp": 13},
	"infp": {"enfj": 13},
	"istj": {"estp": 13},
}

// Full-opposite pairings that tend to grind, with per-pair scores. Also
// curated: an unlisted opposite pair scores the plain default.
var mbtiChallengingPairs = pairTable{
	"intj": {"esfp": 4},
	"intp": {"esfj": 5},
	"infj": {"estp": 4},
	"entj": {"isfp": 4},
	"entp": {"isfj": 5},
	"enfp": {"istj": 5},
}

// Stopwords dropped before bio keyword comparison. Only words longer than
// three characters survive extraction, so short fillers are omitted here.
var bioStopwords = map[string]struct{}{
	"about": {}, "after": {}, "also": {}, "always": {}, "been": {},
	"being": {}, "enjoy": {}, "every": {}, "from": {}, "have": {},
	"into": {}, "just": {}, "like": {}, "looking": {}, "love": {},
	"more": {}, "much": {}, "other": {}, "over": {}, "really": {},
	"some": {}, "someone": {}, "than": {}, "that": {}, "their": {},
	"them": {}, "then": {}, "there": {}, "they": {}, "this": {},
	"very": {}, "want": {}, "what": {}, "when": {}, "which": {},
	"will": {}, "with": {}, "would": {}, "your": {},
}
