package compat

import "testing"

// The pairwise tables are read through pairLookup in both orders, so the
// data itself must never contain a conflicting reverse entry.
func TestPairTablesHaveNoConflictingReverseEntries(t *testing.T) {
	tables := map[string]pairTable{
		"relationshipType":    relationshipTypeTable,
		"childrenArrangement": childrenArrangementTable,
		"housing":             housingTable,
		"financial":           financialTable,
		"political":           politicalTable,
		"smoking":             smokingTable,
		"drinking":            drinkingTable,
		"pets":                petsTable,
		"mbtiGolden":          mbtiGoldenPairs,
		"mbtiCompanion":       mbtiCompanionPairs,
		"mbtiMirror":          mbtiMirrorPairs,
		"mbtiChallenging":     mbtiChallengingPairs,
	}

	for name, table := range tables {
		for a, row := range table {
			for b, v := range row {
				if rev, ok := table[b][a]; ok && a != b && rev != v {
					t.Fatalf("%s: asymmetric pair %q/%q: %v vs %v", name, a, b, v, rev)
				}
			}
		}
	}
}

func TestPoliticalTableCoversAllCategories(t *testing.T) {
	categories := []string{"liberal", "progressive", "moderate", "conservative", "libertarian", "apolitical", "other"}
	for _, a := range categories {
		for _, b := range categories {
			if _, ok := pairLookup(politicalTable, a, b); !ok {
				t.Fatalf("political table missing pair %q/%q", a, b)
			}
		}
	}
}

func TestZodiacAdjacencySymmetric(t *testing.T) {
	for sign, partners := range zodiacCompatible {
		for _, p := range partners {
			if !containsNorm(zodiacCompatible[p], sign) {
				t.Fatalf("zodiac adjacency not symmetric: %s lists %s but not vice versa", sign, p)
			}
		}
	}
}

func TestZodiacCoversTwelveSigns(t *testing.T) {
	if len(zodiacCompatible) != 12 {
		t.Fatalf("expected 12 signs, got %d", len(zodiacCompatible))
	}
	for sign, partners := range zodiacCompatible {
		if containsNorm(partners, sign) {
			t.Fatalf("%s lists itself as highly compatible; same-sign has its own rule", sign)
		}
	}
}

func TestMbtiTiersAreDisjoint(t *testing.T) {
	tiers := map[string]pairTable{
		"golden":      mbtiGoldenPairs,
		"companion":   mbtiCompanionPairs,
		"mirror":      mbtiMirrorPairs,
		"challenging": mbtiChallengingPairs,
	}

	type pair struct{ a, b string }
	seen := make(map[pair]string)
	for tier, table := range tiers {
		for a, row := range table {
			if len(a) != 4 {
				t.Fatalf("%s: malformed type code %q", tier, a)
			}
			for b, v := range row {
				if len(b) != 4 {
					t.Fatalf("%s: malformed type code %q", tier, b)
				}
				if v <= 0 || v > 15 {
					t.Fatalf("%s: %q/%q value %v out of range", tier, a, b, v)
				}
				key := pair{a, b}
				if a > b {
					key = pair{b, a}
				}
				if prev, dup := seen[key]; dup {
					t.Fatalf("pair %q/%q appears in both %s and %s tiers", a, b, prev, tier)
				}
				seen[key] = tier
			}
		}
	}
}

func TestBestPairScoreFallsBackToDefault(t *testing.T) {
	if got := bestPairScore(housingTable, []string{"houseboat"}, []string{"treehouse"}, housingDefault); got != housingDefault {
		t.Fatalf("unlisted values: %v want %v", got, housingDefault)
	}
	if got := bestPairScore(housingTable, []string{"live together", "split time"}, []string{"flexible"}, housingDefault); got != 20 {
		t.Fatalf("best listed pair: %v want 20", got)
	}
}
