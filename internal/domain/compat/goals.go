package compat

// goalsScore sums four independent components: primary reason (35),
// relationship type (30), children wanted (20) and children arrangement
// (15), clamped to 100.
func goalsScore(pa, pb Preferences) float64 {
	total := primaryReasonScore(pa.PrimaryReasons, pb.PrimaryReasons)
	total += relationshipTypeScore(pa.RelationshipType, pb.RelationshipType)
	total += childrenWantedScore(pa.WantsChildren, pb.WantsChildren)
	total += arrangementOverlapScore(
		pa.ChildrenArrangements, pb.ChildrenArrangements,
		childrenArrangementTable, 15, childrenArrangementDefault,
	)
	return clampScore(total)
}

func primaryReasonScore(a, b []string) float64 {
	na := normList(a)
	nb := normList(b)
	// Unstated reasons score as adjacent rather than as a mismatch.
	if len(na) == 0 || len(nb) == 0 {
		return 18
	}
	if sharedCount(na, nb) > 0 {
		return 35
	}
	if _, ok := firstListedPair(compatibleReasons, na, nb); ok {
		return 18
	}
	return 0
}

func firstListedPair(t pairTable, a, b []string) (float64, bool) {
	for _, av := range a {
		for _, bv := range b {
			if v, ok := pairLookup(t, av, bv); ok {
				return v, true
			}
		}
	}
	return 0, false
}

func relationshipTypeScore(a, b string) float64 {
	na := norm(a)
	nb := norm(b)
	if na == "" || nb == "" {
		return relationshipTypeNeutral
	}
	if v, ok := pairLookup(relationshipTypeTable, na, nb); ok {
		return v
	}
	return relationshipTypeNeutral
}

func childrenWantedScore(a, b *bool) float64 {
	switch {
	case a == nil && b == nil:
		return 20
	case a == nil || b == nil:
		return 12
	case *a == *b:
		return 20
	default:
		return 0
	}
}

// arrangementOverlapScore is the shared overlap-then-lookup pattern used for
// children arrangements, housing and financial preferences: proportional
// credit for direct overlap, otherwise the best pairwise table entry.
func arrangementOverlapScore(a, b []string, t pairTable, maxPts, def float64) float64 {
	if frac := overlapFraction(a, b); frac > 0 {
		return frac * maxPts
	}
	return bestPairScore(t, a, b, def)
}
