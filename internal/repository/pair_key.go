package repository

import "github.com/google/uuid"

// PairKey is the canonical, order-independent identifier for two profiles.
// Both stores key on it, so (A,B) and (B,A) always land in the same slot.
type PairKey struct {
	A uuid.UUID
	B uuid.UUID
}

// NewPairKey orders the two ids lexicographically.
func NewPairKey(a, b uuid.UUID) PairKey {
	if a.String() > b.String() {
		a, b = b, a
	}
	return PairKey{A: a, B: b}
}

func (k PairKey) String() string {
	return k.A.String() + ":" + k.B.String()
}

// Contains reports whether the given profile is on either side of the pair.
func (k PairKey) Contains(id uuid.UUID) bool {
	return k.A == id || k.B == id
}
