package compat

import "strings"

// Legacy records sometimes carry a bare scalar where the app now stores a
// multi-select list. ValuesOf folds both shapes into one normalized list so
// every comparison below runs on the same representation.
func ValuesOf(scalar string, list []string) []string {
	out := normList(list)
	if s := norm(scalar); s != "" {
		for _, v := range out {
			if v == s {
				return out
			}
		}
		out = append(out, s)
	}
	return out
}

func norm(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	return strings.Join(strings.Fields(value), " ")
}

func normList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		key := norm(v)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

func normSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if key := norm(v); key != "" {
			set[key] = struct{}{}
		}
	}
	return set
}

func sharedCount(a, b []string) int {
	bs := normSet(b)
	shared := 0
	for _, v := range normList(a) {
		if _, ok := bs[v]; ok {
			shared++
		}
	}
	return shared
}

// overlapFraction is |intersection| / max(|a|, |b|) over normalized values.
// Returns 0 when either list is empty.
func overlapFraction(a, b []string) float64 {
	na := normList(a)
	nb := normList(b)
	if len(na) == 0 || len(nb) == 0 {
		return 0
	}
	shared := sharedCount(na, nb)
	denom := len(na)
	if len(nb) > denom {
		denom = len(nb)
	}
	return float64(shared) / float64(denom)
}

func containsNorm(values []string, target string) bool {
	target = norm(target)
	for _, v := range values {
		if norm(v) == target {
			return true
		}
	}
	return false
}
