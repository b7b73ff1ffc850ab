package compat

import "testing"

func TestValuesOfFoldsLegacyScalar(t *testing.T) {
	got := ValuesOf("Male", nil)
	if len(got) != 1 || got[0] != "male" {
		t.Fatalf("scalar only: %v", got)
	}

	got = ValuesOf("", []string{"Male", "Nonbinary"})
	if len(got) != 2 || got[0] != "male" || got[1] != "nonbinary" {
		t.Fatalf("list only: %v", got)
	}

	// Scalar already present in the list must not duplicate.
	got = ValuesOf("male", []string{"MALE", "nonbinary"})
	if len(got) != 2 {
		t.Fatalf("duplicate scalar: %v", got)
	}

	if got := ValuesOf("", nil); len(got) != 0 {
		t.Fatalf("empty inputs: %v", got)
	}
}

func TestNormListDeduplicates(t *testing.T) {
	got := normList([]string{" Hiking ", "hiking", "HIKING", "", "chess"})
	if len(got) != 2 || got[0] != "hiking" || got[1] != "chess" {
		t.Fatalf("got %v", got)
	}
}

func TestOverlapFraction(t *testing.T) {
	cases := []struct {
		name string
		a, b []string
		want float64
	}{
		{"identical", []string{"a1", "b2"}, []string{"a1", "b2"}, 1},
		{"half of larger", []string{"a1"}, []string{"a1", "b2"}, 0.5},
		{"uses max length", []string{"a1", "b2", "c3", "d4"}, []string{"a1"}, 0.25},
		{"disjoint", []string{"a1"}, []string{"b2"}, 0},
		{"empty side", nil, []string{"a1"}, 0},
		{"case folded", []string{"Jazz"}, []string{"jazz"}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := overlapFraction(tc.a, tc.b); got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestNormCollapsesWhitespace(t *testing.T) {
	if got := norm("  New   York  "); got != "new york" {
		t.Fatalf("got %q", got)
	}
}
