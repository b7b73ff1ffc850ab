package compat

import "testing"

func profileAt(lat, lon float64) Profile {
	return Profile{City: "Somewhere", Latitude: ptrFloat(lat), Longitude: ptrFloat(lon)}
}

func TestHaversineKnownDistance(t *testing.T) {
	// New York to Los Angeles is roughly 2,445 miles.
	d := haversineMiles(40.7128, -74.0060, 34.0522, -118.2437)
	if d < 2400 || d > 2500 {
		t.Fatalf("NYC-LA distance=%v want ~2445", d)
	}
}

func TestDistanceUnknownWhenCoordinatesMissing(t *testing.T) {
	a := profileAt(40.0, -74.0)
	var b Profile
	if d := DistanceMiles(a, b); d != distanceUnknown {
		t.Fatalf("distance=%v want unknown", d)
	}
}

func TestLocationDistanceBands(t *testing.T) {
	base := profileAt(40.0, -74.0)
	var none Preferences

	cases := []struct {
		latOffset float64
		want      float64
	}{
		{0.05, 100}, // ~3.5 mi
		{0.3, 95},   // ~21 mi
		{0.6, 85},   // ~41 mi
		{1.2, 70},   // ~83 mi
		{2.5, 55},   // ~173 mi
		{6.0, 40},   // ~414 mi
		{10.0, 15},  // ~690 mi, nobody relocating
	}
	for _, tc := range cases {
		other := profileAt(40.0+tc.latOffset, -74.0)
		if got := locationScore(base, other, none, none); got != tc.want {
			t.Fatalf("offset=%v: score=%v want %v", tc.latOffset, got, tc.want)
		}
	}
}

func TestLocationMonotonicInDistance(t *testing.T) {
	base := profileAt(40.0, -74.0)
	var none Preferences

	prev := 101.0
	for _, off := range []float64{0.02, 0.1, 0.3, 0.6, 1.0, 2.0, 4.0, 7.0, 12.0, 25.0} {
		got := locationScore(base, profileAt(40.0+off, -74.0), none, none)
		if got > prev {
			t.Fatalf("score increased with distance: offset=%v score=%v prev=%v", off, got, prev)
		}
		prev = got
	}
}

func TestLocationGlobalSearchPrecedence(t *testing.T) {
	near := profileAt(40.0, -74.0)
	far := profileAt(20.0, -74.0)

	global := Preferences{SearchGlobally: true}
	globalRelocate := Preferences{SearchGlobally: true, WillingToRelocate: true}
	var none Preferences

	if got := locationScore(near, profileAt(40.1, -74.0), global, global); got != 95 {
		t.Fatalf("both global close: %v want 95", got)
	}
	if got := locationScore(near, profileAt(43.0, -74.0), global, global); got != 85 {
		t.Fatalf("both global mid: %v want 85", got)
	}
	if got := locationScore(near, far, globalRelocate, globalRelocate); got != 80 {
		t.Fatalf("both global both relocate: %v want 80", got)
	}
	if got := locationScore(near, far, globalRelocate, global); got != 70 {
		t.Fatalf("both global one relocate: %v want 70", got)
	}
	if got := locationScore(near, far, global, global); got != 60 {
		t.Fatalf("both global no relocate: %v want 60", got)
	}
	if got := locationScore(near, far, global, none); got != 65 {
		t.Fatalf("one global no relocate: %v want 65", got)
	}
	if got := locationScore(near, far, global, Preferences{WillingToRelocate: true}); got != 75 {
		t.Fatalf("one global one relocate: %v want 75", got)
	}
}

func TestLocationPreferredCityMatch(t *testing.T) {
	a := profileAt(40.0, -74.0)
	a.City = "New York City"
	b := profileAt(34.0, -118.0)
	b.City = "Los Angeles"

	pa := Preferences{PreferredCities: []string{"los angeles"}}
	pb := Preferences{PreferredCities: []string{"new york"}}

	// Substring either direction, case-insensitive.
	if got := locationScore(a, b, pa, pb); got != 100 {
		t.Fatalf("both cities preferred: %v want 100", got)
	}
	if got := locationScore(a, b, pa, Preferences{}); got != 90 {
		t.Fatalf("one city preferred: %v want 90", got)
	}
}

func TestLocationHardFail(t *testing.T) {
	a := profileAt(40.0, -74.0)
	b := profileAt(31.3, -74.0) // ~600 miles

	limited := Preferences{MaxDistanceMiles: 100}
	if got := locationScore(a, b, limited, limited); got != 0 {
		t.Fatalf("unreachable pair: %v want 0", got)
	}

	// One side willing to relocate disarms the hard fail.
	relocating := Preferences{MaxDistanceMiles: 100, WillingToRelocate: true}
	if got := locationScore(a, b, limited, relocating); got != 25 {
		t.Fatalf("unreachable but relocating: %v want 25", got)
	}

	// Unknown locations with stated limits also hard-fail.
	var unknown Profile
	if got := locationScore(a, unknown, limited, limited); got != 0 {
		t.Fatalf("unknown location with limits: %v want 0", got)
	}

	// No stated limit means no hard fail even at extreme distance.
	if got := locationScore(a, b, Preferences{}, Preferences{}); got != 15 {
		t.Fatalf("no limits: %v want 15", got)
	}
}
