package compat

import (
	"math"
	"strings"
)

const earthRadiusMiles = 3958.8

// distanceUnknown stands in for "unknown/very large" when either profile has
// no coordinates: it fails every distance band and trips the hard-fail rule.
const distanceUnknown = math.MaxFloat64

// DistanceMiles is the great-circle (Haversine) distance between the two
// profiles, or distanceUnknown when either location is missing.
func DistanceMiles(a, b Profile) float64 {
	if !a.HasLocation() || !b.HasLocation() {
		return distanceUnknown
	}
	return haversineMiles(*a.Latitude, *a.Longitude, *b.Latitude, *b.Longitude)
}

func haversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMiles * math.Asin(math.Sqrt(math.Min(h, 1)))
}

// locationScore applies the location rules in precedence order: global
// search flags, preferred-city matches, then plain distance bands with the
// unreachable hard fail.
func locationScore(a, b Profile, pa, pb Preferences) float64 {
	dist := DistanceMiles(a, b)

	switch {
	case pa.SearchGlobally && pb.SearchGlobally:
		switch {
		case dist < 50:
			return 95
		case dist < 500:
			return 85
		case pa.WillingToRelocate && pb.WillingToRelocate:
			return 80
		case pa.WillingToRelocate || pb.WillingToRelocate:
			return 70
		default:
			return 60
		}

	case pa.SearchGlobally || pb.SearchGlobally:
		if pa.WillingToRelocate || pb.WillingToRelocate {
			return 75
		}
		return 65
	}

	aMatches := cityPreferred(a.City, pb.PreferredCities)
	bMatches := cityPreferred(b.City, pa.PreferredCities)
	switch {
	case aMatches && bMatches:
		return 100
	case aMatches || bMatches:
		return 90
	}

	if unreachable(dist, pa) && unreachable(dist, pb) &&
		!pa.WillingToRelocate && !pb.WillingToRelocate {
		return 0
	}

	switch {
	case dist < 10:
		return 100
	case dist < 25:
		return 95
	case dist < 50:
		return 85
	case dist < 100:
		return 70
	case dist < 200:
		return 55
	case dist < 500:
		return 40
	case pa.WillingToRelocate && pb.WillingToRelocate:
		return 35
	case pa.WillingToRelocate || pb.WillingToRelocate:
		return 25
	default:
		return 15
	}
}

// A max distance of zero or less means the profile never stated one, which
// cannot be exceeded.
func unreachable(dist float64, p Preferences) bool {
	return p.MaxDistanceMiles > 0 && dist > p.MaxDistanceMiles
}

// cityPreferred matches case-insensitively with substring tolerance in both
// directions, so "New York" matches a stored "New York City" and vice versa.
func cityPreferred(city string, preferred []string) bool {
	city = norm(city)
	if city == "" {
		return false
	}
	for _, p := range normList(preferred) {
		if strings.Contains(city, p) || strings.Contains(p, city) {
			return true
		}
	}
	return false
}
