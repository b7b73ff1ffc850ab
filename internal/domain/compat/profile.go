package compat

import "github.com/google/uuid"

type Profile struct {
	ID uuid.UUID

	Age          int
	Genders      []string
	Orientations []string

	City      string
	State     string
	Latitude  *float64
	Longitude *float64

	HeightCm        int
	Zodiac          string
	PersonalityType string
	LoveLanguages   []string
	Languages       []string
	Bio             string
	Hobbies         []string
	Interests       Interests
	Religion        string
	PoliticalViews  string
	Ethnicities     []string
}

type Interests struct {
	Movies  []string
	Music   []string
	Books   []string
	TVShows []string
}

type Preferences struct {
	MaxDistanceMiles  float64
	WillingToRelocate bool
	SearchGlobally    bool
	PreferredCities   []string

	PrimaryReasons       []string
	RelationshipType     string
	WantsChildren        *bool
	ChildrenArrangements []string

	FinancialArrangements []string
	HousingPreferences    []string

	Smoking  string
	Drinking string
	Pets     string

	AgeMin           int
	AgeMax           int
	GenderPreference []string
}

// HasLocation reports whether both coordinates are present. A profile
// without coordinates is scored as "unknown location".
func (p Profile) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}
