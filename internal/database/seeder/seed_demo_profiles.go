package seeder

import (
	"context"

	"kindred/internal/database"
)

type DemoProfilesSeeder struct{}

func (DemoProfilesSeeder) Name() string { return "demo_profiles" }

type demoProfile struct {
	id        string
	age       int
	genders   []string
	city      string
	state     string
	lat, lng  float64
	zodiac    string
	mbti      string
	hobbies   []string
	bio       string
	reasons   []string
	relType   string
	ageMin    int
	ageMax    int
	genderPrf []string
}

var demoProfiles = []demoProfile{
	{
		id: "2e9df973-1c37-4a46-912c-3c450ee0347b", age: 29, genders: []string{"female"},
		city: "Austin", state: "TX", lat: 30.2672, lng: -97.7431,
		zodiac: "leo", mbti: "enfp",
		hobbies: []string{"hiking", "cooking", "board games"},
		bio:     "Weekend trail runner who cooks way too much pasta.",
		reasons: []string{"co-parenting"}, relType: "platonic",
		ageMin: 27, ageMax: 40, genderPrf: []string{"male", "female"},
	},
	{
		id: "7be4f52d-8b11-4a79-a771-6c19cd68a1d0", age: 34, genders: []string{"male"},
		city: "Austin", state: "TX", lat: 30.2849, lng: -97.7341,
		zodiac: "aries", mbti: "intj",
		hobbies: []string{"hiking", "photography"},
		bio:     "Photographer, early riser, always planning the next trip.",
		reasons: []string{"co-parenting", "companionship"}, relType: "platonic",
		ageMin: 25, ageMax: 38, genderPrf: []string{"female"},
	},
	{
		id: "c1a8e6a4-30cb-4fd1-9af2-5ce86e2b14a9", age: 41, genders: []string{"female"},
		city: "Dallas", state: "TX", lat: 32.7767, lng: -96.797,
		zodiac: "pisces", mbti: "isfj",
		hobbies: []string{"gardening", "reading"},
		bio:     "Nurse and garden person looking for a stable arrangement.",
		reasons: []string{"companionship"}, relType: "romantic",
		ageMin: 35, ageMax: 50, genderPrf: []string{},
	},
}

// Run is idempotent: demo rows carry fixed ids and conflicts are ignored.
func (DemoProfilesSeeder) Run(ctx context.Context, db database.DB) error {
	for _, p := range demoProfiles {
		_, err := db.Exec(ctx,
			`INSERT INTO profiles
				(id, age, genders, city, state, latitude, longitude, zodiac, personality_type, hobbies, bio)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			 ON CONFLICT (id) DO NOTHING`,
			p.id, p.age, p.genders, p.city, p.state, p.lat, p.lng, p.zodiac, p.mbti, p.hobbies, p.bio,
		)
		if err != nil {
			return err
		}

		_, err = db.Exec(ctx,
			`INSERT INTO preferences
				(profile_id, max_distance_miles, primary_reasons, relationship_type, age_min, age_max, gender_preference)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (profile_id) DO NOTHING`,
			p.id, 100.0, p.reasons, p.relType, p.ageMin, p.ageMax, p.genderPrf,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
