package repository

import (
	"context"
	"database/sql"
	"errors"

	"kindred/internal/database"
	"kindred/internal/domain/compat"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository is the read-only view over the externally managed
// profile and preferences records. The core never writes these tables.
type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (compat.Profile, compat.Preferences, error)
	ListCandidates(ctx context.Context, viewerID uuid.UUID, prefs compat.Preferences, limit, offset int) ([]Candidate, error)
}

// Candidate is one discovery-feed candidate with its preferences preloaded,
// so scoring needs no second round trip.
type Candidate struct {
	Profile     compat.Profile
	Preferences compat.Preferences
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileColumns = `
	p.id, p.age, p.gender, p.genders, p.orientations,
	p.city, p.state, p.latitude, p.longitude,
	p.height_cm, p.zodiac, p.personality_type,
	p.love_language, p.love_languages, p.languages,
	p.bio, p.hobbies,
	p.interest_movies, p.interest_music, p.interest_books, p.interest_tv_shows,
	p.religion, p.political_views, p.ethnicities`

const preferencesColumns = `
	r.max_distance_miles, r.willing_to_relocate, r.search_globally, r.preferred_cities,
	r.primary_reasons, r.relationship_type, r.wants_children, r.children_arrangements,
	r.financial_arrangements, r.housing_preferences,
	r.smoking, r.drinking, r.pets,
	r.age_min, r.age_max, r.gender_preference`

func (repo *PostgresProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (compat.Profile, compat.Preferences, error) {
	row := repo.db.QueryRow(ctx,
		`SELECT `+profileColumns+`, `+preferencesColumns+`
		 FROM profiles p
		 JOIN preferences r ON r.profile_id = p.id
		 WHERE p.id = $1`,
		id,
	)

	profile, prefs, err := scanProfileAndPrefs(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return compat.Profile{}, compat.Preferences{}, ErrProfileNotFound
		}
		return compat.Profile{}, compat.Preferences{}, err
	}
	return profile, prefs, nil
}

// ListCandidates prefilters by the viewer's age range widened by five years;
// the engine's own demographics scoring does the precise work. Candidates
// without a stated range on the viewer's side are not filtered.
func (repo *PostgresProfileRepository) ListCandidates(ctx context.Context, viewerID uuid.UUID, prefs compat.Preferences, limit, offset int) ([]Candidate, error) {
	const agePrefilterBuffer = 5

	ageMin := 0
	ageMax := 1 << 30
	if prefs.AgeMin > 0 || prefs.AgeMax > 0 {
		ageMin = prefs.AgeMin - agePrefilterBuffer
		ageMax = prefs.AgeMax + agePrefilterBuffer
	}

	rows, err := repo.db.Query(ctx,
		`SELECT `+profileColumns+`, `+preferencesColumns+`
		 FROM profiles p
		 JOIN preferences r ON r.profile_id = p.id
		 WHERE p.id <> $1
		   AND p.age BETWEEN $2 AND $3
		 ORDER BY p.updated_at DESC
		 LIMIT $4 OFFSET $5`,
		viewerID, ageMin, ageMax, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Candidate, 0, limit)
	for rows.Next() {
		profile, candidatePrefs, err := scanProfileAndPrefs(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, Candidate{Profile: profile, Preferences: candidatePrefs})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// scanProfileAndPrefs maps one joined row. Legacy records store a single
// scalar where the app now keeps a multi-select list; compat.ValuesOf folds
// both shapes at this boundary so nothing downstream sees a bare scalar.
func scanProfileAndPrefs(row database.Row) (compat.Profile, compat.Preferences, error) {
	var (
		p compat.Profile
		r compat.Preferences

		legacyGender       sql.NullString
		legacyLoveLanguage sql.NullString
		genders            []string
		loveLanguages      []string
	)

	err := row.Scan(
		&p.ID, &p.Age, &legacyGender, &genders, &p.Orientations,
		&p.City, &p.State, &p.Latitude, &p.Longitude,
		&p.HeightCm, &p.Zodiac, &p.PersonalityType,
		&legacyLoveLanguage, &loveLanguages, &p.Languages,
		&p.Bio, &p.Hobbies,
		&p.Interests.Movies, &p.Interests.Music, &p.Interests.Books, &p.Interests.TVShows,
		&p.Religion, &p.PoliticalViews, &p.Ethnicities,

		&r.MaxDistanceMiles, &r.WillingToRelocate, &r.SearchGlobally, &r.PreferredCities,
		&r.PrimaryReasons, &r.RelationshipType, &r.WantsChildren, &r.ChildrenArrangements,
		&r.FinancialArrangements, &r.HousingPreferences,
		&r.Smoking, &r.Drinking, &r.Pets,
		&r.AgeMin, &r.AgeMax, &r.GenderPreference,
	)
	if err != nil {
		return compat.Profile{}, compat.Preferences{}, err
	}

	p.Genders = compat.ValuesOf(legacyGender.String, genders)
	p.LoveLanguages = compat.ValuesOf(legacyLoveLanguage.String, loveLanguages)

	return p, r, nil
}
