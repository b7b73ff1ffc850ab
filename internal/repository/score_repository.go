package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"kindred/internal/database"
	"kindred/internal/domain/compat"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrScoreNotFound = errors.New("score not found")

// StoredScore is one durable cache entry for a profile pair.
type StoredScore struct {
	Pair       PairKey
	Score      int
	Breakdown  compat.Breakdown
	ComputedAt time.Time
}

type ScoreRepository interface {
	Get(ctx context.Context, pair PairKey) (StoredScore, error)
	// Upsert overwrites any prior value for the pair; concurrent writers
	// may race and the last one wins, which is safe because the engine is
	// deterministic.
	Upsert(ctx context.Context, s StoredScore) error
	// DeleteByProfile removes every entry with the profile on either side.
	DeleteByProfile(ctx context.Context, profileID uuid.UUID) (int64, error)
}

type PostgresScoreRepository struct {
	db database.DB
}

func NewPostgresScoreRepository(db database.DB) *PostgresScoreRepository {
	return &PostgresScoreRepository{db: db}
}

func (r *PostgresScoreRepository) Get(ctx context.Context, pair PairKey) (StoredScore, error) {
	row := r.db.QueryRow(ctx,
		`SELECT score, breakdown, computed_at
		 FROM compatibility_scores
		 WHERE profile_a = $1 AND profile_b = $2`,
		pair.A, pair.B,
	)

	out := StoredScore{Pair: pair}
	var breakdown []byte
	if err := row.Scan(&out.Score, &breakdown, &out.ComputedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return StoredScore{}, ErrScoreNotFound
		}
		return StoredScore{}, err
	}
	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &out.Breakdown); err != nil {
			return StoredScore{}, err
		}
	}
	return out, nil
}

func (r *PostgresScoreRepository) Upsert(ctx context.Context, s StoredScore) error {
	if s.Pair.A == uuid.Nil || s.Pair.B == uuid.Nil {
		return nil
	}
	if s.ComputedAt.IsZero() {
		s.ComputedAt = time.Now().UTC()
	}

	breakdown, err := json.Marshal(s.Breakdown)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO compatibility_scores (profile_a, profile_b, score, breakdown, computed_at)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (profile_a, profile_b) DO UPDATE SET
			score = EXCLUDED.score,
			breakdown = EXCLUDED.breakdown,
			computed_at = EXCLUDED.computed_at`,
		s.Pair.A, s.Pair.B, s.Score, breakdown, s.ComputedAt,
	)
	return err
}

func (r *PostgresScoreRepository) DeleteByProfile(ctx context.Context, profileID uuid.UUID) (int64, error) {
	return r.db.Exec(ctx,
		`DELETE FROM compatibility_scores WHERE profile_a = $1 OR profile_b = $1`,
		profileID,
	)
}
