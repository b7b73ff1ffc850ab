package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"kindred/internal/domain/compat"
	"kindred/internal/repository"
	"kindred/internal/worker"

	"github.com/google/uuid"
)

// CompatUsecase is the read-through score cache over the pure engine:
// Redis first, then the durable table, then a synchronous engine call.
type CompatUsecase interface {
	GetOrCompute(ctx context.Context, a, b compat.Profile, pa, pb compat.Preferences) int
	Breakdown(ctx context.Context, a, b compat.Profile, pa, pb compat.Preferences) compat.Breakdown
	Invalidate(ctx context.Context, profileID uuid.UUID) error
	BatchCompute(ctx context.Context, source compat.Profile, sourcePrefs compat.Preferences, candidates []repository.Candidate) []BatchResult
}

type BatchResult struct {
	ProfileID uuid.UUID
	Score     int
	Err       error
}

type Compat struct {
	scores repository.ScoreRepository
	cache  ScoreCache
	sink   WriteSink
	logger *log.Logger

	freshFor time.Duration
	workers  int

	// compute is the engine entry point, injectable so tests can count
	// invocations; it must stay pure.
	compute func(a, b compat.Profile, pa, pb compat.Preferences) compat.Breakdown
	now     func() time.Time
}

func NewCompatUsecase(scores repository.ScoreRepository, cache ScoreCache, sink WriteSink, logger *log.Logger, freshFor time.Duration, workers int) *Compat {
	if freshFor <= 0 {
		freshFor = 7 * 24 * time.Hour
	}
	if workers <= 0 {
		workers = 8
	}
	return &Compat{
		scores:   scores,
		cache:    cache,
		sink:     sink,
		logger:   logger,
		freshFor: freshFor,
		workers:  workers,
		compute:  compat.Compute,
		now:      time.Now,
	}
}

// cachedScore is the JSON shape stored in the hot cache.
type cachedScore struct {
	Score      int              `json:"score"`
	Breakdown  compat.Breakdown `json:"breakdown"`
	ComputedAt time.Time        `json:"computed_at"`
}

// GetOrCompute returns the compatibility score for the unordered pair.
// Store failures on the read path degrade to a miss; the engine is cheap
// and deterministic, so recomputing is always safe. Concurrent misses for
// the same pair may each invoke the engine; the last write wins.
func (u *Compat) GetOrCompute(ctx context.Context, a, b compat.Profile, pa, pb compat.Preferences) int {
	pair := repository.NewPairKey(a.ID, b.ID)

	if entry, ok := u.cachedFresh(ctx, pair); ok {
		return entry.Score
	}

	if stored, err := u.scores.Get(ctx, pair); err == nil && u.fresh(stored.ComputedAt) {
		u.backfillHotCache(pair, stored)
		return stored.Score
	} else if err != nil && !errors.Is(err, repository.ErrScoreNotFound) {
		u.logf("score lookup failed, computing | pair=%s err=%v", pair, err)
	}

	bd := u.compute(a, b, pa, pb)
	u.persist(pair, bd)
	return bd.Total
}

// Breakdown always runs the engine so the per-category view reflects the
// current profiles, and refreshes both cache tiers on the way out.
func (u *Compat) Breakdown(ctx context.Context, a, b compat.Profile, pa, pb compat.Preferences) compat.Breakdown {
	pair := repository.NewPairKey(a.ID, b.ID)
	bd := u.compute(a, b, pa, pb)
	u.persist(pair, bd)
	return bd
}

// Invalidate drops every cached entry referencing the profile on either
// side of a pair. Called by the platform whenever a profile or its
// preferences change.
func (u *Compat) Invalidate(ctx context.Context, profileID uuid.UUID) error {
	if profileID == uuid.Nil {
		return ErrInvalidInput
	}

	var firstErr error
	for _, pattern := range pairInvalidationPatterns(profileID.String()) {
		if err := u.cache.DeleteByPattern(ctx, pattern); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if _, err := u.scores.DeleteByProfile(ctx, profileID); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// BatchCompute pre-warms scores for many candidates against one source
// profile. Items succeed or fail independently: a bad candidate yields an
// error entry, never an aborted batch. Persistence here is synchronous;
// the whole batch already runs off the request path.
func (u *Compat) BatchCompute(ctx context.Context, source compat.Profile, sourcePrefs compat.Preferences, candidates []repository.Candidate) []BatchResult {
	results := make([]BatchResult, len(candidates))

	tasks := make([]worker.Task, len(candidates))
	for i := range candidates {
		c := candidates[i]
		idx := i
		tasks[i] = func(ctx context.Context) error {
			if c.Profile.ID == uuid.Nil {
				return ErrInvalidInput
			}
			bd := u.compute(source, c.Profile, sourcePrefs, c.Preferences)
			results[idx].Score = bd.Total

			pair := repository.NewPairKey(source.ID, c.Profile.ID)
			entry := cachedScore{Score: bd.Total, Breakdown: bd, ComputedAt: u.now().UTC()}
			if err := u.scores.Upsert(ctx, storedFromEntry(pair, entry)); err != nil {
				return err
			}
			return u.cache.SetJSON(ctx, pairCacheKey(pair), entry, u.freshFor)
		}
	}

	for _, res := range worker.Run(ctx, u.workers, tasks) {
		results[res.Index].ProfileID = candidates[res.Index].Profile.ID
		results[res.Index].Err = res.Err
	}
	return results
}

func (u *Compat) cachedFresh(ctx context.Context, pair repository.PairKey) (cachedScore, bool) {
	var entry cachedScore
	ok, err := u.cache.GetJSON(ctx, pairCacheKey(pair), &entry)
	if err != nil {
		u.logf("hot cache lookup failed, treating as miss | pair=%s err=%v", pair, err)
		return cachedScore{}, false
	}
	if !ok || !u.fresh(entry.ComputedAt) {
		return cachedScore{}, false
	}
	return entry, true
}

func (u *Compat) fresh(computedAt time.Time) bool {
	if computedAt.IsZero() {
		return false
	}
	return u.now().Sub(computedAt) < u.freshFor
}

// persist dispatches both store writes through the sink; the caller never
// waits on them and never sees their errors.
func (u *Compat) persist(pair repository.PairKey, bd compat.Breakdown) {
	entry := cachedScore{Score: bd.Total, Breakdown: bd, ComputedAt: u.now().UTC()}

	u.sink.Dispatch("score-upsert", func(ctx context.Context) error {
		return u.scores.Upsert(ctx, storedFromEntry(pair, entry))
	})
	u.sink.Dispatch("score-cache-set", func(ctx context.Context) error {
		return u.cache.SetJSON(ctx, pairCacheKey(pair), entry, u.freshFor)
	})
}

func (u *Compat) backfillHotCache(pair repository.PairKey, stored repository.StoredScore) {
	entry := cachedScore{Score: stored.Score, Breakdown: stored.Breakdown, ComputedAt: stored.ComputedAt}
	u.sink.Dispatch("score-cache-backfill", func(ctx context.Context) error {
		return u.cache.SetJSON(ctx, pairCacheKey(pair), entry, u.freshFor)
	})
}

func storedFromEntry(pair repository.PairKey, entry cachedScore) repository.StoredScore {
	return repository.StoredScore{
		Pair:       pair,
		Score:      entry.Score,
		Breakdown:  entry.Breakdown,
		ComputedAt: entry.ComputedAt,
	}
}

func (u *Compat) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
