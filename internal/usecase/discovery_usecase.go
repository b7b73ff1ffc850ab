package usecase

import (
	"context"
	"errors"
	"sort"

	"kindred/internal/domain/compat"
	"kindred/internal/repository"

	"github.com/google/uuid"
)

var ErrIncompleteProfile = errors.New("profile incomplete")

type DiscoveryParams struct {
	Limit    int
	Offset   int
	MinScore int
}

type FeedItem struct {
	ProfileID uuid.UUID
	Age       int
	City      string
	State     string
	Score     int
}

// PrewarmNotifier receives completion events for background batch
// computation; the websocket hub implements it.
type PrewarmNotifier interface {
	PrewarmCompleted(profileID uuid.UUID, computed, failed int)
}

type DiscoveryUsecase interface {
	Feed(ctx context.Context, viewerID uuid.UUID, params DiscoveryParams) ([]FeedItem, error)
	CompareWith(ctx context.Context, viewerID, otherID uuid.UUID) (compat.Breakdown, error)
	Prewarm(ctx context.Context, viewerID uuid.UUID, limit int) (int, error)
}

type Discovery struct {
	profiles repository.ProfileRepository
	compat   CompatUsecase
	notifier PrewarmNotifier
}

func NewDiscoveryUsecase(profiles repository.ProfileRepository, compatUC CompatUsecase, notifier PrewarmNotifier) *Discovery {
	return &Discovery{profiles: profiles, compat: compatUC, notifier: notifier}
}

// Feed ranks candidates for the viewer by compatibility score. The score is
// a sort and filter signal only; candidate order from storage breaks ties.
func (u *Discovery) Feed(ctx context.Context, viewerID uuid.UUID, params DiscoveryParams) ([]FeedItem, error) {
	if viewerID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	minScore := params.MinScore
	if minScore < 0 {
		minScore = 0
	}

	viewer, viewerPrefs, err := u.profiles.FindByID(ctx, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternal
	}

	candidates, err := u.profiles.ListCandidates(ctx, viewerID, viewerPrefs, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}

	items := make([]FeedItem, 0, len(candidates))
	for _, c := range candidates {
		score := u.compat.GetOrCompute(ctx, viewer, c.Profile, viewerPrefs, c.Preferences)
		if score < minScore {
			continue
		}
		items = append(items, FeedItem{
			ProfileID: c.Profile.ID,
			Age:       c.Profile.Age,
			City:      c.Profile.City,
			State:     c.Profile.State,
			Score:     score,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})

	return items, nil
}

// CompareWith returns the full category breakdown between the viewer and
// one other profile.
func (u *Discovery) CompareWith(ctx context.Context, viewerID, otherID uuid.UUID) (compat.Breakdown, error) {
	if viewerID == uuid.Nil {
		return compat.Breakdown{}, ErrUnauthorized
	}
	if otherID == uuid.Nil || otherID == viewerID {
		return compat.Breakdown{}, ErrInvalidInput
	}

	viewer, viewerPrefs, err := u.profiles.FindByID(ctx, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return compat.Breakdown{}, ErrProfileNotFound
		}
		return compat.Breakdown{}, ErrInternal
	}

	other, otherPrefs, err := u.profiles.FindByID(ctx, otherID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return compat.Breakdown{}, ErrProfileNotFound
		}
		return compat.Breakdown{}, ErrInternal
	}

	return u.compat.Breakdown(ctx, viewer, other, viewerPrefs, otherPrefs), nil
}

// Prewarm computes and persists scores for the viewer's next candidates in
// the background and reports how many it queued. Individual failures are
// counted, not propagated.
func (u *Discovery) Prewarm(ctx context.Context, viewerID uuid.UUID, limit int) (int, error) {
	if viewerID == uuid.Nil {
		return 0, ErrUnauthorized
	}
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}

	viewer, viewerPrefs, err := u.profiles.FindByID(ctx, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return 0, ErrProfileNotFound
		}
		return 0, ErrInternal
	}

	candidates, err := u.profiles.ListCandidates(ctx, viewerID, viewerPrefs, limit, 0)
	if err != nil {
		return 0, ErrInternal
	}

	results := u.compat.BatchCompute(ctx, viewer, viewerPrefs, candidates)

	computed, failed := 0, 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		computed++
	}
	if u.notifier != nil {
		u.notifier.PrewarmCompleted(viewerID, computed, failed)
	}
	return computed, nil
}
