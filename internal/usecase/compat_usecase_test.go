package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"kindred/internal/domain/compat"
	"kindred/internal/repository"

	"github.com/google/uuid"
)

type mockScoreRepo struct {
	mu      sync.Mutex
	entries map[repository.PairKey]repository.StoredScore

	getErr    error
	upsertErr error
	getCalls  int
}

func newMockScoreRepo() *mockScoreRepo {
	return &mockScoreRepo{entries: make(map[repository.PairKey]repository.StoredScore)}
}

func (m *mockScoreRepo) Get(_ context.Context, pair repository.PairKey) (repository.StoredScore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.getErr != nil {
		return repository.StoredScore{}, m.getErr
	}
	s, ok := m.entries[pair]
	if !ok {
		return repository.StoredScore{}, repository.ErrScoreNotFound
	}
	return s, nil
}

func (m *mockScoreRepo) Upsert(_ context.Context, s repository.StoredScore) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.entries[s.Pair] = s
	return nil
}

func (m *mockScoreRepo) DeleteByProfile(_ context.Context, profileID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for pair := range m.entries {
		if pair.Contains(profileID) {
			delete(m.entries, pair)
			n++
		}
	}
	return n, nil
}

type mockScoreCache struct {
	mu      sync.Mutex
	entries map[string][]byte

	getErr error
	setErr error
}

func newMockScoreCache() *mockScoreCache {
	return &mockScoreCache{entries: make(map[string][]byte)}
}

func (m *mockScoreCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return false, m.getErr
	}
	b, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockScoreCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = b
	return nil
}

func (m *mockScoreCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Supports only the "prefix*" and "prefix*:suffix" forms the usecase
	// builds, which is all this mock needs.
	for key := range m.entries {
		if globMatch(pattern, key) {
			delete(m.entries, key)
		}
	}
	return nil
}

// syncSink runs dispatched writes inline so tests observe them
// deterministically.
type syncSink struct {
	ops []string
}

func (s *syncSink) Dispatch(name string, write func(ctx context.Context) error) {
	s.ops = append(s.ops, name)
	_ = write(context.Background())
}

// recordingSink records dispatches without running them, to assert the
// read path never depends on write completion.
type recordingSink struct {
	ops []string
}

func (s *recordingSink) Dispatch(name string, _ func(ctx context.Context) error) {
	s.ops = append(s.ops, name)
}

func testPair() (compat.Profile, compat.Profile, compat.Preferences, compat.Preferences) {
	a := compat.Profile{ID: uuid.New(), Age: 30, Genders: []string{"female"}}
	b := compat.Profile{ID: uuid.New(), Age: 32, Genders: []string{"male"}}
	pa := compat.Preferences{AgeMin: 25, AgeMax: 40, RelationshipType: "platonic"}
	pb := compat.Preferences{AgeMin: 25, AgeMax: 40, RelationshipType: "platonic"}
	return a, b, pa, pb
}

func newTestCompat(repo *mockScoreRepo, cache *mockScoreCache, sink WriteSink) (*Compat, *int) {
	uc := NewCompatUsecase(repo, cache, sink, nil, 7*24*time.Hour, 4)
	calls := 0
	inner := uc.compute
	uc.compute = func(a, b compat.Profile, pa, pb compat.Preferences) compat.Breakdown {
		calls++
		return inner(a, b, pa, pb)
	}
	return uc, &calls
}

func TestGetOrComputeRoundTrip(t *testing.T) {
	repo := newMockScoreRepo()
	cache := newMockScoreCache()
	uc, calls := newTestCompat(repo, cache, &syncSink{})

	a, b, pa, pb := testPair()
	ctx := context.Background()

	first := uc.GetOrCompute(ctx, a, b, pa, pb)
	if *calls != 1 {
		t.Fatalf("expected 1 engine call, got %d", *calls)
	}

	second := uc.GetOrCompute(ctx, a, b, pa, pb)
	if second != first {
		t.Fatalf("round trip mismatch: %d vs %d", first, second)
	}
	if *calls != 1 {
		t.Fatalf("second call re-invoked engine: %d calls", *calls)
	}
}

func TestGetOrComputePairSymmetry(t *testing.T) {
	repo := newMockScoreRepo()
	cache := newMockScoreCache()
	uc, calls := newTestCompat(repo, cache, &syncSink{})

	a, b, pa, pb := testPair()
	ctx := context.Background()

	first := uc.GetOrCompute(ctx, a, b, pa, pb)
	swapped := uc.GetOrCompute(ctx, b, a, pb, pa)

	if swapped != first {
		t.Fatalf("swapped args returned %d, want %d", swapped, first)
	}
	if *calls != 1 {
		t.Fatalf("swapped call missed the cache: %d engine calls", *calls)
	}
	if len(cache.entries) != 1 {
		t.Fatalf("expected one cache slot, got %d", len(cache.entries))
	}
}

func TestInvalidateForcesRecompute(t *testing.T) {
	repo := newMockScoreRepo()
	cache := newMockScoreCache()
	uc, calls := newTestCompat(repo, cache, &syncSink{})

	a, b, pa, pb := testPair()
	ctx := context.Background()

	uc.GetOrCompute(ctx, a, b, pa, pb)
	if err := uc.Invalidate(ctx, a.ID); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if len(repo.entries) != 0 {
		t.Fatalf("durable entries survived invalidation")
	}
	if len(cache.entries) != 0 {
		t.Fatalf("hot entries survived invalidation")
	}

	uc.GetOrCompute(ctx, a, b, pa, pb)
	if *calls != 2 {
		t.Fatalf("expected recompute after invalidation, got %d engine calls", *calls)
	}
}

func TestStaleEntryRecomputed(t *testing.T) {
	repo := newMockScoreRepo()
	cache := newMockScoreCache()
	uc, calls := newTestCompat(repo, cache, &syncSink{})

	a, b, pa, pb := testPair()
	ctx := context.Background()

	uc.GetOrCompute(ctx, a, b, pa, pb)

	// Jump past the freshness window.
	uc.now = func() time.Time { return time.Now().Add(8 * 24 * time.Hour) }

	uc.GetOrCompute(ctx, a, b, pa, pb)
	if *calls != 2 {
		t.Fatalf("stale entry was reused: %d engine calls", *calls)
	}
}

func TestDurableHitBackfillsHotCache(t *testing.T) {
	repo := newMockScoreRepo()
	cache := newMockScoreCache()
	sink := &syncSink{}
	uc, calls := newTestCompat(repo, cache, sink)

	a, b, pa, pb := testPair()
	ctx := context.Background()
	pair := repository.NewPairKey(a.ID, b.ID)

	repo.entries[pair] = repository.StoredScore{
		Pair:       pair,
		Score:      72,
		ComputedAt: time.Now().UTC(),
	}

	if got := uc.GetOrCompute(ctx, a, b, pa, pb); got != 72 {
		t.Fatalf("got %d want stored 72", got)
	}
	if *calls != 0 {
		t.Fatalf("engine ran despite durable hit")
	}
	if len(cache.entries) != 1 {
		t.Fatalf("hot cache not backfilled")
	}

	found := false
	for _, op := range sink.ops {
		if op == "score-cache-backfill" {
			found = true
		}
	}
	if !found {
		t.Fatalf("backfill not dispatched through sink: %v", sink.ops)
	}
}

func TestStoreFailuresDegradeToComputation(t *testing.T) {
	repo := newMockScoreRepo()
	repo.getErr = errors.New("db down")
	cache := newMockScoreCache()
	cache.getErr = errors.New("redis down")
	uc, calls := newTestCompat(repo, cache, &syncSink{})

	a, b, pa, pb := testPair()

	got := uc.GetOrCompute(context.Background(), a, b, pa, pb)
	if got < 0 || got > 100 {
		t.Fatalf("degraded score out of range: %d", got)
	}
	if *calls != 1 {
		t.Fatalf("expected engine fallback, got %d calls", *calls)
	}
}

func TestWritesAreFireAndForget(t *testing.T) {
	repo := newMockScoreRepo()
	cache := newMockScoreCache()
	sink := &recordingSink{}
	uc, _ := newTestCompat(repo, cache, sink)

	a, b, pa, pb := testPair()

	got := uc.GetOrCompute(context.Background(), a, b, pa, pb)
	if got < 0 || got > 100 {
		t.Fatalf("score out of range: %d", got)
	}

	// Writes were dispatched but never executed: the read path must not
	// depend on them.
	if len(sink.ops) != 2 {
		t.Fatalf("expected 2 dispatched writes, got %v", sink.ops)
	}
	if len(repo.entries) != 0 || len(cache.entries) != 0 {
		t.Fatalf("writes ran synchronously")
	}
}

func TestWriteFailuresNeverSurface(t *testing.T) {
	repo := newMockScoreRepo()
	repo.upsertErr = errors.New("db down")
	cache := newMockScoreCache()
	cache.setErr = errors.New("redis down")
	uc, _ := newTestCompat(repo, cache, &syncSink{})

	a, b, pa, pb := testPair()

	got := uc.GetOrCompute(context.Background(), a, b, pa, pb)
	if got < 0 || got > 100 {
		t.Fatalf("score out of range despite write failures: %d", got)
	}
}

func TestBatchComputeIsolatesFailures(t *testing.T) {
	repo := newMockScoreRepo()
	cache := newMockScoreCache()
	uc, _ := newTestCompat(repo, cache, &syncSink{})

	source, good, pa, pb := testPair()
	candidates := []repository.Candidate{
		{Profile: good, Preferences: pb},
		{}, // nil profile id must fail alone
		{Profile: compat.Profile{ID: uuid.New(), Age: 28}, Preferences: pb},
	}

	results := uc.BatchCompute(context.Background(), source, pa, candidates)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Fatalf("healthy candidates failed: %v %v", results[0].Err, results[2].Err)
	}
	if !errors.Is(results[1].Err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty candidate, got %v", results[1].Err)
	}
	if len(repo.entries) != 2 {
		t.Fatalf("expected 2 persisted scores, got %d", len(repo.entries))
	}
}

func TestInvalidateRejectsNilID(t *testing.T) {
	uc, _ := newTestCompat(newMockScoreRepo(), newMockScoreCache(), &syncSink{})
	if err := uc.Invalidate(context.Background(), uuid.Nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

// globMatch supports the single-star patterns used for pair invalidation.
func globMatch(pattern, s string) bool {
	star := strings.IndexByte(pattern, '*')
	if star < 0 {
		return pattern == s
	}
	prefix, suffix := pattern[:star], pattern[star+1:]
	return strings.HasPrefix(s, prefix) && strings.HasSuffix(s, suffix) &&
		len(s) >= len(prefix)+len(suffix)
}
