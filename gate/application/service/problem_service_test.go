package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiD92/wwyd/common/config"
	"github.com/DiD92/wwyd/core/domain/entity"
	"github.com/DiD92/wwyd/core/domain/repository"
	"github.com/DiD92/wwyd/core/infrastructure/cache"
	"github.com/DiD92/wwyd/framework/catalog"
	"github.com/DiD92/wwyd/framework/wwyd"
	"github.com/DiD92/wwyd/gate/application/dto"
)

type memProblems struct {
	mu    sync.Mutex
	byID  map[string]*entity.ProblemRecord
	order []*entity.ProblemRecord
	finds int
}

func (m *memProblems) Save(_ context.Context, rec *entity.ProblemRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[rec.PublicID] = rec
	m.order = append(m.order, rec)
	return nil
}

func (m *memProblems) FindByPublicID(_ context.Context, id string) (*entity.ProblemRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finds++
	rec, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrProblemNotFound
	}
	return rec, nil
}

func (m *memProblems) FindByHand(_ context.Context, hand string, limit int) ([]*entity.ProblemRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.ProblemRecord
	for i := len(m.order) - 1; i >= 0 && len(out) < limit; i-- {
		if m.order[i].HandName == hand {
			out = append(out, m.order[i])
		}
	}
	return out, nil
}

type memSnapshots struct {
	mu     sync.Mutex
	serial int64
	recs   map[string]*entity.ProblemRecord
	down   bool
}

func (m *memSnapshots) NextSerial(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.down {
		return 0, repository.ErrRedis
	}
	m.serial++
	return m.serial, nil
}

func (m *memSnapshots) SaveSnapshot(_ context.Context, rec *entity.ProblemRecord, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.down {
		return repository.ErrRedis
	}
	m.recs[rec.PublicID] = rec
	return nil
}

func (m *memSnapshots) GetSnapshot(_ context.Context, id string) (*entity.ProblemRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.down {
		return nil, repository.ErrRedis
	}
	rec, ok := m.recs[id]
	if !ok {
		return nil, repository.ErrProblemNotFound
	}
	return rec, nil
}

type fixture struct {
	svc       *ProblemService
	problems  *memProblems
	snapshots *memSnapshots
	cache     *cache.ProblemCache
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cat, err := catalog.Load("../../../resource/hands.toml")
	require.NoError(t, err)
	pc, err := cache.NewProblemCache(1000, time.Minute)
	require.NoError(t, err)
	t.Cleanup(pc.Close)

	f := &fixture{
		problems:  &memProblems{byID: map[string]*entity.ProblemRecord{}},
		snapshots: &memSnapshots{recs: map[string]*entity.ProblemRecord{}},
		cache:     pc,
	}
	settings := func() config.GeneratorConf {
		return config.GeneratorConf{ComposeAttempts: 64, AdjustRetries: 64, MaxShanten: 3}
	}
	f.svc = NewProblemService(cat, f.problems, f.snapshots, pc, settings, time.Hour)
	return f
}

func shanten(n int) *int { return &n }

func TestGenerate_FromCatalog(t *testing.T) {
	f := newFixture(t)

	rec, err := f.svc.Generate(context.Background(), &dto.GenerateCommand{Hand: "chinitsu", Shanten: shanten(1), Seed: 5})
	require.NoError(t, err)

	assert.Equal(t, "Chinitsu", rec.HandName)
	assert.NotEmpty(t, rec.PublicID)
	assert.Equal(t, int64(1), rec.Serial)
	assert.Equal(t, 1, rec.Shanten)
	assert.Len(t, rec.Tiles, 13)
	assert.Equal(t, int64(5), rec.Seed)
	assert.Contains(t, f.problems.byID, rec.PublicID)
	assert.Contains(t, f.snapshots.recs, rec.PublicID)
}

func TestGenerate_FromDocument(t *testing.T) {
	f := newFixture(t)

	doc := &catalog.RestrictionDoc{HonorTiles: "forbidden", Suits: []string{"pin"}}
	rec, err := f.svc.Generate(context.Background(), &dto.GenerateCommand{Restrictions: doc, Shanten: shanten(0), Seed: 9})
	require.NoError(t, err)
	assert.Empty(t, rec.HandName)
	assert.Regexp(t, `^[0-9]+p$`, rec.Notation)
}

func TestGenerate_Rejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Generate(ctx, &dto.GenerateCommand{Hand: "Chinitsu", Shanten: shanten(4)})
	assert.ErrorIs(t, err, wwyd.ErrInvalidTarget)

	_, err = f.svc.Generate(ctx, &dto.GenerateCommand{Shanten: shanten(1)})
	assert.ErrorIs(t, err, wwyd.ErrRestrictionConflict)

	_, err = f.svc.Generate(ctx, &dto.GenerateCommand{
		Hand: "Chinitsu", Restrictions: &catalog.RestrictionDoc{}, Shanten: shanten(1),
	})
	assert.ErrorIs(t, err, wwyd.ErrRestrictionConflict)

	_, err = f.svc.Generate(ctx, &dto.GenerateCommand{Hand: "Nope", Shanten: shanten(1)})
	assert.ErrorIs(t, err, catalog.ErrHandNotFound)

	bad := &catalog.RestrictionDoc{Suits: []string{"bamboo"}}
	_, err = f.svc.Generate(ctx, &dto.GenerateCommand{Restrictions: bad, Shanten: shanten(1)})
	assert.ErrorIs(t, err, wwyd.ErrRestrictionConflict)
	assert.Empty(t, f.problems.order)
}

func TestGenerate_RedisDown(t *testing.T) {
	f := newFixture(t)
	f.snapshots.down = true

	rec, err := f.svc.Generate(context.Background(), &dto.GenerateCommand{Hand: "Tanyao", Shanten: shanten(1), Seed: 3})
	require.NoError(t, err)
	assert.Zero(t, rec.Serial)
	assert.Contains(t, f.problems.byID, rec.PublicID)
}

func TestGet_Layers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rec := &entity.ProblemRecord{PublicID: "only-mongo", HandName: "Toitoi"}
	require.NoError(t, f.problems.Save(ctx, rec))

	got, err := f.svc.Get(ctx, "only-mongo")
	require.NoError(t, err)
	assert.Same(t, rec, got)
	assert.Equal(t, 1, f.problems.finds)

	// 第二次应命中本地缓存
	f.cache.Wait()
	_, err = f.svc.Get(ctx, "only-mongo")
	require.NoError(t, err)
	assert.Equal(t, 1, f.problems.finds)

	snap := &entity.ProblemRecord{PublicID: "only-redis"}
	f.snapshots.recs["only-redis"] = snap
	got, err = f.svc.Get(ctx, "only-redis")
	require.NoError(t, err)
	assert.Same(t, snap, got)
	assert.Equal(t, 1, f.problems.finds)

	_, err = f.svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrProblemNotFound)
}

func TestListByHand(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.svc.Generate(ctx, &dto.GenerateCommand{Hand: "Toitoi", Shanten: shanten(1), Seed: int64(i + 1)})
		require.NoError(t, err)
	}

	resp, err := f.svc.ListByHand(ctx, "toitoi", 2)
	require.NoError(t, err)
	assert.Equal(t, "Toitoi", resp.Hand)
	assert.Len(t, resp.Problems, 2)

	_, err = f.svc.ListByHand(ctx, "nope", 0)
	assert.ErrorIs(t, err, catalog.ErrHandNotFound)
}

func TestHands(t *testing.T) {
	f := newFixture(t)
	hands := f.svc.Hands()
	require.NotEmpty(t, hands)
	assert.Equal(t, "Standard", hands[0].Name)
}
