package wwyd

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiD92/wwyd/framework/mahjong"
)

func kokushi() Restrictions {
	return Restrictions{
		Numbers:   []int{1, 9},
		HandShape: ShapeIrregular,
		Irregular: []ShapeGroup{{Type: GroupSingle, Count: 12}, {Type: GroupPair, Count: 1}},
	}
}

func generatorCases() map[string]Restrictions {
	return map[string]Restrictions{
		"standard":       {RedFives: true},
		"one suit":       {HonorTiles: Forbidden, SuitVariants: 1},
		"honor required": {HonorTiles: Required},
		"runs only":      {Shapes: []GroupType{GroupRun, GroupPair}},
		"sets only":      {Shapes: []GroupType{GroupTriplet, GroupQuad, GroupPair}},
		"seven pairs":    sevenPairs(Restrictions{}),
		"kokushi":        kokushi(),
		"both shapes": {
			HandShape: ShapeBoth,
			Irregular: []ShapeGroup{{Type: GroupPair, Count: 7}},
		},
	}
}

func TestGenerate_Properties(t *testing.T) {
	for name, r := range generatorCases() {
		t.Run(name, func(t *testing.T) {
			for target := 0; target <= 2; target++ {
				for seed := int64(1); seed <= 8; seed++ {
					p, err := Generate(r, target, Options{Seed: seed})
					require.NoError(t, err, "target %d seed %d", target, seed)
					checkProblem(t, r, p, target)
				}
			}
		})
	}
}

func checkProblem(t *testing.T, r Restrictions, p *Problem, target int) {
	t.Helper()
	require.Len(t, p.Hand, 13)
	assert.Equal(t, target, p.Shanten)
	assert.True(t, sort.SliceIsSorted(p.Hand, func(i, j int) bool { return p.Hand[i].Less(p.Hand[j]) }))

	counts := map[mahjong.Tile]int{}
	for _, tile := range append(append([]mahjong.Tile{}, p.Hand...), p.Kans...) {
		counts[tile]++
		assert.LessOrEqual(t, counts[tile], mahjong.MaxCopies, "identity %s", tile)
		if r.HonorTiles == Forbidden {
			assert.False(t, tile.Type.IsHonor(), "honor %s present", tile)
		}
		if r.SuitTiles == Forbidden {
			assert.False(t, tile.Type.IsNumbered(), "suit tile %s present", tile)
		}
		if !r.RedFives {
			assert.False(t, tile.Red)
		}
	}
	if r.HonorTiles == Required {
		assert.True(t, meetsRequirements(r, p.Hand))
	}

	u := mustUniverse(t, r)
	h, _ := mahjong.Hand34FromTiles(p.Hand)
	assert.Equal(t, target, NewEvaluator(r, u, mahjong.NewSearcher()).Shanten(h), mahjong.Notation(p.Hand))

	require.Len(t, p.Discards, 13)
	for i := 1; i < len(p.Discards); i++ {
		prev, cur := p.Discards[i-1], p.Discards[i]
		assert.True(t, prev.Score > cur.Score || (prev.Score == cur.Score && !cur.Tile.Less(prev.Tile)))
	}
}

func TestGenerate_DeterministicPerSeed(t *testing.T) {
	r := Restrictions{RedFives: true}
	a, err := Generate(r, 2, Options{Seed: 99})
	require.NoError(t, err)
	b, err := Generate(r, 2, Options{Seed: 99})
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// 同一生成器的后续题目可以用题目里的种子复现
	g := NewGenerator(Options{Seed: 99})
	_, err = g.Generate(r, 1)
	require.NoError(t, err)
	second, err := g.Generate(r, 1)
	require.NoError(t, err)
	again, err := Generate(r, 1, Options{Seed: second.Seed})
	require.NoError(t, err)
	assert.Equal(t, second, again)
}

func TestGenerate_OneSuitTenpai(t *testing.T) {
	r := Restrictions{
		HonorTiles: Forbidden,
		Suits:      []mahjong.Suit{mahjong.SuitPin},
		Shapes:     []GroupType{GroupRun, GroupPair},
	}
	p, err := Generate(r, 0, Options{Seed: 2024})
	require.NoError(t, err)

	require.Len(t, p.Discards, 13)
	for _, tile := range p.Hand {
		assert.Equal(t, mahjong.SuitPin, tile.Type.Suit())
	}
	assert.Equal(t, ShapeRegular, p.Shape)
}

func TestGenerate_HonorSevenPairs(t *testing.T) {
	r := sevenPairs(Restrictions{SuitTiles: Forbidden})
	p, err := Generate(r, 0, Options{Seed: 8})
	require.NoError(t, err)

	h, _ := mahjong.Hand34FromTiles(p.Hand)
	pairs, singles := 0, 0
	for _, c := range h {
		switch c {
		case 2:
			pairs++
		case 1:
			singles++
		}
	}
	assert.Equal(t, 6, pairs)
	assert.Equal(t, 1, singles)
	assert.Equal(t, 0, mahjong.ShantenIrregular(h, r.irregularSizes(), mahjong.AllKinds()))
}

func TestGenerate_Infeasible(t *testing.T) {
	// 只有 12 张牌
	_, err := Generate(manOnly(1, 2, 3), 0, Options{Seed: 1})
	assert.ErrorIs(t, err, ErrGenerationInfeasible)

	// 16 张牌，但 1-4 凑不出 4 个顺子
	r := manOnly(1, 2, 3, 4)
	r.Shapes = []GroupType{GroupRun, GroupPair}
	_, err = Generate(r, 0, Options{Seed: 1, ComposeAttempts: 8})
	assert.ErrorIs(t, err, ErrGenerationInfeasible)
}

func TestGenerate_ShantenUnreachable(t *testing.T) {
	// 单一花色的 13 张最多 2 向听
	r := Restrictions{HonorTiles: Forbidden, Suits: []mahjong.Suit{mahjong.SuitMan}}
	_, err := Generate(r, 3, Options{Seed: 7, ComposeAttempts: 8})
	require.ErrorIs(t, err, ErrShantenUnreachable)
	assert.Contains(t, err.Error(), "target 3")
	assert.NotErrorIs(t, err, ErrGenerationInfeasible)

	p, err := Generate(r, 2, Options{Seed: 7})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Shanten)
}

func TestGenerate_RejectsBadInput(t *testing.T) {
	_, err := Generate(Restrictions{}, -1, Options{Seed: 1})
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = Generate(Restrictions{HonorTiles: Forbidden, SuitTiles: Forbidden}, 0, Options{Seed: 1})
	assert.ErrorIs(t, err, ErrRestrictionConflict)
}

func TestScorer_IdempotentAndUsesPool(t *testing.T) {
	r := Restrictions{HonorTiles: Forbidden}
	u := mustUniverse(t, r)
	pool := NewPool(u)
	hand := mahjong.MustParseNotation("12378m123p123s55s")
	for _, tile := range hand {
		require.True(t, pool.Draw(tile))
	}
	total := pool.TotalRemaining()

	s := NewScorer(NewEvaluator(r, u, mahjong.NewSearcher()), u)
	first := s.Score(hand, pool)
	second := s.Score(hand, pool)
	assert.Equal(t, first, second)
	assert.Equal(t, total, pool.TotalRemaining())

	require.Len(t, first, 13)

	// 摸走 6m 与 9m 后，对应的进张减少
	for _, k := range []mahjong.TileType{mahjong.Man6, mahjong.Man9} {
		require.True(t, pool.Draw(mahjong.Tile{Type: k}))
	}
	after := s.Score(hand, pool)
	assert.Less(t, sumScores(after), sumScores(first))
}

func sumScores(ds []Discard) int {
	n := 0
	for _, d := range ds {
		n += d.Score
	}
	return n
}

func TestAdjuster_StepsExactlyOneLevel(t *testing.T) {
	r := Restrictions{}
	u := mustUniverse(t, r)
	eval := NewEvaluator(r, u, mahjong.NewSearcher())

	for seed := int64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		pool := NewPool(u)
		comp, err := NewComposer(r, NewAssembler(pool, u, rng), rng).Compose(ShapeRegular)
		require.NoError(t, err)

		adj := NewAdjuster(pool, eval, rng, DefaultAdjustRetries)
		hand, err := adj.withhold(comp.Tiles)
		require.NoError(t, err)
		require.Len(t, hand, 13)
		require.Equal(t, 13+len(comp.Kans), pool.Drawn())

		for level := 0; level < 3; level++ {
			hand, err = adj.step(hand, level)
			require.NoError(t, err)
			h, _ := mahjong.Hand34FromTiles(hand)
			require.Equal(t, level+1, eval.Shanten(h))
			require.Equal(t, 13+len(comp.Kans), pool.Drawn())
		}
	}
}
