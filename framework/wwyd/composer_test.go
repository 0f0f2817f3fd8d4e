package wwyd

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiD92/wwyd/framework/mahjong"
)

func TestAssembler_ExhaustedLeavesPoolUntouched(t *testing.T) {
	u := mustUniverse(t, manOnly(1))
	p := NewPool(u)
	asm := NewAssembler(p, u, rand.New(rand.NewSource(1)))

	_, err := asm.Assemble(GroupRun, mahjong.KindMask{})
	require.ErrorIs(t, err, ErrPoolExhausted)
	assert.Equal(t, 4, p.TotalRemaining())

	var exclude mahjong.KindMask
	exclude[mahjong.Man1] = true
	_, err = asm.Assemble(GroupPair, exclude)
	require.ErrorIs(t, err, ErrPoolExhausted)
	assert.Equal(t, 4, p.TotalRemaining())

	g, err := asm.Assemble(GroupQuad, mahjong.KindMask{})
	require.NoError(t, err)
	assert.Len(t, g.Tiles, 4)
	assert.Equal(t, 0, p.TotalRemaining())

	_, err = asm.Assemble(GroupSingle, mahjong.KindMask{})
	assert.ErrorIs(t, err, ErrPoolExhausted)
}

func TestAssembler_RunStaysInOneSuit(t *testing.T) {
	u := mustUniverse(t, Restrictions{HonorTiles: Forbidden, Numbers: []int{8, 9, 1}})
	p := NewPool(u)
	asm := NewAssembler(p, u, rand.New(rand.NewSource(3)))

	// 只有 1、8、9，不存在连续三张
	_, err := asm.Assemble(GroupRun, mahjong.KindMask{})
	assert.ErrorIs(t, err, ErrPoolExhausted)

	u = mustUniverse(t, Restrictions{HonorTiles: Forbidden})
	p = NewPool(u)
	asm = NewAssembler(p, u, rand.New(rand.NewSource(3)))
	for i := 0; i < 10; i++ {
		g, err := asm.Assemble(GroupRun, mahjong.KindMask{})
		require.NoError(t, err)
		first := g.Tiles[0].Type
		assert.Equal(t, first.Suit(), g.Tiles[2].Type.Suit())
		assert.Equal(t, first+1, g.Tiles[1].Type)
		assert.Equal(t, first+2, g.Tiles[2].Type)
	}
}

func TestComposer_Regular(t *testing.T) {
	r := Restrictions{RedFives: true}
	for seed := int64(1); seed <= 30; seed++ {
		rng := rand.New(rand.NewSource(seed))
		u := mustUniverse(t, r)
		p := NewPool(u)
		comp, err := NewComposer(r, NewAssembler(p, u, rng), rng).Compose(ShapeRegular)
		require.NoError(t, err)

		require.Len(t, comp.Tiles, 14)
		h, _ := mahjong.Hand34FromTiles(comp.Tiles)
		assert.Equal(t, -1, mahjong.NewSearcher().ShantenNormal(h, r.rules()), "seed %d: %s", seed, mahjong.Notation(comp.Tiles))
		assert.Len(t, comp.Groups, 5)
		assert.Equal(t, 14+len(comp.Kans), p.Drawn())
	}
}

func TestComposer_QuadSetsAsideFourthCopy(t *testing.T) {
	r := Restrictions{Shapes: []GroupType{GroupQuad, GroupPair}}
	rng := rand.New(rand.NewSource(5))
	u := mustUniverse(t, r)
	p := NewPool(u)

	comp, err := NewComposer(r, NewAssembler(p, u, rng), rng).Compose(ShapeRegular)
	require.NoError(t, err)
	require.Len(t, comp.Kans, 4)
	require.Len(t, comp.Tiles, 14)
	h, _ := mahjong.Hand34FromTiles(comp.Tiles)
	for _, k := range comp.Kans {
		assert.Equal(t, uint8(3), h[k.Type])
	}
	assert.Equal(t, 18, p.Drawn())
}

func TestComposer_IrregularUsesDistinctKinds(t *testing.T) {
	r := sevenPairs(Restrictions{SuitTiles: Forbidden})
	rng := rand.New(rand.NewSource(11))
	u := mustUniverse(t, r)
	p := NewPool(u)

	comp, err := NewComposer(r, NewAssembler(p, u, rng), rng).Compose(ShapeIrregular)
	require.NoError(t, err)
	h, _ := mahjong.Hand34FromTiles(comp.Tiles)
	assert.Equal(t, -1, mahjong.ShantenIrregular(h, r.irregularSizes(), mahjong.AllKinds()))

	r.Irregular = []ShapeGroup{{Type: GroupPair, Count: 8}}
	p = NewPool(u)
	_, err = NewComposer(r, NewAssembler(p, u, rng), rng).Compose(ShapeIrregular)
	assert.ErrorIs(t, err, ErrPoolExhausted)
}
