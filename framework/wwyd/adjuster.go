package wwyd

import (
	"fmt"
	"math/rand"

	"github.com/DiD92/wwyd/framework/mahjong"
)

// Adjuster 把完整手牌逐级退到目标向听数
type Adjuster struct {
	pool    *Pool
	eval    Evaluator
	rng     *rand.Rand
	retries int
}

func NewAdjuster(pool *Pool, eval Evaluator, rng *rand.Rand, retries int) *Adjuster {
	return &Adjuster{pool: pool, eval: eval, rng: rng, retries: retries}
}

// Degrade 先拿掉和了牌得到 13 张听牌，再逐级换牌，每级向听数恰好加一。
// 返回排好序的 13 张手牌。
func (a *Adjuster) Degrade(comp Composition, target int) ([]mahjong.Tile, error) {
	if target < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTarget, target)
	}

	hand, err := a.withhold(comp.Tiles)
	if err != nil {
		return nil, err
	}
	for level := 0; level < target; level++ {
		if hand, err = a.step(hand, level); err != nil {
			return nil, err
		}
	}
	mahjong.SortTiles(hand)
	return hand, nil
}

// withhold 随机拿掉一张，使剩余 13 张向听数为 0，拿掉的牌放回牌池
func (a *Adjuster) withhold(tiles []mahjong.Tile) ([]mahjong.Tile, error) {
	for _, i := range a.rng.Perm(len(tiles)) {
		rest := without(tiles, i)
		if a.shanten(rest) == 0 {
			a.pool.Return(tiles[i])
			return rest, nil
		}
	}
	return nil, fmt.Errorf("%w: composed hand has no tenpai after withholding a tile", ErrShantenUnreachable)
}

// step 把向听数从 level 换到 level+1。换不成时把拿掉的牌摸回来，换下一张再试
func (a *Adjuster) step(hand []mahjong.Tile, level int) ([]mahjong.Tile, error) {
	rejected := 0
	for _, i := range a.rng.Perm(len(hand)) {
		if rejected >= a.retries {
			break
		}
		removed := hand[i]
		a.pool.Return(removed)

		rest := without(hand, i)
		cands := a.replacements(rest, removed.Type, level+1)
		if len(cands) == 0 {
			a.pool.Draw(removed)
			rejected++
			continue
		}

		pick := cands[a.rng.Intn(len(cands))]
		a.pool.Draw(pick)
		return append(rest, pick), nil
	}
	return nil, fmt.Errorf("%w: no replacement reaches shanten %d", ErrShantenUnreachable, level+1)
}

// replacements 牌池中加入后向听数恰好为 want 的牌标识，不含刚拿掉的牌种
func (a *Adjuster) replacements(rest []mahjong.Tile, removed mahjong.TileType, want int) []mahjong.Tile {
	base, _ := mahjong.Hand34FromTiles(rest)
	byKind := make(map[mahjong.TileType]bool, mahjong.KindCount)

	var out []mahjong.Tile
	for _, t := range a.pool.Identities() {
		if t.Type == removed || a.pool.Remaining(t) == 0 {
			continue
		}
		ok, seen := byKind[t.Type]
		if !seen {
			work := base
			work[t.Type]++
			ok = a.eval.Shanten(work) == want
			byKind[t.Type] = ok
		}
		if ok {
			out = append(out, t)
		}
	}
	return out
}

func (a *Adjuster) shanten(tiles []mahjong.Tile) int {
	h, _ := mahjong.Hand34FromTiles(tiles)
	return a.eval.Shanten(h)
}

// without 返回去掉第 i 张后的新切片
func without(tiles []mahjong.Tile, i int) []mahjong.Tile {
	out := make([]mahjong.Tile, 0, len(tiles)-1)
	out = append(out, tiles[:i]...)
	return append(out, tiles[i+1:]...)
}
