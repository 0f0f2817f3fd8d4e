package wwyd

import (
	"fmt"
	"math/rand"

	"github.com/DiD92/wwyd/framework/mahjong"
)

// Group 组：种类 + 组成的实体牌
type Group struct {
	Type  GroupType
	Tiles []mahjong.Tile
}

// Assembler 从牌池中组出单个组
type Assembler struct {
	pool  *Pool
	kinds mahjong.KindMask
	rng   *rand.Rand
}

func NewAssembler(pool *Pool, u Universe, rng *rand.Rand) *Assembler {
	return &Assembler{pool: pool, kinds: u.Kinds(), rng: rng}
}

// Assemble 在牌池中随机选取一个可组成 gt 的候选并摸出对应的牌。
// exclude 中的牌种不可使用。没有候选时返回 ErrPoolExhausted，牌池保持不变。
func (a *Assembler) Assemble(gt GroupType, exclude mahjong.KindMask) (Group, error) {
	cands := a.candidates(gt, exclude)
	if len(cands) == 0 {
		return Group{}, fmt.Errorf("%w: no candidate for %s", ErrPoolExhausted, gt)
	}
	kinds := cands[a.rng.Intn(len(cands))]

	g := Group{Type: gt, Tiles: make([]mahjong.Tile, 0, len(kinds))}
	for _, k := range kinds {
		avail := a.pool.available(k)
		t := avail[a.rng.Intn(len(avail))]
		a.pool.Draw(t)
		g.Tiles = append(g.Tiles, t)
	}
	return g, nil
}

// candidates 每个候选是组成该组需要的牌种序列
func (a *Assembler) candidates(gt GroupType, exclude mahjong.KindMask) [][]mahjong.TileType {
	var out [][]mahjong.TileType
	usable := func(k mahjong.TileType) bool {
		return a.kinds[k] && !exclude[k]
	}

	if gt == GroupRun {
		for k := mahjong.Man1; k <= mahjong.So9; k++ {
			if k.Number() > 7 {
				continue
			}
			run := []mahjong.TileType{k, k + 1, k + 2}
			ok := true
			for _, r := range run {
				if !usable(r) || a.pool.RemainingKind(r) < 1 {
					ok = false
					break
				}
			}
			if ok {
				out = append(out, run)
			}
		}
		return out
	}

	size := gt.Size()
	for k := mahjong.TileType(0); k < mahjong.KindCount; k++ {
		if !usable(k) || a.pool.RemainingKind(k) < size {
			continue
		}
		same := make([]mahjong.TileType, size)
		for i := range same {
			same[i] = k
		}
		out = append(out, same)
	}
	return out
}
