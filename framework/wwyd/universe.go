package wwyd

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/DiD92/wwyd/framework/mahjong"
)

// Universe 允许出现的牌标识集合，赤五是独立的牌标识
type Universe struct {
	Suited []mahjong.Tile
	Honors []mahjong.Tile
}

// ResolveUniverse 根据限制条件展开允许的牌标识。
// 种数限制（SuitVariants/HonorVariants）使用 rng 随机选取子集。
func ResolveUniverse(r Restrictions, rng *rand.Rand) (Universe, error) {
	var u Universe

	if r.SuitTiles != Forbidden {
		suits := dedupe(r.Suits, mahjong.AllSuits)
		suits = pickSubset(suits, r.SuitVariants, rng)
		numbers := dedupe(r.Numbers, mahjong.AllNumbers)
		for _, s := range suits {
			for _, n := range numbers {
				u.Suited = append(u.Suited, mahjong.NumberedTile(s, n, false))
				if r.RedFives && n == 5 {
					u.Suited = append(u.Suited, mahjong.NumberedTile(s, n, true))
				}
			}
		}
	}

	if r.HonorTiles != Forbidden {
		var honors []mahjong.Tile
		for _, w := range dedupe(r.Winds, mahjong.AllWinds) {
			honors = append(honors, mahjong.WindTile(w))
		}
		for _, d := range dedupe(r.Dragons, mahjong.AllDragons) {
			honors = append(honors, mahjong.DragonTile(d))
		}
		u.Honors = pickSubset(honors, r.HonorVariants, rng)
	}

	if len(u.Suited) == 0 && len(u.Honors) == 0 {
		return Universe{}, fmt.Errorf("%w: no tile is allowed", ErrRestrictionConflict)
	}
	if r.SuitTiles == Required && len(u.Suited) == 0 {
		return Universe{}, fmt.Errorf("%w: suit tiles required but none allowed", ErrRestrictionConflict)
	}
	if r.HonorTiles == Required && len(u.Honors) == 0 {
		return Universe{}, fmt.Errorf("%w: honor tiles required but none allowed", ErrRestrictionConflict)
	}

	mahjong.SortTiles(u.Suited)
	mahjong.SortTiles(u.Honors)
	return u, nil
}

// Tiles 全部牌标识（已排序）
func (u Universe) Tiles() []mahjong.Tile {
	out := make([]mahjong.Tile, 0, len(u.Suited)+len(u.Honors))
	out = append(out, u.Suited...)
	out = append(out, u.Honors...)
	return out
}

// Kinds 出现的牌种
func (u Universe) Kinds() mahjong.KindMask {
	var m mahjong.KindMask
	for _, t := range u.Suited {
		m[t.Type] = true
	}
	for _, t := range u.Honors {
		m[t.Type] = true
	}
	return m
}

func (u Universe) Contains(t mahjong.Tile) bool {
	return slices.Contains(u.Suited, t) || slices.Contains(u.Honors, t)
}

// dedupe 去重并排序，nil 使用默认值
func dedupe[T ~int](values []T, all []T) []T {
	if values == nil {
		return slices.Clone(all)
	}
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}

// pickSubset 随机保留 n 个元素并保持原有顺序，n<=0 或不少于元素数时原样返回
func pickSubset[T any](values []T, n int, rng *rand.Rand) []T {
	if n <= 0 || n >= len(values) {
		return values
	}
	idx := rng.Perm(len(values))[:n]
	slices.Sort(idx)
	out := make([]T, 0, n)
	for _, i := range idx {
		out = append(out, values[i])
	}
	return out
}
