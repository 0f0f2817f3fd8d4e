package wwyd

import (
	"sort"

	"github.com/DiD92/wwyd/framework/mahjong"
)

// Discard 打出某张牌后的评价
type Discard struct {
	Tile    mahjong.Tile
	Score   int                // 有效进张，按牌池剩余张数计
	Shanten int                // 打出后余下 12 张的向听数
	Accepts []mahjong.TileType // 能降低向听数的牌种
}

// Scorer 对每张可打出的牌计算有效进张
type Scorer struct {
	eval  Evaluator
	kinds mahjong.KindMask
}

func NewScorer(eval Evaluator, u Universe) *Scorer {
	return &Scorer{eval: eval, kinds: u.Kinds()}
}

// Score 无副作用。按进张降序，同分按牌序升序
func (s *Scorer) Score(hand []mahjong.Tile, pool *Pool) []Discard {
	out := make([]Discard, 0, len(hand))
	for i, t := range hand {
		rest, _ := mahjong.Hand34FromTiles(without(hand, i))
		base := s.eval.Shanten(rest)

		d := Discard{Tile: t, Shanten: base}
		for k := mahjong.TileType(0); k < mahjong.KindCount; k++ {
			if !s.kinds[k] {
				continue
			}
			work := rest
			work[k]++
			if s.eval.Shanten(work) < base {
				d.Accepts = append(d.Accepts, k)
				d.Score += pool.RemainingKind(k)
			}
		}
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Tile.Less(out[j].Tile)
	})
	return out
}
