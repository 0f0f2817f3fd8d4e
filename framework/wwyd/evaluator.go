package wwyd

import (
	"github.com/DiD92/wwyd/framework/mahjong"
)

// Evaluator 按限制条件的牌型计算向听数
type Evaluator interface {
	Shanten(h mahjong.Hand34) int
}

type shapeEvaluator struct {
	shape    HandShape
	rules    mahjong.Rules
	sizes    []int
	kinds    mahjong.KindMask
	searcher *mahjong.Searcher
}

// NewEvaluator 一般型用受限的一般型向听，特殊牌型用不同牌种的组匹配，两者皆可时取较小值
func NewEvaluator(r Restrictions, u Universe, searcher *mahjong.Searcher) Evaluator {
	return &shapeEvaluator{
		shape:    r.HandShape,
		rules:    r.rules(),
		sizes:    r.irregularSizes(),
		kinds:    u.Kinds(),
		searcher: searcher,
	}
}

func (e *shapeEvaluator) Shanten(h mahjong.Hand34) int {
	switch e.shape {
	case ShapeRegular:
		return e.searcher.ShantenNormal(h, e.rules)
	case ShapeIrregular:
		return mahjong.ShantenIrregular(h, e.sizes, e.kinds)
	default:
		return min(e.searcher.ShantenNormal(h, e.rules), mahjong.ShantenIrregular(h, e.sizes, e.kinds))
	}
}
