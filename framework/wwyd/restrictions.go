package wwyd

import (
	"fmt"

	"github.com/DiD92/wwyd/framework/mahjong"
)

// Requirement 某一类牌（字牌/数牌）在手牌中的要求
type Requirement int

const (
	Optional  Requirement = iota // 可有可无
	Required                     // 手牌中至少一张
	Forbidden                    // 不允许出现
)

func (r Requirement) String() string {
	switch r {
	case Optional:
		return "optional"
	case Required:
		return "required"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// HandShape 手牌结构
type HandShape int

const (
	ShapeRegular   HandShape = iota // 4 面子 + 1 雀头
	ShapeIrregular                  // 显式给出的组合，如七对子、国士无双
	ShapeBoth                       // 每次尝试随机选择
)

func (s HandShape) String() string {
	switch s {
	case ShapeRegular:
		return "regular"
	case ShapeIrregular:
		return "irregular"
	case ShapeBoth:
		return "both"
	default:
		return "unknown"
	}
}

// GroupType 组的种类
type GroupType int

const (
	GroupRun     GroupType = iota // 顺子
	GroupTriplet                  // 刻子
	GroupQuad                     // 杠子
	GroupPair                     // 对子
	GroupSingle                   // 单张
)

// DefaultShapes 未指定时允许的组种类
var DefaultShapes = []GroupType{GroupRun, GroupTriplet, GroupQuad, GroupPair}

func (g GroupType) String() string {
	switch g {
	case GroupRun:
		return "shuntsu"
	case GroupTriplet:
		return "koutsu"
	case GroupQuad:
		return "kantsu"
	case GroupPair:
		return "jantou"
	case GroupSingle:
		return "shinguru"
	default:
		return "unknown"
	}
}

// Size 组的总张数
func (g GroupType) Size() int {
	switch g {
	case GroupRun, GroupTriplet:
		return 3
	case GroupQuad:
		return 4
	case GroupPair:
		return 2
	default:
		return 1
	}
}

// HandSize 组留在手牌中的张数，杠子第四张另放
func (g GroupType) HandSize() int {
	if g == GroupQuad {
		return 3
	}
	return g.Size()
}

// ShapeGroup 特殊牌型中的一类组及其数量
type ShapeGroup struct {
	Type  GroupType
	Count int
}

// Restrictions 生成题目的限制条件，对核心流程只读。
// nil 的集合表示全部允许，已展开通配符。
type Restrictions struct {
	HonorTiles    Requirement
	HonorVariants int // 从允许的字牌中随机保留的种数，0 表示不限
	Winds         []mahjong.Wind
	Dragons       []mahjong.Dragon

	SuitTiles    Requirement
	SuitVariants int // 从允许的花色中随机保留的种数，0 表示不限
	Suits        []mahjong.Suit
	Numbers      []int
	RedFives     bool

	Shapes    []GroupType
	HandShape HandShape
	Irregular []ShapeGroup
}

func (r Restrictions) shapes() []GroupType {
	if r.Shapes == nil {
		return DefaultShapes
	}
	return r.Shapes
}

func (r Restrictions) allows(g GroupType) bool {
	for _, s := range r.shapes() {
		if s == g {
			return true
		}
	}
	return false
}

// mentsuTypes 一般型可用的面子种类，保持 run/triplet/quad 的顺序
func (r Restrictions) mentsuTypes() []GroupType {
	var out []GroupType
	for _, g := range []GroupType{GroupRun, GroupTriplet, GroupQuad} {
		if r.allows(g) {
			out = append(out, g)
		}
	}
	return out
}

// rules 一般型向听计算使用的规则
func (r Restrictions) rules() mahjong.Rules {
	return mahjong.Rules{
		Runs: r.allows(GroupRun),
		Sets: r.allows(GroupTriplet) || r.allows(GroupQuad),
	}
}

// irregularSizes 特殊牌型每组在手牌中的张数
func (r Restrictions) irregularSizes() []int {
	var sizes []int
	for _, g := range r.Irregular {
		for i := 0; i < g.Count; i++ {
			sizes = append(sizes, g.Type.HandSize())
		}
	}
	return sizes
}

// Validate 检查限制条件本身是否自洽，不涉及牌池
func (r Restrictions) Validate() error {
	if r.HonorTiles == Forbidden && r.SuitTiles == Forbidden {
		return fmt.Errorf("%w: honor and suit tiles are both forbidden", ErrRestrictionConflict)
	}
	if r.HonorVariants < 0 || r.SuitVariants < 0 {
		return fmt.Errorf("%w: variant counts must not be negative", ErrRestrictionConflict)
	}
	for _, s := range r.Suits {
		if s < mahjong.SuitMan || s > mahjong.SuitSou {
			return fmt.Errorf("%w: unknown suit %d", ErrRestrictionConflict, s)
		}
	}
	for _, n := range r.Numbers {
		if n < 1 || n > 9 {
			return fmt.Errorf("%w: suit number %d out of range", ErrRestrictionConflict, n)
		}
	}
	for _, w := range r.Winds {
		if w < mahjong.WindEast || w > mahjong.WindNorth {
			return fmt.Errorf("%w: unknown wind %d", ErrRestrictionConflict, w)
		}
	}
	for _, d := range r.Dragons {
		if d < mahjong.DragonWhite || d > mahjong.DragonRed {
			return fmt.Errorf("%w: unknown dragon %d", ErrRestrictionConflict, d)
		}
	}

	if r.HandShape == ShapeRegular || r.HandShape == ShapeBoth {
		if !r.allows(GroupPair) {
			return fmt.Errorf("%w: regular shape needs pairs allowed", ErrRestrictionConflict)
		}
		if len(r.mentsuTypes()) == 0 {
			return fmt.Errorf("%w: regular shape needs runs, triplets or quads allowed", ErrRestrictionConflict)
		}
	}
	if r.HandShape == ShapeIrregular || r.HandShape == ShapeBoth {
		if err := r.validateIrregular(); err != nil {
			return err
		}
	}
	if r.HandShape < ShapeRegular || r.HandShape > ShapeBoth {
		return fmt.Errorf("%w: unknown hand shape %d", ErrRestrictionConflict, r.HandShape)
	}
	return nil
}

func (r Restrictions) validateIrregular() error {
	if len(r.Irregular) == 0 {
		return fmt.Errorf("%w: irregular shape has no groups", ErrRestrictionConflict)
	}
	total := 0
	for _, g := range r.Irregular {
		if g.Count <= 0 {
			return fmt.Errorf("%w: irregular group %s has count %d", ErrRestrictionConflict, g.Type, g.Count)
		}
		if g.Type == GroupRun {
			return fmt.Errorf("%w: irregular shapes cannot contain runs", ErrRestrictionConflict)
		}
		if g.Type < GroupRun || g.Type > GroupSingle {
			return fmt.Errorf("%w: unknown group type %d", ErrRestrictionConflict, g.Type)
		}
		// 显式给出 Shapes 时，特殊牌型的组也必须在其中
		if r.Shapes != nil && !r.allows(g.Type) {
			return fmt.Errorf("%w: irregular group %s is not in the allowed shapes", ErrRestrictionConflict, g.Type)
		}
		total += g.Count * g.Type.HandSize()
	}
	if total != 14 {
		return fmt.Errorf("%w: irregular groups hold %d tiles, want 14", ErrRestrictionConflict, total)
	}
	return nil
}
