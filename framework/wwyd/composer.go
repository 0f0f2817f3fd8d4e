package wwyd

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/DiD92/wwyd/framework/mahjong"
)

// Composition 完整的和牌形：手中 14 张，杠子的第四张另放在 Kans
type Composition struct {
	Shape  HandShape
	Tiles  []mahjong.Tile
	Kans   []mahjong.Tile
	Groups []Group
}

// Composer 按牌型把若干组拼成完整手牌
type Composer struct {
	r   Restrictions
	asm *Assembler
	rng *rand.Rand
}

func NewComposer(r Restrictions, asm *Assembler, rng *rand.Rand) *Composer {
	return &Composer{r: r, asm: asm, rng: rng}
}

// Compose 组出一副完整手牌。任何一个组失败都放弃本次尝试，
// 调用方需要换一个新的牌池重试。
func (c *Composer) Compose(shape HandShape) (Composition, error) {
	var (
		groups []Group
		err    error
	)
	switch shape {
	case ShapeRegular:
		groups, err = c.regular()
	case ShapeIrregular:
		groups, err = c.irregular()
	default:
		return Composition{}, fmt.Errorf("%w: cannot compose shape %s", ErrRestrictionConflict, shape)
	}
	if err != nil {
		return Composition{}, err
	}

	comp := Composition{Shape: shape, Groups: groups}
	for _, g := range groups {
		if g.Type == GroupQuad {
			comp.Tiles = append(comp.Tiles, g.Tiles[:3]...)
			comp.Kans = append(comp.Kans, g.Tiles[3])
			continue
		}
		comp.Tiles = append(comp.Tiles, g.Tiles...)
	}
	mahjong.SortTiles(comp.Tiles)
	return comp, nil
}

// regular 4 面子 + 1 雀头，每个面子位随机选择种类，失败时尝试其它允许的种类
func (c *Composer) regular() ([]Group, error) {
	types := c.r.mentsuTypes()
	groups := make([]Group, 0, 5)
	for slot := 0; slot < 4; slot++ {
		var (
			g   Group
			err error
		)
		for _, i := range c.rng.Perm(len(types)) {
			if g, err = c.asm.Assemble(types[i], mahjong.KindMask{}); err == nil {
				break
			}
		}
		if err != nil {
			return nil, fmt.Errorf("mentsu slot %d: %w", slot, err)
		}
		groups = append(groups, g)
	}

	pair, err := c.asm.Assemble(GroupPair, mahjong.KindMask{})
	if err != nil {
		return nil, fmt.Errorf("pair: %w", err)
	}
	return append(groups, pair), nil
}

// irregular 显式给出的组合，各组牌种互不相同，大组优先
func (c *Composer) irregular() ([]Group, error) {
	var slots []GroupType
	for _, g := range c.r.Irregular {
		for i := 0; i < g.Count; i++ {
			slots = append(slots, g.Type)
		}
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Size() > slots[j].Size()
	})

	var used mahjong.KindMask
	groups := make([]Group, 0, len(slots))
	for _, gt := range slots {
		g, err := c.asm.Assemble(gt, used)
		if err != nil {
			return nil, fmt.Errorf("%s group: %w", gt, err)
		}
		used[g.Tiles[0].Type] = true
		groups = append(groups, g)
	}
	return groups, nil
}
