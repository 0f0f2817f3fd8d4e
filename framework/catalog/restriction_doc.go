package catalog

import (
	"fmt"
	"strings"

	"github.com/DiD92/wwyd/framework/mahjong"
	"github.com/DiD92/wwyd/framework/wwyd"
)

// Wildcard 表示该集合的全部取值
const Wildcard = "*"

// RestrictionDoc 限制条件的文档形式，TOML 与 JSON 共用
type RestrictionDoc struct {
	HonorTiles    string   `mapstructure:"honor_tiles" json:"honor_tiles,omitempty"`
	HonorVariants int      `mapstructure:"honor_variants" json:"honor_variants,omitempty"`
	Winds         []string `mapstructure:"honor_wind_directions_allowed" json:"honor_wind_directions_allowed,omitempty"`
	Dragons       []string `mapstructure:"honor_dragon_colors_allowed" json:"honor_dragon_colors_allowed,omitempty"`

	SuitTiles    string   `mapstructure:"suit_tiles" json:"suit_tiles,omitempty"`
	SuitVariants int      `mapstructure:"suit_variants" json:"suit_variants,omitempty"`
	Suits        []string `mapstructure:"suit_variants_allowed" json:"suit_variants_allowed,omitempty"`
	Numbers      []int    `mapstructure:"suit_numbers_allowed" json:"suit_numbers_allowed,omitempty"`
	RedFives     bool     `mapstructure:"red_fives" json:"red_fives,omitempty"`

	Shapes    []string      `mapstructure:"shapes_allowed" json:"shapes_allowed,omitempty"`
	HandShape string        `mapstructure:"hand_shape" json:"hand_shape,omitempty"`
	Irregular []ShapeDocRow `mapstructure:"irregular_shape" json:"irregular_shape,omitempty"`
}

type ShapeDocRow struct {
	GroupType  string `mapstructure:"group_type" json:"group_type"`
	GroupCount int    `mapstructure:"group_count" json:"group_count"`
}

var requirementCodes = map[string]wwyd.Requirement{
	"":          wwyd.Optional,
	"optional":  wwyd.Optional,
	"required":  wwyd.Required,
	"forbidden": wwyd.Forbidden,
}

var handShapeCodes = map[string]wwyd.HandShape{
	"":          wwyd.ShapeRegular,
	"regular":   wwyd.ShapeRegular,
	"irregular": wwyd.ShapeIrregular,
	"both":      wwyd.ShapeBoth,
}

var windCodes = map[string]mahjong.Wind{
	"ton": mahjong.WindEast, "e": mahjong.WindEast, "east": mahjong.WindEast,
	"nan": mahjong.WindSouth, "s": mahjong.WindSouth, "south": mahjong.WindSouth,
	"shaa": mahjong.WindWest, "w": mahjong.WindWest, "west": mahjong.WindWest,
	"pei": mahjong.WindNorth, "n": mahjong.WindNorth, "north": mahjong.WindNorth,
}

var dragonCodes = map[string]mahjong.Dragon{
	"haku": mahjong.DragonWhite, "w": mahjong.DragonWhite, "white": mahjong.DragonWhite,
	"hatsu": mahjong.DragonGreen, "g": mahjong.DragonGreen, "green": mahjong.DragonGreen,
	"chun": mahjong.DragonRed, "r": mahjong.DragonRed, "red": mahjong.DragonRed,
}

var suitCodes = map[string]mahjong.Suit{
	"man": mahjong.SuitMan, "m": mahjong.SuitMan, "manzu": mahjong.SuitMan,
	"pin": mahjong.SuitPin, "p": mahjong.SuitPin, "pinzu": mahjong.SuitPin,
	"sou": mahjong.SuitSou, "s": mahjong.SuitSou, "souzu": mahjong.SuitSou,
}

var groupCodes = map[string]wwyd.GroupType{
	"shuntsu": wwyd.GroupRun, "123": wwyd.GroupRun,
	"koutsu": wwyd.GroupTriplet, "111": wwyd.GroupTriplet,
	"kantsu": wwyd.GroupQuad, "1111": wwyd.GroupQuad,
	"jantou": wwyd.GroupPair, "11": wwyd.GroupPair,
	"shinguru": wwyd.GroupSingle, "1": wwyd.GroupSingle,
}

// Resolve 展开通配符并把编码转换成 wwyd.Restrictions
func (d RestrictionDoc) Resolve() (wwyd.Restrictions, error) {
	var (
		r   wwyd.Restrictions
		err error
	)
	if r.HonorTiles, err = lookup(requirementCodes, d.HonorTiles, "honor_tiles"); err != nil {
		return r, err
	}
	if r.SuitTiles, err = lookup(requirementCodes, d.SuitTiles, "suit_tiles"); err != nil {
		return r, err
	}
	if r.HandShape, err = lookup(handShapeCodes, d.HandShape, "hand_shape"); err != nil {
		return r, err
	}
	if r.Winds, err = expand(windCodes, d.Winds, mahjong.AllWinds, "wind"); err != nil {
		return r, err
	}
	if r.Dragons, err = expand(dragonCodes, d.Dragons, mahjong.AllDragons, "dragon"); err != nil {
		return r, err
	}
	if r.Suits, err = expand(suitCodes, d.Suits, mahjong.AllSuits, "suit"); err != nil {
		return r, err
	}
	if r.Shapes, err = expand(groupCodes, d.Shapes, wwyd.DefaultShapes, "shape"); err != nil {
		return r, err
	}
	for _, row := range d.Irregular {
		gt, err := lookup(groupCodes, row.GroupType, "group_type")
		if err != nil {
			return r, err
		}
		r.Irregular = append(r.Irregular, wwyd.ShapeGroup{Type: gt, Count: row.GroupCount})
	}

	r.HonorVariants = d.HonorVariants
	r.SuitVariants = d.SuitVariants
	r.Numbers = d.Numbers
	r.RedFives = d.RedFives
	return r, nil
}

func lookup[T any](codes map[string]T, code, field string) (T, error) {
	v, ok := codes[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: unknown %s %q", wwyd.ErrRestrictionConflict, field, code)
	}
	return v, nil
}

// expand nil 保持 nil（全部允许），含 "*" 时返回全部取值
func expand[T comparable](codes map[string]T, items []string, all []T, field string) ([]T, error) {
	if items == nil {
		return nil, nil
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == Wildcard {
			return append([]T(nil), all...), nil
		}
		v, err := lookup(codes, item, field)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
