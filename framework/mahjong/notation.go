package mahjong

import (
	"fmt"
	"slices"
	"strings"
)

var suitLetters = [...]byte{'m', 'p', 's', 'z'}

// SortTiles 按牌序排序（原地）
func SortTiles(tiles []Tile) {
	slices.SortFunc(tiles, func(a, b Tile) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
}

// Notation 紧凑记法，例如 123m405p11z，赤五记为 0
func Notation(tiles []Tile) string {
	sorted := slices.Clone(tiles)
	SortTiles(sorted)

	var b strings.Builder
	for suit := SuitMan; suit <= SuitHonor; suit++ {
		n := 0
		for _, t := range sorted {
			if t.Type.Suit() != suit {
				continue
			}
			switch {
			case suit == SuitHonor:
				b.WriteByte(byte('1' + int(t.Type-East)))
			case t.Red:
				b.WriteByte('0')
			default:
				b.WriteByte(byte('0' + t.Type.Number()))
			}
			n++
		}
		if n > 0 {
			b.WriteByte(suitLetters[suit])
		}
	}
	return b.String()
}

// ParseNotation 解析紧凑记法。字牌 1-7z 依次为 东南西北白发中
func ParseNotation(s string) ([]Tile, error) {
	var out []Tile
	var digits []int
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			digits = append(digits, int(c-'0'))
			continue
		}
		suit := Suit(strings.IndexByte(string(suitLetters[:]), c))
		if suit < SuitMan {
			return nil, fmt.Errorf("invalid suit letter %q at %d", c, i)
		}
		if len(digits) == 0 {
			return nil, fmt.Errorf("suit letter %q at %d has no numbers", c, i)
		}
		for _, d := range digits {
			switch {
			case suit == SuitHonor:
				if d < 1 || d > 7 {
					return nil, fmt.Errorf("invalid honor number %d", d)
				}
				out = append(out, Tile{Type: East + TileType(d-1)})
			case d == 0:
				out = append(out, NumberedTile(suit, 5, true))
			default:
				out = append(out, NumberedTile(suit, d, false))
			}
		}
		digits = digits[:0]
	}
	if len(digits) > 0 {
		return nil, fmt.Errorf("trailing numbers without suit letter in %q", s)
	}
	return out, nil
}

// MustParseNotation 同 ParseNotation，出错时 panic
func MustParseNotation(s string) []Tile {
	tiles, err := ParseNotation(s)
	if err != nil {
		panic(err)
	}
	return tiles
}
