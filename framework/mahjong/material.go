package mahjong

import (
	"fmt"
	"strconv"
)

type Wind int

const (
	WindEast  Wind = iota // 东风
	WindSouth             // 南风
	WindWest              // 西风
	WindNorth             // 北风
)

type Dragon int

const (
	DragonWhite Dragon = iota // 白
	DragonGreen               // 发
	DragonRed                 // 中
)

type Suit int

const (
	SuitMan   Suit = iota // 万子
	SuitPin               // 筒子
	SuitSou               // 索子
	SuitHonor             // 字牌
)

// TileType 牌种，赤宝牌与普通牌属于同一牌种
type TileType int

const (
	// 万子 (0-8)
	Man1 TileType = iota
	Man2
	Man3
	Man4
	Man5
	Man6
	Man7
	Man8
	Man9

	// 筒子 (9-17)
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9

	// 索子 (18-26)
	So1
	So2
	So3
	So4
	So5
	So6
	So7
	So8
	So9

	// 字牌 (27-33)
	East
	South
	West
	North
	White
	Green
	Red
)

// KindCount 牌种数量
const KindCount = 34

// MaxCopies 每种牌（每个牌标识）的实体张数
const MaxCopies = 4

var (
	AllSuits   = []Suit{SuitMan, SuitPin, SuitSou}
	AllWinds   = []Wind{WindEast, WindSouth, WindWest, WindNorth}
	AllDragons = []Dragon{DragonWhite, DragonGreen, DragonRed}
	AllNumbers = []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
)

// Tile 牌标识：牌种 + 是否赤牌。值类型，可直接作为 map key
type Tile struct {
	Type TileType
	Red  bool
}

// NumberedTile 创建数牌，number 取值 1-9
func NumberedTile(suit Suit, number int, red bool) Tile {
	if number < 1 || number > 9 || suit < SuitMan || suit > SuitSou {
		panic(fmt.Sprintf("invalid numbered tile: suit=%d number=%d", suit, number))
	}
	return Tile{Type: TileType(int(suit)*9 + number - 1), Red: red}
}

// WindTile 创建风牌
func WindTile(w Wind) Tile {
	return Tile{Type: East + TileType(w)}
}

// DragonTile 创建三元牌
func DragonTile(d Dragon) Tile {
	return Tile{Type: White + TileType(d)}
}

func (t TileType) IsValid() bool {
	return t >= Man1 && t <= Red
}

func (t TileType) IsNumbered() bool {
	return t >= Man1 && t <= So9
}

func (t TileType) IsHonor() bool {
	return t >= East && t <= Red
}

func (t TileType) Suit() Suit {
	if t.IsHonor() {
		return SuitHonor
	}
	return Suit(int(t) / 9)
}

// Number 数牌点数 1-9，字牌返回 0
func (t TileType) Number() int {
	if !t.IsNumbered() {
		return 0
	}
	return int(t)%9 + 1
}

// IsTerminalOrHonor 幺九牌
func (t TileType) IsTerminalOrHonor() bool {
	return t.IsHonor() || t.Number() == 1 || t.Number() == 9
}

func (t TileType) String() string {
	if t.IsHonor() {
		return honorNames[t-East]
	}
	if !t.IsValid() {
		return "Unknown"
	}
	return suitPrefixes[t.Suit()] + strconv.Itoa(t.Number())
}

var suitPrefixes = [...]string{"Man", "Pin", "Sou"}

var honorNames = [...]string{"Ton", "Nan", "Shaa", "Pei", "Haku", "Hatsu", "Chun"}

// Less 牌序：先按牌种，同牌种普通牌在赤牌之前
func (t Tile) Less(o Tile) bool {
	if t.Type != o.Type {
		return t.Type < o.Type
	}
	return !t.Red && o.Red
}

// String 显示用标签，例如 Man4r、Pin7、Ton
func (t Tile) String() string {
	if t.Red && t.Type.IsNumbered() {
		return t.Type.String() + "r"
	}
	return t.Type.String()
}

func (s Suit) String() string {
	switch s {
	case SuitMan:
		return "Manzu"
	case SuitPin:
		return "Pinzu"
	case SuitSou:
		return "Souzu"
	case SuitHonor:
		return "Jihai"
	default:
		return "Unknown"
	}
}

func (w Wind) String() string {
	if w < WindEast || w > WindNorth {
		return "Unknown"
	}
	return honorNames[w]
}

func (d Dragon) String() string {
	if d < DragonWhite || d > DragonRed {
		return "Unknown"
	}
	return honorNames[4+int(d)]
}
