package wwyd

import (
	"fmt"

	"github.com/DiD92/wwyd/framework/mahjong"
)

// Pool 牌池：每个牌标识的剩余张数，0 <= count <= 4
type Pool struct {
	counts map[mahjong.Tile]int
	tiles  []mahjong.Tile // 已排序的牌标识
	drawn  int            // 摸出减去放回的净张数
}

// NewPool 每个牌标识放入 4 张
func NewPool(u Universe) *Pool {
	tiles := u.Tiles()
	mahjong.SortTiles(tiles)
	p := &Pool{
		counts: make(map[mahjong.Tile]int, len(tiles)),
		tiles:  tiles,
	}
	for _, t := range tiles {
		p.counts[t] = mahjong.MaxCopies
	}
	return p
}

// Draw 取出一张，没有剩余时返回 false 且不修改牌池
func (p *Pool) Draw(t mahjong.Tile) bool {
	if p.counts[t] <= 0 {
		return false
	}
	p.counts[t]--
	p.drawn++
	return true
}

// Return 放回一张。超过 4 张或不属于牌池的牌标识属于记账错误，直接 panic
func (p *Pool) Return(t mahjong.Tile) {
	c, ok := p.counts[t]
	if !ok {
		panic(fmt.Sprintf("pool: return of unknown tile %s", t))
	}
	if c >= mahjong.MaxCopies {
		panic(fmt.Sprintf("pool: return of %s exceeds %d copies", t, mahjong.MaxCopies))
	}
	p.counts[t] = c + 1
	p.drawn--
}

func (p *Pool) Remaining(t mahjong.Tile) int {
	return p.counts[t]
}

// RemainingKind 某牌种所有牌标识（普通 + 赤）的剩余张数
func (p *Pool) RemainingKind(k mahjong.TileType) int {
	n := 0
	for _, t := range p.variants(k) {
		n += p.counts[t]
	}
	return n
}

func (p *Pool) TotalRemaining() int {
	n := 0
	for _, c := range p.counts {
		n += c
	}
	return n
}

// Drawn 摸出减去放回的净张数
func (p *Pool) Drawn() int {
	return p.drawn
}

// Clone 快照，供每次尝试独立使用
func (p *Pool) Clone() *Pool {
	c := &Pool{
		counts: make(map[mahjong.Tile]int, len(p.counts)),
		tiles:  p.tiles,
		drawn:  p.drawn,
	}
	for t, n := range p.counts {
		c.counts[t] = n
	}
	return c
}

// Identities 牌标识列表副本（已排序）
func (p *Pool) Identities() []mahjong.Tile {
	out := make([]mahjong.Tile, len(p.tiles))
	copy(out, p.tiles)
	return out
}

// variants 某牌种在牌池中的牌标识，按牌序
func (p *Pool) variants(k mahjong.TileType) []mahjong.Tile {
	var out []mahjong.Tile
	for _, t := range p.tiles {
		if t.Type == k {
			out = append(out, t)
		}
	}
	return out
}

// available 某牌种仍有剩余的牌标识
func (p *Pool) available(k mahjong.TileType) []mahjong.Tile {
	var out []mahjong.Tile
	for _, t := range p.variants(k) {
		if p.counts[t] > 0 {
			out = append(out, t)
		}
	}
	return out
}
