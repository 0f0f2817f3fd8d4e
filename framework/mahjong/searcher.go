package mahjong

import (
	"sync"
)

type Hand34 [34]uint8

// Rules 一般型允许的面子种类
type Rules struct {
	Runs bool // 顺子，以及两面/嵌张/边张搭子
	Sets bool // 刻子（含杠子），以及对子搭子
}

func (r Rules) bits() byte {
	var b byte
	if r.Runs {
		b |= 1
	}
	if r.Sets {
		b |= 2
	}
	return b
}

type Searcher struct {
	mu           sync.RWMutex
	shantenCache map[string]int // 向听数缓存
}

func NewSearcher() *Searcher {
	return &Searcher{
		shantenCache: make(map[string]int, 4096),
	}
}

// -------------- 基础工具：转换与 key --------------

// Hand34FromTiles 按牌种计数，同时返回每个牌种对应的实体牌
func Hand34FromTiles(tiles []Tile) (Hand34, map[TileType][]Tile) {
	var h Hand34
	opts := make(map[TileType][]Tile, KindCount)
	for _, t := range tiles {
		h[int(t.Type)]++
		opts[t.Type] = append(opts[t.Type], t)
	}
	return h, opts
}

// Count 手牌总张数
func (h Hand34) Count() int {
	n := 0
	for _, c := range h {
		n += int(c)
	}
	return n
}

func (h Hand34) keyWithRules(rules Rules) string {
	var b [35]byte
	for i := 0; i < KindCount; i++ {
		b[i] = byte(h[i])
	}
	b[34] = rules.bits()
	return string(b[:])
}

func isNumberTile(i int) bool { return i >= int(Man1) && i <= int(So9) }

func suitOf(i int) int {
	switch {
	case i >= int(Man1) && i <= int(Man9):
		return 0
	case i >= int(Pin1) && i <= int(Pin9):
		return 1
	case i >= int(So1) && i <= int(So9):
		return 2
	default:
		return -1
	}
}

func sameSuit(i, j int) bool {
	return j < KindCount && isNumberTile(i) && suitOf(i) == suitOf(j)
}

func firstNonZero(h *Hand34) int {
	for k := 0; k < KindCount; k++ {
		if (*h)[k] > 0 {
			return k
		}
	}
	return -1
}

func hasRun(h *Hand34, i int) bool {
	return sameSuit(i, i+2) && (*h)[i] > 0 && (*h)[i+1] > 0 && (*h)[i+2] > 0
}

func takeRun(h *Hand34, i int) {
	(*h)[i]--
	(*h)[i+1]--
	(*h)[i+2]--
}

func putRun(h *Hand34, i int) {
	(*h)[i]++
	(*h)[i+1]++
	(*h)[i+2]++
}

// ShantenNormal 一般型向听数，只使用 rules 允许的面子与搭子
func (s *Searcher) ShantenNormal(h Hand34, rules Rules) int {
	key := h.keyWithRules(rules)
	s.mu.RLock()
	if v, ok := s.shantenCache[key]; ok {
		s.mu.RUnlock()
		return v
	}
	s.mu.RUnlock()

	best := 8 // 一般型最差上界
	work := h
	dfsNormalShanten(&work, rules, 0, 0, 0, &best)

	s.mu.Lock()
	s.shantenCache[key] = best
	s.mu.Unlock()
	return best
}

// dfsNormalShanten 普通牌型向听数搜索 m：当前已经形成的面子数、p：雀头数（0/1）、t：搭子数（taatsu）、best：全局最小向听
func dfsNormalShanten(h *Hand34, rules Rules, m int, p int, t int, best *int) {
	if m > 4 {
		return
	}

	t2 := t
	if limit := 4 - m; t2 > limit {
		t2 = limit
	}

	sh := 8 - 2*m - t2 - p
	if sh < *best {
		*best = sh
	}

	i := firstNonZero(h)
	if i == -1 {
		return
	}

	if rules.Sets && (*h)[i] >= 3 {
		(*h)[i] -= 3
		dfsNormalShanten(h, rules, m+1, p, t, best)
		(*h)[i] += 3
	}

	if rules.Runs && hasRun(h, i) {
		takeRun(h, i)
		dfsNormalShanten(h, rules, m+1, p, t, best)
		putRun(h, i)
	}

	if (*h)[i] >= 2 {
		if p == 0 {
			(*h)[i] -= 2
			dfsNormalShanten(h, rules, m, 1, t, best)
			(*h)[i] += 2
		}
		// 对子作为刻子搭子
		if rules.Sets {
			(*h)[i] -= 2
			dfsNormalShanten(h, rules, m, p, t+1, best)
			(*h)[i] += 2
		}
	}

	if rules.Runs {
		if sameSuit(i, i+1) && (*h)[i+1] > 0 {
			(*h)[i]--
			(*h)[i+1]--
			dfsNormalShanten(h, rules, m, p, t+1, best)
			(*h)[i]++
			(*h)[i+1]++
		}

		if sameSuit(i, i+2) && (*h)[i+2] > 0 {
			(*h)[i]--
			(*h)[i+2]--
			dfsNormalShanten(h, rules, m, p, t+1, best)
			(*h)[i]++
			(*h)[i+2]++
		}
	}

	(*h)[i]--
	dfsNormalShanten(h, rules, m, p, t, best)
	(*h)[i]++
}
