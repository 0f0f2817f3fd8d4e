package mahjong

// 测试用的参照实现，交叉校验 ShantenNormal 与 ShantenIrregular

// StandardRules 标准规则：顺子与刻子都允许
var StandardRules = Rules{Runs: true, Sets: true}

// Waits 枚举听牌：加入后和牌（向听 -1）的牌种
func (s *Searcher) Waits(h13 Hand34, rules Rules) []TileType {
	var waits []TileType
	for t := 0; t < KindCount; t++ {
		if h13[t] >= MaxCopies {
			continue
		}
		work := h13
		work[t]++
		if s.ShantenAll(work, rules) == -1 {
			waits = append(waits, TileType(t))
		}
	}
	return waits
}

// IsAgariNormal 普通牌型是否和牌，核心思想，找雀头、组面子
func IsAgariNormal(h Hand34) bool {
	for j := 0; j < KindCount; j++ {
		if h[j] < 2 {
			continue
		}
		work := h
		work[j] -= 2
		if canFormMelds(&work, 4) {
			return true
		}
	}
	return false
}

// IsAgariChiitoi 七对子是否和牌，七个对子必须互不相同
func IsAgariChiitoi(h Hand34) bool {
	pairs := 0
	for i := 0; i < KindCount; i++ {
		switch h[i] {
		case 0:
		case 2:
			pairs++
		default:
			return false
		}
	}
	return pairs == 7
}

// IsAgariKokushi 国士无双是否和牌
func IsAgariKokushi(h Hand34) bool {
	unique := 0
	pair := false
	for _, idx := range kokushiTiles {
		if h[idx] > 0 {
			unique++
			if h[idx] >= 2 {
				pair = true
			}
		}
	}
	return unique == 13 && pair
}

func canFormMelds(h *Hand34, need int) bool {
	if need == 0 {
		for i := 0; i < KindCount; i++ {
			if (*h)[i] != 0 {
				return false
			}
		}
		return true
	}

	i := firstNonZero(h)
	if i == -1 {
		return false
	}
	// 刻子
	if (*h)[i] >= 3 {
		(*h)[i] -= 3
		if canFormMelds(h, need-1) {
			(*h)[i] += 3
			return true
		}
		(*h)[i] += 3
	}
	// 顺子（仅数牌）
	if hasRun(h, i) {
		takeRun(h, i)
		ok := canFormMelds(h, need-1)
		putRun(h, i)
		if ok {
			return true
		}
	}

	return false
}

var kokushiTiles = [13]int{
	int(Man1), int(Man9),
	int(Pin1), int(Pin9),
	int(So1), int(So9),
	int(East), int(South), int(West), int(North),
	int(White), int(Green), int(Red),
}

// ShantenAll 向听数：一般型、七对子、国士无双取最小
func (s *Searcher) ShantenAll(h Hand34, rules Rules) int {
	best := s.ShantenNormal(h, rules)
	if v := ShantenChiitoi(h); v < best {
		best = v
	}
	if v := ShantenKokushi(h); v < best {
		best = v
	}
	return best
}

// ShantenKokushi 国士无双向听数
func ShantenKokushi(h Hand34) int {
	unique := 0
	pair := false
	for _, idx := range kokushiTiles {
		if h[idx] > 0 {
			unique++
			if h[idx] >= 2 {
				pair = true
			}
		}
	}
	sh := 13 - unique
	if pair {
		sh--
	}
	return sh
}

// ShantenChiitoi 七对子向听数
func ShantenChiitoi(h Hand34) int {
	pairs := 0
	unique := 0
	for i := 0; i < KindCount; i++ {
		if h[i] > 0 {
			unique++
		}
		if h[i] >= 2 {
			pairs++
		}
	}
	sh := 6 - pairs
	if unique < 7 {
		sh += 7 - unique
	}
	return sh
}
