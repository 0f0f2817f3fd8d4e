package mahjong

import (
	"slices"
)

// KindMask 允许的牌种集合
type KindMask [KindCount]bool

// AllKinds 34 种牌全部允许
func AllKinds() KindMask {
	var m KindMask
	for i := range m {
		m[i] = true
	}
	return m
}

// Len 集合中的牌种数
func (m KindMask) Len() int {
	n := 0
	for _, ok := range m {
		if ok {
			n++
		}
	}
	return n
}

// irregularUnreachable 牌种不足以组成所有组时返回的向听数
const irregularUnreachable = 14

// ShantenIrregular 特殊牌型向听数。
// sizes 为每组在手牌中的张数，各组必须是不同牌种，且只能使用 mask 内的牌种。
// 七对子 sizes 为 7 个 2，国士无双为 12 个 1 加 1 个 2。
func ShantenIrregular(h Hand34, sizes []int, mask KindMask) int {
	if len(sizes) == 0 {
		return irregularUnreachable
	}
	counts := make([]int, 0, KindCount)
	for i := 0; i < KindCount; i++ {
		if mask[i] {
			counts = append(counts, int(h[i]))
		}
	}
	if len(counts) < len(sizes) {
		return irregularUnreachable
	}

	want := slices.Clone(sizes)
	slices.SortFunc(want, func(a, b int) int { return b - a })
	slices.SortFunc(counts, func(a, b int) int { return b - a })

	total, useful := 0, 0
	for i, size := range want {
		total += size
		useful += min(counts[i], size)
	}
	return total - 1 - useful
}
