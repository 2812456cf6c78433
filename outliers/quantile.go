package outliers

import (
	"math"
	"sort"
)

// nanQuantile は欠損値(NaN)を除外した上で、隣接する順位間の線形補間により
// p分位数を計算する。有効な値が1つも存在しない場合はNaNを返す。
func nanQuantile(xs []float64, p float64) float64 {
	vals := make([]float64, 0, len(xs))
	for _, v := range xs {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return math.NaN()
	}
	sort.Float64s(vals)

	// 順位 h = p*(n-1) の前後の値を線形補間する
	h := p * float64(len(vals)-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return vals[lo]
	}
	frac := h - float64(lo)
	return vals[lo] + frac*(vals[hi]-vals[lo])
}
