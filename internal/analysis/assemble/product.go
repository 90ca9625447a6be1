package assemble

import (
	"iter"
	"math"

	"vcrack/internal/domain"
)

// Product yields every key formed by taking one candidate letter per column,
// in odometer order with the last column varying fastest. The sequence is
// produced on demand and may be ranged over more than once. It is empty when
// there are no columns or any column has no candidates.
func Product(cands [][]domain.SubkeyCandidate) iter.Seq[string] {
	return func(yield func(string) bool) {
		if len(cands) == 0 {
			return
		}
		for _, c := range cands {
			if len(c) == 0 {
				return
			}
		}
		idx := make([]int, len(cands))
		key := make([]byte, len(cands))
		for i, c := range cands {
			key[i] = c[0].Letter
		}
		for {
			if !yield(string(key)) {
				return
			}
			i := len(idx) - 1
			for ; i >= 0; i-- {
				idx[i]++
				if idx[i] < len(cands[i]) {
					key[i] = cands[i][idx[i]].Letter
					break
				}
				idx[i] = 0
				key[i] = cands[i][0].Letter
			}
			if i < 0 {
				return
			}
		}
	}
}

// Size returns the number of keys Product yields, saturating at
// math.MaxUint64.
func Size(cands [][]domain.SubkeyCandidate) uint64 {
	if len(cands) == 0 {
		return 0
	}
	var n uint64 = 1
	for _, c := range cands {
		m := uint64(len(c))
		if m == 0 {
			return 0
		}
		if n > math.MaxUint64/m {
			return math.MaxUint64
		}
		n *= m
	}
	return n
}
