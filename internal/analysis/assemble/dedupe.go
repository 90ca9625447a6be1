package assemble

import (
	"sort"
	"strings"

	"vcrack/internal/domain"
)

// MaxDuplicatedPart is the share of a key that may be made of shorter kept
// keys before the key is dropped as a repetition of them.
const MaxDuplicatedPart = 0.7

// Dedupe removes keys that are mostly copies of shorter keys. Working from
// the longest key down, a key is dropped when removing every occurrence of
// some shorter candidate shrinks it by more than MaxDuplicatedPart. The
// shortest key always survives. Survivors keep their input order.
func Dedupe(keys []domain.KeyCandidate) []domain.KeyCandidate {
	if len(keys) == 0 {
		return nil
	}
	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return len(keys[idx[a]].Key) < len(keys[idx[b]].Key) })

	keep := make([]bool, len(keys))
	for len(idx) > 1 {
		last := keys[idx[len(idx)-1]].Key
		drop := false
		for _, j := range idx[:len(idx)-1] {
			if duplicatedPart(last, keys[j].Key) > MaxDuplicatedPart {
				drop = true
				break
			}
		}
		if !drop {
			keep[idx[len(idx)-1]] = true
		}
		idx = idx[:len(idx)-1]
	}
	keep[idx[0]] = true

	out := make([]domain.KeyCandidate, 0, len(keys))
	for i, k := range keys {
		if keep[i] {
			out = append(out, k)
		}
	}
	return out
}

func duplicatedPart(key, other string) float64 {
	if key == "" || other == "" {
		return 0
	}
	rest := strings.ReplaceAll(key, other, "")
	return 1 - float64(len(rest))/float64(len(key))
}
