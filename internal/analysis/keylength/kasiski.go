package keylength

import (
	"sort"

	"vcrack/internal/domain"
)

// Substring lengths examined by Kasiski.
const (
	minSequence = 3
	maxSequence = 5
)

// Kasiski estimates key lengths from repeated-substring spacings.
type Kasiski struct{}

// Name implements domain.KeyLengthEstimator.
func (Kasiski) Name() domain.Strategy { return domain.StrategyKasiski }

// Lengths ranks every factor (other than 1) of every spacing by how often it
// occurs, most frequent first; equal counts keep the order in which the
// factors first appeared. The result is empty when nothing repeats.
func (k Kasiski) Lengths(letters string) []domain.KeyLengthCandidate {
	tally := newTally()
	for _, d := range Spacings(letters) {
		for _, f := range Factors(d) {
			tally.add(f)
		}
	}
	out := make([]domain.KeyLengthCandidate, 0, len(tally.order))
	for _, f := range tally.order {
		if f <= 1 {
			continue
		}
		out = append(out, domain.KeyLengthCandidate{
			Length: f,
			Score:  float64(tally.counts[f]),
			Source: domain.StrategyKasiski,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Spacings returns, for every distinct substring of 3 to 5 letters that occurs
// more than once, the distance between every pair of its occurrences.
// Substrings are visited by length, then by first occurrence.
func Spacings(letters string) []int {
	var out []int
	for n := minSequence; n <= maxSequence; n++ {
		if len(letters) < n {
			break
		}
		positions := make(map[string][]int)
		var order []string
		for i := 0; i+n <= len(letters); i++ {
			seq := letters[i : i+n]
			if _, seen := positions[seq]; !seen {
				order = append(order, seq)
			}
			positions[seq] = append(positions[seq], i)
		}
		for _, seq := range order {
			at := positions[seq]
			for l := 0; l < len(at); l++ {
				for w := l + 1; w < len(at); w++ {
					out = append(out, at[w]-at[l])
				}
			}
		}
	}
	return out
}

// Factors returns every divisor of n in ascending order. Factors(0) is [0]
// and Factors(1) is [1].
func Factors(n int) []int {
	switch {
	case n <= 0:
		return []int{0}
	case n == 1:
		return []int{1}
	}
	var low, high []int
	for i := 1; i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		low = append(low, i)
		if j := n / i; j != i {
			high = append(high, j)
		}
	}
	for i := len(high) - 1; i >= 0; i-- {
		low = append(low, high[i])
	}
	return low
}

type tally struct {
	counts map[int]int
	order  []int
}

func newTally() *tally { return &tally{counts: make(map[int]int)} }

func (t *tally) add(f int) {
	if _, ok := t.counts[f]; !ok {
		t.order = append(t.order, f)
	}
	t.counts[f]++
}

var _ domain.KeyLengthEstimator = Kasiski{}
