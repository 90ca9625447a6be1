package keylength

import (
	"math"
	"sort"

	"vcrack/internal/analysis/columns"
	"vcrack/internal/analysis/english"
	"vcrack/internal/domain"
)

// Defaults of the Coincidence estimator.
const (
	DefaultMaxLength = 50
	DefaultTop       = 10
)

// Coincidence estimates key lengths by average index of coincidence.
// The zero value uses DefaultMaxLength and DefaultTop.
type Coincidence struct {
	// Max is the exclusive upper bound on lengths tried.
	Max int
	// Top is how many lengths are returned.
	Top int
}

// Name implements domain.KeyLengthEstimator.
func (Coincidence) Name() domain.Strategy { return domain.StrategyCoincidence }

// Lengths tries every length in [1, min(Max, len(letters))) and returns the
// Top lengths whose average column IC is closest to english.IC. Score is the
// average IC.
func (c Coincidence) Lengths(letters string) []domain.KeyLengthCandidate {
	maxLen, top := c.Max, c.Top
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}
	if top <= 0 {
		top = DefaultTop
	}
	if len(letters) < maxLen {
		maxLen = len(letters)
	}
	var out []domain.KeyLengthCandidate
	for length := 1; length < maxLen; length++ {
		out = append(out, domain.KeyLengthCandidate{
			Length: length,
			Score:  AverageIC(letters, length),
			Source: domain.StrategyCoincidence,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].Score-english.IC) < math.Abs(out[j].Score-english.IC)
	})
	if len(out) > top {
		out = out[:top]
	}
	return out
}

// AverageIC is the mean index of coincidence of the columns of letters for
// the given key length.
func AverageIC(letters string, length int) float64 {
	cols := columns.Split(letters, length)
	var sum float64
	for _, col := range cols {
		sum += english.IndexOfCoincidence(col)
	}
	return sum / float64(len(cols))
}

var _ domain.KeyLengthEstimator = Coincidence{}
