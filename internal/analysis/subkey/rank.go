package subkey

import (
	"sort"

	"vcrack/internal/analysis/english"
	"vcrack/internal/crypto"
	"vcrack/internal/domain"
)

// FrequencyRank proposes the best-scoring key letters by english.MatchScore.
type FrequencyRank struct {
	// Width caps the candidates per column. Zero means keyLength.
	Width int
}

// Name implements domain.SubkeySolver.
func (FrequencyRank) Name() domain.Solver { return domain.SolverFrequencyRank }

// Candidates returns the top letters for column, best first; letters with
// equal scores stay in alphabetical order. The number returned is Width, or
// keyLength when Width is zero, bounded to 1..26.
func (f FrequencyRank) Candidates(column string, keyLength int) []domain.SubkeyCandidate {
	n := f.Width
	if n <= 0 {
		n = keyLength
	}
	n = min(max(n, 1), 26)

	all := Scores(column)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Score > all[j].Score })
	return all[:n]
}

// Scores returns the match score of column decrypted with every letter A..Z.
func Scores(column string) []domain.SubkeyCandidate {
	out := make([]domain.SubkeyCandidate, 26)
	for i := range out {
		k := byte('A' + i)
		out[i] = domain.SubkeyCandidate{
			Letter: k,
			Score:  float64(english.MatchScore(crypto.DecryptLetter(column, k))),
		}
	}
	return out
}

var _ domain.SubkeySolver = FrequencyRank{}
