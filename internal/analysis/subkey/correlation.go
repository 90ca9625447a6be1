package subkey

import (
	"vcrack/internal/analysis/english"
	"vcrack/internal/crypto"
	"vcrack/internal/domain"
)

// Correlation picks the one key letter whose decryption correlates best with
// English letter frequencies.
type Correlation struct{}

// Name implements domain.SubkeySolver.
func (Correlation) Name() domain.Solver { return domain.SolverCorrelation }

// Candidates always returns exactly one candidate.
func (Correlation) Candidates(column string, _ int) []domain.SubkeyCandidate {
	return []domain.SubkeyCandidate{Best(column)}
}

// Best tries all 26 letters; the first maximum wins, so an empty column
// yields 'A'.
func Best(column string) domain.SubkeyCandidate {
	best := domain.SubkeyCandidate{Letter: 'A', Score: english.Correlation(column)}
	for i := 1; i < 26; i++ {
		k := byte('A' + i)
		if c := english.Correlation(crypto.DecryptLetter(column, k)); c > best.Score {
			best = domain.SubkeyCandidate{Letter: k, Score: c}
		}
	}
	return best
}

var _ domain.SubkeySolver = Correlation{}
