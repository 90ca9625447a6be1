package domain

import "context"

// KeyLengthEstimator ranks plausible key lengths for normalized letters.
type KeyLengthEstimator interface {
	Name() Strategy
	Lengths(letters string) []KeyLengthCandidate
}

// SubkeySolver proposes key letters for a single column. keyLength is the
// length the column was split for; solvers may use it to size their output.
type SubkeySolver interface {
	Name() Solver
	Candidates(column string, keyLength int) []SubkeyCandidate
}

// Dictionary answers word membership for the English-likeness test.
type Dictionary interface {
	Contains(word string) bool
	Len() int
}

// CrackService recovers keys from ciphertext alone.
type CrackService interface {
	Crack(ctx context.Context, ciphertext string) (Report, error)
}

// CodecService encrypts and decrypts with a known key.
type CodecService interface {
	Encrypt(text, key string) (string, error)
	Decrypt(text, key string) (string, error)
}

// ReportStore persists crack reports.
type ReportStore interface {
	SaveReport(path string, r Report, passphrase string) error
	LoadReport(path string, passphrase string) (Report, error)
	IsSealed(path string) (bool, error)
}

// ResultWriter persists the single accepted plaintext of a crack run.
type ResultWriter interface {
	WriteResult(path, plaintext string) error
}
