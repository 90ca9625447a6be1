package domain

// Strategy names a key-length estimation pipeline.
type Strategy string

const (
	// StrategyKasiski ranks key lengths by factors of repeated-substring spacings.
	StrategyKasiski Strategy = "kasiski"
	// StrategyCoincidence ranks key lengths by average index of coincidence.
	StrategyCoincidence Strategy = "ic"
)

// Solver names a per-column subkey solver.
type Solver string

const (
	// SolverFrequencyRank yields several ranked letters per column.
	SolverFrequencyRank Solver = "frequency-rank"
	// SolverCorrelation yields exactly one letter per column.
	SolverCorrelation Solver = "correlation"
)

// Extra is a non-letter rune removed by normalization, at its rune offset in the
// original text.
type Extra struct {
	Index int  `json:"index"`
	Char  rune `json:"char"`
}

// Layout is everything normalization strips from a text.
type Layout struct {
	Extras []Extra
	// Lower has one entry per letter; true when that letter was lowercase.
	Lower []bool
}

// NormalizedText is an uppercase A-Z sequence plus the layout needed to
// restore the original text around it.
type NormalizedText struct {
	Letters string
	Layout  Layout
}

// KeyLengthCandidate is a plausible key length with the score of the strategy
// that produced it: an average IC or a factor frequency.
type KeyLengthCandidate struct {
	Length int
	Score  float64
	Source Strategy
}

// SubkeyCandidate is a key letter for one column with its confidence: a
// rank-match count (0..12) or a correlation.
type SubkeyCandidate struct {
	Letter byte
	Score  float64
}

// KeyCandidate is a full key, one letter per column, carrying the score of the
// key length it was built for.
type KeyCandidate struct {
	Key    string   `json:"key"`
	Score  float64  `json:"score"`
	Source Strategy `json:"source"`
}

// RecoveredKey is a validated KeyCandidate with its decryption.
type RecoveredKey struct {
	KeyCandidate
	Plaintext     string  `json:"plaintext"`
	WordPercent   float64 `json:"word_percent,omitempty"`
	LetterPercent float64 `json:"letter_percent,omitempty"`
}

// Report is the outcome of one crack run.
type Report struct {
	ID         string         `json:"id"`
	Strategy   Strategy       `json:"strategy"`
	Solver     Solver         `json:"solver"`
	Keys       []RecoveredKey `json:"keys"`
	CreatedUTC int64          `json:"created_utc"`
}
