package crack

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"vcrack/internal/alphabet"
	"vcrack/internal/analysis"
	"vcrack/internal/analysis/assemble"
	"vcrack/internal/analysis/columns"
	"vcrack/internal/analysis/english"
	"vcrack/internal/analysis/keylength"
	"vcrack/internal/crypto"
	"vcrack/internal/domain"
)

// DefaultMaxCombinations bounds the product searched for a single key length.
const DefaultMaxCombinations = 1 << 20

// checkEvery is how many product keys are tried between context checks.
const checkEvery = 4096

// Options selects the pipeline and shapes its output.
type Options struct {
	Strategy domain.Strategy
	// Solver overrides the strategy's default solver when set.
	Solver domain.Solver
	// Layout controls how plaintexts are restored for output.
	Layout alphabet.Options
	// MaxCombinations skips key lengths with a larger product. Zero means
	// DefaultMaxCombinations.
	MaxCombinations uint64
	// ResultPath, when set, receives the plaintext accepted by the
	// combinatorial pipeline.
	ResultPath string
}

// Service runs ciphertext-only attacks.
//
// words is only needed by the combinatorial pipeline; results may be nil
// when no result file is wanted.
type Service struct {
	words   domain.Dictionary
	results domain.ResultWriter
	log     *slog.Logger
	opts    Options
	now     func() time.Time
}

// New constructs a crack Service.
func New(words domain.Dictionary, results domain.ResultWriter, log *slog.Logger, opts Options) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if opts.Strategy == "" {
		opts.Strategy = domain.StrategyKasiski
	}
	if opts.MaxCombinations == 0 {
		opts.MaxCombinations = DefaultMaxCombinations
	}
	return &Service{words: words, results: results, log: log, opts: opts, now: time.Now}
}

// Crack estimates key lengths, solves every column and validates the keys.
func (s *Service) Crack(ctx context.Context, ciphertext string) (domain.Report, error) {
	estimator, err := analysis.Estimator(s.opts.Strategy)
	if err != nil {
		return domain.Report{}, err
	}
	solver, err := analysis.Solver(s.opts.Solver, s.opts.Strategy)
	if err != nil {
		return domain.Report{}, err
	}

	report := domain.Report{
		ID:         crypto.Digest([]byte(ciphertext)),
		Strategy:   estimator.Name(),
		Solver:     solver.Name(),
		CreatedUTC: s.now().Unix(),
	}
	log := s.log.With("report_id", report.ID)

	text := alphabet.Normalize(ciphertext)
	lengths := estimator.Lengths(text.Letters)
	if len(lengths) == 0 && estimator.Name() == domain.StrategyKasiski {
		log.Warn("no repeated sequences; falling back to index of coincidence")
		estimator = keylength.Coincidence{}
		report.Strategy = estimator.Name()
		lengths = estimator.Lengths(text.Letters)
	}
	if len(lengths) == 0 {
		return report, fmt.Errorf("%d letters: %w", len(text.Letters), domain.ErrNoKeyLength)
	}
	log.Info("key lengths estimated",
		"strategy", report.Strategy,
		"candidates", len(lengths),
		"best", lengths[0].Length)

	if solver.Name() == domain.SolverFrequencyRank {
		key, err := s.combinatorial(ctx, log, text, lengths, solver)
		if err != nil {
			return report, err
		}
		report.Keys = []domain.RecoveredKey{key}
		if s.opts.ResultPath != "" && s.results != nil {
			if err := s.results.WriteResult(s.opts.ResultPath, key.Plaintext); err != nil {
				return report, fmt.Errorf("write result: %w", err)
			}
		}
		return report, nil
	}

	keys, err := s.correlated(ctx, text, lengths, solver)
	if err != nil {
		return report, err
	}
	report.Keys = keys
	log.Info("keys recovered", "count", len(keys))
	return report, nil
}

// combinatorial searches the product of every column's candidates for the
// first key length that decrypts to English.
func (s *Service) combinatorial(
	ctx context.Context,
	log *slog.Logger,
	text domain.NormalizedText,
	lengths []domain.KeyLengthCandidate,
	solver domain.SubkeySolver,
) (domain.RecoveredKey, error) {
	if s.words == nil || s.words.Len() == 0 {
		return domain.RecoveredKey{}, domain.ErrNoDictionary
	}
	validator := english.NewValidator(s.words)
	spaced := alphabet.Options{KeepExtra: true}

	for _, kl := range lengths {
		if err := ctx.Err(); err != nil {
			return domain.RecoveredKey{}, err
		}
		cols := columns.Split(text.Letters, kl.Length)
		cands := make([][]domain.SubkeyCandidate, len(cols))
		for i, col := range cols {
			cands[i] = solver.Candidates(col, kl.Length)
		}
		size := assemble.Size(cands)
		if size > s.opts.MaxCombinations {
			log.Warn("key length skipped", "length", kl.Length, "combinations", sizeAttr(size))
			continue
		}
		log.Debug("searching key length", "length", kl.Length, "combinations", size)

		var (
			best    domain.RecoveredKey
			found   bool
			tried   int
			passing int
		)
		for key := range assemble.Product(cands) {
			tried++
			if tried%checkEvery == 0 {
				if err := ctx.Err(); err != nil {
					return domain.RecoveredKey{}, err
				}
			}
			letters := crypto.Decrypt(text.Letters, crypto.Key(key))
			v := validator.Check(alphabet.Restore(letters, text.Layout, spaced))
			if !v.Passed {
				continue
			}
			passing++
			if found && v.WordPercent <= best.WordPercent {
				continue
			}
			found = true
			best = domain.RecoveredKey{
				KeyCandidate:  domain.KeyCandidate{Key: key, Score: kl.Score, Source: kl.Source},
				Plaintext:     alphabet.Restore(letters, text.Layout, s.opts.Layout),
				WordPercent:   v.WordPercent,
				LetterPercent: v.LetterPercent,
			}
		}
		if found {
			log.Info("key accepted",
				"length", kl.Length,
				"key", best.Key,
				"passing", passing,
				"word_percent", best.WordPercent)
			return best, nil
		}
	}
	return domain.RecoveredKey{}, domain.ErrAnalysisInconclusive
}

// correlated builds one key per key length and drops repetitions.
func (s *Service) correlated(
	ctx context.Context,
	text domain.NormalizedText,
	lengths []domain.KeyLengthCandidate,
	solver domain.SubkeySolver,
) ([]domain.RecoveredKey, error) {
	if len(lengths) > keylength.DefaultTop {
		lengths = lengths[:keylength.DefaultTop]
	}
	keys := make([]domain.KeyCandidate, 0, len(lengths))
	for _, kl := range lengths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		key := make([]byte, 0, kl.Length)
		for _, col := range columns.Split(text.Letters, kl.Length) {
			c := solver.Candidates(col, kl.Length)
			key = append(key, c[0].Letter)
		}
		keys = append(keys, domain.KeyCandidate{Key: string(key), Score: kl.Score, Source: kl.Source})
	}

	survivors := assemble.Dedupe(keys)
	out := make([]domain.RecoveredKey, 0, len(survivors))
	for _, k := range survivors {
		letters := crypto.Decrypt(text.Letters, crypto.Key(k.Key))
		out = append(out, domain.RecoveredKey{
			KeyCandidate: k,
			Plaintext:    alphabet.Restore(letters, text.Layout, s.opts.Layout),
		})
	}
	return out, nil
}

func sizeAttr(n uint64) any {
	if n == math.MaxUint64 {
		return "overflow"
	}
	return n
}

// Compile-time assertion that Service implements domain.CrackService.
var _ domain.CrackService = (*Service)(nil)
