package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"vcrack/internal/alphabet"
	"vcrack/internal/domain"
	"vcrack/internal/services/crack"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Dictionary      string          // word list used by the combinatorial pipeline
	ResultPath      string          // file receiving the accepted plaintext
	ReportPath      string          // optional JSON report of a crack run
	Passphrase      string          // seals the report when set
	Strategy        domain.Strategy // kasiski or ic
	Solver          domain.Solver   // optional override of the strategy's solver
	MaxCombinations uint64          // per key length; 0 means the crack default
	Layout          alphabet.Options
	LogLevel        string    // debug, info, warn or error
	Output          io.Writer // log destination; defaults to os.Stderr
}

// DefaultConfig returns the settings used when no flag overrides them.
func DefaultConfig() Config {
	return Config{
		Dictionary:      "words.txt",
		ResultPath:      "result.txt",
		Strategy:        domain.StrategyKasiski,
		MaxCombinations: crack.DefaultMaxCombinations,
		Layout:          alphabet.Options{KeepExtra: true, KeepCase: true},
		LogLevel:        "warn",
	}
}

// ParseLevel maps a --log-level value onto a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}

func newLogger(cfg Config) (*slog.Logger, error) {
	lvl, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl})), nil
}
