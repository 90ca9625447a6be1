// Package analysis names the interchangeable analysis strategies so callers
// can select them explicitly.
package analysis

import (
	"fmt"

	"vcrack/internal/analysis/keylength"
	"vcrack/internal/analysis/subkey"
	"vcrack/internal/domain"
)

// Estimators maps a strategy name to its key-length estimator.
var Estimators = map[domain.Strategy]func() domain.KeyLengthEstimator{
	domain.StrategyKasiski:     func() domain.KeyLengthEstimator { return keylength.Kasiski{} },
	domain.StrategyCoincidence: func() domain.KeyLengthEstimator { return keylength.Coincidence{} },
}

// Solvers maps a solver name to its subkey solver.
var Solvers = map[domain.Solver]func() domain.SubkeySolver{
	domain.SolverFrequencyRank: func() domain.SubkeySolver { return subkey.FrequencyRank{} },
	domain.SolverCorrelation:   func() domain.SubkeySolver { return subkey.Correlation{} },
}

// DefaultSolver is the solver each strategy is paired with unless overridden.
var DefaultSolver = map[domain.Strategy]domain.Solver{
	domain.StrategyKasiski:     domain.SolverFrequencyRank,
	domain.StrategyCoincidence: domain.SolverCorrelation,
}

// Estimator looks up a key-length estimator by name.
func Estimator(name domain.Strategy) (domain.KeyLengthEstimator, error) {
	f, ok := Estimators[name]
	if !ok {
		return nil, fmt.Errorf("key length %q: %w", name, domain.ErrUnknownStrategy)
	}
	return f(), nil
}

// Solver looks up a subkey solver by name. An empty name selects the
// strategy's default.
func Solver(name domain.Solver, strategy domain.Strategy) (domain.SubkeySolver, error) {
	if name == "" {
		name = DefaultSolver[strategy]
	}
	f, ok := Solvers[name]
	if !ok {
		return nil, fmt.Errorf("solver %q: %w", name, domain.ErrUnknownStrategy)
	}
	return f(), nil
}
