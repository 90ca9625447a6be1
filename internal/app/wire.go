package app

import (
	"fmt"
	"log/slog"

	"vcrack/internal/analysis"
	"vcrack/internal/domain"
	"vcrack/internal/services/codec"
	"vcrack/internal/services/crack"
	"vcrack/internal/store"
)

// Wire bundles all stores, services and the logger for the CLI.
type Wire struct {
	Config  Config
	Log     *slog.Logger
	Codec   domain.CodecService
	Reports domain.ReportStore
	Results domain.ResultWriter
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	return &Wire{
		Config:  cfg,
		Log:     log,
		Codec:   codec.New(cfg.Layout),
		Reports: store.NewReportFileStore(),
		Results: store.ResultFileWriter{},
	}, nil
}

// Cracker builds the crack service for the configured pipeline. The word list
// is only read when the pipeline validates against it.
func (w *Wire) Cracker() (domain.CrackService, error) {
	cfg := w.Config
	solver, err := analysis.Solver(cfg.Solver, cfg.Strategy)
	if err != nil {
		return nil, err
	}

	var words domain.Dictionary
	if solver.Name() == domain.SolverFrequencyRank {
		wl, err := store.LoadWordList(cfg.Dictionary)
		if err != nil {
			return nil, err
		}
		w.Log.Debug("word list loaded", "path", cfg.Dictionary, "words", wl.Len())
		words = wl
	}

	return crack.New(words, w.Results, w.Log, crack.Options{
		Strategy:        cfg.Strategy,
		Solver:          cfg.Solver,
		Layout:          cfg.Layout,
		MaxCombinations: cfg.MaxCombinations,
		ResultPath:      cfg.ResultPath,
	}), nil
}

// SaveReport persists r to the configured report path, if any.
func (w *Wire) SaveReport(r domain.Report) error {
	if w.Config.ReportPath == "" {
		return nil
	}
	if err := w.Reports.SaveReport(w.Config.ReportPath, r, w.Config.Passphrase); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	w.Log.Info("report saved", "path", w.Config.ReportPath, "sealed", w.Config.Passphrase != "")
	return nil
}
