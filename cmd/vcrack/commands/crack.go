package commands

import (
	"bytes"

	"github.com/spf13/cobra"

	"vcrack/internal/domain"
	"vcrack/internal/services/crack"
)

// crack [in] [out]: recover the key of a ciphertext.
func crackCmd() *cobra.Command {
	var strategy, solver string
	cmd := &cobra.Command{
		Use:   "crack [in] [out]",
		Short: "Recover the key of a ciphertext and print the plaintext",
		Args:  cobra.MaximumNArgs(2),
		PreRun: func(cmd *cobra.Command, args []string) {
			wire.Config.Strategy = domain.Strategy(strategy)
			wire.Config.Solver = domain.Solver(solver)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			svc, err := wire.Cracker()
			if err != nil {
				return err
			}
			r, err := svc.Crack(cmd.Context(), text)
			if err != nil {
				return err
			}
			if err := wire.SaveReport(r); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := crack.Write(&buf, r); err != nil {
				return err
			}
			return writeOutput(cmd, args, buf.String())
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", string(cfg.Strategy), "key length strategy: kasiski or ic")
	cmd.Flags().StringVar(&solver, "solver", "", "subkey solver: frequency-rank or correlation (default follows --strategy)")
	cmd.Flags().StringVar(&cfg.Dictionary, "dictionary", cfg.Dictionary, "word list for the frequency-rank solver")
	cmd.Flags().StringVar(&cfg.ResultPath, "result", cfg.ResultPath, "file receiving the accepted plaintext")
	cmd.Flags().StringVar(&cfg.ReportPath, "report", "", "write a JSON report of the run")
	cmd.Flags().Uint64Var(&cfg.MaxCombinations, "max-combinations", cfg.MaxCombinations, "skip key lengths with more candidate keys")
	cmd.Flags().BoolVarP(&removeExtra, "remove-extra", "r", false, "drop characters that are not letters")
	return cmd
}
