package commands

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"vcrack/internal/app"
)

var (
	cfg         app.Config
	wire        *app.Wire
	removeExtra bool
)

// Execute runs the CLI until it finishes or is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	cfg = app.DefaultConfig()
	removeExtra = false

	root := &cobra.Command{
		Use:          "vcrack",
		Short:        "Vigenère cipher tool with ciphertext-only key recovery",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Layout.KeepExtra = !removeExtra
			cfg.Output = cmd.ErrOrStderr()
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	root.PersistentFlags().StringVarP(&cfg.Passphrase, "passphrase", "p", "", "passphrase sealing the report")

	root.AddCommand(normalCmd(), crackCmd(), reportCmd())
	return root
}

// readInput returns the contents of args[0], or stdin when no file is named.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// writeOutput writes s to args[1], or stdout when no file is named.
func writeOutput(cmd *cobra.Command, args []string, s string) error {
	if len(args) > 1 && args[1] != "-" {
		return wire.Results.WriteResult(args[1], s)
	}
	_, err := io.WriteString(cmd.OutOrStdout(), s)
	return err
}
