package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vcrack/internal/domain"
	"vcrack/internal/services/crack"
)

// report <path>: print a report saved by crack --report.
func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <path>",
		Short: "Print a saved crack report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass := cfg.Passphrase
			if pass == "" {
				sealed, err := wire.Reports.IsSealed(args[0])
				if err != nil {
					return err
				}
				if sealed {
					if pass, err = promptPassphrase(cmd); err != nil {
						return err
					}
				}
			}
			r, err := wire.Reports.LoadReport(args[0], pass)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Report %s (%s/%s) %s\n\n", r.ID, r.Strategy, r.Solver,
				time.Unix(r.CreatedUTC, 0).UTC().Format(time.RFC3339))
			return crack.Write(out, r)
		},
	}
}

// promptPassphrase asks for the passphrase on a terminal without echo, or
// takes the first line of piped input.
func promptPassphrase(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Passphrase: ")
		pass, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", err
		}
		return string(pass), nil
	}
	return readPassphrase(in)
}

func readPassphrase(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", fmt.Errorf("passphrase required (-p): %w", domain.ErrSealed)
	}
	return line, nil
}
