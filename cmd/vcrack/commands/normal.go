package commands

import (
	"github.com/spf13/cobra"
)

// normal -k KEY (-e|-d) [in] [out]: run the cipher with a known key.
func normalCmd() *cobra.Command {
	var (
		key     string
		encrypt bool
		decrypt bool
	)
	cmd := &cobra.Command{
		Use:   "normal [in] [out]",
		Short: "Encrypt or decrypt with a known key",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			var out string
			if encrypt {
				out, err = wire.Codec.Encrypt(text, key)
			} else {
				out, err = wire.Codec.Decrypt(text, key)
			}
			if err != nil {
				return err
			}
			return writeOutput(cmd, args, out)
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "cipher key; non-letters are ignored")
	cmd.Flags().BoolVarP(&encrypt, "encrypt", "e", false, "encrypt the input")
	cmd.Flags().BoolVarP(&decrypt, "decrypt", "d", false, "decrypt the input")
	cmd.Flags().BoolVarP(&removeExtra, "remove-extra", "r", false, "drop characters that are not letters")
	_ = cmd.MarkFlagRequired("key")
	cmd.MarkFlagsOneRequired("encrypt", "decrypt")
	cmd.MarkFlagsMutuallyExclusive("encrypt", "decrypt")
	return cmd
}
