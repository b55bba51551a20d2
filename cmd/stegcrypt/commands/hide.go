package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"stegcrypt/internal/domain"
	"stegcrypt/internal/protocol/bits"
	"stegcrypt/internal/protocol/rsa"
)

// hide <source.png> <data>: encrypt data and hide it in source.
func hideCmd() *cobra.Command {
	var (
		k          int
		output     string
		keyFile    string
		passphrase string
	)
	cmd := &cobra.Command{
		Use:   "hide <source.png> <data>",
		Short: "Hide a message in a PNG image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if keyFile != "" && passphrase == "" {
				return fmt.Errorf("passphrase required (-p) with --key-file")
			}
			out := cmd.OutOrStdout()

			res, err := appCtx.HideFile(args[0], args[1], output, k)
			if res.Plan.Bits != 0 {
				fmt.Fprintln(out, "Image inspected, requirements:")
				fmt.Fprintf(out, "%-15s %-10d bits\n", "Needed:", res.Plan.Needed())
				fmt.Fprintf(out, "%-15s %-10d bits\n", "Available:", res.Plan.Available())
			}
			if err != nil {
				if domain.IsKind(err, domain.KindCapacity) {
					return fmt.Errorf("message too large to fit inside %s (overflow: %d bits): %w",
						args[0], res.Plan.Overflow(), err)
				}
				return err
			}

			if keyFile != "" {
				if err := appCtx.KeyFile(keyFile).SaveKey(passphrase, res.Key.Private); err != nil {
					return err
				}
			}

			fmt.Fprintln(out)
			fmt.Fprintf(out, "Message was hidden inside %s successfully!\n", res.Output)
			fmt.Fprintf(out, "Decryption key: %s\n", rsa.FormatPrivateKey(res.Key.Private))
			fmt.Fprintf(out, "Key fingerprint: %s\n", rsa.Fingerprint(res.Key.Public))
			if keyFile != "" {
				fmt.Fprintf(out, "Sealed key written to %s\n", keyFile)
			}
			return nil
		},
	}
	cmd.Flags().Var(newIntRange(&k, 1, bits.MinBits, bits.MaxBits, false), "bits",
		"number of bits to alter in each byte (1-4)")
	cmd.Flags().StringVar(&output, "output", "", "output path for the new image (default: overwrite source)")
	cmd.Flags().StringVar(&keyFile, "key-file", "", "also seal the decryption key to this file")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting --key-file")
	return cmd
}
