package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"stegcrypt/internal/domain"
	"stegcrypt/internal/protocol/bits"
	"stegcrypt/internal/protocol/rsa"
)

// extract <source.png> [key]: recover a hidden message.
func extractCmd() *cobra.Command {
	var (
		k          int
		output     string
		keyFile    string
		passphrase string
	)
	cmd := &cobra.Command{
		Use:   "extract <source.png> [key]",
		Short: "Extract a message from a PNG image",
		Long: "Extract a message from a PNG image.\n\n" +
			"--bits must match the value used when hiding; 0 reads it from the image.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				key domain.PrivateKey
				err error
			)
			switch {
			case len(args) == 2:
				key, err = rsa.ParsePrivateKey(args[1])
			case keyFile != "":
				if passphrase == "" {
					return fmt.Errorf("passphrase required (-p) with --key-file")
				}
				key, err = appCtx.KeyFile(keyFile).LoadKey(passphrase)
			default:
				return fmt.Errorf("decryption key required: pass it as an argument or use --key-file")
			}
			if err != nil {
				return err
			}

			msg, err := appCtx.ExtractFile(args[0], k, key)
			if err != nil {
				return err
			}

			if output != "" {
				return appCtx.SaveMessage(output, msg)
			}
			out := cmd.OutOrStdout()
			if _, err := out.Write(msg); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return nil
		},
	}
	cmd.Flags().Var(newIntRange(&k, 1, bits.MinBits, bits.MaxBits, true), "bits",
		"number of bits used when the image was altered (1-4, 0 = read from image)")
	cmd.Flags().StringVar(&output, "output", "", "file to save the message to (default: print)")
	cmd.Flags().StringVar(&keyFile, "key-file", "", "read the decryption key from a sealed key file")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting --key-file")
	return cmd
}
