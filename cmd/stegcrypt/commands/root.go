package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"stegcrypt/internal/app"
	"stegcrypt/internal/protocol/rsa"
)

var (
	verbose bool
	keyBits int
	appCtx  *app.App

	// randSource overrides crypto/rand for key generation and key sealing.
	randSource io.Reader
)

// NewRootCmd builds the stegcrypt command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "stegcrypt",
		Short:        "Hide RSA-encrypted messages in PNG images",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			appCtx = app.New(app.Config{
				PrimeBits: keyBits,
				Rand:      randSource,
				Logger:    logger,
			})
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	root.PersistentFlags().Var(newIntRange(&keyBits, rsa.DefaultPrimeBits, rsa.MinPrimeBits, rsa.MaxPrimeBits, false),
		"key-bits", "size in bits of each RSA prime (demo-grade)")

	root.AddCommand(hideCmd(), extractCmd(), capacityCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
