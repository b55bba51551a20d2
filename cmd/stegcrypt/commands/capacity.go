package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"stegcrypt/internal/protocol/bits"
)

func capacityCmd() *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "capacity <source.png>",
		Short: "Show how many message bytes a PNG image can hold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ks := []int{1, 2, 3, 4}
			if cmd.Flags().Changed("bits") {
				ks = []int{k}
			}
			caps, err := appCtx.Capacities(args[0], ks)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Capacity of %s with %d-bit primes:\n", args[0], appCtx.Stego.PrimeBits())
			for _, k := range ks {
				fmt.Fprintf(out, "  %d bit(s) per byte: %d bytes\n", k, caps[k])
			}
			return nil
		},
	}
	cmd.Flags().Var(newIntRange(&k, 1, bits.MinBits, bits.MaxBits, false), "bits",
		"only report this bit depth (1-4)")
	return cmd
}
