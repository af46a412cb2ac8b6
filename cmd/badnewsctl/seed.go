package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanizio/badnews/internal/headline"
	"github.com/yanizio/badnews/internal/metrics"
)

var seedQuantity int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the headline table if it is empty",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, cfg, log, closeFn, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		q := cfg.Seed.Quantity
		if seedQuantity > 0 {
			q = seedQuantity
		}
		n, err := headline.NewSeeder(store, nil, metrics.Nop{}, log, q).Run(cmd.Context())
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Tabelle ist nicht leer, nichts zu tun.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Schlagzeilen gespeichert.\n", headline.FormatNumber(int64(n)))
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVarP(&seedQuantity, "anzahl", "n", 0, "Number of headlines (default: seed.quantity)")
	rootCmd.AddCommand(seedCmd)
}
