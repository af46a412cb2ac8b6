package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanizio/badnews/internal/headline"
	"github.com/yanizio/badnews/internal/metrics"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Generate one headline and store it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, _, log, closeFn, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		h, err := headline.NewService(store, nil, metrics.Nop{}, log).Add(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), h.String())
		return nil
	},
}

func init() { rootCmd.AddCommand(addCmd) }
