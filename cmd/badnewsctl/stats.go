package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yanizio/badnews/internal/headline"
	"github.com/yanizio/badnews/internal/metrics"
)

var statsFormat string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the number of headlines per category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, _, log, closeFn, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		stats, err := headline.NewService(store, nil, metrics.Nop{}, log).Statistics(cmd.Context())
		if err != nil {
			return err
		}
		return printStats(cmd.OutOrStdout(), stats, statsFormat)
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsFormat, "format", "human", "Output format (json, human)")
	rootCmd.AddCommand(statsCmd)
}

func printStats(w io.Writer, s headline.Statistics, format string) error {
	switch format {
	case "json":
		return json.NewEncoder(w).Encode(map[string]any{"kategorien": s.Rows, "summe": s.Sum})
	case "human":
		for _, r := range s.Rows {
			fmt.Fprintf(w, "%-7s  %10s\n", r.CategoryLabel(), headline.FormatNumber(r.Count))
		}
		fmt.Fprintf(w, "%-7s  %10s\n", "Summe", headline.FormatNumber(s.Sum))
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}
