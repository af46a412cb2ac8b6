package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanizio/badnews/internal/headline"
)

var (
	generateCount  int
	generateFormat string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print generated headlines without storing them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGenerate(cmd, headline.NewGenerator(), generateCount, generateFormat)
	},
}

func init() {
	generateCmd.Flags().IntVarP(&generateCount, "anzahl", "n", 10, "Number of headlines")
	generateCmd.Flags().StringVar(&generateFormat, "format", "human", "Output format (json, human)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, gen *headline.Generator, n int, format string) error {
	hs := gen.Many(n)
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(hs)
	case "human":
		for _, h := range hs {
			fmt.Fprintf(out, "%-7s  %s\n", h.CategoryLabel(), h.Text)
		}
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}
