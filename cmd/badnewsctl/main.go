// cmd/badnewsctl/main.go
//
// badnewsctl – maintenance CLI.
//
//	badnewsctl generate -n 5     print generated headlines, no database
//	badnewsctl seed              fill an empty table (same routine as cmd/web)
//	badnewsctl add               store one generated headline
//	badnewsctl stats             headline count per category
//
// Database commands read the same configuration as cmd/web; logs go to
// the daily log file only.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "badnewsctl",
	Short:         "Maintenance commands for the badnews headline service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
