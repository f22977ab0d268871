// Command perfume serves the perfume catalog and answers catalog queries
// from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KurtErsin/perfume/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "perfume",
		Short:         "Perfume catalog browser",
		Long:          "Serve the perfume catalog over HTTP, or query and check it from the command line.",
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", "", "path to configuration file")
	rootCmd.PersistentFlags().String("catalog", "", "catalog YAML file (overrides catalog.path)")

	rootCmd.AddCommand(
		newServeCmd(),
		newQueryCmd(),
		newRecommendCmd(),
		newCheckCmd(),
		newVersionCmd(),
	)
	return rootCmd
}
