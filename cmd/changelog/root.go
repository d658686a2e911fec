package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Collections release changelog tooling",
	Long: `A tool for maintaining the collections release changelog.

Parses, validates and extracts entries from CHANGELOG.md, which follows the
Keep a Changelog format.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
