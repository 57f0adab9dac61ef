package main

import (
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		printResult("hivedigger %s\n", version)
		printResult("  commit: %s\n", commit)
		printResult("  built: %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
