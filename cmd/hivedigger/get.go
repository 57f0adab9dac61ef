package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/hivedigger/hive/lookup"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <hive> <path> <value>",
		Short: "Print the raw bytes of a registry value",
		Long: `The get command walks the key path from the hive root and prints the
raw bytes of the named value as hex. Paths may use \ or / and may start
with HKLM\SYSTEM. Use "" for the default value.

Example:
  hivedigger get SYSTEM 'CurrentControlSet\Control\Lsa' JD
  hivedigger get SYSTEM HKLM/SYSTEM/Select Current --json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
}

func runGet(args []string) error {
	return extract(args[0], lookup.SplitPath(args[1]), args[2])
}
