package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/hivedigger/hive/lookup"
)

func init() {
	rootCmd.AddCommand(newSyskeyCmd())
}

func newSyskeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "syskey <hive>",
		Short: `Print the JD value under CurrentControlSet\Control\Lsa`,
		Long: `The syskey command walks CurrentControlSet\Control\Lsa in a SYSTEM hive
and prints the raw bytes of its JD value as hex.

Example:
  hivedigger syskey SYSTEM
  hivedigger syskey SYSTEM --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSyskey(args)
		},
	}
}

func runSyskey(args []string) error {
	return extract(args[0], lookup.DefaultPath, lookup.DefaultValue)
}
