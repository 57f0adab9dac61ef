package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hivedigger/hive"
	"github.com/joshuapare/hivedigger/hive/lookup"
	"github.com/joshuapare/hivedigger/internal/logger"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	noMmap     bool
	ignoreCase bool
	lenient    bool
	logDir     string

	// stdout and stderr are swapped out by tests.
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "hivedigger",
	Short: "Extract raw values from offline Windows registry hives",
	Long: `hivedigger reads a Windows registry hive file directly, walks its key
tree from the root, and prints the raw bytes of a value. By default it
extracts the JD syskey component from CurrentControlSet\Control\Lsa of a
SYSTEM hive.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := logger.Init(logger.Options{
			Enabled: verbose || logDir != "",
			Level:   slog.LevelDebug,
			LogDir:  logDir,
			Writer:  stderr,
		})
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		closeLog = c
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except results and errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noMmap, "no-mmap", false, "Read the hive through the file instead of mapping it")
	rootCmd.PersistentFlags().
		BoolVarP(&ignoreCase, "ignore-case", "i", false, "Match key and value names case-insensitively")
	rootCmd.PersistentFlags().
		BoolVar(&lenient, "lenient", false, "Skip damaged sub-lists of index-root subkey lists")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Write JSON debug logs to a daily file in this directory")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// openHive opens the hive named on the command line.
func openHive(path string) (*hive.File, error) {
	printVerbose("Opening hive: %s\n", path)
	f, err := hive.Open(path, hive.OpenOptions{NoMmap: noMmap})
	if err != nil {
		return nil, err
	}
	printVerbose("  %d bytes\n", f.Size())
	return f, nil
}

// lookupOptions builds lookup options from the global flags.
func lookupOptions() lookup.Options {
	return lookup.Options{
		FoldCase:         ignoreCase,
		LenientIndexRoot: lenient,
		Logger:           logger.L,
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(stdout, format, args...)
	}
}

// printResult prints command results, even in quiet mode
func printResult(format string, args ...any) {
	fmt.Fprintf(stdout, format, args...)
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
