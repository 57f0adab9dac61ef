package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hivedigger/internal/testutil/hivegen"
)

var testJD = []byte{0x3c, 0x1f, 0x8a, 0x02, 0x77, 0x95, 0xe1, 0x40, 0x0d, 0xbb, 0x6a, 0x51, 0x98, 0x2e, 0xc4, 0x07}

// writeHive writes h to a file under t.TempDir and returns its path.
func writeHive(t *testing.T, h *hivegen.Hive) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "SYSTEM")
	require.NoError(t, h.WriteFile(path))
	return path
}

// systemHive writes the standard SYSTEM test hive.
func systemHive(t *testing.T) string {
	t.Helper()
	return writeHive(t, hivegen.System(testJD))
}

// runCLI executes the root command with args and captures stdout and stderr.
// Global flags are reset first since cobra only sets the ones passed.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	verbose, quiet, jsonOut = false, false, false
	noMmap, ignoreCase, lenient = false, false, false
	logDir = ""

	var out, errOut bytes.Buffer
	origOut, origErr := stdout, stderr
	stdout, stderr = &out, &errOut
	t.Cleanup(func() { stdout, stderr = origOut, origErr })

	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}
