package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hivedigger/internal/testutil/hivegen"
)

func TestInfo(t *testing.T) {
	path := systemHive(t)

	out, _, err := runCLI(t, "info", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Hive Information:")
	assert.Contains(t, out, `Embedded name: \SystemRoot\System32\Config\SYSTEM`)
	assert.Contains(t, out, "Version: 1.5")
	assert.Contains(t, out, "Format: 1\n")
	assert.Contains(t, out, "Last write: 2024-01-02T03:04:05Z")
	assert.Contains(t, out, "Sequences: 1/1\n")
	assert.Contains(t, out, "Checksum: valid")
	assert.Contains(t, out, "ROOT")
}

func TestInfo_JSON(t *testing.T) {
	path := writeHive(t, hivegen.System(testJD, hivegen.WithMinorVersion(3)))

	out, _, err := runCLI(t, "info", "--json", path)
	require.NoError(t, err)

	var got infoOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "1.3", got.Version)
	assert.EqualValues(t, 1, got.Format)
	assert.True(t, got.FormatSupported)
	assert.True(t, got.Clean)
	assert.True(t, got.ChecksumValid)
	assert.Equal(t, "ROOT", got.RootName)
	assert.NotZero(t, got.RootOffset)
	assert.Equal(t, got.HiveBinsSize, got.FirstBinSize)
	assert.Equal(t, got.Size, int64(4096)+int64(got.HiveBinsSize))
}

func TestInfo_UnsupportedFormat(t *testing.T) {
	path := writeHive(t, hivegen.System(testJD, hivegen.WithFormat(2)))

	out, _, err := runCLI(t, "info", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Format: 2 (unsupported)")
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hivedigger dev")
}
