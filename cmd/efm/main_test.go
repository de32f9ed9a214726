package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportDirectoryPrintsWithoutResultFile(t *testing.T) {
	var out strings.Builder
	require.NoError(t, reportDirectory(&out, "", "/srv/data"))
	assert.Equal(t, "/srv/data\n", out.String())
}

func TestReportDirectoryWritesResultFile(t *testing.T) {
	resultFile := filepath.Join(t.TempDir(), "efm.out")
	var out strings.Builder

	require.NoError(t, reportDirectory(&out, resultFile, "/srv/data"))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(resultFile)
	require.NoError(t, err)
	assert.Equal(t, "/srv/data", string(data))
}

func TestReportDirectoryNothingChosen(t *testing.T) {
	resultFile := filepath.Join(t.TempDir(), "efm.out")
	var out strings.Builder

	require.NoError(t, reportDirectory(&out, resultFile, ""))
	assert.Empty(t, out.String())
	_, err := os.Stat(resultFile)
	assert.True(t, os.IsNotExist(err))
}

func TestReportDirectoryWrapsWriteErrors(t *testing.T) {
	resultFile := filepath.Join(t.TempDir(), "missing", "efm.out")

	err := reportDirectory(&strings.Builder{}, resultFile, "/srv/data")
	require.Error(t, err)
	assert.Contains(t, err.Error(), resultFile)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
