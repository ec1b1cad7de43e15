package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/includs/internal/cli/styles"
	"github.com/bnema/includs/internal/logging"
)

func TestLastLines(t *testing.T) {
	lines, err := lastLines(strings.NewReader("a\nb\nc\nd\n"), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, lines)

	all, err := lastLines(strings.NewReader("a\nb\n"), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, all)
}

func TestColorizeLogLine_JSON(t *testing.T) {
	theme := styles.NewTheme(nil)

	line := `{"level":"warn","time":"2025-01-02T15:04:05Z","component":"explain","message":"request failed","error":"boom"}`
	out := colorizeLogLine(line, theme)

	assert.Contains(t, out, "15:04:05")
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "[explain]")
	assert.Contains(t, out, "request failed")
	assert.Contains(t, out, "error=boom")
}

func TestColorizeLogLine_PlainPassesThrough(t *testing.T) {
	theme := styles.NewTheme(nil)
	assert.Equal(t, "plain text", colorizeLogLine("plain text", theme))
}

func TestRotatedLogs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		logging.LogFileName,
		logging.LogFileName + ".2025-01-01-00-00-00.000",
		logging.LogFileName + ".2025-01-02-00-00-00.000.gz",
		"other.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}

	got, err := rotatedLogs(dir)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	missing, err := rotatedLogs(filepath.Join(dir, "nope"))
	require.NoError(t, err)
	assert.Empty(t, missing)
}
