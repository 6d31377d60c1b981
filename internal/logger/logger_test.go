package logger_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/borkshop/quadrant/internal/logger"
)

func readLines(t *testing.T, path string) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestNew_fileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quadrant.log")

	l, err := logger.New(logger.Config{Output: path})
	require.NoError(t, err)
	l.Debug("hidden")
	l.Info("classify.done", zap.String("quadrant", "One"))
	_ = l.Sync()

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "classify.done", lines[0]["msg"])
	assert.Equal(t, "One", lines[0]["quadrant"])
	assert.Equal(t, "info", lines[0]["level"])
	assert.NotContains(t, lines[0], "caller")
}

func TestNew_debug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quadrant.log")

	l, err := logger.New(logger.Config{Debug: true, Output: path})
	require.NoError(t, err)
	l.Debug("shown")
	_ = l.Sync()

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "debug", lines[0]["level"])
	assert.Contains(t, lines[0], "caller")
}

func TestNew_badOutput(t *testing.T) {
	_, err := logger.New(logger.Config{Output: filepath.Join(t.TempDir(), "missing", "dir", "q.log")})
	assert.Error(t, err)
}
