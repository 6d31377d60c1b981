package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/borkshop/quadrant/internal/config"
	"github.com/borkshop/quadrant/internal/input"
	"github.com/borkshop/quadrant/internal/plot"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(&app{log: zap.NewNop()})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(positionalNegatives(cmd, args))
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestClassifyCmd(t *testing.T) {
	for _, tc := range []struct {
		x, y string
		want string
	}{
		{"0", "0", "Origin"},
		{"1", "1", "One"},
		{"-1", "1", "Two"},
		{"-1", "-1", "Three"},
		{"1", "-1", "Four"},
		{"1", "0", "OnBorder"},
		{"0", "1", "OnBorder"},
		{"-0.5", "-Inf", "Three"},
	} {
		out, err := run(t, "classify", tc.x, tc.y)
		require.NoError(t, err, "%s %s", tc.x, tc.y)
		assert.Equal(t, tc.want+"\n", out, "%s %s", tc.x, tc.y)
	}
}

func TestClassifyCmd_badArgs(t *testing.T) {
	_, err := run(t, "classify", "one", "1")
	assert.ErrorIs(t, err, input.ErrInvalidPoint)

	_, err = run(t, "classify", "1")
	assert.Error(t, err)
}

func TestDistanceCmd(t *testing.T) {
	out, err := run(t, "distance", "3", "-4")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	out, err = run(t, "distance", "-p", "3", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "1.414\n", out)
}

func TestTranslateCmd(t *testing.T) {
	out, err := run(t, "translate", "1", "2", "-3", "-4")
	require.NoError(t, err)
	assert.Equal(t, "(-2, -2)\n", out)

	out, err = run(t, "translate", "--precision=1", "1.26", "0", "0", "-0.5")
	require.NoError(t, err)
	assert.Equal(t, "(1.3, -0.5)\n", out)
}

func TestDescribeCmd(t *testing.T) {
	out, err := run(t, "describe", "-3", "4")
	require.NoError(t, err)
	assert.Equal(t, "(-3, 4) is 5 from the origin\nquadrant: Two\n", out)
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "quadrant.yaml", "precision: 2\n")

	out, err := run(t, "--config", cfg, "distance", "1", "-1")
	require.NoError(t, err)
	assert.Equal(t, "1.41\n", out)

	// flags win over the file
	out, err = run(t, "--config", cfg, "-p", "0", "distance", "1", "-1")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, err = run(t, "--precision", "40", "distance", "1", "1")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "distance", "1", "1")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBatchCmd(t *testing.T) {
	path := writeFile(t, "points.yaml", "- [3, 4]\n- {x: -1, y: 0}\n- [.nan, 1]\n")

	out, err := run(t, "batch", path)
	require.NoError(t, err)
	assert.Contains(t, out, "3    4  5         One\n")
	assert.Contains(t, out, "OnBorder  2\n")
	assert.Contains(t, out, "bounds  (-1, 0)  (3, 4)\n")

	out, err = run(t, "batch", "--format", "yaml", path)
	require.NoError(t, err)
	assert.Contains(t, out, "quadrant: OnBorder")
	assert.Contains(t, out, "bounds:")

	_, err = run(t, "batch", "-f", "csv", path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "batch", writeFile(t, "bad.yaml", "- [1]\n"))
	assert.ErrorIs(t, err, input.ErrInvalidPoint)
}

func TestPlotCmd(t *testing.T) {
	path := writeFile(t, "points.yaml", "- [1, 1]\n- [-1, -1]\n")

	out, err := run(t, "plot", "--cols", "1", "--rows", "1", path)
	require.NoError(t, err)
	assert.Equal(t, string(rune(0x28FC))+"\n", out)

	out, err = run(t, "plot", "--cols", "1", "--rows", "1", "--no-axes", path)
	require.NoError(t, err)
	assert.Equal(t, string(rune(0x2848))+"\n", out)

	_, err = run(t, "plot", "--cols", "0", path)
	assert.ErrorIs(t, err, plot.ErrInvalidSize)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "quadrant dev")
}

func TestPositionalNegatives(t *testing.T) {
	root := newRootCmd(&app{})
	for _, tc := range []struct {
		in, want []string
	}{
		{
			[]string{"classify", "1", "2"},
			[]string{"classify", "1", "2"},
		},
		{
			[]string{"classify", "-1", "2"},
			[]string{"classify", "--", "-1", "2"},
		},
		{
			[]string{"--debug", "translate", "-1", "-2.5", "3", "-4"},
			[]string{"--debug", "translate", "--", "-1", "-2.5", "3", "-4"},
		},
		{
			[]string{"distance", "-p", "-1", "-3", "4"},
			[]string{"distance", "-p", "-1", "--", "-3", "4"},
		},
		{
			[]string{"distance", "--precision", "2", "-3", "--config=q.yaml", "4"},
			[]string{"distance", "--precision", "2", "--config=q.yaml", "--", "-3", "4"},
		},
		{
			[]string{"classify", "--", "-1", "2"},
			[]string{"classify", "--", "-1", "2"},
		},
	} {
		assert.Equal(t, tc.want, positionalNegatives(root, tc.in), "%q", tc.in)
	}
}
