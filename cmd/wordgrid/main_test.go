package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/milden6/wordgrid"
	"github.com/milden6/wordgrid/internal/config"
)

type fixture struct {
	dir  string
	grid string
	dict string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:  dir,
		grid: filepath.Join(dir, "input.txt"),
		dict: filepath.Join(dir, "wordlist.txt"),
	}
	require.NoError(t, os.WriteFile(f.grid, []byte("AB\nCD\n"), 0644))
	require.NoError(t, os.WriteFile(f.dict, []byte("AB\r\nCD\n\nAC\nBD\nA\n"), 0644))
	return f
}

// run executes the CLI with args and returns what it printed.
func run(t *testing.T, f fixture, args ...string) (string, error) {
	t.Helper()

	a := &app{logger: zap.NewNop()}
	cmd := newRootCmd(a)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(f.dir, "wordgrid.yaml"),
		"--grid", f.grid,
		"--dict", f.dict,
	}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestSolve(t *testing.T) {
	f := newFixture(t)

	for _, validator := range []string{"trie", "set"} {
		out, err := run(t, f, "solve", "--validator", validator)
		require.NoError(t, err, validator)
		assert.Equal(t, "A B\nC D\n\nA\nAB\nCD\nA\nA\nAC\nBD\n", out, validator)
	}
}

func TestRootRunsSolve(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, f)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "A B\nC D\n"), out)
}

func TestIndexBuildThenSolve(t *testing.T) {
	f := newFixture(t)
	idxPath := filepath.Join(f.dir, "words.idx")

	out, err := run(t, f, "index", "build", "--out", idxPath)
	require.NoError(t, err)
	assert.Contains(t, out, "5 words")

	out, err = run(t, f, "solve", "--validator", "index", "--index", idxPath)
	require.NoError(t, err)
	assert.Equal(t, "A B\nC D\n\nA\nAB\nCD\nA\nA\nAC\nBD\n", out)
}

func TestIndexLookupAndList(t *testing.T) {
	f := newFixture(t)
	idxPath := filepath.Join(f.dir, "words.idx")

	_, err := run(t, f, "index", "build", "--out", idxPath)
	require.NoError(t, err)

	out, err := run(t, f, "--index", idxPath, "index", "lookup", "AC", "ABX", "Z")
	require.NoError(t, err)
	assert.Equal(t, "AC\t2\tA#0 AC#2\nABX\t-\tA#0 AB#1\nZ\t-\t\n", out)

	out, err = run(t, f, "--index", idxPath, "index", "list", "--prefix", "A")
	require.NoError(t, err)
	assert.Equal(t, "0\tA\n1\tAB\n2\tAC\n", out)

	out, err = run(t, f, "--index", idxPath, "index", "list")
	require.NoError(t, err)
	assert.Equal(t, "0\tA\n1\tAB\n2\tAC\n3\tBD\n4\tCD\n", out)
}

func TestSolve_Canceled(t *testing.T) {
	f := newFixture(t)

	a := &app{logger: zap.NewNop()}
	cmd := newRootCmd(a)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{
		"--config", filepath.Join(f.dir, "wordgrid.yaml"),
		"--grid", f.grid,
		"--dict", f.dict,
		"solve",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := cmd.ExecuteContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCandidates(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, f, "candidates", "--workers", "4")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 17)
	assert.Equal(t, []string{"A", "AB", "B"}, lines[:3])
}

func TestSolve_ConfigFile(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(f.grid, []byte("ABCDEFGHI"), 0644))
	require.NoError(t, os.WriteFile(f.dict, []byte("CEG\n"), 0644))

	cfg := config.DefaultConfig()
	cfg.AntiDiagonals = true
	require.NoError(t, cfg.Save(filepath.Join(f.dir, "wordgrid.yaml")))

	out, err := run(t, f, "solve")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "\n\nCEG\n"), out)
}

func TestSolve_NotSquare(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(f.grid, []byte("ABCDEFGHIJ"), 0644))

	_, err := run(t, f, "solve")
	require.Error(t, err)
	assert.True(t, errors.Is(err, wordgrid.ErrNotSquare), "got %v", err)
}

func TestSolve_MissingDictionary(t *testing.T) {
	f := newFixture(t)

	_, err := run(t, f, "solve", "--dict", filepath.Join(f.dir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestSolve_BadValidator(t *testing.T) {
	f := newFixture(t)

	_, err := run(t, f, "solve", "--validator", "regex")
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig), "got %v", err)
}

func TestReadLetters(t *testing.T) {
	letters, err := readLetters(strings.NewReader(" A B\n\tC\r\nD é \n"))
	require.NoError(t, err)
	assert.Equal(t, "ABCDé", string(letters))
}

func TestReadWords(t *testing.T) {
	words, err := readWords(strings.NewReader("one\r\n\ntwo\nthree"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, words)
}
