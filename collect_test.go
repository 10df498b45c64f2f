package wordgrid_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/milden6/wordgrid"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLines_PhaseOrder(t *testing.T) {
	g, err := wordgrid.NewGridFromString("ABCD")
	require.NoError(t, err)

	var got []string
	for _, line := range wordgrid.Lines(g, wordgrid.DefaultOptions()) {
		got = append(got, string(line))
	}
	// rows, then diagonals, then columns
	assert.Equal(t, []string{"AB", "CD", "AD", "C", "B", "AC", "BD"}, got)
}

func TestLines_AntiDiagonalsOptIn(t *testing.T) {
	g, err := wordgrid.NewGridFromString("ABCD")
	require.NoError(t, err)

	opts := wordgrid.DefaultOptions()
	opts.AntiDiagonals = true

	var got []string
	for _, line := range wordgrid.Lines(g, opts) {
		got = append(got, string(line))
	}
	assert.Equal(t, []string{"AB", "CD", "AD", "C", "B", "BC", "D", "A", "AC", "BD"}, got)
}

func TestCandidates_TwoByTwo(t *testing.T) {
	g, err := wordgrid.NewGridFromString("ABCD")
	require.NoError(t, err)

	want := []string{
		// rows
		"A", "AB", "B",
		"C", "CD", "D",
		// diagonals
		"A", "AD", "D",
		"C",
		"B",
		// columns
		"A", "AC", "C",
		"B", "BD", "D",
	}
	if diff := cmp.Diff(want, wordgrid.Candidates(g)); diff != "" {
		t.Errorf("Candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidates_Count(t *testing.T) {
	for size := 0; size <= 7; size++ {
		letters := make([]rune, size*size)
		for i := range letters {
			letters[i] = rune('a' + i%26)
		}
		g, err := wordgrid.NewGrid(letters)
		require.NoError(t, err)

		// n(n+1)/2 per line: 2*size lines of length size plus the diagonals
		want := 2 * size * size * (size + 1) / 2
		for _, d := range wordgrid.Diagonals(size) {
			want += len(d) * (len(d) + 1) / 2
		}
		assert.Len(t, wordgrid.Candidates(g), want, "size %d", size)
	}
}

func TestCollectCandidates_ParallelMatchesSequential(t *testing.T) {
	g, err := wordgrid.NewGridFromString("AEIOUBCDFGHXYZMNPQRSTLKJWVabcdefghij")
	require.NoError(t, err)

	seq := wordgrid.CollectCandidates(g, wordgrid.DefaultOptions())
	for _, workers := range []int{2, 3, 8, 64} {
		opts := wordgrid.DefaultOptions()
		opts.Workers = workers
		par := wordgrid.CollectCandidates(g, opts)
		if diff := cmp.Diff(seq, par); diff != "" {
			t.Errorf("workers=%d changed output (-seq +par):\n%s", workers, diff)
		}
	}
}

func TestCollectCandidatesContext_Canceled(t *testing.T) {
	g, err := wordgrid.NewGridFromString("AEIOUBCDFGHXYZMNPQRSTLKJWVabcdefghij")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		opts := wordgrid.DefaultOptions()
		opts.Workers = workers
		candidates, err := wordgrid.CollectCandidatesContext(ctx, g, opts)
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", workers)
		assert.Nil(t, candidates, "workers=%d", workers)

		words, err := wordgrid.FindContext(ctx, g, wordgrid.BuildTrie([]string{"AEI"}), opts)
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", workers)
		assert.Nil(t, words, "workers=%d", workers)
	}
}

func TestCollectCandidatesContext_MatchesCollectCandidates(t *testing.T) {
	g, err := wordgrid.NewGridFromString("ABCDEFGHI")
	require.NoError(t, err)

	opts := wordgrid.DefaultOptions()
	opts.Workers = 3
	got, err := wordgrid.CollectCandidatesContext(context.Background(), g, opts)
	require.NoError(t, err)
	if diff := cmp.Diff(wordgrid.Candidates(g), got); diff != "" {
		t.Errorf("candidates differ (-want +got):\n%s", diff)
	}
}

func TestCollectCandidates_Logs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	opts := wordgrid.DefaultOptions()
	opts.Logger = zap.New(core)

	g, err := wordgrid.NewGridFromString("ABCD")
	require.NoError(t, err)
	wordgrid.CollectCandidates(g, opts)

	entries := logs.FilterMessage("Collected candidates").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(17), entries[0].ContextMap()["candidates"])
}

func TestCollectCandidates_NilLogger(t *testing.T) {
	g, err := wordgrid.NewGridFromString("ABCD")
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		wordgrid.CollectCandidates(g, wordgrid.Options{})
	})
}
