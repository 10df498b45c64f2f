package wordgrid

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options tunes candidate collection and validation.
type Options struct {
	// Workers bounds how many lines are expanded into substrings at once.
	// Values below 2 run sequentially. Output order never depends on it.
	Workers int
	// AntiDiagonals adds the top-right to bottom-left runs after the main
	// diagonals. Off by default.
	AntiDiagonals bool
	// Logger receives debug statistics. Nil means no logging.
	Logger *zap.Logger
}

// DefaultOptions returns sequential collection over rows, diagonals and
// columns, with logging disabled.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Logger:  zap.NewNop(),
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Lines returns every line of the grid in collection order: rows top to
// bottom, then diagonals in the order of Diagonals, then (if enabled)
// anti-diagonals, then columns left to right.
func Lines(g *Grid, opts Options) [][]rune {
	size := g.Size()
	diagonals := Diagonals(size)

	var anti [][]Coordinate
	if opts.AntiDiagonals {
		anti = AntiDiagonals(size)
	}

	lines := make([][]rune, 0, 2*size+len(diagonals)+len(anti))
	lines = append(lines, g.Rows()...)
	for _, d := range diagonals {
		lines = append(lines, g.Line(d))
	}
	for _, d := range anti {
		lines = append(lines, g.Line(d))
	}
	lines = append(lines, g.Columns()...)
	return lines
}

// Candidates collects every candidate word of g with DefaultOptions.
func Candidates(g *Grid) []string {
	return CollectCandidates(g, DefaultOptions())
}

// CollectCandidates returns the substrings of every line of g, concatenated
// in line order. A word formed by several lines appears once per line.
func CollectCandidates(g *Grid, opts Options) []string {
	// A background context is never canceled.
	candidates, _ := CollectCandidatesContext(context.Background(), g, opts)
	return candidates
}

// CollectCandidatesContext is CollectCandidates with cancellation. Lines not
// yet expanded when ctx is done are abandoned and ctx.Err() is returned.
func CollectCandidatesContext(ctx context.Context, g *Grid, opts Options) ([]string, error) {
	lines := Lines(g, opts)
	perLine := make([][]string, len(lines))

	if opts.Workers > 1 && len(lines) > 1 {
		eg, ctx := errgroup.WithContext(ctx)
		eg.SetLimit(opts.Workers)
		for i, line := range lines {
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				perLine[i] = Substrings(line)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, line := range lines {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			perLine[i] = Substrings(line)
		}
	}

	total := 0
	for _, words := range perLine {
		total += len(words)
	}
	candidates := make([]string, 0, total)
	for _, words := range perLine {
		candidates = append(candidates, words...)
	}

	opts.logger().Debug("Collected candidates",
		zap.Int("size", g.Size()),
		zap.Int("lines", len(lines)),
		zap.Int("workers", opts.Workers),
		zap.Int("candidates", len(candidates)))

	return candidates, nil
}
