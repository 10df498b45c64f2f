package wordgrid

import (
	"context"

	"go.uber.org/zap"
)

// Dictionary reports whether a word belongs to a fixed word list.
// *Trie, *Index and *WordSet all implement it.
type Dictionary interface {
	Contains(word string) bool
}

// Validate returns the candidates found in dict, in candidate order.
// Repeated candidates that are words are repeated in the result.
func Validate(candidates []string, dict Dictionary) []string {
	var words []string
	for _, candidate := range candidates {
		if dict.Contains(candidate) {
			words = append(words, candidate)
		}
	}
	return words
}

// Find collects the candidates of g and validates them against dict.
func Find(g *Grid, dict Dictionary, opts Options) []string {
	// A background context is never canceled.
	words, _ := FindContext(context.Background(), g, dict, opts)
	return words
}

// FindContext is Find with cancellation of the candidate collection.
func FindContext(ctx context.Context, g *Grid, dict Dictionary, opts Options) ([]string, error) {
	candidates, err := CollectCandidatesContext(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	words := Validate(candidates, dict)

	opts.logger().Debug("Validated candidates",
		zap.Int("candidates", len(candidates)),
		zap.Int("words", len(words)))

	return words, nil
}
