package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/milden6/wordgrid"
)

func newIndexCmd(a *app) *cobra.Command {
	indexCmd := &cobra.Command{
		Use:   "index",
		Short: "Manage saved dictionary indexes",
	}

	var out string
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build a compact index from the dictionary and save it",
		Long: `build reads the configured dictionary, minimizes it into a word graph and
writes the result to disk. Use it with --validator index to skip
rebuilding the dictionary on every run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = a.cfg.Index
			}
			return a.buildIndex(cmd, out)
		},
	}
	buildCmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: the configured index)")

	lookupCmd := &cobra.Command{
		Use:   "lookup WORD...",
		Short: "Print the rank of each word and the indexed words that prefix it",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runLookup,
	}

	var prefix string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the indexed words in rank order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, prefix)
		},
	}
	listCmd.Flags().StringVarP(&prefix, "prefix", "p", "", "only list words starting with prefix")

	indexCmd.AddCommand(buildCmd, lookupCmd, listCmd)
	return indexCmd
}

func (a *app) buildIndex(cmd *cobra.Command, out string) error {
	words, err := loadWords(a.cfg.Dictionary)
	if err != nil {
		return err
	}

	idx := wordgrid.BuildTrie(words).Freeze()
	size, err := idx.Save(out)
	if err != nil {
		return fmt.Errorf("failed to save index: %w", err)
	}

	a.logger.Info("Saved index",
		zap.String("path", out),
		zap.Int64("bytes", size),
		zap.Int("words", idx.NumWords()),
		zap.Int("nodes", idx.NumNodes()),
		zap.Int("edges", idx.NumEdges()))

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d words, %d nodes, %d edges, %d bytes\n",
		out, idx.NumWords(), idx.NumNodes(), idx.NumEdges(), size)
	return nil
}

func (a *app) loadIndex() (*wordgrid.Index, error) {
	idx, err := wordgrid.Load(a.cfg.Index)
	if err != nil {
		return nil, fmt.Errorf("failed to load index %s: %w", a.cfg.Index, err)
	}
	a.logger.Debug("Loaded index",
		zap.String("path", a.cfg.Index),
		zap.Int("words", idx.NumWords()),
		zap.Int("nodes", idx.NumNodes()))
	return idx, nil
}

// runLookup prints one line per argument: the word, its rank or "-" when it
// is absent, and every indexed word that is a prefix of it.
func (a *app) runLookup(cmd *cobra.Command, args []string) error {
	idx, err := a.loadIndex()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, word := range args {
		rank := "-"
		if i := idx.IndexOf(word); i >= 0 {
			rank = strconv.Itoa(i)
		}

		prefixes := make([]string, 0)
		for _, p := range idx.FindAllPrefixesOf(word) {
			prefixes = append(prefixes, fmt.Sprintf("%s#%d", p.Word, p.Index))
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", word, rank, strings.Join(prefixes, " "))
	}
	return nil
}

func (a *app) runList(cmd *cobra.Command, prefix string) error {
	idx, err := a.loadIndex()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	idx.Enumerate(func(index int, word []rune, final bool) wordgrid.EnumerationResult {
		w := string(word)
		if len(w) < len(prefix) {
			if !strings.HasPrefix(prefix, w) {
				return wordgrid.Skip
			}
			return wordgrid.Continue
		}
		if !strings.HasPrefix(w, prefix) {
			return wordgrid.Skip
		}
		if final {
			fmt.Fprintf(out, "%d\t%s\n", index, w)
		}
		return wordgrid.Continue
	})
	return nil
}
