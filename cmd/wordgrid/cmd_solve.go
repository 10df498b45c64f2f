package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/milden6/wordgrid"
	"github.com/milden6/wordgrid/internal/config"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Print the grid and every dictionary word found in it",
		Args:  cobra.NoArgs,
		RunE:  a.runSolve,
	}
}

func newCandidatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "candidates",
		Short: "Print every candidate word before validation",
		Args:  cobra.NoArgs,
		RunE:  a.runCandidates,
	}
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	grid, err := loadGrid(a.cfg.Grid)
	if err != nil {
		return err
	}

	dict, err := a.loadDictionary()
	if err != nil {
		return err
	}

	words, err := wordgrid.FindContext(cmd.Context(), grid, dict, a.options())
	if err != nil {
		return err
	}
	a.logger.Info("Solved grid",
		zap.String("grid", a.cfg.Grid),
		zap.Int("size", grid.Size()),
		zap.String("validator", a.cfg.Validator),
		zap.Int("words", len(words)))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, grid)
	fmt.Fprintln(out)
	printWords(out, words)
	return nil
}

func (a *app) runCandidates(cmd *cobra.Command, args []string) error {
	grid, err := loadGrid(a.cfg.Grid)
	if err != nil {
		return err
	}

	candidates, err := wordgrid.CollectCandidatesContext(cmd.Context(), grid, a.options())
	if err != nil {
		return err
	}
	printWords(cmd.OutOrStdout(), candidates)
	return nil
}

// loadDictionary builds the configured Dictionary backend.
func (a *app) loadDictionary() (wordgrid.Dictionary, error) {
	if a.cfg.Validator == config.ValidatorIndex {
		idx, err := a.loadIndex()
		if err != nil {
			return nil, err
		}
		return idx, nil
	}

	words, err := loadWords(a.cfg.Dictionary)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Loaded dictionary",
		zap.String("path", a.cfg.Dictionary),
		zap.Int("words", len(words)))

	if a.cfg.Validator == config.ValidatorSet {
		return wordgrid.NewWordSet(words), nil
	}
	return wordgrid.BuildTrie(words), nil
}

func printWords(w io.Writer, words []string) {
	for _, word := range words {
		fmt.Fprintln(w, word)
	}
}
