package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/milden6/wordgrid"
)

// readLetters returns every non-whitespace rune of r, so a grid file may be
// laid out one row per line or as a single run.
func readLetters(r io.Reader) ([]rune, error) {
	br := bufio.NewReader(r)
	var letters []rune
	for {
		ch, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			return letters, nil
		}
		if err != nil {
			return nil, err
		}
		if !unicode.IsSpace(ch) {
			letters = append(letters, ch)
		}
	}
}

// readWords returns the lines of r, skipping blank ones.
func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimRight(scanner.Text(), "\r")
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func loadGrid(path string) (*wordgrid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open grid: %w", err)
	}
	defer f.Close()

	letters, err := readLetters(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid %s: %w", path, err)
	}

	grid, err := wordgrid.NewGrid(letters)
	if err != nil {
		return nil, fmt.Errorf("grid %s: %w", path, err)
	}
	return grid, nil
}

func loadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	words, err := readWords(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}
	return words, nil
}
