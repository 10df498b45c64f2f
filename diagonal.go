package wordgrid

import "fmt"

// Coordinate addresses one cell of a Grid.
type Coordinate struct {
	Row, Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Diagonals returns the coordinates of every maximal run parallel to the main
// diagonal of a size x size grid, 2*size-1 runs in all.
//
// The runs on and below the main diagonal come first, from offset 0 (the main
// diagonal itself) down to the single bottom-left cell. The runs above follow,
// from offset 1 out to the single top-right cell. Within a run, coordinates
// step by (+1, +1).
//
// Anti-diagonals are not produced here; see AntiDiagonals.
func Diagonals(size int) [][]Coordinate {
	if size <= 0 {
		return nil
	}

	diagonals := make([][]Coordinate, 0, 2*size-1)
	for offset := 0; offset < size; offset++ {
		diagonals = append(diagonals, walk(size, Coordinate{Row: offset}, 1))
	}
	for offset := 1; offset < size; offset++ {
		diagonals = append(diagonals, walk(size, Coordinate{Col: offset}, 1))
	}
	return diagonals
}

// AntiDiagonals returns the top-right to bottom-left runs of a size x size
// grid. It is an optional extension to the default line set and mirrors the
// ordering of Diagonals: runs starting on the right edge first, from the
// longest down to the bottom-right cell, then runs starting on the top edge,
// from column size-2 down to the top-left cell. Coordinates step by (+1, -1).
func AntiDiagonals(size int) [][]Coordinate {
	if size <= 0 {
		return nil
	}

	diagonals := make([][]Coordinate, 0, 2*size-1)
	for offset := 0; offset < size; offset++ {
		diagonals = append(diagonals, walk(size, Coordinate{Row: offset, Col: size - 1}, -1))
	}
	for offset := 1; offset < size; offset++ {
		diagonals = append(diagonals, walk(size, Coordinate{Col: size - 1 - offset}, -1))
	}
	return diagonals
}

// walk steps from start by (+1, colStep) until it leaves the grid.
func walk(size int, start Coordinate, colStep int) []Coordinate {
	var run []Coordinate
	for c := start; c.Row < size && c.Col >= 0 && c.Col < size; c.Row, c.Col = c.Row+1, c.Col+colStep {
		run = append(run, c)
	}
	return run
}
