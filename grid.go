package wordgrid

import (
	"math"
	"strings"
)

// Grid is a square matrix of letters stored row-major. It is immutable once
// built; every accessor returns a fresh slice.
type Grid struct {
	size  int
	cells [][]rune
}

// NewGrid partitions letters into consecutive rows of equal length. It returns
// a *ShapeError unless len(letters) is a perfect square. An empty input yields
// a valid 0x0 grid.
func NewGrid(letters []rune) (*Grid, error) {
	n := len(letters)
	size := squareSide(n)
	if size*size != n {
		return nil, &ShapeError{Length: n}
	}

	cells := make([][]rune, size)
	for i := range cells {
		row := make([]rune, size)
		copy(row, letters[i*size:(i+1)*size])
		cells[i] = row
	}

	return &Grid{size: size, cells: cells}, nil
}

// NewGridFromString builds a grid from the runes of s.
func NewGridFromString(s string) (*Grid, error) {
	return NewGrid([]rune(s))
}

// squareSide returns floor(sqrt(n)) using integer correction so that large
// inputs are not misjudged by float rounding.
func squareSide(n int) int {
	side := int(math.Sqrt(float64(n)))
	for side > 0 && side*side > n {
		side--
	}
	for (side+1)*(side+1) <= n {
		side++
	}
	return side
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// At returns the letter at c. It panics if c is outside the grid.
func (g *Grid) At(c Coordinate) rune {
	return g.cells[c.Row][c.Col]
}

// Row returns a copy of row i.
func (g *Grid) Row(i int) []rune {
	row := make([]rune, g.size)
	copy(row, g.cells[i])
	return row
}

// Rows returns a copy of every row, top to bottom.
func (g *Grid) Rows() [][]rune {
	rows := make([][]rune, g.size)
	for i := range rows {
		rows[i] = g.Row(i)
	}
	return rows
}

// Column returns column j read top to bottom.
func (g *Grid) Column(j int) []rune {
	col := make([]rune, g.size)
	for i := range col {
		col[i] = g.cells[i][j]
	}
	return col
}

// Columns returns the transpose of the grid, left to right.
func (g *Grid) Columns() [][]rune {
	cols := make([][]rune, g.size)
	for j := range cols {
		cols[j] = g.Column(j)
	}
	return cols
}

// Line dereferences coordinates into the letters they address.
func (g *Grid) Line(coords []Coordinate) []rune {
	line := make([]rune, len(coords))
	for i, c := range coords {
		line[i] = g.At(c)
	}
	return line
}

// Letters flattens the grid back into row-major order.
func (g *Grid) Letters() []rune {
	letters := make([]rune, 0, g.size*g.size)
	for _, row := range g.cells {
		letters = append(letters, row...)
	}
	return letters
}

// String renders the grid one row per line, letters separated by spaces.
func (g *Grid) String() string {
	var b strings.Builder
	for i, row := range g.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, ch := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(ch)
		}
	}
	return b.String()
}
