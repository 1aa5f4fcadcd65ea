// Package grid provides points and rectangular character grids for the
// puzzles that walk a 2D map.
package grid

import (
	"errors"
	"iter"
	"strings"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for grid parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Point is a position or an offset on a grid. X grows to the right and Y
// grows downwards.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p multiplied by k.
func (p Point) Scale(k int) Point { return Point{p.X * k, p.Y * k} }

// TurnRight rotates a direction 90 degrees clockwise.
func (p Point) TurnRight() Point { return Point{-p.Y, p.X} }

// Direction offsets.
var (
	Up    = Point{0, -1}
	Right = Point{1, 0}
	Down  = Point{0, 1}
	Left  = Point{-1, 0}
)

// Dirs4 are the orthogonal directions, clockwise from Up.
var Dirs4 = [4]Point{Up, Right, Down, Left}

// Dirs8 are all eight neighbour directions, clockwise from up-left.
var Dirs8 = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{1, 0},
	{1, 1}, {0, 1}, {-1, 1},
	{-1, 0},
}

// Diagonals are the four diagonal directions, clockwise from up-left.
var Diagonals = [4]Point{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// AbsDiff returns |a-b| without overflowing for unsigned types.
func AbsDiff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// Grid is a rectangular grid of bytes addressed as cells[y][x].
type Grid struct {
	Width, Height int
	cells         [][]byte
}

// Parse builds a grid from newline separated rows. Blank lines are ignored
// and a trailing "\r" is stripped from each row.
func Parse(input string) (*Grid, error) {
	var rows [][]byte
	for line := range strings.Lines(input) {
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		rows = append(rows, []byte(line))
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}
	return &Grid{Width: width, Height: len(rows), cells: rows}, nil
}

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Width && p.Y < g.Height
}

// At returns the byte at p, or false when p is off the grid.
func (g *Grid) At(p Point) (byte, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[p.Y][p.X], true
}

// Is reports whether the cell at p holds b. Points off the grid hold nothing.
func (g *Grid) Is(p Point, b byte) bool {
	v, ok := g.At(p)
	return ok && v == b
}

// Set stores b at p. Points off the grid are ignored.
func (g *Grid) Set(p Point, b byte) {
	if g.InBounds(p) {
		g.cells[p.Y][p.X] = b
	}
}

// Find returns the first point, in row-major order, holding b.
func (g *Grid) Find(b byte) (Point, bool) {
	for p := range g.Points() {
		if g.cells[p.Y][p.X] == b {
			return p, true
		}
	}
	return Point{}, false
}

// Points yields every point of the grid in row-major order.
func (g *Grid) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := range g.Height {
			for x := range g.Width {
				if !yield(Point{x, y}) {
					return
				}
			}
		}
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([][]byte, len(g.cells))
	for i, row := range g.cells {
		cells[i] = append([]byte(nil), row...)
	}
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// String renders the grid back into newline separated rows.
func (g *Grid) String() string {
	var b strings.Builder
	for i, row := range g.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.Write(row)
	}
	return b.String()
}
