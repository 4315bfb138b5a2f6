package tetris

import (
	"fmt"
	"strings"
)

// Cell is the state of one grid square. The zero value is empty; occupied
// cells remember the shape that filled them.
type Cell uint8

// Empty is the unoccupied cell.
const Empty Cell = 0

// CellOf returns the occupied cell for shape s.
func CellOf(s Shape) Cell {
	return Cell(s) + 1
}

// Occupied reports whether the cell is filled.
func (c Cell) Occupied() bool {
	return c != Empty
}

// Shape returns the shape that filled the cell.
func (c Cell) Shape() (Shape, bool) {
	if c == Empty {
		return 0, false
	}
	return Shape(c - 1), true
}

// Grid is a fixed-size playfield stored row-major: index = y*width + x.
// Row 0 is the top of the buffer zone; the last row is the floor.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates an empty grid. Width and height must be positive.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic("tetris: grid dimensions must be positive")
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// ParseGrid builds a grid from rows in the format produced by Rows: '.' is
// empty and a shape letter is an occupied cell. All rows must share a width.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("tetris: empty grid")
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("tetris: row %d has width %d, want %d", y, len(row), g.width)
		}
		for x := 0; x < len(row); x++ {
			if row[x] == '.' {
				continue
			}
			s, ok := ParseShape(row[x])
			if !ok {
				return nil, fmt.Errorf("tetris: row %d: unknown cell %q", y, row[x])
			}
			g.cells[y*g.width+x] = CellOf(s)
		}
	}
	return g, nil
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at (x, y), or Empty when out of bounds.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y*g.width+x]
}

// Set writes a cell. Out of bounds writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if g.InBounds(x, y) {
		g.cells[y*g.width+x] = c
	}
}

// Free reports whether (x, y) is inside the grid and empty.
func (g *Grid) Free(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y*g.width+x] == Empty
}

// Fits reports whether every cell of the piece is in bounds and empty.
func (g *Grid) Fits(p Piece) bool {
	for _, c := range p.Shape.Cells(p.Rotation) {
		if !g.Free(p.X+c.X, p.Y+c.Y) {
			return false
		}
	}
	return true
}

// Place writes the piece's cells into the grid without checking for overlap.
func (g *Grid) Place(p Piece) {
	cell := CellOf(p.Shape)
	for _, c := range p.Shape.Cells(p.Rotation) {
		g.Set(p.X+c.X, p.Y+c.Y, cell)
	}
}

// RowFull reports whether every cell of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	row := g.cells[y*g.width : (y+1)*g.width]
	for _, c := range row {
		if c == Empty {
			return false
		}
	}
	return true
}

// RowEmpty reports whether row y has no occupied cell.
func (g *Grid) RowEmpty(y int) bool {
	row := g.cells[y*g.width : (y+1)*g.width]
	for _, c := range row {
		if c != Empty {
			return false
		}
	}
	return true
}

// ClearLines removes every full row, shifts the rows above down by the
// number removed, and returns that number. Vacated rows at the top are empty.
func (g *Grid) ClearLines() int {
	write := g.height - 1
	for read := g.height - 1; read >= 0; read-- {
		if g.RowFull(read) {
			continue
		}
		if write != read {
			copy(g.cells[write*g.width:(write+1)*g.width], g.cells[read*g.width:(read+1)*g.width])
		}
		write--
	}
	cleared := write + 1
	clear(g.cells[:cleared*g.width])
	return cleared
}

// StackHeight returns the number of rows from the floor up to and including
// the highest occupied row.
func (g *Grid) StackHeight() int {
	for y := 0; y < g.height; y++ {
		if !g.RowEmpty(y) {
			return g.height - y
		}
	}
	return 0
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Reset empties every cell.
func (g *Grid) Reset() {
	clear(g.cells)
}

// Rows renders each row as a string, '.' for empty and the shape letter
// for occupied cells.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		b.Reset()
		for x := 0; x < g.width; x++ {
			b.WriteByte(g.At(x, y).Letter())
		}
		rows[y] = b.String()
	}
	return rows
}

func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Letter returns '.' for an empty cell and the shape letter otherwise.
func (c Cell) Letter() byte {
	s, ok := c.Shape()
	if !ok || !s.Valid() {
		return '.'
	}
	return shapeLetters[s]
}
