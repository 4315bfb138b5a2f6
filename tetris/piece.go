package tetris

// Piece is a shape in a given orientation. X and Y locate the top-left
// corner of the shape's 4x4 bounding box on the grid.
type Piece struct {
	Shape    Shape
	Rotation Rotation
	X, Y     int
}

// Cells returns the grid coordinates the piece covers.
func (p Piece) Cells() [4]Point {
	cells := p.Shape.Cells(p.Rotation)
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}

// Moved returns a copy of the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece turned once in the given direction
// around its bounding box, without any kick.
func (p Piece) Rotated(spin Spin) Piece {
	p.Rotation = spin.Apply(p.Rotation)
	return p
}

// Direction is a one-cell translation.
type Direction uint8

const (
	Left Direction = iota
	Right
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	default:
		return 0, 0
	}
}
