package tetris

import "fmt"

// Shape identifies one of the seven tetrominoes.
type Shape uint8

const (
	I Shape = iota
	O
	T
	S
	Z
	J
	L

	shapeCount = 7
)

// Shapes lists every shape in table order.
var Shapes = [shapeCount]Shape{I, O, T, S, Z, J, L}

var shapeLetters = [shapeCount]byte{'I', 'O', 'T', 'S', 'Z', 'J', 'L'}

func (s Shape) String() string {
	if int(s) >= shapeCount {
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
	return string(shapeLetters[s])
}

// Valid reports whether s is one of the seven shapes.
func (s Shape) Valid() bool {
	return int(s) < shapeCount
}

// ParseShape maps a letter to a shape. Q is accepted as an alias for O.
func ParseShape(letter byte) (Shape, bool) {
	switch letter {
	case 'I', 'i':
		return I, true
	case 'O', 'o', 'Q', 'q':
		return O, true
	case 'T', 't':
		return T, true
	case 'S', 's':
		return S, true
	case 'Z', 'z':
		return Z, true
	case 'J', 'j':
		return J, true
	case 'L', 'l':
		return L, true
	}
	return 0, false
}

// Rotation is one of the four orientations of a piece.
type Rotation uint8

const (
	Rotation0 Rotation = iota
	RotationR
	Rotation2
	RotationL
)

var rotationNames = [4]string{"0", "R", "2", "L"}

func (r Rotation) String() string {
	return rotationNames[r&3]
}

// Spin is the direction of a rotation.
type Spin uint8

const (
	Clockwise Spin = iota
	CounterClockwise
)

// Apply returns the orientation reached by turning r once in that direction.
func (s Spin) Apply(r Rotation) Rotation {
	if s == Clockwise {
		return (r + 1) & 3
	}
	return (r + 3) & 3
}

// Point is a grid coordinate. Y grows downward.
type Point struct {
	X, Y int
}

// shapeCells holds the occupied cells of each shape and rotation inside a
// 4x4 bounding box.
var shapeCells = [shapeCount][4][4]Point{
	I: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	O: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	T: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	S: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	Z: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	J: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	L: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// Cells returns the box-relative cells of the shape in the given rotation.
func (s Shape) Cells(r Rotation) [4]Point {
	return shapeCells[s][r&3]
}
