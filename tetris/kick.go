package tetris

// Wall kick offsets tried in order when a rotation collides, indexed by the
// starting orientation and the spin. Values are SRS offsets with Y flipped
// to grid coordinates.
var (
	kicksJLSTZ = [4][2][5]Point{
		Rotation0: {
			Clockwise:        {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
			CounterClockwise: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		},
		RotationR: {
			Clockwise:        {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
			CounterClockwise: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		},
		Rotation2: {
			Clockwise:        {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
			CounterClockwise: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		},
		RotationL: {
			Clockwise:        {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
			CounterClockwise: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		},
	}

	kicksI = [4][2][5]Point{
		Rotation0: {
			Clockwise:        {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
			CounterClockwise: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
		},
		RotationR: {
			Clockwise:        {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
			CounterClockwise: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
		},
		Rotation2: {
			Clockwise:        {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
			CounterClockwise: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
		},
		RotationL: {
			Clockwise:        {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
			CounterClockwise: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
		},
	}

	kicksNone = [1]Point{{0, 0}}
)

// Kicks returns the offsets tried, in priority order, when rotating shape s
// out of orientation from. The first offset is always the unshifted rotation.
func Kicks(s Shape, from Rotation, spin Spin) []Point {
	switch s {
	case O:
		return kicksNone[:]
	case I:
		return kicksI[from&3][spin][:]
	default:
		return kicksJLSTZ[from&3][spin][:]
	}
}
