package simulate

import (
	"fmt"

	"github.com/plus3/blockfall/tetris"
)

// DefaultWidth is the well width used when none is given.
const DefaultWidth = 10

// orientations fixes the rotation each input letter is dropped in: I flat,
// T pointing down, L and J standing with the foot on the bottom row.
var orientations = [...]tetris.Rotation{
	tetris.I: tetris.Rotation0,
	tetris.O: tetris.Rotation0,
	tetris.T: tetris.Rotation2,
	tetris.S: tetris.Rotation0,
	tetris.Z: tetris.Rotation0,
	tetris.J: tetris.RotationL,
	tetris.L: tetris.RotationR,
}

// footprint is a piece's cells normalised so the top-left corner of their
// bounding box is (0, 0).
type footprint struct {
	rotation      tetris.Rotation
	dx, dy        int
	width, height int
}

func footprintOf(s tetris.Shape) footprint {
	r := orientations[s]
	cells := s.Cells(r)
	minX, minY, maxX, maxY := 4, 4, -1, -1
	for _, c := range cells {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	return footprint{
		rotation: r,
		dx:       -minX,
		dy:       -minY,
		width:    maxX - minX + 1,
		height:   maxY - minY + 1,
	}
}

var footprints [len(tetris.Shapes)]footprint

func init() {
	for _, s := range tetris.Shapes {
		footprints[s] = footprintOf(s)
	}
}

// Drop plays placements in order on an empty well of the given width and
// returns the final grid. Each piece falls from above the stack until it
// rests on the floor or another cell; full rows are removed after every
// drop. The grid is tall enough that no drop can overflow it.
func Drop(width int, placements []Placement) (*tetris.Grid, error) {
	if width < 4 {
		return nil, fmt.Errorf("simulate: width %d is narrower than a piece", width)
	}

	height := 1
	for _, p := range placements {
		if !p.Shape.Valid() {
			return nil, &ParseError{Token: p.String(), Reason: "unknown shape"}
		}
		fp := footprints[p.Shape]
		if p.Column < 0 || p.Column+fp.width > width {
			return nil, &ParseError{
				Token:  p.String(),
				Reason: fmt.Sprintf("does not fit in columns 0-%d", width-1),
			}
		}
		height += fp.height
	}

	g := tetris.NewGrid(width, height)
	for _, p := range placements {
		fp := footprints[p.Shape]
		piece := tetris.Piece{
			Shape:    p.Shape,
			Rotation: fp.rotation,
			X:        p.Column + fp.dx,
			Y:        fp.dy,
		}
		if !g.Fits(piece) {
			return nil, fmt.Errorf("simulate: %s overflows the well", p)
		}
		for g.Fits(piece.Moved(0, 1)) {
			piece.Y++
		}
		g.Place(piece)
		g.ClearLines()
	}
	return g, nil
}

// Height returns the number of rows from the floor to the highest
// occupied cell.
func Height(g *tetris.Grid) int {
	return g.StackHeight()
}
