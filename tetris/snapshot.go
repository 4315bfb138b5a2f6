package tetris

import (
	"io"

	"gopkg.in/yaml.v3"
)

// PieceState is the serialised form of a piece.
type PieceState struct {
	Shape    string `yaml:"shape"`
	Rotation string `yaml:"rotation"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
}

func pieceState(p Piece) *PieceState {
	return &PieceState{
		Shape:    p.Shape.String(),
		Rotation: p.Rotation.String(),
		X:        p.X,
		Y:        p.Y,
	}
}

// Snapshot is a read-only copy of a session for renderers, logs and tests.
// Grid rows include the buffer rows and only locked cells.
type Snapshot struct {
	Phase  string      `yaml:"phase"`
	Score  int         `yaml:"score"`
	Level  int         `yaml:"level"`
	Lines  int         `yaml:"lines"`
	Locks  int         `yaml:"locks"`
	Active *PieceState `yaml:"active,omitempty"`
	Held   string      `yaml:"held,omitempty"`
	Next   []string    `yaml:"next,flow"`
	Grid   []string    `yaml:"grid"`
}

// Snapshot captures the current session state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase: g.phase.String(),
		Score: g.score,
		Level: g.level,
		Lines: g.lines,
		Locks: g.locks,
		Grid:  g.grid.Rows(),
	}
	if g.hasActive {
		s.Active = pieceState(g.active)
	}
	if g.hasHeld {
		s.Held = g.held.String()
	}
	for _, shape := range g.Preview() {
		s.Next = append(s.Next, shape.String())
	}
	return s
}

// WriteYAML encodes the snapshot as a YAML document.
func (s Snapshot) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
