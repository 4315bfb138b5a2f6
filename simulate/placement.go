// Package simulate drops lists of pieces straight down into a fixed-width
// well and reports the height of the resulting stack. Pieces never rotate
// and never move sideways once placed at their column.
package simulate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/plus3/blockfall/tetris"
)

// Placement is one piece of an input line: a shape dropped with its
// leftmost cell in Column.
type Placement struct {
	Shape  tetris.Shape
	Column int
}

func (p Placement) String() string {
	return letter(p.Shape) + strconv.Itoa(p.Column)
}

// ParseError reports a malformed placement token.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("simulate: bad placement %q: %s", e.Token, e.Reason)
}

// ParseLine reads a comma-separated list of placements such as "Q0,I2,T4".
// A blank line has no placements. Columns are not checked against a width
// here; Drop does that.
func ParseLine(line string) ([]Placement, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	tokens := strings.Split(line, ",")
	placements := make([]Placement, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if len(tok) < 2 {
			return nil, &ParseError{Token: tok, Reason: "want a shape letter followed by a column"}
		}
		shape, ok := ParseShape(tok[0])
		if !ok {
			return nil, &ParseError{Token: tok, Reason: fmt.Sprintf("unknown shape %q", tok[0])}
		}
		col, err := strconv.Atoi(tok[1:])
		if err != nil || col < 0 {
			return nil, &ParseError{Token: tok, Reason: "column must be a non-negative integer"}
		}
		placements = append(placements, Placement{Shape: shape, Column: col})
	}
	return placements, nil
}

// ParseShape accepts the input letters Q I Z S T L J, upper case only.
func ParseShape(b byte) (tetris.Shape, bool) {
	if b < 'A' || b > 'Z' || b == 'O' {
		return 0, false
	}
	return tetris.ParseShape(b)
}

func letter(s tetris.Shape) string {
	if s == tetris.O {
		return "Q"
	}
	return s.String()
}
