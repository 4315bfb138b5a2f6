package simulate

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/plus3/blockfall/tetris"
)

// Evaluate parses one input line, drops its pieces on an empty well and
// returns the final stack height.
func Evaluate(width int, line string) (int, error) {
	_, h, err := evaluate(width, line)
	return h, err
}

func evaluate(width int, line string) (*tetris.Grid, int, error) {
	placements, err := ParseLine(line)
	if err != nil {
		return nil, 0, err
	}
	g, err := Drop(width, placements)
	if err != nil {
		return nil, 0, err
	}
	return g, Height(g), nil
}

// Runner evaluates a stream of input lines.
type Runner struct {
	Width int

	// OnGrid, if set, receives the final grid of every line.
	OnGrid func(line int, g *tetris.Grid) error
}

// Run is shorthand for a Runner of the given width.
func Run(ctx context.Context, r io.Reader, w io.Writer, width int) error {
	return Runner{Width: width}.Run(ctx, r, w)
}

// Run evaluates r line by line and writes one height per line to w. Lines
// are independent games. Results for lines before a failing one are still
// written. Errors name the 1-based line number.
func (rn Runner) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	out := bufio.NewWriter(w)

	err := func() error {
		for n := 1; sc.Scan(); n++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			g, h, err := evaluate(rn.Width, sc.Text())
			if err != nil {
				return fmt.Errorf("line %d: %w", n, err)
			}
			out.WriteString(strconv.Itoa(h))
			out.WriteByte('\n')
			if rn.OnGrid != nil {
				if err := rn.OnGrid(n, g); err != nil {
					return fmt.Errorf("line %d: %w", n, err)
				}
			}
		}
		return sc.Err()
	}()

	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	return err
}
