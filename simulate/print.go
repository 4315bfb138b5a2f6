package simulate

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/plus3/blockfall/tetris"
)

var shapeColors = [...]lipgloss.Color{
	tetris.I: lipgloss.Color("#00BCD4"),
	tetris.O: lipgloss.Color("#FFD600"),
	tetris.T: lipgloss.Color("#AB47BC"),
	tetris.S: lipgloss.Color("#66BB6A"),
	tetris.Z: lipgloss.Color("#EF5350"),
	tetris.J: lipgloss.Color("#42A5F5"),
	tetris.L: lipgloss.Color("#FFA726"),
}

// PrintGrid writes the stack in g as an open-topped well with column
// indexes underneath. Only rows from the top of the stack down are shown.
// Colour is used when w is a terminal.
func PrintGrid(w io.Writer, g *tetris.Grid) error {
	re := lipgloss.NewRenderer(w)
	well := re.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, true, true).
		BorderForeground(lipgloss.Color("#888888"))

	var cellStyles [len(shapeColors)]lipgloss.Style
	for s, c := range shapeColors {
		cellStyles[s] = re.NewStyle().Foreground(c).Bold(true)
	}

	top := g.Height() - max(g.StackHeight(), 1)
	rows := make([]string, 0, g.Height()-top)
	cells := make([]string, g.Width())
	for y := top; y < g.Height(); y++ {
		for x := range cells {
			shape, ok := g.At(x, y).Shape()
			if !ok {
				cells[x] = " "
				continue
			}
			cells[x] = cellStyles[shape].Render(letter(shape))
		}
		rows = append(rows, strings.Join(cells, " "))
	}

	index := make([]string, g.Width())
	for x := range index {
		index[x] = strconv.Itoa(x % 10)
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left,
		well.Render(strings.Join(rows, "\n")),
		" "+strings.Join(index, " "),
	))
	return err
}
