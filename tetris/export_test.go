package tetris

// LoadRows replaces the locked cells with rows, aligned to the floor.
func (g *Game) LoadRows(rows ...string) {
	src, err := ParseGrid(rows...)
	if err != nil {
		panic(err)
	}
	if src.width != g.grid.width || src.height > g.grid.height {
		panic("tetris: rows do not fit the grid")
	}
	g.grid.Reset()
	offset := g.grid.height - src.height
	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			g.grid.Set(x, y+offset, src.At(x, y))
		}
	}
}
