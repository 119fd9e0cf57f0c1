package layout

// Cell is one rasterised screen position.
type Cell struct {
	Ch    rune
	Class Class
}

// Cells rasterises the plan into a Height x Width grid. Glyphs falling
// outside the grid are clipped. The status line occupies the last row and
// the too-small notice the first.
func (p Plan) Cells() [][]Cell {
	if p.Width <= 0 || p.Height <= 0 {
		return nil
	}
	grid := make([][]Cell, p.Height)
	for y := range grid {
		grid[y] = make([]Cell, p.Width)
		for x := range grid[y] {
			grid[y][x] = Cell{Ch: ' '}
		}
	}
	put := func(row, col int, text string, class Class) {
		if row < 0 || row >= p.Height {
			return
		}
		for i, ch := range []rune(text) {
			x := col + i
			if x < 0 || x >= p.Width {
				continue
			}
			grid[row][x] = Cell{Ch: ch, Class: class}
		}
	}
	if p.TooSmall {
		put(0, 0, TooSmallText, ClassNeutral)
	}
	for _, g := range p.Glyphs {
		put(g.Row, g.Col, g.Text, g.Class)
	}
	put(p.Height-1, 0, p.Status, ClassNeutral)
	return grid
}

// Lines renders the grid without any styling.
func (p Plan) Lines() []string {
	cells := p.Cells()
	out := make([]string, len(cells))
	for y, row := range cells {
		rs := make([]rune, len(row))
		for x, c := range row {
			rs[x] = c.Ch
		}
		out[y] = string(rs)
	}
	return out
}
