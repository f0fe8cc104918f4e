package minefield

// Grid owns every cell of a field, stored row-major in a flat slice.
// Neighbours are kept as positions and always resolved through the grid.
type Grid struct {
	rows, columns int
	cells         []cell
}

func newGrid(rows, columns int) *Grid {
	assert(rows > 0 && columns > 0, "bad grid dimensions %dx%d", rows, columns)

	g := &Grid{
		rows:    rows,
		columns: columns,
		cells:   make([]cell, rows*columns),
	}
	for y := range columns {
		for x := range rows {
			p := Pos(x, y)
			g.cells[g.index(p)] = *newCell(p)
		}
	}
	for i := range g.cells {
		c := &g.cells[i]
		c.neighbours = g.buildNeighbourhood(c.pos)
		assert(len(c.neighbours) > 0, "cell %s has no neighbours", c.pos)
	}
	return g
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Columns() int { return g.columns }

func (g *Grid) IsValid(p Position) bool {
	return 0 <= p.X && p.X < g.rows && 0 <= p.Y && p.Y < g.columns
}

func (g *Grid) index(p Position) int {
	return p.Y*g.rows + p.X
}

// panics [AssertionError]
func (g *Grid) cell(p Position) *cell {
	assert(g.IsValid(p), "position %s is outside of the grid", p)
	return &g.cells[g.index(p)]
}

/*
buildNeighbourhood returns the Moore neighbourhood of p clipped to the grid:

	tl t tr
	l  p  r
	bl b br

Corners get 3 neighbours, borders 5, everything else 8.
*/
func (g *Grid) buildNeighbourhood(p Position) []Position {
	neighbours := make([]Position, 0, len(mooreOffsets))
	for _, off := range mooreOffsets {
		n := Pos(p.X+off.X, p.Y+off.Y)
		if g.IsValid(n) {
			neighbours = append(neighbours, n)
		}
	}
	return neighbours
}

// Neighbours returns a copy of the fixed neighbour set of p, or nil if p is
// not on the grid.
func (g *Grid) Neighbours(p Position) []Position {
	if !g.IsValid(p) {
		return nil
	}
	c := g.cell(p)
	out := make([]Position, len(c.neighbours))
	copy(out, c.neighbours)
	return out
}

// Positions lists every position in row-major order.
func (g *Grid) Positions() []Position {
	out := make([]Position, len(g.cells))
	for i := range g.cells {
		out[i] = g.cells[i].pos
	}
	return out
}
