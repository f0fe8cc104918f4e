package minefield

// CellView is a detached copy of a cell for rendering. Content is Unknown
// unless the cell is open.
type CellView struct {
	Position
	State   CellState
	Content CellContent
}

func (c *cell) view() CellView {
	v := CellView{Position: c.pos, State: c.state, Content: Unknown}
	if c.state == Open {
		v.Content = c.content
	}
	return v
}

// Snapshot returns a view of every cell in row-major order.
func (m *Minefield) Snapshot() []CellView {
	out := make([]CellView, len(m.grid.cells))
	for i := range m.grid.cells {
		out[i] = m.grid.cells[i].view()
	}
	return out
}

// UpdatedCells returns the cells changed by the most recent action, in
// row-major order.
func (m *Minefield) UpdatedCells() []CellView {
	positions := m.updated.sorted()
	out := make([]CellView, len(positions))
	for i, p := range positions {
		out[i] = m.grid.cell(p).view()
	}
	return out
}

func (m *Minefield) CellAt(p Position) (CellView, bool) {
	if !m.grid.IsValid(p) {
		return CellView{}, false
	}
	return m.grid.cell(p).view(), true
}
