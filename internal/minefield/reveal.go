package minefield

import "slices"

// positionSet collects the cells touched by a single action. Membership is
// by position, so the state of a cell at insertion time does not matter.
type positionSet map[Position]struct{}

func (s positionSet) add(p Position) {
	s[p] = struct{}{}
}

func (s positionSet) sorted() []Position {
	out := make([]Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.SortFunc(out, Position.Compare)
	return out
}

// open reveals p and, if it is empty, floods through its neighbours.
// Cells that are not undiscovered (open or flagged) stop the flood.
// Returns the number of cells that went from undiscovered to open.
//
// panics [AssertionError]
func (g *Grid) open(p Position, collector positionSet) int {
	assert(collector != nil, "open: collector is nil")

	c := g.cell(p)
	if c.state != Undiscovered {
		return 0
	}
	c.state = Open
	collector.add(p)

	opened := 1
	if c.content == Empty {
		for _, n := range c.neighbours {
			opened += g.open(n, collector)
		}
	}
	return opened
}
