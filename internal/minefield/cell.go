package minefield

import "strconv"

// CellContent is Unknown, Mine, or a neighbouring mine count 0..8.
type CellContent int8

const (
	Unknown   CellContent = -2
	Mine      CellContent = -1
	Empty     CellContent = 0
	maxNumber CellContent = 8
)

func Number(n int) CellContent {
	assert(0 <= n && n <= int(maxNumber), "number %d out of range", n)
	return CellContent(n)
}

func (c CellContent) IsNumber() bool {
	return Empty <= c && c <= maxNumber
}

// Count returns the neighbouring mine count, or -1 if c is not a number.
func (c CellContent) Count() int {
	if !c.IsNumber() {
		return -1
	}
	return int(c)
}

// [CellContent] implements [fmt.Stringer]
func (c CellContent) String() string {
	switch {
	case c == Unknown:
		return "unknown"
	case c == Mine:
		return "mine"
	case c.IsNumber():
		return strconv.Itoa(int(c))
	default:
		return "!"
	}
}

type CellState uint8

const (
	Undiscovered CellState = iota
	Open
	Flagged
)

// [CellState] implements [fmt.Stringer]
func (s CellState) String() string {
	switch s {
	case Undiscovered:
		return "undiscovered"
	case Open:
		return "open"
	case Flagged:
		return "flagged"
	default:
		return "!"
	}
}

type cell struct {
	pos        Position
	content    CellContent
	state      CellState
	neighbours []Position
}

func newCell(p Position) *cell {
	return &cell{pos: p, content: Empty, state: Undiscovered}
}

// increaseNumber bumps the mine count. Mines and cells at 8 are left alone.
func (c *cell) increaseNumber() {
	if c.content == Mine || c.content == maxNumber {
		return
	}
	c.content++
}
