package minefield

import "fmt"

// Position identifies a cell. X ranges over rows, Y over columns.
type Position struct {
	X, Y int
}

func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Compare orders positions row-major: Y first, then X.
func (p Position) Compare(o Position) int {
	switch {
	case p.Y < o.Y:
		return -1
	case p.Y > o.Y:
		return 1
	case p.X < o.X:
		return -1
	case p.X > o.X:
		return 1
	}
	return 0
}

// [Position] implements [fmt.Stringer]
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

var mooreOffsets = [8]Position{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
