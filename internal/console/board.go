package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/vancomm/minefield/internal/minefield"
)

// Board is the display copy of a minefield. It only ever holds views handed
// out by the engine and is kept current by applying each action's diff.
type Board struct {
	rows, columns int
	cells         map[minefield.Position]minefield.CellView
}

// Source is the part of a minefield the printer reads from.
type Source interface {
	Dimensions() (rows, columns int)
	Snapshot() []minefield.CellView
}

func NewBoard(src Source) *Board {
	rows, columns := src.Dimensions()
	b := &Board{
		rows:    rows,
		columns: columns,
		cells:   make(map[minefield.Position]minefield.CellView, rows*columns),
	}
	b.Apply(src.Snapshot())
	return b
}

func (b *Board) Apply(updated []minefield.CellView) {
	for _, v := range updated {
		b.cells[v.Position] = v
	}
}

func (b *Board) At(p minefield.Position) (minefield.CellView, bool) {
	v, ok := b.cells[p]
	return v, ok
}

func Symbol(v minefield.CellView) byte {
	switch v.State {
	case minefield.Undiscovered:
		return '#'
	case minefield.Flagged:
		return 'F'
	}
	switch {
	case v.Content == minefield.Mine:
		return '*'
	case v.Content == minefield.Empty:
		return '.'
	case v.Content.IsNumber():
		return byte('0' + v.Content.Count())
	default:
		return '?'
	}
}

// WriteTo prints one line per column index y, with x running left to right.
func (b *Board) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	sb.WriteString("   ")
	for x := range b.rows {
		fmt.Fprintf(&sb, "%d", x%10)
	}
	sb.WriteByte('\n')
	for y := range b.columns {
		fmt.Fprintf(&sb, "%2d ", y)
		for x := range b.rows {
			v, ok := b.cells[minefield.Pos(x, y)]
			if !ok {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteByte(Symbol(v))
		}
		sb.WriteByte('\n')
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// [Board] implements [fmt.Stringer]
func (b *Board) String() string {
	var sb strings.Builder
	_, _ = b.WriteTo(&sb) // strings.Builder never fails
	return sb.String()
}
