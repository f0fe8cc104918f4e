package difficulty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vancomm/minefield/internal/minefield"
)

var ErrNotEditable = errors.New("difficulty is not editable")

type Difficulty struct {
	name     string
	editable bool
	params   minefield.Params
}

func Easy() *Difficulty {
	return &Difficulty{name: "easy", params: minefield.Params{Rows: 8, Columns: 8, MinesPercent: 16}}
}

func Experienced() *Difficulty {
	return &Difficulty{name: "experienced", params: minefield.Params{Rows: 16, Columns: 16, MinesPercent: 16}}
}

func Expert() *Difficulty {
	return &Difficulty{name: "expert", params: minefield.Params{Rows: 30, Columns: 16, MinesPercent: 21}}
}

// Custom returns an editable difficulty with every value clamped into the
// allowed range.
func Custom(rows, columns, minesPercent int) *Difficulty {
	d := &Difficulty{
		name:     "custom",
		editable: true,
		params:   minefield.Params{Rows: 8, Columns: 8, MinesPercent: 16},
	}
	d.SetRows(rows)
	d.SetColumns(columns)
	d.SetMinesPercent(minesPercent)
	return d
}

func Parse(name string) (*Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy", "beginner":
		return Easy(), nil
	case "experienced", "intermediate":
		return Experienced(), nil
	case "expert":
		return Expert(), nil
	case "custom":
		return Custom(0, 0, 0), nil
	}
	return nil, fmt.Errorf("unknown difficulty %q", name)
}

func (d *Difficulty) Name() string { return d.name }
func (d *Difficulty) Editable() bool { return d.editable }
func (d *Difficulty) Params() minefield.Params { return d.params }
func (d *Difficulty) Rows() int { return d.params.Rows }
func (d *Difficulty) Columns() int { return d.params.Columns }
func (d *Difficulty) MinesPercent() int { return d.params.MinesPercent }

func (d *Difficulty) SetRows(rows int) error {
	if !d.editable {
		return ErrNotEditable
	}
	d.params.Rows = Clamp(rows, minefield.MinRows, minefield.MaxRows)
	return nil
}

func (d *Difficulty) SetColumns(columns int) error {
	if !d.editable {
		return ErrNotEditable
	}
	d.params.Columns = Clamp(columns, minefield.MinColumns, minefield.MaxColumns)
	return nil
}

func (d *Difficulty) SetMinesPercent(percent int) error {
	if !d.editable {
		return ErrNotEditable
	}
	d.params.MinesPercent = Clamp(percent, minefield.MinMinesPercent, minefield.MaxMinesPercent)
	return nil
}

// [Difficulty] implements [fmt.Stringer]
func (d *Difficulty) String() string {
	return fmt.Sprintf("%s %dx%d@%d%%", d.name, d.params.Rows, d.params.Columns, d.params.MinesPercent)
}

func Clamp(value, lo, hi int) int {
	return min(max(value, lo), hi)
}
