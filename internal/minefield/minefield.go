package minefield

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

const (
	MinRows         = 8
	MaxRows         = 30
	MinColumns      = 8
	MaxColumns      = 24
	MinMinesPercent = 16
	MaxMinesPercent = 93
)

type Params struct {
	Rows, Columns, MinesPercent int
}

func (p Params) TotalMines() int {
	return TotalMines(p.Rows, p.Columns, p.MinesPercent)
}

func (p Params) Fields() logrus.Fields {
	return logrus.Fields{
		"rows":          p.Rows,
		"columns":       p.Columns,
		"mines_percent": p.MinesPercent,
	}
}

// Minefield is a single game. It is not safe for concurrent use; callers
// sharing one must serialise every call.
type Minefield struct {
	grid          *Grid
	totalMines    int
	freeCellsLeft int
	placedFlags   int
	gameOver      bool
	outcome       Outcome
	updated       positionSet
}

// New builds a field with randomly placed mines. Params must already be
// within bounds; they are checked, not clamped.
func New(params Params, r *rand.Rand) (field *Minefield, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var ae AssertionError
			if e, ok := rec.(error); ok && errors.As(e, &ae) {
				field, err = nil, fmt.Errorf("unable to create minefield: %w", ae)
				return
			}
			panic(rec)
		}
	}()

	rows, columns, percent := params.Rows, params.Columns, params.MinesPercent
	assert(MinRows <= rows && rows <= MaxRows,
		"rows %d not within [%d, %d]", rows, MinRows, MaxRows)
	assert(MinColumns <= columns && columns <= MaxColumns,
		"columns %d not within [%d, %d]", columns, MinColumns, MaxColumns)
	assert(MinMinesPercent <= percent && percent <= MaxMinesPercent,
		"mines percent %d not within [%d, %d]", percent, MinMinesPercent, MaxMinesPercent)

	field = newEmpty(rows, columns, params.TotalMines())
	NewMinePlacer(r).Place(field.grid, field.totalMines)

	Log.WithFields(params.Fields()).WithField("mines", field.totalMines).Debug("minefield created")
	return field, nil
}

// newWithMines builds a field of any size with mines at the given positions.
func newWithMines(rows, columns int, mines ...Position) *Minefield {
	m := newEmpty(rows, columns, len(mines))
	for _, p := range mines {
		assert(m.grid.markAsMine(p), "duplicate mine at %s", p)
	}
	return m
}

func newEmpty(rows, columns, totalMines int) *Minefield {
	grid := newGrid(rows, columns)
	assert(0 <= totalMines && totalMines <= len(grid.cells),
		"cannot place %d mines on %d cells", totalMines, len(grid.cells))
	return &Minefield{
		grid:          grid,
		totalMines:    totalMines,
		freeCellsLeft: len(grid.cells) - totalMines,
		updated:       make(positionSet),
	}
}

func (m *Minefield) Grid() *Grid { return m.grid }
func (m *Minefield) Rows() int { return m.grid.rows }
func (m *Minefield) Columns() int { return m.grid.columns }
func (m *Minefield) TotalMines() int { return m.totalMines }
func (m *Minefield) FlagCount() int { return m.placedFlags }
func (m *Minefield) FreeCellsLeft() int { return m.freeCellsLeft }
func (m *Minefield) IsGameOver() bool { return m.gameOver }
func (m *Minefield) Outcome() Outcome { return m.outcome }
func (m *Minefield) IsValid(p Position) bool { return m.grid.IsValid(p) }

func (m *Minefield) Dimensions() (rows, columns int) {
	return m.grid.rows, m.grid.columns
}

// begin runs the guards shared by every action and resets the diff.
func (m *Minefield) begin(p Position) (*cell, ActionResult, bool) {
	if m.gameOver {
		return nil, GameAlreadyOver, false
	}
	if !m.grid.IsValid(p) {
		return nil, NotValid, false
	}
	clear(m.updated)
	return m.grid.cell(p), Failed, true
}

func (m *Minefield) Reveal(p Position) ActionResult {
	c, res, ok := m.begin(p)
	if !ok {
		return res
	}

	switch c.state {
	case Open:
		return AlreadyOpen
	case Flagged:
		return WasFlagged
	case Undiscovered:
		if c.content == Mine {
			m.setGameOver(Exploded)
			return WasMine
		}
		return m.consume(m.grid.open(p, m.updated))
	}
	panic(AssertionError{fmt.Sprintf("cell %s in unknown state %d", p, c.state)})
}

func (m *Minefield) ToggleFlag(p Position) ActionResult {
	c, res, ok := m.begin(p)
	if !ok {
		return res
	}

	switch c.state {
	case Open:
		return AlreadyOpen
	case Flagged:
		c.state = Undiscovered
		m.placedFlags--
		m.updated.add(p)
		return FlagRemoved
	case Undiscovered:
		c.state = Flagged
		m.placedFlags++
		m.updated.add(p)
		return NowFlagged
	}
	panic(AssertionError{fmt.Sprintf("cell %s in unknown state %d", p, c.state)})
}

// Chord opens every undiscovered neighbour of an open number cell once the
// player has flagged as many neighbours as the number says.
func (m *Minefield) Chord(p Position) ActionResult {
	c, res, ok := m.begin(p)
	if !ok {
		return res
	}

	switch c.state {
	case Flagged:
		return WasFlagged
	case Undiscovered:
		return Failed
	case Open:
	default:
		panic(AssertionError{fmt.Sprintf("cell %s in unknown state %d", p, c.state)})
	}

	if c.content == Empty || !c.content.IsNumber() {
		return Failed
	}

	flags := 0
	targets := make([]Position, 0, len(c.neighbours))
	for _, n := range c.neighbours {
		switch m.grid.cell(n).state {
		case Flagged:
			flags++
		case Undiscovered:
			targets = append(targets, n)
		}
	}
	if flags != c.content.Count() || len(targets) == 0 {
		return Failed
	}

	for _, t := range targets {
		if m.grid.cell(t).content == Mine {
			m.setGameOver(Exploded)
			return WasMine
		}
	}

	opened := 0
	for _, t := range targets {
		opened += m.grid.open(t, m.updated)
	}
	return m.consume(opened)
}

// consume books newly opened cells against freeCellsLeft.
func (m *Minefield) consume(opened int) ActionResult {
	assert(opened > 0, "reveal opened no cells")
	assert(opened <= m.freeCellsLeft,
		"opened %d cells with only %d free cells left", opened, m.freeCellsLeft)

	m.freeCellsLeft -= opened
	if m.freeCellsLeft > 0 {
		return Opened
	}
	m.setGameOver(Cleared)
	return GameCleared
}

// setGameOver ends the game and opens every cell for the final display.
func (m *Minefield) setGameOver(outcome Outcome) {
	m.gameOver = true
	m.outcome = outcome
	clear(m.updated)
	for i := range m.grid.cells {
		c := &m.grid.cells[i]
		c.state = Open
		m.updated.add(c.pos)
	}

	Log.WithFields(logrus.Fields{
		"outcome":         outcome.String(),
		"free_cells_left": m.freeCellsLeft,
		"flags":           m.placedFlags,
	}).Debug("game over")
}
