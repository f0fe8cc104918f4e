package minefield

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// TotalMines is floor(rows * columns * percent / 100).
func TotalMines(rows, columns, minesPercent int) int {
	return rows * columns * minesPercent / 100
}

// markAsMine turns the cell at p into a mine and bumps its neighbours.
// Returns false if the cell already was a mine.
func (g *Grid) markAsMine(p Position) bool {
	c := g.cell(p)
	if c.content == Mine {
		return false
	}
	c.content = Mine
	for _, n := range c.neighbours {
		g.cell(n).increaseNumber()
	}
	return true
}

type MinePlacer struct {
	r *rand.Rand
}

func NewMinePlacer(r *rand.Rand) *MinePlacer {
	assert(r != nil, "mine placer needs a random source")
	return &MinePlacer{r: r}
}

// Place shuffles all positions of g and mines the first total of them.
func (mp *MinePlacer) Place(g *Grid, total int) []Position {
	assert(0 <= total && total <= len(g.cells),
		"cannot place %d mines on %d cells", total, len(g.cells))

	positions := g.Positions()
	mp.r.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	mines := positions[:total]
	for _, p := range mines {
		if !g.markAsMine(p) {
			panic(AssertionError{"mine placed twice at " + p.String()})
		}
	}

	Log.WithFields(logrus.Fields{
		"rows":    g.rows,
		"columns": g.columns,
		"mines":   total,
	}).Debug("mines placed")

	return mines
}
