package minefield

import (
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 2))
}

func countMines(g *Grid, ps []Position) (n int) {
	for _, p := range ps {
		if g.cell(p).content == Mine {
			n++
		}
	}
	return
}
