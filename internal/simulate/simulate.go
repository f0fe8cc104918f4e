package simulate

import (
	"context"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minefield/internal/minefield"
)

var Log = logrus.New()

type Options struct {
	Params  minefield.Params
	Games   int
	Workers int
	// Seed makes the run reproducible; game i uses PCG(Seed, i).
	// 0 picks a fresh base seed for every run.
	Seed uint64
}

type Report struct {
	Played   int
	Cleared  int
	Exploded int
	Moves    int
}

func (r Report) Fields() logrus.Fields {
	return logrus.Fields{
		"played":   r.Played,
		"cleared":  r.Cleared,
		"exploded": r.Exploded,
		"moves":    r.Moves,
	}
}

// Game is the result of one autoplayed minefield.
type Game struct {
	ID      string
	Outcome minefield.Outcome
	Moves   int
}

// Play reveals random undiscovered cells until the game ends.
func Play(params minefield.Params, r *rand.Rand) (Game, error) {
	m, err := minefield.New(params, r)
	if err != nil {
		return Game{}, err
	}
	g := Game{ID: uuid.NewString()}

	for !m.IsGameOver() {
		var hidden []minefield.Position
		for _, v := range m.Snapshot() {
			if v.State == minefield.Undiscovered {
				hidden = append(hidden, v.Position)
			}
		}
		if len(hidden) == 0 {
			return g, fmt.Errorf("game %s stuck: no undiscovered cells left", g.ID)
		}
		res := m.Reveal(hidden[r.IntN(len(hidden))])
		g.Moves++
		switch res {
		case minefield.Opened, minefield.WasMine, minefield.GameCleared:
		default:
			return g, fmt.Errorf("game %s: unexpected result %q", g.ID, res)
		}
	}
	g.Outcome = m.Outcome()

	Log.WithFields(logrus.Fields{
		"game":    g.ID,
		"outcome": g.Outcome.String(),
		"moves":   g.Moves,
	}).Debug("game finished")
	return g, nil
}

func baseSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return new(maphash.Hash).Sum64()
}

func gameRand(base uint64, i int) *rand.Rand {
	return rand.New(rand.NewPCG(base, uint64(i)))
}

// Run plays opts.Games independent games with at most opts.Workers in
// flight. Every minefield is owned by exactly one goroutine.
func Run(ctx context.Context, opts Options) (Report, error) {
	var (
		mu     sync.Mutex
		report Report
	)

	base := baseSeed(opts.Seed)
	g, gCtx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	for i := range opts.Games {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			r := gameRand(base, i)
			game, err := Play(opts.Params, r)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			report.Played++
			report.Moves += game.Moves
			switch game.Outcome {
			case minefield.Cleared:
				report.Cleared++
			case minefield.Exploded:
				report.Exploded++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	Log.WithFields(report.Fields()).Info("simulation finished")
	return report, nil
}
