package difficulty

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minefield/internal/minefield"
)

var Log = logrus.New()

// NewRand seeds a generator from seed, or from runtime entropy when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Creator builds minefields for the currently selected difficulty.
type Creator struct {
	current *Difficulty
	r       *rand.Rand
}

func NewCreator(r *rand.Rand) *Creator {
	return &Creator{current: Easy(), r: r}
}

func (c *Creator) SetDifficulty(d *Difficulty) {
	if d == nil {
		d = Easy()
	}
	c.current = d
}

func (c *Creator) Current() *Difficulty {
	return c.current
}

func (c *Creator) Create() (*minefield.Minefield, error) {
	Log.WithFields(c.current.Params().Fields()).
		WithField("difficulty", c.current.Name()).
		Debug("creating game")
	return minefield.New(c.current.Params(), c.r)
}

func (c *Creator) NewBeginnerGame() (*minefield.Minefield, error) {
	return minefield.New(Easy().Params(), c.r)
}

func (c *Creator) NewExperiencedGame() (*minefield.Minefield, error) {
	return minefield.New(Experienced().Params(), c.r)
}

func (c *Creator) NewExpertGame() (*minefield.Minefield, error) {
	return minefield.New(Expert().Params(), c.r)
}

func (c *Creator) NewCustomGame(rows, columns, minesPercent int) (*minefield.Minefield, error) {
	return minefield.New(Custom(rows, columns, minesPercent).Params(), c.r)
}
