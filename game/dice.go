package game

import "golang.org/x/exp/rand"

const dieSides = 6

// Roller produces dice rolls for battle resolution. Injected into the
// resolver so tests can script exact rolls.
type Roller interface {
	Roll() int
}

type die struct {
	rng *rand.Rand
}

// NewDie returns a six-sided die backed by rng.
func NewDie(rng *rand.Rand) Roller {
	return &die{rng: rng}
}

func (d *die) Roll() int {
	return d.rng.Intn(dieSides) + 1
}
