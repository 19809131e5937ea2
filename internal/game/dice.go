package game

import "math/rand"

// Roll is the outcome of throwing two six-sided dice.
type Roll struct {
	Die1 int
	Die2 int
}

// Sum returns the total shown by both dice.
func (r Roll) Sum() int {
	return r.Die1 + r.Die2
}

// IsDouble reports whether both dice show the same face.
func (r Roll) IsDouble() bool {
	return r.Die1 == r.Die2
}

// dice draws rolls from the game's single random stream. Call order matters
// for reproducibility, so the roller is never shared between games.
type dice struct {
	rng *rand.Rand
}

func (d dice) roll() Roll {
	return Roll{Die1: d.rng.Intn(6) + 1, Die2: d.rng.Intn(6) + 1}
}
