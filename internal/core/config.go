package core

import (
	"math/rand"
	"time"
)

// RuntimeConfig contains configuration passed to a game session at start.
type RuntimeConfig struct {
	Seed       int64   // RNG seed; 0 means seed from the current time
	Spawn4Prob float64 // Probability that a spawned tile is a 4
}

// NewRand returns a generator seeded from the config.
func (c RuntimeConfig) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
