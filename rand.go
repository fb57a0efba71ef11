package persona

import (
	"math/rand"
	"time"
)

// Rand is the source of every random draw in the signal model.  *rand.Rand
// satisfies it; tests inject fixed sequences.
type Rand interface {
	Float64() float64
}

func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// centered returns a draw in [-0.5, 0.5).
func centered(r Rand) float64 { return r.Float64() - 0.5 }
