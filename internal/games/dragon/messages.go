package dragon

import "math/rand"

// EncouragementPool is shown every few points.
var EncouragementPool = []string{
	"AMAZING!",
	"MARVELOUS!",
	"UNSTOPPABLE!",
	"KEYBOARD WIZARD!",
	"FRANTIC FLYING!",
}

// DeathPool is shown on the game over screen.
var DeathPool = []string{
	"OOF WE HEARD THAT IN THE STANDS",
	"YOU ARE GONNA FEEL THAT FOR AWHILE",
	"MAYBE DONT DO THAT NEXT TIME?",
	"SOMEONE CALL THE CLEAN UP CREW",
	"AH THE SATISFYING SOUND OF \"SPLAT\"",
}

// Picker draws messages uniformly from a pool.
type Picker struct {
	rng *rand.Rand
}

// NewPicker creates a picker using rng.
func NewPicker(rng *rand.Rand) Picker {
	return Picker{rng: rng}
}

// Pick returns a random element of pool, or "" for an empty pool.
func (p Picker) Pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[p.rng.Intn(len(pool))]
}
