package montecarlo

import (
	rand "math/rand/v2"

	"github.com/lox/pokercarlo/internal/deck"
)

// sampleInto fills dst with len(dst) distinct cards chosen uniformly from pool
// using a partial Fisher-Yates shuffle. pool is reordered in place; any
// starting order yields a uniform draw.
func sampleInto(dst []deck.Card, pool []deck.Card, rng *rand.Rand) {
	n := len(pool)
	for i := range dst {
		j := i + rng.IntN(n-i)
		pool[i], pool[j] = pool[j], pool[i]
		dst[i] = pool[i]
	}
}
