package evaluator

import (
	"fmt"

	poker "github.com/paulhankin/poker"

	"github.com/lox/pokercarlo/internal/deck"
)

// Engine names accepted by New.
const (
	EngineKicker = "kicker"
	EngineLookup = "lookup"
)

// Engine scores a 5-7 card hand. Higher is stronger; only comparisons between
// values from the same engine are meaningful.
type Engine interface {
	Strength(cards []deck.Card) float64
}

// New returns the engine registered under name.
func New(name string) (Engine, error) {
	switch name {
	case "", EngineKicker:
		return Kicker{}, nil
	case EngineLookup:
		return Lookup{}, nil
	default:
		return nil, fmt.Errorf("unknown evaluator engine %q (want %q or %q)", name, EngineKicker, EngineLookup)
	}
}

// Kicker scores hands with Evaluate.
type Kicker struct{}

func (Kicker) Strength(cards []deck.Card) float64 {
	return float64(Evaluate(cards))
}

// Lookup scores hands with the paulhankin/poker lookup tables, which rank
// every hand by standard poker rules.
type Lookup struct{}

func (Lookup) Strength(cards []deck.Card) float64 {
	pcs := make([]poker.Card, len(cards))
	for i, c := range cards {
		pcs[i] = toLookupCard(c)
	}

	switch len(pcs) {
	case 7:
		var a7 [7]poker.Card
		copy(a7[:], pcs)
		return float64(poker.Eval7(&a7))
	case 5:
		var a5 [5]poker.Card
		copy(a5[:], pcs)
		return float64(poker.Eval5(&a5))
	case 6:
		return float64(bestOfFiveSubsets(pcs))
	default:
		return 0
	}
}

// Describe names a 5 or 7 card hand, e.g. "pair of queens".
func (Lookup) Describe(cards []deck.Card) (string, error) {
	pcs := make([]poker.Card, len(cards))
	for i, c := range cards {
		pcs[i] = toLookupCard(c)
	}
	return poker.Describe(pcs)
}

func bestOfFiveSubsets(pcs []poker.Card) int16 {
	var best int16
	first := true
	var five [5]poker.Card
	idx := [5]int{0, 1, 2, 3, 4}
	for {
		for i, j := range idx {
			five[i] = pcs[j]
		}
		if score := poker.Eval5(&five); first || score > best {
			best = score
			first = false
		}
		if !nextCombination(idx[:], len(pcs)) {
			return best
		}
	}
}

// toLookupCard converts to the library card. Library ranks run 1..13 with the
// ace as 1.
func toLookupCard(c deck.Card) poker.Card {
	var s poker.Suit
	switch c.Suit {
	case deck.Clubs:
		s = poker.Club
	case deck.Diamonds:
		s = poker.Diamond
	case deck.Hearts:
		s = poker.Heart
	default:
		s = poker.Spade
	}
	r := poker.Rank(c.Rank)
	if c.Rank == deck.Ace {
		r = poker.Rank(1)
	}
	card, _ := poker.MakeCard(s, r)
	return card
}
