package evaluator

import "github.com/lox/pokercarlo/internal/deck"

const (
	kickerWeight = 0.07
	kickerDecay  = 0.01
)

// Kickers packs the card ranks into a fraction below 1.0, highest rank first.
// Each following rank is weighted a hundred times less, so the encoding
// compares like the sorted rank list. The decay has to be re-derived if the
// rank range or card count ever grows.
func Kickers(cards []deck.Card) float64 {
	return packRanks(sortedRanks(cards))
}

// straightKicker is Kickers with the ace counted as one in a wheel, so A-2-3-4-5
// ranks below 2-3-4-5-6.
func straightKicker(cards []deck.Card) float64 {
	ranks := sortedRanks(cards)
	if isWheel(ranks) {
		ranks = append([]deck.Rank{1}, ranks[:4]...)
	}
	return packRanks(ranks)
}

// packRanks encodes ascending ranks, most significant last.
func packRanks(ranks []deck.Rank) float64 {
	weight := kickerWeight
	score := 0.0
	for i := len(ranks) - 1; i >= 0; i-- {
		score += weight * float64(ranks[i])
		weight *= kickerDecay
	}
	return score
}

// TwoPairScore weights the higher pair, then the lower pair, then the odd
// card. Ranks are walked from Ace down so the result does not depend on card
// order.
func TwoPairScore(cards []deck.Card) float64 {
	counts := rankCounts(cards)
	var pairs []deck.Rank
	var other deck.Rank
	for rank := deck.Ace; rank >= deck.Two; rank-- {
		switch {
		case counts[rank] >= 2:
			pairs = append(pairs, rank)
		case counts[rank] == 1:
			other = rank
		}
	}
	if len(pairs) < 2 {
		return 0
	}
	return float64(pairs[0])*kickerWeight +
		float64(pairs[1])*kickerWeight*kickerDecay +
		float64(other)*kickerWeight*kickerDecay*kickerDecay
}
