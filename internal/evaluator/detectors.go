package evaluator

import (
	"slices"

	"github.com/lox/pokercarlo/internal/deck"
)

// The detectors below each look at one 5-card combination.

// rankCounts tallies how many cards of each rank are present.
func rankCounts(cards []deck.Card) [deck.Ace + 1]int {
	var counts [deck.Ace + 1]int
	for _, c := range cards {
		counts[c.Rank]++
	}
	return counts
}

func hasRankCount(cards []deck.Card, n int) bool {
	for _, count := range rankCounts(cards) {
		if count >= n {
			return true
		}
	}
	return false
}

// IsFourOfAKind reports whether four of the cards share a rank.
func IsFourOfAKind(cards []deck.Card) bool {
	return hasRankCount(cards, 4)
}

// IsThreeOfAKind reports whether three of the cards share a rank.
func IsThreeOfAKind(cards []deck.Card) bool {
	return hasRankCount(cards, 3)
}

// IsPair reports whether two of the cards share a rank.
func IsPair(cards []deck.Card) bool {
	return hasRankCount(cards, 2)
}

// pairCount counts every 2-card subset whose cards share a rank. Trips count
// three times and quads six times.
func pairCount(cards []deck.Card) int {
	n := 0
	for _, count := range rankCounts(cards) {
		n += count * (count - 1) / 2
	}
	return n
}

// IsTwoPair reports whether at least two same-rank 2-card subsets exist.
// Trips and quads satisfy it too, so callers test those categories first.
func IsTwoPair(cards []deck.Card) bool {
	return pairCount(cards) > 1
}

// IsFullHouse reports whether some three cards are of a kind and the other
// two form a pair.
func IsFullHouse(cards []deck.Card) bool {
	if len(cards) != 5 {
		return false
	}
	trips, pair := false, false
	for _, count := range rankCounts(cards) {
		switch count {
		case 3:
			trips = true
		case 2:
			pair = true
		}
	}
	return trips && pair
}

// IsFlush reports whether every card has the same suit.
func IsFlush(cards []deck.Card) bool {
	if len(cards) == 0 {
		return false
	}
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// IsStraight reports whether the five ranks are consecutive. The ace also
// plays low in the wheel A-2-3-4-5.
func IsStraight(cards []deck.Card) bool {
	if len(cards) != 5 {
		return false
	}
	ranks := sortedRanks(cards)
	if isWheel(ranks) {
		return true
	}
	for i := 0; i < len(ranks)-1; i++ {
		if ranks[i+1]-ranks[i] != 1 {
			return false
		}
	}
	return true
}

// isWheel reports whether ascending ranks are exactly 2-3-4-5-A.
func isWheel(ranks []deck.Rank) bool {
	return len(ranks) == 5 && ranks[0] == deck.Two && ranks[1] == deck.Three &&
		ranks[2] == deck.Four && ranks[3] == deck.Five && ranks[4] == deck.Ace
}

// sortedRanks returns the ranks of cards in ascending order.
func sortedRanks(cards []deck.Card) []deck.Rank {
	ranks := make([]deck.Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	slices.Sort(ranks)
	return ranks
}
