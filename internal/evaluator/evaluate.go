package evaluator

import (
	"errors"
	"fmt"

	"github.com/lox/pokercarlo/internal/deck"
)

// ErrCardCount is returned when a hand is not made of 5 to 7 cards.
var ErrCardCount = errors.New("hand must contain 5 to 7 cards")

// Evaluate returns the best score among all 5-card combinations of cards.
// Card counts outside 5..7 score zero.
func Evaluate(cards []deck.Card) Score {
	if len(cards) < 5 || len(cards) > 7 {
		return 0
	}

	var best Score
	var five [5]deck.Card
	idx := [5]int{0, 1, 2, 3, 4}
	for {
		for i, j := range idx {
			five[i] = cards[j]
		}
		score := scoreFive(five[:])
		if score == StraightFlushScore {
			return score
		}
		if score > best {
			best = score
		}
		if !nextCombination(idx[:], len(cards)) {
			return best
		}
	}
}

// EvaluateChecked is Evaluate for callers that want a bad card count reported.
func EvaluateChecked(cards []deck.Card) (Score, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return 0, fmt.Errorf("%w, got %d", ErrCardCount, len(cards))
	}
	return Evaluate(cards), nil
}

// scoreFive scores one 5-card combination. Categories are tested strongest
// first; two pair must come after trips and full house since both satisfy it.
func scoreFive(five []deck.Card) Score {
	flush := IsFlush(five)
	straight := IsStraight(five)
	if flush && straight {
		return StraightFlushScore
	}

	kicker := Kickers(five)
	switch {
	case IsFourOfAKind(five):
		return Score(FourOfAKind) + Score(kicker)
	case IsFullHouse(five):
		return Score(FullHouse) + Score(kicker)
	case flush:
		return Score(Flush) + Score(kicker)
	case straight:
		return Score(Straight) + Score(straightKicker(five))
	case IsThreeOfAKind(five):
		return Score(ThreeOfAKind) + Score(kicker)
	case IsTwoPair(five):
		return Score(TwoPair) + Score(TwoPairScore(five))
	case IsPair(five):
		return Score(Pair) + Score(kicker)
	default:
		return Score(kicker)
	}
}

// nextCombination advances idx to the next k-subset of 0..n-1 in
// lexicographic order. It returns false after the last subset.
func nextCombination(idx []int, n int) bool {
	k := len(idx)
	i := k - 1
	for i >= 0 && idx[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	idx[i]++
	for j := i + 1; j < k; j++ {
		idx[j] = idx[j-1] + 1
	}
	return true
}
