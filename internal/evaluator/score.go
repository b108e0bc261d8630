package evaluator

// Score is the strength of a hand. Higher values are stronger. The integer
// part is the category tier and the fractional part is the kicker encoding,
// which stays below 1.0 for ranks up to 14. A straight flush is the fixed
// sentinel StraightFlushScore.
type Score float64

// StraightFlushScore beats every other score.
const StraightFlushScore Score = 9999

// Category enumerates hand categories ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Category returns the tier encoded in the score.
func (s Score) Category() Category {
	switch {
	case s >= StraightFlushScore:
		return StraightFlush
	case s < 0:
		return HighCard
	case s >= Score(StraightFlush):
		return FourOfAKind
	default:
		return Category(int(s))
	}
}

// Kicker returns the fractional tie-break part of the score.
func (s Score) Kicker() float64 {
	if s >= StraightFlushScore {
		return 0
	}
	return float64(s) - float64(int(s))
}

// String returns the category name of the score.
func (s Score) String() string {
	return s.Category().String()
}

// Compare returns 1 if s wins, -1 if other wins and 0 for a tie.
func (s Score) Compare(other Score) int {
	switch {
	case s > other:
		return 1
	case s < other:
		return -1
	default:
		return 0
	}
}
