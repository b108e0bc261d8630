package deck

import (
	"fmt"
	"strings"
)

// ParseCard parses a single card token such as "Ah", "Ts" or "10s".
// Rank and suit symbols are case-insensitive.
func ParseCard(token string) (Card, error) {
	card, n, err := scanCard(token, 0)
	if err != nil {
		return Card{}, err
	}
	if n != len(token) {
		return Card{}, &ParseError{Token: token, Reason: "trailing characters"}
	}
	return card, nil
}

// ParseCards parses a list of cards. Tokens may be separated by spaces or
// commas, or written back to back: "Ah 10s", "Ah,10s" and "Ah10s" are equal.
func ParseCards(s string) ([]Card, error) {
	cards := []Card{}
	for _, field := range strings.FieldsFunc(s, isSeparator) {
		for i := 0; i < len(field); {
			card, n, err := scanCard(field, i)
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
			i += n
		}
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// ParseHand parses exactly two cards into a Hand
func ParseHand(s string) (Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Hand{}, err
	}
	if len(cards) != 2 {
		return Hand{}, fmt.Errorf("hand %q must contain exactly 2 cards, got %d", s, len(cards))
	}
	return Hand{cards[0], cards[1]}, nil
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(s string) Hand {
	hand, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return hand
}

func isSeparator(r rune) bool {
	return r == ' ' || r == ',' || r == '\t' || r == '\n'
}

// scanCard reads one card starting at s[i] and returns it with the number of
// bytes consumed.
func scanCard(s string, i int) (Card, int, error) {
	rankLen := 1
	if i+1 < len(s) && s[i] == '1' && s[i+1] == '0' {
		rankLen = 2
	}
	if i+rankLen >= len(s) {
		return Card{}, 0, &ParseError{Token: s[i:], Reason: "missing suit"}
	}
	token := s[i : i+rankLen+1]

	rank, ok := parseRank(s[i : i+rankLen])
	if !ok {
		return Card{}, 0, &ParseError{Token: token, Reason: fmt.Sprintf("unknown rank %q", s[i:i+rankLen])}
	}
	suit, ok := parseSuit(s[i+rankLen])
	if !ok {
		return Card{}, 0, &ParseError{Token: token, Reason: fmt.Sprintf("unknown suit '%c'", s[i+rankLen])}
	}
	return Card{Suit: suit, Rank: rank}, rankLen + 1, nil
}

func parseRank(s string) (Rank, bool) {
	switch strings.ToUpper(s) {
	case "A":
		return Ace, true
	case "K":
		return King, true
	case "Q":
		return Queen, true
	case "J":
		return Jack, true
	case "T", "10":
		return Ten, true
	case "9":
		return Nine, true
	case "8":
		return Eight, true
	case "7":
		return Seven, true
	case "6":
		return Six, true
	case "5":
		return Five, true
	case "4":
		return Four, true
	case "3":
		return Three, true
	case "2":
		return Two, true
	default:
		return 0, false
	}
}

func parseSuit(c byte) (Suit, bool) {
	switch c {
	case 's', 'S':
		return Spades, true
	case 'h', 'H':
		return Hearts, true
	case 'd', 'D':
		return Diamonds, true
	case 'c', 'C':
		return Clubs, true
	default:
		return 0, false
	}
}
