package deck

import "fmt"

// ParseError reports a card token whose rank or suit is not recognised.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid card %q: %s", e.Token, e.Reason)
}

// DeckIntegrityError reports a dealt card that is missing from the deck,
// which means the same card was dealt twice.
type DeckIntegrityError struct {
	Card Card
}

func (e *DeckIntegrityError) Error() string {
	return fmt.Sprintf("card %s is not in the deck (dealt more than once?)", e.Card)
}
