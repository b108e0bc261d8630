package deck

// CardSet represents a set of cards using a bitset for fast operations
// Each card maps to a bit: index = (rank-2)*4 + suit
type CardSet uint64

// cardIndex converts a card to its bit index (0-51)
func cardIndex(card Card) int {
	return int(card.Rank-Two)*4 + int(card.Suit)
}

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << cardIndex(card)
}

// Remove removes a card from the set
func (cs *CardSet) Remove(card Card) {
	*cs &^= 1 << cardIndex(card)
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<cardIndex(card)) != 0
}

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards []Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

// Deck is the residual pool of undealt cards. It never holds a duplicate.
type Deck struct {
	cards   []Card
	present CardSet
}

// NewDeck creates a new standard 52-card deck ordered by suit then rank
func NewDeck() *Deck {
	d := &Deck{cards: make([]Card, 0, 52)}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := NewCard(suit, rank)
			d.cards = append(d.cards, card)
			d.present.Add(card)
		}
	}
	return d
}

// BuildDeck returns the full deck minus every card held in hands or on the
// board. A card that cannot be removed yields a *DeckIntegrityError.
func BuildDeck(hands []Hand, community []Card) (*Deck, error) {
	d := NewDeck()
	for _, hand := range hands {
		for _, card := range hand {
			if err := d.Remove(card); err != nil {
				return nil, err
			}
		}
	}
	for _, card := range community {
		if err := d.Remove(card); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Remove takes card out of the deck, preserving the order of the rest.
func (d *Deck) Remove(card Card) error {
	if !card.Rank.Valid() || card.Suit < Spades || card.Suit > Clubs || !d.present.Contains(card) {
		return &DeckIntegrityError{Card: card}
	}
	for i, c := range d.cards {
		if c == card {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			break
		}
	}
	d.present.Remove(card)
	return nil
}

// Contains reports whether card is still in the deck
func (d *Deck) Contains(card Card) bool {
	if !card.Rank.Valid() || card.Suit < Spades || card.Suit > Clubs {
		return false
	}
	return d.present.Contains(card)
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns the remaining cards. The slice is shared with the deck and must
// not be modified; copy it before shuffling.
func (d *Deck) Cards() []Card {
	return d.cards
}
