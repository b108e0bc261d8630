package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/pokercarlo/internal/deck"
)

func TestDetectors(t *testing.T) {
	tests := []struct {
		cards     string
		four      bool
		three     bool
		pair      bool
		twoPair   bool
		fullHouse bool
		flush     bool
		straight  bool
	}{
		{cards: "As Ah Ad Ac Kd", four: true, three: true, pair: true, twoPair: true},
		{cards: "Kh Kd Kc 2s 2d", three: true, pair: true, twoPair: true, fullHouse: true},
		{cards: "Qs Qd Qc 9h 4s", three: true, pair: true, twoPair: true},
		{cards: "Js Jd 4c 4h Ad", pair: true, twoPair: true},
		{cards: "Ts Td Ac Kh 8s", pair: true},
		{cards: "Ah Jh 9h 6h 3h", flush: true},
		{cards: "Ts 9d 8c 7h 6s", straight: true},
		{cards: "9s 8s 7s 6s 5s", flush: true, straight: true},
		{cards: "As Kd 9c 5h 2s"},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			cards := deck.MustParseCards(tt.cards)
			assert.Equal(t, tt.four, IsFourOfAKind(cards), "IsFourOfAKind")
			assert.Equal(t, tt.three, IsThreeOfAKind(cards), "IsThreeOfAKind")
			assert.Equal(t, tt.pair, IsPair(cards), "IsPair")
			assert.Equal(t, tt.twoPair, IsTwoPair(cards), "IsTwoPair")
			assert.Equal(t, tt.fullHouse, IsFullHouse(cards), "IsFullHouse")
			assert.Equal(t, tt.flush, IsFlush(cards), "IsFlush")
			assert.Equal(t, tt.straight, IsStraight(cards), "IsStraight")
		})
	}
}

func TestIsStraight(t *testing.T) {
	tests := []struct {
		cards string
		want  bool
	}{
		{"Ts Jd Qc Kh As", true},
		{"As 2d 3c 4h 5s", true},
		{"5s 3d As 4h 2c", true},
		{"2s 3d 4c 5h 6s", true},
		// an ace on top does not complete a straight by itself
		{"9s Jd Qc Kh As", false},
		{"2s 3d 4c 6h As", false},
		{"Ks As 2d 3c 4h", false},
		{"2s 3d 4c 5h 7s", false},
		{"5s 5d 6c 7h 8s", false},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStraight(deck.MustParseCards(tt.cards)))
		})
	}
}

func TestKickers(t *testing.T) {
	got := Kickers(deck.MustParseCards("2s 9c As 5h Kd"))
	want := 14*0.07 + 13*0.0007 + 9*0.000007 + 5*0.00000007 + 2*0.0000000007
	assert.InDelta(t, want, got, 1e-12)
	assert.Less(t, Kickers(deck.MustParseCards("As Ad Ah Ac Kd")), 1.0)
}

func TestTwoPairScore(t *testing.T) {
	want := 13*0.07 + 5*0.0007 + 14*0.000007
	for _, cards := range []string{"Kh Kd 5s 5c Ah", "5s Ah Kh 5c Kd", "Ah 5c 5s Kd Kh"} {
		assert.InDelta(t, want, TwoPairScore(deck.MustParseCards(cards)), 1e-12, cards)
	}
	assert.Zero(t, TwoPairScore(deck.MustParseCards("Kh Kd 5s 4c Ah")))
}
