package montecarlo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTrials is returned when fewer than one trial is requested.
	ErrInvalidTrials = errors.New("trials must be at least 1")

	// ErrCommunitySize is returned when more than five community cards are given.
	ErrCommunitySize = errors.New("community must hold at most 5 cards")
)

// SamplingExhaustionError reports a board that needs more cards than the
// deck has left.
type SamplingExhaustionError struct {
	Needed    int
	Available int
}

func (e *SamplingExhaustionError) Error() string {
	return fmt.Sprintf("need %d cards to complete the board but only %d remain", e.Needed, e.Available)
}

func checkDrawable(needed, available int) error {
	if needed > available {
		return &SamplingExhaustionError{Needed: needed, Available: available}
	}
	return nil
}
