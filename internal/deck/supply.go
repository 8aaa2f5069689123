// Package deck provides the shuffled card supplies the game draws from.
package deck

import "math/rand"

// Supply is a shuffled sequence of cards drawn from the front. When the
// supply runs out mid-draw it is reshuffled from the full source set, so a
// draw is always satisfiable. A reshuffle can reintroduce a card currently
// live in a hand; with a small source pool that is accepted behavior.
type Supply[C any] struct {
	source []C
	deck   []C
}

// NewSupply creates a supply seeded with a fresh shuffle of source.
func NewSupply[C any](source []C) *Supply[C] {
	s := &Supply[C]{source: source}
	s.reshuffle()
	return s
}

// Draw removes and returns n cards from the supply.
func (s *Supply[C]) Draw(n int) []C {
	drawn := make([]C, 0, n)
	for len(drawn) < n {
		if len(s.deck) == 0 {
			s.reshuffle()
		}
		take := n - len(drawn)
		if take > len(s.deck) {
			take = len(s.deck)
		}
		drawn = append(drawn, s.deck[:take]...)
		s.deck = s.deck[take:]
	}
	return drawn
}

// DrawOne removes and returns a single card.
func (s *Supply[C]) DrawOne() C {
	return s.Draw(1)[0]
}

// Remaining returns the number of cards left before the next reshuffle.
func (s *Supply[C]) Remaining() int {
	return len(s.deck)
}

// reshuffle rebuilds the deck as a uniform permutation of the source set.
func (s *Supply[C]) reshuffle() {
	s.deck = make([]C, len(s.source))
	copy(s.deck, s.source)
	rand.Shuffle(len(s.deck), func(i, j int) {
		s.deck[i], s.deck[j] = s.deck[j], s.deck[i]
	})
}
