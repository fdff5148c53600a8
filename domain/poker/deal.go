package poker

import (
	"github.com/seven-draw/engine/domain/deck"
)

// HandSize is the number of cards dealt to each of the two players.
const HandSize = 7

// NewDeck returns the 52-card standard deck in its canonical order:
// suit-major, rank-minor ascending. Construction order is part of
// the determinism contract, since the shuffle permutes it in place.
func NewDeck() []Card {
	cards := make([]Card, 0, 52)
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, Card{suit: s, rank: r})
		}
	}
	return cards
}

// ShuffledDeck builds a standard deck and applies the seeded
// shuffle. Identical seeds yield identical orderings.
func ShuffledDeck(seed string) []Card {
	cards := NewDeck()
	deck.Shuffle(len(cards), seed, func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}

// Dealt is the partition of a shuffled deck at the start of a round:
// two seven-card hands and the reserve supplying draw replacements.
type Dealt struct {
	Player1 []Card
	Player2 []Card
	Reserve []Card
}

// DealHands shuffles a fresh deck with the given seed and deals the
// first seven cards to player 1, the next seven to player 2, leaving
// the remaining 38 as the reserve. The three groups are disjoint and
// together cover the whole deck.
func DealHands(seed string) Dealt {
	cards := ShuffledDeck(seed)
	return Dealt{
		Player1: cards[:HandSize],
		Player2: cards[HandSize : 2*HandSize],
		Reserve: cards[2*HandSize:],
	}
}

// ApplyDraw replaces each discarded hand position with the next
// unused reserve card, starting at cursor and consuming the reserve
// in the order discards are listed. Indices outside the hand and
// discards requested after the reserve runs out are skipped without
// error: a garbled or over-long discard request degrades to a
// partial redraw instead of aborting the round. The input hand is
// left untouched; ApplyDraw returns the new hand and the advanced
// cursor.
func ApplyDraw(hand []Card, discard []int, reserve []Card, cursor int) ([]Card, int) {
	next := make([]Card, len(hand))
	copy(next, hand)
	for _, idx := range discard {
		if idx < 0 || idx >= len(next) {
			continue
		}
		if cursor < 0 || cursor >= len(reserve) {
			continue
		}
		next[idx] = reserve[cursor]
		cursor++
	}
	return next, cursor
}
