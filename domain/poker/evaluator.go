package poker

import (
	"errors"
	"fmt"
	"sort"
)

// Hand category ranks, higher is better.
const (
	HighCard = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var categoryNames = [...]string{
	"",
	"High Card",
	"Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
	"Royal Flush",
}

// ErrInsufficientCards reports an evaluation request carrying fewer
// than five cards.
var ErrInsufficientCards = errors.New("insufficient cards")

// HandResult is the evaluated classification of a card set: the
// category rank (1-10, higher is better), its display name, the five
// cards substantiating the category (primary grouping first, kickers
// descending), and the ordered tie-break keys compared when two
// hands share a category. HandResult values are immutable outputs;
// the engine never reuses or mutates them after evaluation.
type HandResult struct {
	Rank      int
	Name      string
	Cards     []Card
	HighCards []int
}

// Evaluate classifies a set of at least five cards into its best
// poker category. Categories are probed from royal flush down to
// high card and the first match wins, which keeps them mutually
// exclusive: a flush that is also a straight is reported as a
// straight or royal flush, never as a plain flush.
func Evaluate(cards []Card) (HandResult, error) {
	if len(cards) < 5 {
		return HandResult{}, fmt.Errorf("%w: got %d, need at least 5", ErrInsufficientCards, len(cards))
	}

	sorted := sortedByValue(cards)

	if r, ok := straightFlush(sorted); ok {
		return r, nil
	}
	if r, ok := fourOfAKind(sorted); ok {
		return r, nil
	}
	if r, ok := fullHouse(sorted); ok {
		return r, nil
	}
	if r, ok := flush(sorted); ok {
		return r, nil
	}
	if r, ok := straight(sorted); ok {
		return r, nil
	}
	if r, ok := threeOfAKind(sorted); ok {
		return r, nil
	}
	if r, ok := twoPair(sorted); ok {
		return r, nil
	}
	if r, ok := onePair(sorted); ok {
		return r, nil
	}
	return highCard(sorted), nil
}

// sortedByValue copies the cards in descending rank value. Ties
// break on suit so that the substantiating cards of a HandResult do
// not depend on the caller's input order.
func sortedByValue(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	sort.Slice(out, func(i, j int) bool {
		if out[i].rank != out[j].rank {
			return out[i].rank > out[j].rank
		}
		return out[i].suit > out[j].suit
	})
	return out
}

// ranksByCount returns the distinct ranks appearing at least min
// times, highest value first. Input must be value-sorted.
func ranksByCount(sorted []Card, min int) []Rank {
	counts := make(map[Rank]int, len(sorted))
	for _, c := range sorted {
		counts[c.rank]++
	}
	var out []Rank
	for i, c := range sorted {
		if i > 0 && c.rank == sorted[i-1].rank {
			continue
		}
		if counts[c.rank] >= min {
			out = append(out, c.rank)
		}
	}
	return out
}

// cardsOfRank returns up to max cards of the given rank.
func cardsOfRank(sorted []Card, rank Rank, max int) []Card {
	out := make([]Card, 0, max)
	for _, c := range sorted {
		if c.rank == rank {
			out = append(out, c)
			if len(out) == max {
				break
			}
		}
	}
	return out
}

// bestKickers returns the n highest cards whose rank is none of the
// excluded ones.
func bestKickers(sorted []Card, n int, exclude ...Rank) []Card {
	out := make([]Card, 0, n)
	for _, c := range sorted {
		if len(out) == n {
			break
		}
		skip := false
		for _, r := range exclude {
			if c.rank == r {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, c)
		}
	}
	return out
}

// distinctValues collapses the cards to their distinct rank values,
// descending. Straight detection works on this form so that paired
// ranks count as a single position in a run.
func distinctValues(sorted []Card) []int {
	var out []int
	for i, c := range sorted {
		if i > 0 && c.rank == sorted[i-1].rank {
			continue
		}
		out = append(out, c.rank.Value())
	}
	return out
}

// straightHigh scans distinct descending values for five consecutive
// ones and returns the top value of the first (hence highest) run
// found. Only when no run exists does it fall back to the wheel,
// A-2-3-4-5, whose top value is 5 with the ace counted low.
func straightHigh(values []int) (int, bool) {
	run := 1
	for i := 1; i < len(values); i++ {
		if values[i] == values[i-1]-1 {
			run++
			if run == 5 {
				return values[i] + 4, true
			}
		} else {
			run = 1
		}
	}

	if containsValues(values, 14, 5, 4, 3, 2) {
		return 5, true
	}
	return 0, false
}

func containsValues(values []int, wanted ...int) bool {
	for _, w := range wanted {
		found := false
		for _, v := range values {
			if v == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// straightCards picks one card per value of the straight topped by
// high, in play order. The wheel lists the ace last, mirroring its
// low seat in the sequence.
func straightCards(sorted []Card, high int) []Card {
	wanted := []int{high, high - 1, high - 2, high - 3, high - 4}
	if high == 5 {
		wanted = []int{5, 4, 3, 2, 14}
	}
	out := make([]Card, 0, 5)
	for _, w := range wanted {
		for _, c := range sorted {
			if c.rank.Value() == w {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// suitedCards returns the cards of the suit holding at least five of
// them, or false when no suit qualifies. At most one suit can
// qualify in a seven-card hand.
func suitedCards(sorted []Card) ([]Card, bool) {
	for _, s := range Suits {
		var suited []Card
		for _, c := range sorted {
			if c.suit == s {
				suited = append(suited, c)
			}
		}
		if len(suited) >= 5 {
			return suited, true
		}
	}
	return nil, false
}

func straightFlush(sorted []Card) (HandResult, bool) {
	suited, ok := suitedCards(sorted)
	if !ok {
		return HandResult{}, false
	}
	high, ok := straightHigh(distinctValues(suited))
	if !ok {
		return HandResult{}, false
	}

	rank := StraightFlush
	if high == Ace.Value() {
		rank = RoyalFlush
	}
	return HandResult{
		Rank:      rank,
		Name:      categoryNames[rank],
		Cards:     straightCards(suited, high),
		HighCards: []int{high},
	}, true
}

func fourOfAKind(sorted []Card) (HandResult, bool) {
	quads := ranksByCount(sorted, 4)
	if len(quads) == 0 {
		return HandResult{}, false
	}

	q := quads[0]
	kicker := bestKickers(sorted, 1, q)
	cards := append(cardsOfRank(sorted, q, 4), kicker...)
	return HandResult{
		Rank:      FourOfAKind,
		Name:      categoryNames[FourOfAKind],
		Cards:     cards,
		HighCards: []int{q.Value(), kicker[0].rank.Value()},
	}, true
}

// fullHouse looks for a three of a kind plus a separate pair or
// better. When two trips fit in seven cards the higher rank takes
// the trips role and the lower one supplies the pair.
func fullHouse(sorted []Card) (HandResult, bool) {
	trips := ranksByCount(sorted, 3)
	if len(trips) == 0 {
		return HandResult{}, false
	}

	t := trips[0]
	var p Rank
	found := false
	for _, r := range ranksByCount(sorted, 2) {
		if r != t {
			p = r
			found = true
			break
		}
	}
	if !found {
		return HandResult{}, false
	}

	cards := append(cardsOfRank(sorted, t, 3), cardsOfRank(sorted, p, 2)...)
	return HandResult{
		Rank:      FullHouse,
		Name:      categoryNames[FullHouse],
		Cards:     cards,
		HighCards: []int{t.Value(), p.Value()},
	}, true
}

func flush(sorted []Card) (HandResult, bool) {
	suited, ok := suitedCards(sorted)
	if !ok {
		return HandResult{}, false
	}

	top := suited[:5]
	return HandResult{
		Rank:      Flush,
		Name:      categoryNames[Flush],
		Cards:     top,
		HighCards: cardValues(top),
	}, true
}

func straight(sorted []Card) (HandResult, bool) {
	high, ok := straightHigh(distinctValues(sorted))
	if !ok {
		return HandResult{}, false
	}

	return HandResult{
		Rank:      Straight,
		Name:      categoryNames[Straight],
		Cards:     straightCards(sorted, high),
		HighCards: []int{high},
	}, true
}

func threeOfAKind(sorted []Card) (HandResult, bool) {
	trips := ranksByCount(sorted, 3)
	if len(trips) == 0 {
		return HandResult{}, false
	}

	t := trips[0]
	kickers := bestKickers(sorted, 2, t)
	cards := append(cardsOfRank(sorted, t, 3), kickers...)
	return HandResult{
		Rank:      ThreeOfAKind,
		Name:      categoryNames[ThreeOfAKind],
		Cards:     cards,
		HighCards: append([]int{t.Value()}, cardValues(kickers)...),
	}, true
}

func twoPair(sorted []Card) (HandResult, bool) {
	pairs := ranksByCount(sorted, 2)
	if len(pairs) < 2 {
		return HandResult{}, false
	}

	hi, lo := pairs[0], pairs[1]
	kicker := bestKickers(sorted, 1, hi, lo)
	cards := append(cardsOfRank(sorted, hi, 2), cardsOfRank(sorted, lo, 2)...)
	cards = append(cards, kicker...)
	return HandResult{
		Rank:      TwoPair,
		Name:      categoryNames[TwoPair],
		Cards:     cards,
		HighCards: []int{hi.Value(), lo.Value(), kicker[0].rank.Value()},
	}, true
}

func onePair(sorted []Card) (HandResult, bool) {
	pairs := ranksByCount(sorted, 2)
	if len(pairs) == 0 {
		return HandResult{}, false
	}

	p := pairs[0]
	kickers := bestKickers(sorted, 3, p)
	cards := append(cardsOfRank(sorted, p, 2), kickers...)
	return HandResult{
		Rank:      OnePair,
		Name:      categoryNames[OnePair],
		Cards:     cards,
		HighCards: append([]int{p.Value()}, cardValues(kickers)...),
	}, true
}

func highCard(sorted []Card) HandResult {
	top := sorted[:5]
	return HandResult{
		Rank:      HighCard,
		Name:      categoryNames[HighCard],
		Cards:     top,
		HighCards: cardValues(top),
	}
}

func cardValues(cards []Card) []int {
	out := make([]int, len(cards))
	for i, c := range cards {
		out[i] = c.rank.Value()
	}
	return out
}
