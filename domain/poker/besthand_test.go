package poker

import (
	"errors"
	"reflect"
	"testing"
)

func TestBestHandFiveCardsEqualsEvaluate(t *testing.T) {
	cards := mustHand(t, "JH", "JD", "4C", "4S", "AD")
	want, err := Evaluate(cards)
	if err != nil {
		t.Fatal(err)
	}
	got, err := BestHand(cards)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("BestHand differs from Evaluate on five cards:\n%+v\nvs\n%+v", want, got)
	}
}

func TestBestHandInsufficientCards(t *testing.T) {
	_, err := BestHand(mustHand(t, "JH", "JD", "4C"))
	if !errors.Is(err, ErrInsufficientCards) {
		t.Fatalf("expected ErrInsufficientCards, got %v", err)
	}
}

func TestBestHandFindsBuriedFlush(t *testing.T) {
	// The five spades beat the pair of aces.
	best, err := BestHand(mustHand(t, "AS", "AD", "QS", "9S", "7S", "3S", "2D"))
	if err != nil {
		t.Fatal(err)
	}
	assertResult(t, best, Flush, 14, 12, 9, 7, 3)
}

func TestBestHandFindsWheelAcrossSevenCards(t *testing.T) {
	best, err := BestHand(mustHand(t, "AS", "KD", "QC", "5H", "4D", "3C", "2H"))
	if err != nil {
		t.Fatal(err)
	}
	assertResult(t, best, Straight, 5)
}

// TestBestHandIsMaximal cross-checks the search brute-force: for
// dealt seven-card hands, no five-card subset may beat the reported
// best.
func TestBestHandIsMaximal(t *testing.T) {
	for _, seed := range []string{"max-1", "max-2", "max-3", "max-4", "max-5"} {
		d := DealHands(seed)
		for _, hand := range [][]Card{d.Player1, d.Player2} {
			best, err := BestHand(hand)
			if err != nil {
				t.Fatal(err)
			}
			forEachFiveSubset(hand, func(subset []Card) {
				r, err := Evaluate(subset)
				if err != nil {
					t.Fatal(err)
				}
				if Compare(r, best) > 0 {
					t.Fatalf("seed %q: subset %v beats reported best %v", seed, Tokens(subset), Tokens(best.Cards))
				}
			})
		}
	}
}

// forEachFiveSubset enumerates the subsets independently of
// BestHand's combination walker.
func forEachFiveSubset(cards []Card, fn func([]Card)) {
	n := len(cards)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				for d := c + 1; d < n; d++ {
					for e := d + 1; e < n; e++ {
						fn([]Card{cards[a], cards[b], cards[c], cards[d], cards[e]})
					}
				}
			}
		}
	}
}

func TestNextCombinationCoversAllSubsets(t *testing.T) {
	idx := []int{0, 1, 2, 3, 4}
	seen := map[[5]int]bool{}
	for {
		var key [5]int
		copy(key[:], idx)
		if seen[key] {
			t.Fatalf("combination %v visited twice", idx)
		}
		seen[key] = true
		if !nextCombination(idx, 7) {
			break
		}
	}
	if len(seen) != 21 {
		t.Fatalf("expected 21 combinations of 5 out of 7, got %d", len(seen))
	}
}
