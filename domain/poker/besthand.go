package poker

import "fmt"

// BestHand returns the strongest five-card hand contained in the
// given cards. Five cards evaluate directly; a seven-card draw hand
// enumerates all C(7,5)=21 five-card subsets and keeps the maximum
// under Compare. The running best is replaced only on a strictly
// better result, so among equal subsets the first one encountered
// wins and repeated calls return the same substantiating cards.
func BestHand(cards []Card) (HandResult, error) {
	if len(cards) < 5 {
		return HandResult{}, fmt.Errorf("%w: got %d, need at least 5", ErrInsufficientCards, len(cards))
	}
	if len(cards) == 5 {
		return Evaluate(cards)
	}

	var best HandResult
	first := true
	subset := make([]Card, 5)
	idx := []int{0, 1, 2, 3, 4}
	for {
		for i, k := range idx {
			subset[i] = cards[k]
		}
		result, err := Evaluate(subset)
		if err != nil {
			return HandResult{}, err
		}
		if first || Compare(result, best) > 0 {
			best = result
			first = false
		}
		if !nextCombination(idx, len(cards)) {
			break
		}
	}
	return best, nil
}

// nextCombination advances idx to the next k-subset of [0, n) in
// lexicographic order, returning false after the last one.
func nextCombination(idx []int, n int) bool {
	k := len(idx)
	for i := k - 1; i >= 0; i-- {
		if idx[i] != i+n-k {
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
			return true
		}
	}
	return false
}
