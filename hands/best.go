package hands

import (
	"fmt"

	"github.com/pokerkit/showdown/cards"
)

// BestHand finds the strongest five-card hand in a pool of five or more
// cards (typically seven: two hole cards plus the board). Every C(n,5)
// combination is evaluated; category order alone does not guarantee the
// first strong combination found is maximal under tie-break ordering, so
// there is no early exit. When several combinations score equal, whichever
// was seen first is returned; the score is the contract, not the card set.
func BestHand(pool cards.Stack) (Evaluation, error) {
	if len(pool) < 5 {
		return Evaluation{}, fmt.Errorf("best hand: need at least 5 cards, got %d", len(pool))
	}

	var best Evaluation
	for i, combo := range combinations(len(pool), 5) {
		hand := make(cards.Stack, 5)
		for j, idx := range combo {
			hand[j] = pool[idx]
		}

		evaluation, err := Evaluate(hand)
		if err != nil {
			return Evaluation{}, err
		}

		if i == 0 || evaluation.Score.Beats(best.Score) {
			best = evaluation
		}
	}

	return best, nil
}

// combinations generates all possible combinations of k indices out of n
func combinations(n, k int) [][]int {
	if k > n {
		return nil
	}

	var result [][]int
	var combine func(int, []int)

	combine = func(start int, current []int) {
		if len(current) == k {
			combo := make([]int, k)
			copy(combo, current)
			result = append(result, combo)
			return
		}

		for i := start; i < n; i++ {
			current = append(current, i)
			combine(i+1, current)
			current = current[:len(current)-1]
		}
	}

	combine(0, []int{})
	return result
}
