package hands

import (
	"fmt"
	"sort"

	"github.com/pokerkit/showdown/cards"
)

// Evaluate classifies exactly five cards into a hand category and its
// tie-break score. The caller guarantees the cards are distinct; passing any
// other number of cards is an error.
func Evaluate(hand cards.Stack) (Evaluation, error) {
	if len(hand) != 5 {
		return Evaluation{}, fmt.Errorf("evaluate: need exactly 5 cards, got %d", len(hand))
	}

	counts := make(map[cards.Rank]int, 5)
	ranks := make([]cards.Rank, 0, 5)
	for _, card := range hand {
		counts[card.Rank]++
		ranks = append(ranks, card.Rank)
	}

	flush := isFlush(hand)
	straightHigh, straight := straightTop(ranks)

	if flush && straight {
		return newEvaluation(StraightFlush, hand, straightHigh), nil
	}

	if quad, kicker, ok := fourOfAKind(counts); ok {
		return newEvaluation(FourOfAKind, hand, quad, kicker), nil
	}

	if triple, pair, ok := fullHouse(counts); ok {
		return newEvaluation(FullHouse, hand, triple, pair), nil
	}

	if flush {
		return newEvaluation(Flush, hand, ranksDescending(ranks)...), nil
	}

	if straight {
		return newEvaluation(Straight, hand, straightHigh), nil
	}

	if triple, kickers, ok := threeOfAKind(counts); ok {
		return newEvaluation(ThreeOfAKind, hand, append([]cards.Rank{triple}, kickers...)...), nil
	}

	if high, low, kicker, ok := twoPair(counts); ok {
		return newEvaluation(TwoPair, hand, high, low, kicker), nil
	}

	if pair, kickers, ok := onePair(counts); ok {
		return newEvaluation(OnePair, hand, append([]cards.Rank{pair}, kickers...)...), nil
	}

	return newEvaluation(HighCard, hand, ranksDescending(ranks)...), nil
}

// newEvaluation builds an evaluation carrying the hand sorted by rank
// (highest first) for display.
func newEvaluation(category Category, hand cards.Stack, tieBreaks ...cards.Rank) Evaluation {
	sorted := hand.Clone()
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Rank > sorted[j].Rank
	})

	return Evaluation{
		Score: Score{Category: category, TieBreaks: tieBreaks},
		Cards: sorted,
	}
}

// isFlush checks if all cards are of the same suit
func isFlush(hand cards.Stack) bool {
	suit := hand[0].Suit
	for _, card := range hand[1:] {
		if card.Suit != suit {
			return false
		}
	}
	return true
}

// straightTop detects a straight among the given ranks, duplicates allowed.
// It collapses the ranks to a sorted distinct set and slides a window of five
// looking for consecutive values, keeping the highest window top found. The
// wheel (A-2-3-4-5) only counts when no consecutive window exists; the ace
// then plays low and the straight tops out at 5.
func straightTop(ranks []cards.Rank) (cards.Rank, bool) {
	distinct := distinctSorted(ranks)
	if len(distinct) < 5 {
		return 0, false
	}

	var top cards.Rank
	found := false
	for i := 0; i+5 <= len(distinct); i++ {
		if distinct[i+4]-distinct[i] == 4 {
			top = distinct[i+4]
			found = true
		}
	}
	if found {
		return top, true
	}

	if isWheel(distinct) {
		return cards.Five, true
	}

	return 0, false
}

// isWheel checks for A, 5, 4, 3, 2 among the distinct ranks
func isWheel(distinct []cards.Rank) bool {
	need := map[cards.Rank]bool{
		cards.Ace:   false,
		cards.Five:  false,
		cards.Four:  false,
		cards.Three: false,
		cards.Two:   false,
	}

	for _, rank := range distinct {
		if _, ok := need[rank]; ok {
			need[rank] = true
		}
	}

	for _, present := range need {
		if !present {
			return false
		}
	}
	return true
}

// distinctSorted returns the unique ranks sorted ascending
func distinctSorted(ranks []cards.Rank) []cards.Rank {
	seen := make(map[cards.Rank]bool, len(ranks))
	distinct := make([]cards.Rank, 0, len(ranks))
	for _, rank := range ranks {
		if !seen[rank] {
			seen[rank] = true
			distinct = append(distinct, rank)
		}
	}

	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })
	return distinct
}

// ranksDescending returns all ranks sorted highest first
func ranksDescending(ranks []cards.Rank) []cards.Rank {
	out := make([]cards.Rank, len(ranks))
	copy(out, ranks)
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	return out
}

// fourOfAKind checks for four of a kind and returns the quad rank and kicker
func fourOfAKind(counts map[cards.Rank]int) (quad, kicker cards.Rank, ok bool) {
	for rank, count := range counts {
		if count == 4 {
			quad = rank
			ok = true
		} else {
			kicker = rank // only one other rank fits in 5 cards
		}
	}
	return quad, kicker, ok
}

// fullHouse checks for a full house and returns the triple and pair ranks
func fullHouse(counts map[cards.Rank]int) (triple, pair cards.Rank, ok bool) {
	for rank, count := range counts {
		switch count {
		case 3:
			triple = rank
		case 2:
			pair = rank
		}
	}
	return triple, pair, triple != 0 && pair != 0
}

// threeOfAKind checks for exactly one triple with singles beside it and
// returns the triple rank and the kickers sorted descending
func threeOfAKind(counts map[cards.Rank]int) (cards.Rank, []cards.Rank, bool) {
	var triple cards.Rank
	var kickers []cards.Rank

	for rank, count := range counts {
		if count == 3 {
			triple = rank
		} else {
			kickers = append(kickers, rank)
		}
	}

	if triple == 0 {
		return 0, nil, false
	}

	sort.Slice(kickers, func(i, j int) bool { return kickers[i] > kickers[j] })
	return triple, kickers, true
}

// twoPair checks for two distinct pairs and returns them with the kicker
func twoPair(counts map[cards.Rank]int) (high, low, kicker cards.Rank, ok bool) {
	var pairs []cards.Rank

	for rank, count := range counts {
		if count == 2 {
			pairs = append(pairs, rank)
		} else {
			kicker = rank
		}
	}

	if len(pairs) != 2 {
		return 0, 0, 0, false
	}

	high, low = pairs[0], pairs[1]
	if low > high {
		high, low = low, high
	}
	return high, low, kicker, true
}

// onePair checks for exactly one pair and returns the pair rank and the
// kickers sorted descending
func onePair(counts map[cards.Rank]int) (cards.Rank, []cards.Rank, bool) {
	var pair cards.Rank
	var kickers []cards.Rank

	for rank, count := range counts {
		if count == 2 {
			pair = rank
		} else {
			kickers = append(kickers, rank)
		}
	}

	if pair == 0 {
		return 0, nil, false
	}

	sort.Slice(kickers, func(i, j int) bool { return kickers[i] > kickers[j] })
	return pair, kickers, true
}
