package cards

import (
	"math/rand"
	"testing"
)

func TestNewDeck_Has52DistinctCards(t *testing.T) {
	deck := NewDeck(nil)

	if deck.Remaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", deck.Remaining())
	}

	dealt, err := deck.Deal(52)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[Card]bool, 52)
	for _, card := range dealt {
		if seen[card] {
			t.Errorf("duplicate card in deck: %v", card)
		}
		seen[card] = true
	}
}

func TestDeck_DealRemovesCards(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(1)))

	hole, err := deck.Deal(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hole) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(hole))
	}
	if deck.Remaining() != 50 {
		t.Errorf("expected 50 remaining, got %d", deck.Remaining())
	}
}

// Dealing 2 cards to each of 9 players plus 5 community cards must never
// produce a duplicate across all hands.
func TestDeck_FullTableDealIsDisjoint(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(42)))

	seen := make(map[Card]bool)
	total := 0
	for player := 0; player < 9; player++ {
		hole, err := deck.Deal(2)
		if err != nil {
			t.Fatalf("deal hole cards: %v", err)
		}
		for _, card := range hole {
			if seen[card] {
				t.Fatalf("duplicate card dealt: %v", card)
			}
			seen[card] = true
			total++
		}
	}

	community, err := deck.Deal(5)
	if err != nil {
		t.Fatalf("deal community: %v", err)
	}
	for _, card := range community {
		if seen[card] {
			t.Fatalf("duplicate card dealt: %v", card)
		}
		seen[card] = true
		total++
	}

	if total != 23 {
		t.Errorf("expected 23 cards dealt, got %d", total)
	}
}

func TestDeck_ExhaustionIsAnError(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(7)))

	if _, err := deck.Deal(53); err == nil {
		t.Error("expected error dealing past the deck size")
	}

	if _, err := deck.Deal(52); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := deck.DealOne(); err == nil {
		t.Error("expected error dealing from an empty deck")
	}
}

func TestDeck_SeededShuffleIsDeterministic(t *testing.T) {
	a := NewDeck(rand.New(rand.NewSource(99)))
	b := NewDeck(rand.New(rand.NewSource(99)))

	cardsA, _ := a.Deal(52)
	cardsB, _ := b.Deal(52)

	for i := range cardsA {
		if !cardsA[i].Equals(cardsB[i]) {
			t.Fatalf("decks with the same seed diverge at %d: %v vs %v", i, cardsA[i], cardsB[i])
		}
	}
}
