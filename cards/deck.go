package cards

import (
	"fmt"
	"math/rand"
	"time"
)

// Deck is an owned, ordered sequence of the 52 distinct cards. It is created
// fully populated and shuffled, and cards are dealt from the front until the
// deck runs out. A deck is never replenished and must not be dealt from
// concurrently.
type Deck struct {
	cards Stack
}

// NewDeck creates a shuffled standard deck of 52 cards. Pass a *rand.Rand for
// a deterministic shuffle, or nil to seed from the clock.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	deck := &Deck{cards: make(Stack, 0, 52)}
	suits := []Suit{Spades, Hearts, Diamonds, Clubs}

	for _, suit := range suits {
		for rank := Two; rank <= Ace; rank++ {
			deck.cards = append(deck.cards, Card{Rank: rank, Suit: suit})
		}
	}

	rng.Shuffle(len(deck.cards), func(i, j int) {
		deck.cards[i], deck.cards[j] = deck.cards[j], deck.cards[i]
	})

	return deck
}

// Deal removes and returns the top count cards. Dealing more cards than
// remain is a caller error, not something the deck recovers from.
func (d *Deck) Deal(count int) (Stack, error) {
	if count > len(d.cards) {
		return nil, fmt.Errorf("deal %d cards: only %d remain", count, len(d.cards))
	}

	dealt := make(Stack, count)
	copy(dealt, d.cards[:count])
	d.cards = d.cards[count:]

	return dealt, nil
}

// DealOne removes and returns the top card
func (d *Deck) DealOne() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, fmt.Errorf("deal from an empty deck")
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}
