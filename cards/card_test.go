package cards

import (
	"testing"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		input string
		want  Card
	}{
		{"A♠", Card{Rank: Ace, Suit: Spades}},
		{"As", Card{Rank: Ace, Suit: Spades}},
		{"aS?", Card{}}, // invalid
		{"10♦", Card{Rank: Ten, Suit: Diamonds}},
		{"10d", Card{Rank: Ten, Suit: Diamonds}},
		{"Th", Card{Rank: Ten, Suit: Hearts}},
		{"Kc", Card{Rank: King, Suit: Clubs}},
		{"2h", Card{Rank: Two, Suit: Hearts}},
	}

	for _, tc := range tests {
		card, err := ParseCard(tc.input)
		if tc.want == (Card{}) {
			if err == nil {
				t.Errorf("ParseCard(%q): expected error, got %v", tc.input, card)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCard(%q): unexpected error %v", tc.input, err)
			continue
		}
		if !card.Equals(tc.want) {
			t.Errorf("ParseCard(%q) = %v, want %v", tc.input, card, tc.want)
		}
	}
}

func TestParseCard_Invalid(t *testing.T) {
	for _, input := range []string{"", "A", "1s", "Ax", "11h"} {
		if _, err := ParseCard(input); err == nil {
			t.Errorf("ParseCard(%q): expected error", input)
		}
	}
}

// The glyph suits are multi-byte runes; every suit must survive a
// String -> ParseCard round trip in glyph form.
func TestParseCard_GlyphSuits(t *testing.T) {
	for _, input := range []string{"A♠", "K♥", "Q♦", "J♣", "10♠", "2♣"} {
		card, err := ParseCard(input)
		if err != nil {
			t.Errorf("ParseCard(%q): unexpected error %v", input, err)
			continue
		}
		if card.String() != input {
			t.Errorf("ParseCard(%q).String() = %q, want %q", input, card.String(), input)
		}
	}

	if _, err := ParseCard("A♛"); err == nil {
		t.Error("expected error for an unknown suit glyph")
	}
}

func TestCardString_RoundTrip(t *testing.T) {
	card := Card{Rank: Queen, Suit: Hearts}
	parsed, err := ParseCard(card.String())
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if !parsed.Equals(card) {
		t.Errorf("round trip: got %v, want %v", parsed, card)
	}
}

func TestCardEquals(t *testing.T) {
	a := Card{Rank: Nine, Suit: Clubs}
	b := Card{Rank: Nine, Suit: Clubs}
	c := Card{Rank: Nine, Suit: Spades}

	if !a.Equals(b) {
		t.Error("identical cards must be equal")
	}
	if a.Equals(c) {
		t.Error("same rank, different suit must not be equal")
	}
}

func TestRankString(t *testing.T) {
	tests := map[Rank]string{
		Ace:   "A",
		King:  "K",
		Queen: "Q",
		Jack:  "J",
		Ten:   "10",
		Two:   "2",
	}

	for rank, want := range tests {
		if got := rank.String(); got != want {
			t.Errorf("Rank(%d).String() = %q, want %q", rank, got, want)
		}
	}
}

func TestParseStack(t *testing.T) {
	stack, err := ParseStack("As Kd 10h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stack) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(stack))
	}
	if stack.String() != "A♠ K♦ 10♥" {
		t.Errorf("unexpected string form: %q", stack.String())
	}

	if _, err := ParseStack("As Kx"); err == nil {
		t.Error("expected error for invalid shorthand")
	}
}
