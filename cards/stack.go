package cards

import "strings"

// Stack represents multiple cards
type Stack []Card

// NewStack creates a new stack from the given cards
func NewStack(cards ...Card) Stack {
	return cards
}

// String returns the cards separated by spaces, e.g. "A♠ K♦ 10♥"
func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, card := range s {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}

// Contains reports whether the stack holds the given card
func (s Stack) Contains(card Card) bool {
	for _, c := range s {
		if c.Equals(card) {
			return true
		}
	}
	return false
}

// Clone returns a copy of the stack
func (s Stack) Clone() Stack {
	out := make(Stack, len(s))
	copy(out, s)
	return out
}

// ParseStack parses a space-separated list of card shorthands
func ParseStack(s string) (Stack, error) {
	fields := strings.Fields(s)
	stack := make(Stack, 0, len(fields))
	for _, f := range fields {
		card, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		stack = append(stack, card)
	}
	return stack, nil
}
