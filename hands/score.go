package hands

import "github.com/pokerkit/showdown/cards"

// Category is the class of a poker hand, ordered from weakest to strongest.
type Category int

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the human-readable label for the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Score is a fully ordered hand strength: the category first, then the
// category-specific tie-break ranks compared element by element. The shape of
// TieBreaks is fixed per category (e.g. a full house always carries
// [triple, pair], a flush all five ranks descending), so two scores of the
// same category always compare over sequences of equal length.
type Score struct {
	Category  Category
	TieBreaks []cards.Rank
}

// Compare returns -1 if s is weaker than other, 0 if equal, 1 if stronger.
func (s Score) Compare(other Score) int {
	if s.Category != other.Category {
		if s.Category < other.Category {
			return -1
		}
		return 1
	}

	for i := 0; i < len(s.TieBreaks) && i < len(other.TieBreaks); i++ {
		if s.TieBreaks[i] != other.TieBreaks[i] {
			if s.TieBreaks[i] < other.TieBreaks[i] {
				return -1
			}
			return 1
		}
	}

	return 0
}

// Beats reports whether s strictly outranks other
func (s Score) Beats(other Score) bool {
	return s.Compare(other) > 0
}

// Evaluation pairs a score with the five cards that produced it. The cards
// are carried for display only; ordering is entirely the score's business.
type Evaluation struct {
	Score Score
	Cards cards.Stack
}
