package hands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pokerkit/showdown/cards"
)

func TestWinners_EmptyInput(t *testing.T) {
	assert.Nil(t, Winners(nil))
	assert.Nil(t, Winners([]PlayerScore{}))
}

func TestWinners_SingleBestScore(t *testing.T) {
	scores := []PlayerScore{
		{PlayerID: "P1", Score: Score{Category: OnePair, TieBreaks: []cards.Rank{cards.Seven, cards.Queen, cards.Jack, cards.Nine}}},
		{PlayerID: "P2", Score: Score{Category: OnePair, TieBreaks: []cards.Rank{cards.Eight, cards.Queen, cards.Jack, cards.Nine}}},
		{PlayerID: "P3", Score: Score{Category: HighCard, TieBreaks: []cards.Rank{cards.Ace, cards.Queen, cards.Jack, cards.Nine, cards.Four}}},
	}

	assert.Equal(t, []string{"P2"}, Winners(scores))
}

func TestWinners_TiesAllReported(t *testing.T) {
	flush := Score{Category: Flush, TieBreaks: []cards.Rank{cards.Ace, cards.King, cards.Queen, cards.Jack, cards.Nine}}
	lower := Score{Category: Flush, TieBreaks: []cards.Rank{cards.Ace, cards.King, cards.Queen, cards.Jack, cards.Eight}}

	scores := []PlayerScore{
		{PlayerID: "P1", Score: flush},
		{PlayerID: "P2", Score: lower},
		{PlayerID: "P3", Score: flush},
	}

	assert.Equal(t, []string{"P1", "P3"}, Winners(scores), "every tied player wins, in input order")
}

func TestWinners_InsertionOrderPreserved(t *testing.T) {
	same := Score{Category: Straight, TieBreaks: []cards.Rank{cards.Ten}}

	scores := []PlayerScore{
		{PlayerID: "P3", Score: same},
		{PlayerID: "P1", Score: same},
		{PlayerID: "P2", Score: same},
	}

	assert.Equal(t, []string{"P3", "P1", "P2"}, Winners(scores))
}
