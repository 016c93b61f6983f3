package hands

// PlayerScore pairs a player identifier with that player's best score.
type PlayerScore struct {
	PlayerID string
	Score    Score
}

// Winners returns the identifiers of every player whose score equals the
// table maximum, in the order the players were given. Two passes: find the
// maximum, then collect everything equal to it, so ties surface as multiple
// winners rather than whichever player happened to be scanned first.
func Winners(scores []PlayerScore) []string {
	if len(scores) == 0 {
		return nil
	}

	best := scores[0].Score
	for _, ps := range scores[1:] {
		if ps.Score.Beats(best) {
			best = ps.Score
		}
	}

	var winners []string
	for _, ps := range scores {
		if ps.Score.Compare(best) == 0 {
			winners = append(winners, ps.PlayerID)
		}
	}

	return winners
}
