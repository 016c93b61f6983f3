package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/sanity-io/litter"
	"golang.org/x/sync/errgroup"

	"github.com/pokerkit/showdown/cards"
	"github.com/pokerkit/showdown/events"
	"github.com/pokerkit/showdown/hands"
)

const (
	MinPlayers = 2
	MaxPlayers = 9

	holeCardsPerPlayer = 2
	communityCards     = 5
)

// Player holds a seat's identifier and hole cards for a single hand.
type Player struct {
	ID   string
	Hole cards.Stack
}

// Result carries one player's best five-card hand at showdown.
type Result struct {
	PlayerID string
	Best     hands.Evaluation
}

// Showdown is the full outcome of a single dealt hand.
type Showdown struct {
	HandID    string
	Players   []Player
	Community cards.Stack
	Results   []Result
	Winners   []string
}

// Table deals showdown hands and records what happened. It holds no chips,
// no betting state and no history beyond the event store.
type Table struct {
	logger *log.Logger
	store  events.EventStore
}

// NewTable creates a table writing to the given event store.
func NewTable(logger *log.Logger, store events.EventStore) *Table {
	return &Table{
		logger: logger.WithPrefix("table"),
		store:  store,
	}
}

// Run deals a fresh hand to numPlayers players and evaluates the showdown:
// two hole cards each, five community cards, best five of seven per player.
// Pass a *rand.Rand for a deterministic deal, or nil to seed from the clock.
func (t *Table) Run(ctx context.Context, numPlayers int, rng *rand.Rand) (*Showdown, error) {
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		return nil, fmt.Errorf("run showdown: player count %d outside %d-%d", numPlayers, MinPlayers, MaxPlayers)
	}

	deck := cards.NewDeck(rng)
	handID := uuid.NewString()

	players := make([]Player, numPlayers)
	for i := range players {
		hole, err := deck.Deal(holeCardsPerPlayer)
		if err != nil {
			return nil, fmt.Errorf("deal hole cards: %w", err)
		}

		players[i] = Player{ID: fmt.Sprintf("P%d", i+1), Hole: hole}
		t.record(events.HoleCardsDealt{
			HandID:   handID,
			PlayerID: players[i].ID,
			Cards:    hole,
			At:       time.Now(),
		})
	}

	community, err := deck.Deal(communityCards)
	if err != nil {
		return nil, fmt.Errorf("deal community cards: %w", err)
	}
	t.record(events.CommunityCardsDealt{
		HandID: handID,
		Cards:  community,
		At:     time.Now(),
	})

	// Each player's 21-combination search is independent, so they run
	// concurrently; every goroutine writes only its own slot.
	results := make([]Result, numPlayers)
	g, ctx := errgroup.WithContext(ctx)
	for i, player := range players {
		i, player := i, player
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pool := append(player.Hole.Clone(), community...)
			best, err := hands.BestHand(pool)
			if err != nil {
				return fmt.Errorf("best hand for %s: %w", player.ID, err)
			}
			results[i] = Result{PlayerID: player.ID, Best: best}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	scores := make([]hands.PlayerScore, numPlayers)
	for i, result := range results {
		scores[i] = hands.PlayerScore{PlayerID: result.PlayerID, Score: result.Best.Score}
	}
	winners := hands.Winners(scores)

	t.record(events.ShowdownCompleted{
		HandID:  handID,
		Scores:  scores,
		Winners: winners,
		At:      time.Now(),
	})

	t.logger.Info("showdown complete", "hand", handID, "players", numPlayers, "winners", winners)

	return &Showdown{
		HandID:    handID,
		Players:   players,
		Community: community,
		Results:   results,
		Winners:   winners,
	}, nil
}

func (t *Table) record(event events.Event) {
	if err := t.store.Append(event); err != nil {
		t.logger.Error("failed to record event", "event", event.EventName(), "err", err)
		return
	}
	// litter's reflective dump is not free; only pay for it on debug runs.
	if t.logger.GetLevel() <= log.DebugLevel {
		t.logger.Debug("event recorded", "event", event.EventName(), "dump", litter.Sdump(event))
	}
}
