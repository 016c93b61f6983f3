package events

import (
	"reflect"
	"time"

	"github.com/pokerkit/showdown/cards"
	"github.com/pokerkit/showdown/hands"
)

// Event is the interface that all showdown events must implement.
type Event interface {
	EventName() string // Returns a unique name for the event type
}

// GetHandID extracts the HandID field from any event carrying one.
func GetHandID(event Event) string {
	val := reflect.ValueOf(event)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	field := val.FieldByName("HandID")
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}

// HoleCardsDealt fires when a player receives their two hole cards.
type HoleCardsDealt struct {
	HandID   string
	PlayerID string
	Cards    cards.Stack
	At       time.Time
}

func (e HoleCardsDealt) EventName() string { return "showdown.hole_cards_dealt" }

// CommunityCardsDealt fires when the five community cards hit the board.
type CommunityCardsDealt struct {
	HandID string
	Cards  cards.Stack
	At     time.Time
}

func (e CommunityCardsDealt) EventName() string { return "showdown.community_cards_dealt" }

// ShowdownCompleted fires once every player's best hand has been evaluated
// and the winners determined.
type ShowdownCompleted struct {
	HandID  string
	Scores  []hands.PlayerScore
	Winners []string
	At      time.Time
}

func (e ShowdownCompleted) EventName() string { return "showdown.completed" }
