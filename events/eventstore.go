package events

import (
	"fmt"
	"sync"
)

// EventStore is the interface for storing and retrieving events.
type EventStore interface {
	Append(event Event) error
	LoadEvents(handID string) ([]Event, error)
}

// InMemoryEventStore is an in-memory implementation of the EventStore interface.
type InMemoryEventStore struct {
	events map[string][]Event
	mutex  sync.RWMutex
}

// NewInMemoryEventStore creates a new in-memory event store.
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		events: make(map[string][]Event),
	}
}

// Append adds a new event to the store.
func (s *InMemoryEventStore) Append(event Event) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	handID := GetHandID(event)
	if handID == "" {
		return fmt.Errorf("event %s has no handID", event.EventName())
	}

	s.events[handID] = append(s.events[handID], event)
	return nil
}

// LoadEvents retrieves all events for the given handID.
func (s *InMemoryEventStore) LoadEvents(handID string) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stored, exists := s.events[handID]
	if !exists {
		return nil, fmt.Errorf("no events for hand %s", handID)
	}

	out := make([]Event, len(stored))
	copy(out, stored)
	return out, nil
}
