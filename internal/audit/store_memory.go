package audit

import (
	"context"
	"sync"

	id "skillpass/pkg/domain"
)

// InMemoryStore keeps audit events in memory, keyed by credential.
type InMemoryStore struct {
	mu     sync.RWMutex
	events map[id.CredentialID][]Event
}

// NewInMemoryStore constructs an empty in-memory audit store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[id.CredentialID][]Event)}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.CredentialID] = append(s.events[event.CredentialID], event)
	return nil
}

func (s *InMemoryStore) ListByCredential(_ context.Context, credentialID id.CredentialID) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event{}, s.events[credentialID]...), nil
}

func (s *InMemoryStore) CountByCredential(_ context.Context, credentialID id.CredentialID, kind Kind) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, event := range s.events[credentialID] {
		if event.Kind == kind {
			count++
		}
	}
	return count, nil
}

// Clear empties the store. Test helper.
func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[id.CredentialID][]Event)
}
