package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"skillpass/internal/account/models"
	id "skillpass/pkg/domain"
	"skillpass/pkg/sentinel"
)

// InMemoryStore stores accounts in memory for tests and local runs.
type InMemoryStore struct {
	mu       sync.RWMutex
	accounts map[id.UserID]*models.Account
}

// NewInMemory constructs an empty in-memory account store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{accounts: make(map[id.UserID]*models.Account)}
}

func (s *InMemoryStore) Save(_ context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.accounts {
		if existing.ID != account.ID && strings.EqualFold(existing.Email, account.Email) {
			return fmt.Errorf("save account: %w", sentinel.ErrDuplicateEmail)
		}
	}
	s.accounts[account.ID] = account
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, userID id.UserID) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if account, ok := s.accounts[userID]; ok {
		return account, nil
	}
	return nil, fmt.Errorf("account not found: %w", sentinel.ErrNotFound)
}

func (s *InMemoryStore) FindByEmail(_ context.Context, email string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, account := range s.accounts {
		if strings.EqualFold(account.Email, email) {
			return account, nil
		}
	}
	return nil, fmt.Errorf("account not found: %w", sentinel.ErrNotFound)
}
