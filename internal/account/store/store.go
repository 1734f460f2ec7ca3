package store

import (
	"context"

	"skillpass/internal/account/models"
	id "skillpass/pkg/domain"
)

// Error Contract:
// All store methods follow this pattern:
// - Return sentinel.ErrNotFound (wrapped) when the requested account does not exist
// - Return nil for successful operations
// - Return wrapped errors with context for infrastructure failures

// Store persists accounts.
type Store interface {
	Save(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, userID id.UserID) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
}
