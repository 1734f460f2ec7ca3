package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"skillpass/internal/credential/models"
	id "skillpass/pkg/domain"
	"skillpass/pkg/sentinel"
)

// InMemoryStore is an in-memory implementation of Store for tests or local
// use. Secondary indexes on code and token enforce the same uniqueness the
// PostgreSQL constraints do, under a single lock so Insert stays atomic.
type InMemoryStore struct {
	mu          sync.RWMutex
	credentials map[id.CredentialID]*models.Credential
	byCode      map[string]id.CredentialID
	byToken     map[string]id.CredentialID
}

// NewInMemory constructs an empty in-memory credential store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		credentials: make(map[id.CredentialID]*models.Credential),
		byCode:      make(map[string]id.CredentialID),
		byToken:     make(map[string]id.CredentialID),
	}
}

func (s *InMemoryStore) Insert(_ context.Context, credential *models.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byCode[credential.VerificationCode]; taken {
		return fmt.Errorf("insert credential: %w", sentinel.ErrDuplicateCode)
	}
	if _, taken := s.byToken[credential.PublicToken]; taken {
		return fmt.Errorf("insert credential: %w", sentinel.ErrDuplicateToken)
	}

	s.credentials[credential.ID] = credential.Clone()
	s.byCode[credential.VerificationCode] = credential.ID
	s.byToken[credential.PublicToken] = credential.ID
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, credentialID id.CredentialID) (*models.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if credential, ok := s.credentials[credentialID]; ok {
		return credential.Clone(), nil
	}
	return nil, fmt.Errorf("credential not found: %w", sentinel.ErrNotFound)
}

func (s *InMemoryStore) FindByCode(_ context.Context, code string) (*models.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if credentialID, ok := s.byCode[code]; ok {
		return s.credentials[credentialID].Clone(), nil
	}
	return nil, fmt.Errorf("credential not found: %w", sentinel.ErrNotFound)
}

func (s *InMemoryStore) FindPublicByToken(_ context.Context, token string) (*models.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if credentialID, ok := s.byToken[token]; ok {
		credential := s.credentials[credentialID]
		if credential.IsPublic {
			return credential.Clone(), nil
		}
	}
	// Private and unknown tokens produce the same error on purpose.
	return nil, fmt.Errorf("credential not found: %w", sentinel.ErrNotFound)
}

func (s *InMemoryStore) MarkVerified(_ context.Context, credentialID id.CredentialID, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	credential, ok := s.credentials[credentialID]
	if !ok {
		return false, fmt.Errorf("credential not found: %w", sentinel.ErrNotFound)
	}
	if credential.Status != models.StatusIssued {
		return false, nil
	}
	credential.Status = models.StatusVerified
	verifiedAt := at
	credential.VerifiedAt = &verifiedAt
	credential.UpdatedAt = at
	return true, nil
}

func (s *InMemoryStore) MarkSharedOnLinkedIn(_ context.Context, credentialID id.CredentialID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	credential, ok := s.credentials[credentialID]
	if !ok {
		return fmt.Errorf("credential not found: %w", sentinel.ErrNotFound)
	}
	credential.SharedOnLinkedIn = true
	return nil
}

func (s *InMemoryStore) Update(_ context.Context, credential *models.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.credentials[credential.ID]
	if !ok {
		return fmt.Errorf("credential not found: %w", sentinel.ErrNotFound)
	}
	// Identifiers are immutable once assigned.
	updated := credential.Clone()
	updated.VerificationCode = existing.VerificationCode
	updated.PublicToken = existing.PublicToken
	s.credentials[credential.ID] = updated
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, credentialID id.CredentialID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	credential, ok := s.credentials[credentialID]
	if !ok {
		return fmt.Errorf("credential not found: %w", sentinel.ErrNotFound)
	}
	delete(s.byCode, credential.VerificationCode)
	delete(s.byToken, credential.PublicToken)
	delete(s.credentials, credentialID)
	return nil
}

func (s *InMemoryStore) ListByLearner(_ context.Context, learnerID id.UserID, publicOnly bool, offset, limit int) ([]*models.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Credential
	for _, credential := range s.credentials {
		if credential.LearnerID != learnerID {
			continue
		}
		if publicOnly && !credential.IsPublic {
			continue
		}
		out = append(out, credential.Clone())
	}
	return page(out, offset, limit), nil
}

func (s *InMemoryStore) ListByIssuer(_ context.Context, issuerID id.UserID, offset, limit int) ([]*models.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Credential
	for _, credential := range s.credentials {
		if credential.IssuerID != issuerID {
			continue
		}
		out = append(out, credential.Clone())
	}
	return page(out, offset, limit), nil
}

func (s *InMemoryStore) Count(_ context.Context, filter Filter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, credential := range s.credentials {
		if filter.LearnerID != nil && credential.LearnerID != *filter.LearnerID {
			continue
		}
		if filter.IssuerID != nil && credential.IssuerID != *filter.IssuerID {
			continue
		}
		if filter.Status != nil && credential.Status != *filter.Status {
			continue
		}
		if filter.PublicOnly && !credential.IsPublic {
			continue
		}
		if filter.SharedOnLinkedIn && !credential.SharedOnLinkedIn {
			continue
		}
		count++
	}
	return count, nil
}

func page(credentials []*models.Credential, offset, limit int) []*models.Credential {
	sort.Slice(credentials, func(i, j int) bool {
		return credentials[i].IssuedAt.After(credentials[j].IssuedAt)
	})
	if offset >= len(credentials) {
		return nil
	}
	credentials = credentials[offset:]
	if limit > 0 && limit < len(credentials) {
		credentials = credentials[:limit]
	}
	return credentials
}
