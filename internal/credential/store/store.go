package store

import (
	"context"
	"time"

	"skillpass/internal/credential/models"
	id "skillpass/pkg/domain"
)

// Filter selects credentials for count queries. Zero-value fields are ignored.
type Filter struct {
	LearnerID        *id.UserID
	IssuerID         *id.UserID
	Status           *models.Status
	PublicOnly       bool
	SharedOnLinkedIn bool
}

// Store persists credentials.
//
// Error contract:
//   - Insert returns wrapped sentinel.ErrDuplicateCode / ErrDuplicateToken
//     when a unique constraint rejects an identifier; this is the collision
//     signal the issuance allocator relies on
//   - Lookups return wrapped sentinel.ErrNotFound for missing rows
//   - MarkVerified and MarkSharedOnLinkedIn are conditional updates and
//     report (applied=false, err=nil) when the precondition did not hold
type Store interface {
	Insert(ctx context.Context, credential *models.Credential) error
	FindByID(ctx context.Context, credentialID id.CredentialID) (*models.Credential, error)
	FindByCode(ctx context.Context, code string) (*models.Credential, error)

	// FindPublicByToken resolves a token only when the credential is public.
	// Private and nonexistent tokens are indistinguishable to callers.
	FindPublicByToken(ctx context.Context, token string) (*models.Credential, error)

	// MarkVerified transitions issued → verified and stamps VerifiedAt,
	// guarded by status = issued so concurrent verifiers apply it at most once.
	MarkVerified(ctx context.Context, credentialID id.CredentialID, at time.Time) (applied bool, err error)

	// MarkSharedOnLinkedIn sets the monotone share flag. Never unsets.
	MarkSharedOnLinkedIn(ctx context.Context, credentialID id.CredentialID) error

	Update(ctx context.Context, credential *models.Credential) error
	Delete(ctx context.Context, credentialID id.CredentialID) error

	ListByLearner(ctx context.Context, learnerID id.UserID, publicOnly bool, offset, limit int) ([]*models.Credential, error)
	ListByIssuer(ctx context.Context, issuerID id.UserID, offset, limit int) ([]*models.Credential, error)
	Count(ctx context.Context, filter Filter) (int, error)
}
