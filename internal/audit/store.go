package audit

import (
	"context"

	id "skillpass/pkg/domain"
)

// Store persists audit events. Append-only: there is no update or delete.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByCredential(ctx context.Context, credentialID id.CredentialID) ([]Event, error)
	CountByCredential(ctx context.Context, credentialID id.CredentialID, kind Kind) (int, error)
}
