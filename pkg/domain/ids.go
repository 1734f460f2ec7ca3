// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "skillpass/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing a UserID where a CredentialID is expected.
type (
	UserID       uuid.UUID
	CredentialID uuid.UUID
	TemplateID   uuid.UUID
)

// Parse functions - use at trust boundaries (handlers, API inputs).

func ParseUserID(s string) (UserID, error) {
	id, err := parseUUID(s, "user ID")
	return UserID(id), err
}

func ParseCredentialID(s string) (CredentialID, error) {
	id, err := parseUUID(s, "credential ID")
	return CredentialID(id), err
}

func ParseTemplateID(s string) (TemplateID, error) {
	id, err := parseUUID(s, "template ID")
	return TemplateID(id), err
}

// New functions - allocate fresh identifiers at creation sites.

func NewUserID() UserID             { return UserID(uuid.New()) }
func NewCredentialID() CredentialID { return CredentialID(uuid.New()) }
func NewTemplateID() TemplateID     { return TemplateID(uuid.New()) }

// String methods - for logging and persistence.

func (id UserID) String() string       { return uuid.UUID(id).String() }
func (id CredentialID) String() string { return uuid.UUID(id).String() }
func (id TemplateID) String() string   { return uuid.UUID(id).String() }

// IsNil checks - used for service-layer validation.

func (id UserID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id CredentialID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id TemplateID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }

// parseUUID is the shared validation logic.
// Nil UUIDs are allowed here; services use IsNil() for business validation so
// store lookups can still return proper "not found" errors.
func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label+" format")
	}
	return id, nil
}
