// Package models defines the account entity consumed by the issuance workflow.
package models

import (
	"time"

	id "skillpass/pkg/domain"
)

// Account is a registered user of the platform. The credential workflow only
// reads accounts; signup and profile management live outside this service.
type Account struct {
	ID             id.UserID
	Email          string
	HashedPassword string
	Role           id.Role
	FirstName      string
	LastName       string
	PublicProfile  bool
	CreatedAt      time.Time
}

// DisplayName returns the human-readable name for public projections.
func (a *Account) DisplayName() string {
	switch {
	case a.FirstName != "" && a.LastName != "":
		return a.FirstName + " " + a.LastName
	case a.FirstName != "":
		return a.FirstName
	default:
		return a.Email
	}
}
