// Package sentinel holds dependency-level errors. Stores return these
// (optionally wrapped) so services can translate them into domain errors
// exactly once.
package sentinel

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")

	// Identifier uniqueness violations. These are the authoritative collision
	// signal for the issuance allocator; a pre-insert existence check alone
	// would leave a window between check and insert.
	ErrDuplicateCode  = errors.New("verification code already exists")
	ErrDuplicateToken = errors.New("public token already exists")
	ErrDuplicateEmail = errors.New("email already exists")
)
