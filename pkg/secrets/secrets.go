// Package secrets handles password hashing for stored accounts. Accounts are
// provisioned out of band (or seeded); there is no login flow in this service,
// so the hash only has to survive until the external identity provider takes
// over verification.
package secrets

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	dErrors "skillpass/pkg/domain-errors"
)

// HashPassword creates a bcrypt hash suitable for the accounts table.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", dErrors.New(dErrors.CodeValidation, "password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", dErrors.New(dErrors.CodeValidation, "password is too long")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not hash password")
	}
	return string(hashed), nil
}

// VerifyPassword checks a plaintext password against a stored bcrypt hash.
func VerifyPassword(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return dErrors.New(dErrors.CodeUnauthorized, "invalid password")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not verify password")
	}
	return nil
}
