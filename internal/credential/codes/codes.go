// Package codes generates the public identifiers attached to credentials:
// a short human-typable verification code and a high-entropy URL token.
package codes

import (
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"
)

// Alphabet is the verification code character set. Uppercase plus digits
// keeps codes unambiguous when read aloud or typed from a certificate.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength is the verification code length. 36^8 candidate codes make
// birthday collisions negligible at any plausible issuance volume.
const CodeLength = 8

// GenerateCode returns a fresh verification code candidate.
// Uniqueness is not guaranteed here; the storage unique constraint is the
// authoritative check and the caller redraws on violation.
func GenerateCode() (string, error) {
	buf := make([]byte, CodeLength)
	out := make([]byte, CodeLength)
	// Rejection sampling: 252 is the largest multiple of len(Alphabet) below
	// 256, so accepted bytes are uniform over the alphabet.
	const limit = byte(252)
	filled := 0
	for filled < CodeLength {
		if _, err := rand.Read(buf[:CodeLength-filled]); err != nil {
			return "", fmt.Errorf("generate verification code: %w", err)
		}
		for _, b := range buf[:CodeLength-filled] {
			if b >= limit {
				continue
			}
			out[filled] = Alphabet[int(b)%len(Alphabet)]
			filled++
		}
	}
	return string(out), nil
}

// GenerateToken returns a fresh public URL token from the uuid v4 space.
func GenerateToken() string {
	return uuid.NewString()
}
