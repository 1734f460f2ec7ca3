// Package token issues and validates the bearer tokens that protect
// issuer-scoped endpoints. It only consumes credentials minted elsewhere;
// there is no login flow in this service.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	id "skillpass/pkg/domain"
	dErrors "skillpass/pkg/domain-errors"
)

const issuer = "skillpass"

// Claims carries the authenticated account identity and role.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Service handles JWT creation and validation.
type Service struct {
	signingKey []byte
	ttl        time.Duration
}

func NewService(signingKey string, ttl time.Duration) *Service {
	return &Service{signingKey: []byte(signingKey), ttl: ttl}
}

// Generate mints a signed token for the given account. Used by the seeder and
// by tests; production tokens come from the external identity provider sharing
// the signing key.
func (s *Service) Generate(userID id.UserID, role id.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID.String(),
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not sign token")
	}
	return signed, nil
}

// Validate parses and verifies a bearer token, returning its claims.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "unexpected signing method")
		}
		return s.signingKey, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	return claims, nil
}
