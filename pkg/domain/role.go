package domain

import dErrors "skillpass/pkg/domain-errors"

// Role is the closed set of account roles. Handlers parse incoming role
// strings exactly once at the API boundary; everything past that point
// switches on the typed value.
type Role string

const (
	RoleLearner  Role = "learner"
	RoleIssuer   Role = "issuer"
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"
)

// ParseRole validates a role string against the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleLearner, RoleIssuer, RoleEmployer, RoleAdmin:
		return Role(s), nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown role: "+s)
	}
}

func (r Role) String() string { return string(r) }

// CanIssue reports whether accounts with this role may issue credentials.
func (r Role) CanIssue() bool {
	return r == RoleIssuer || r == RoleAdmin
}
