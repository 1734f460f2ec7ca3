// Package models defines the credential aggregate and its lifecycle.
package models

import (
	"time"

	id "skillpass/pkg/domain"
)

// Status is the credential lifecycle state.
//
// pending → issued → verified, with revoked and expired reachable from
// issued or verified. The issued → verified transition is the only one
// driven by public user action and is applied as a conditional update so
// concurrent verifiers never clobber it.
type Status string

const (
	StatusPending  Status = "pending"
	StatusIssued   Status = "issued"
	StatusVerified Status = "verified"
	StatusRevoked  Status = "revoked"
	StatusExpired  Status = "expired"
)

// CanTransition reports whether the lifecycle permits moving to the target state.
func (s Status) CanTransition(target Status) bool {
	switch target {
	case StatusIssued:
		return s == StatusPending
	case StatusVerified:
		return s == StatusIssued
	case StatusRevoked, StatusExpired:
		return s == StatusIssued || s == StatusVerified
	default:
		return false
	}
}

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s == StatusRevoked || s == StatusExpired
}

// Credential is the central entity: a badge or certificate issued to a
// learner by an issuer, publicly verifiable by code or token.
//
// Invariants:
//   - VerificationCode and PublicToken are globally unique and immutable
//     once assigned
//   - Exactly one learner and one issuer
//   - ExpiryDate, if present, is never before CompletionDate
type Credential struct {
	ID         id.CredentialID
	LearnerID  id.UserID
	IssuerID   id.UserID
	TemplateID id.TemplateID // nil when issued ad hoc

	Title         string
	Description   string
	Skills        []string
	SkillCategory string
	Tags          []string
	EvidenceURL   string

	CompletionDate *time.Time
	ExpiryDate     *time.Time
	IssuedAt       time.Time
	UpdatedAt      time.Time
	VerifiedAt     *time.Time // set at most once, by the first successful verification

	Status           Status
	IsPublic         bool
	SharedOnLinkedIn bool

	VerificationCode string
	PublicToken      string
}

// EffectiveStatus derives the externally visible status: a credential past
// its expiry date reads as expired without a background job rewriting rows.
func (c *Credential) EffectiveStatus(now time.Time) Status {
	if (c.Status == StatusIssued || c.Status == StatusVerified) &&
		c.ExpiryDate != nil && c.ExpiryDate.Before(now) {
		return StatusExpired
	}
	return c.Status
}

// PublicView is the redacted projection returned for public token lookups.
// It deliberately omits internal identifiers, owner identifiers, and the
// verification code.
type PublicView struct {
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Skills         []string   `json:"skills,omitempty"`
	SkillCategory  string     `json:"skill_category,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	Status         string     `json:"status"`
	IssuedAt       time.Time  `json:"issued_at"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
	IssuerName     string     `json:"issuer_name"`
	LearnerName    string     `json:"learner_name"`
}

// NewPublicView builds the redacted projection for a credential.
func NewPublicView(c *Credential, issuerName, learnerName string, now time.Time) *PublicView {
	return &PublicView{
		Title:          c.Title,
		Description:    c.Description,
		Skills:         append([]string(nil), c.Skills...),
		SkillCategory:  c.SkillCategory,
		Tags:           append([]string(nil), c.Tags...),
		Status:         string(c.EffectiveStatus(now)),
		IssuedAt:       c.IssuedAt,
		CompletionDate: c.CompletionDate,
		ExpiryDate:     c.ExpiryDate,
		IssuerName:     issuerName,
		LearnerName:    learnerName,
	}
}

// Clone returns a deep copy so store reads never alias caller state.
func (c *Credential) Clone() *Credential {
	out := *c
	out.Skills = append([]string(nil), c.Skills...)
	out.Tags = append([]string(nil), c.Tags...)
	if c.CompletionDate != nil {
		d := *c.CompletionDate
		out.CompletionDate = &d
	}
	if c.ExpiryDate != nil {
		d := *c.ExpiryDate
		out.ExpiryDate = &d
	}
	if c.VerifiedAt != nil {
		d := *c.VerifiedAt
		out.VerifiedAt = &d
	}
	return &out
}
