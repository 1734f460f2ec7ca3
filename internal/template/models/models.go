// Package models defines badge templates, the reusable issuance blueprints
// owned by issuers.
package models

import (
	"time"

	id "skillpass/pkg/domain"
	dErrors "skillpass/pkg/domain-errors"
)

// BadgeType classifies what a template attests.
type BadgeType string

const (
	BadgeTypeCertification    BadgeType = "certification"
	BadgeTypeCourseCompletion BadgeType = "course_completion"
	BadgeTypeSkillBadge       BadgeType = "skill_badge"
	BadgeTypeAchievement      BadgeType = "achievement"
	BadgeTypeLicense          BadgeType = "license"
)

// ParseBadgeType validates a badge type string against the closed set.
func ParseBadgeType(s string) (BadgeType, error) {
	switch BadgeType(s) {
	case BadgeTypeCertification, BadgeTypeCourseCompletion, BadgeTypeSkillBadge,
		BadgeTypeAchievement, BadgeTypeLicense:
		return BadgeType(s), nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown badge type: "+s)
	}
}

// Template is an issuer-owned blueprint for repeatable credential issuance.
// Issued credentials snapshot template fields at issuance time, so editing a
// template never retroactively alters credentials already issued from it.
type Template struct {
	ID                id.TemplateID
	IssuerID          id.UserID
	Name              string
	Description       string
	BadgeType         BadgeType
	Criteria          string
	Skills            []string
	ImageURL          string
	EstimatedDuration string
	Prerequisites     string
	Tags              []string
	Active            bool
	CreatedAt         time.Time
}

// OwnedBy reports whether the template belongs to the given issuer.
func (t *Template) OwnedBy(issuerID id.UserID) bool {
	return t.IssuerID == issuerID
}
