package handler

import (
	"strings"
	"time"

	"skillpass/internal/credential/models"
	"skillpass/internal/credential/service"
	id "skillpass/pkg/domain"
	dErrors "skillpass/pkg/domain-errors"
)

// IssueRequest creates an ad hoc credential for a learner.
type IssueRequest struct {
	LearnerEmail   string     `json:"learner_email"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Skills         []string   `json:"skills,omitempty"`
	SkillCategory  string     `json:"skill_category,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	EvidenceURL    string     `json:"evidence_url,omitempty"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
	IsPublic       bool       `json:"is_public"`
}

func (r *IssueRequest) Normalize() {
	r.LearnerEmail = strings.ToLower(strings.TrimSpace(r.LearnerEmail))
	r.Title = strings.TrimSpace(r.Title)
}

func (r *IssueRequest) Validate() error {
	if r.LearnerEmail == "" {
		return dErrors.New(dErrors.CodeValidation, "learner_email is required")
	}
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	return nil
}

func (r *IssueRequest) toInput() service.IssueInput {
	return service.IssueInput{
		LearnerEmail:   r.LearnerEmail,
		Title:          r.Title,
		Description:    r.Description,
		Skills:         r.Skills,
		SkillCategory:  r.SkillCategory,
		Tags:           r.Tags,
		EvidenceURL:    r.EvidenceURL,
		CompletionDate: r.CompletionDate,
		ExpiryDate:     r.ExpiryDate,
		IsPublic:       r.IsPublic,
	}
}

// TemplateIssueRequest issues a credential from one of the issuer's badge
// templates.
type TemplateIssueRequest struct {
	TemplateID     string     `json:"template_id"`
	LearnerEmail   string     `json:"learner_email"`
	EvidenceURL    string     `json:"evidence_url,omitempty"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
	IsPublic       bool       `json:"is_public"`
}

func (r *TemplateIssueRequest) Normalize() {
	r.TemplateID = strings.TrimSpace(r.TemplateID)
	r.LearnerEmail = strings.ToLower(strings.TrimSpace(r.LearnerEmail))
}

func (r *TemplateIssueRequest) Validate() error {
	if r.TemplateID == "" {
		return dErrors.New(dErrors.CodeValidation, "template_id is required")
	}
	if r.LearnerEmail == "" {
		return dErrors.New(dErrors.CodeValidation, "learner_email is required")
	}
	if _, err := id.ParseTemplateID(r.TemplateID); err != nil {
		return dErrors.New(dErrors.CodeValidation, "template_id is not a valid id")
	}
	return nil
}

func (r *TemplateIssueRequest) toInput() service.TemplateIssueInput {
	templateID, _ := id.ParseTemplateID(r.TemplateID)
	return service.TemplateIssueInput{
		TemplateID:     templateID,
		LearnerEmail:   r.LearnerEmail,
		EvidenceURL:    r.EvidenceURL,
		CompletionDate: r.CompletionDate,
		ExpiryDate:     r.ExpiryDate,
		IsPublic:       r.IsPublic,
	}
}

// UpdateRequest edits issuer-editable credential content. Absent fields are
// left unchanged.
type UpdateRequest struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Skills        []string   `json:"skills,omitempty"`
	SkillCategory *string    `json:"skill_category,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	EvidenceURL   *string    `json:"evidence_url,omitempty"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	IsPublic      *bool      `json:"is_public,omitempty"`
}

func (r *UpdateRequest) toInput() service.UpdateInput {
	return service.UpdateInput{
		Title:         r.Title,
		Description:   r.Description,
		Skills:        r.Skills,
		SkillCategory: r.SkillCategory,
		Tags:          r.Tags,
		EvidenceURL:   r.EvidenceURL,
		ExpiryDate:    r.ExpiryDate,
		IsPublic:      r.IsPublic,
	}
}

// VerifyRequest resolves a verification code.
type VerifyRequest struct {
	Code string `json:"code"`
}

func (r *VerifyRequest) Normalize() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
}

func (r *VerifyRequest) Validate() error {
	if r.Code == "" {
		return dErrors.New(dErrors.CodeValidation, "code is required")
	}
	return nil
}

// ShareRequest records a share to an external platform.
type ShareRequest struct {
	Platform string `json:"platform"`
}

func (r *ShareRequest) Normalize() {
	r.Platform = strings.ToLower(strings.TrimSpace(r.Platform))
}

func (r *ShareRequest) Validate() error {
	if r.Platform == "" {
		return dErrors.New(dErrors.CodeValidation, "platform is required")
	}
	return nil
}

// CredentialResponse is the owner-facing projection of a credential.
type CredentialResponse struct {
	ID               string     `json:"id"`
	LearnerID        string     `json:"learner_id"`
	IssuerID         string     `json:"issuer_id"`
	TemplateID       string     `json:"template_id,omitempty"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Skills           []string   `json:"skills,omitempty"`
	SkillCategory    string     `json:"skill_category,omitempty"`
	Tags             []string   `json:"tags,omitempty"`
	EvidenceURL      string     `json:"evidence_url,omitempty"`
	CompletionDate   *time.Time `json:"completion_date,omitempty"`
	ExpiryDate       *time.Time `json:"expiry_date,omitempty"`
	IssuedAt         time.Time  `json:"issued_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	VerifiedAt       *time.Time `json:"verified_at,omitempty"`
	Status           string     `json:"status"`
	IsPublic         bool       `json:"is_public"`
	SharedOnLinkedIn bool       `json:"shared_on_linkedin"`
	VerificationCode string     `json:"verification_code"`
	PublicToken      string     `json:"public_token"`
}

func toCredentialResponse(c *models.Credential, now time.Time) *CredentialResponse {
	resp := &CredentialResponse{
		ID:               c.ID.String(),
		LearnerID:        c.LearnerID.String(),
		IssuerID:         c.IssuerID.String(),
		Title:            c.Title,
		Description:      c.Description,
		Skills:           c.Skills,
		SkillCategory:    c.SkillCategory,
		Tags:             c.Tags,
		EvidenceURL:      c.EvidenceURL,
		CompletionDate:   c.CompletionDate,
		ExpiryDate:       c.ExpiryDate,
		IssuedAt:         c.IssuedAt,
		UpdatedAt:        c.UpdatedAt,
		VerifiedAt:       c.VerifiedAt,
		Status:           string(c.EffectiveStatus(now)),
		IsPublic:         c.IsPublic,
		SharedOnLinkedIn: c.SharedOnLinkedIn,
		VerificationCode: c.VerificationCode,
		PublicToken:      c.PublicToken,
	}
	if !c.TemplateID.IsNil() {
		resp.TemplateID = c.TemplateID.String()
	}
	return resp
}

func toCredentialListResponse(credentials []*models.Credential, now time.Time) []*CredentialResponse {
	out := make([]*CredentialResponse, 0, len(credentials))
	for _, c := range credentials {
		out = append(out, toCredentialResponse(c, now))
	}
	return out
}

// VerifyResponse is the outcome of a code verification.
type VerifyResponse struct {
	Valid             bool                `json:"valid"`
	FirstVerification bool                `json:"first_verification"`
	Credential        *CredentialResponse `json:"credential"`
}
