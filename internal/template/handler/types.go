package handler

import (
	"strings"
	"time"

	"skillpass/internal/template/models"
	"skillpass/internal/template/service"
	dErrors "skillpass/pkg/domain-errors"
)

// CreateTemplateRequest registers a new badge template.
type CreateTemplateRequest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	BadgeType         string   `json:"badge_type"`
	Criteria          string   `json:"criteria,omitempty"`
	Skills            []string `json:"skills,omitempty"`
	ImageURL          string   `json:"image_url,omitempty"`
	EstimatedDuration string   `json:"estimated_duration,omitempty"`
	Prerequisites     string   `json:"prerequisites,omitempty"`
	Tags              []string `json:"tags,omitempty"`
}

func (r *CreateTemplateRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.BadgeType = strings.ToLower(strings.TrimSpace(r.BadgeType))
}

func (r *CreateTemplateRequest) Validate() error {
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if _, err := models.ParseBadgeType(r.BadgeType); err != nil {
		return err
	}
	return nil
}

func (r *CreateTemplateRequest) toInput() service.CreateInput {
	badgeType, _ := models.ParseBadgeType(r.BadgeType)
	return service.CreateInput{
		Name:              r.Name,
		Description:       r.Description,
		BadgeType:         badgeType,
		Criteria:          r.Criteria,
		Skills:            r.Skills,
		ImageURL:          r.ImageURL,
		EstimatedDuration: r.EstimatedDuration,
		Prerequisites:     r.Prerequisites,
		Tags:              r.Tags,
	}
}

// UpdateTemplateRequest edits template content. Absent fields are left
// unchanged.
type UpdateTemplateRequest struct {
	Name              *string  `json:"name,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Criteria          *string  `json:"criteria,omitempty"`
	Skills            []string `json:"skills,omitempty"`
	ImageURL          *string  `json:"image_url,omitempty"`
	EstimatedDuration *string  `json:"estimated_duration,omitempty"`
	Prerequisites     *string  `json:"prerequisites,omitempty"`
	Tags              []string `json:"tags,omitempty"`
	Active            *bool    `json:"active,omitempty"`
}

func (r *UpdateTemplateRequest) toInput() service.UpdateInput {
	return service.UpdateInput{
		Name:              r.Name,
		Description:       r.Description,
		Criteria:          r.Criteria,
		Skills:            r.Skills,
		ImageURL:          r.ImageURL,
		EstimatedDuration: r.EstimatedDuration,
		Prerequisites:     r.Prerequisites,
		Tags:              r.Tags,
		Active:            r.Active,
	}
}

// TemplateResponse is the issuer-facing projection of a badge template.
type TemplateResponse struct {
	ID                string    `json:"id"`
	IssuerID          string    `json:"issuer_id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	BadgeType         string    `json:"badge_type"`
	Criteria          string    `json:"criteria,omitempty"`
	Skills            []string  `json:"skills,omitempty"`
	ImageURL          string    `json:"image_url,omitempty"`
	EstimatedDuration string    `json:"estimated_duration,omitempty"`
	Prerequisites     string    `json:"prerequisites,omitempty"`
	Tags              []string  `json:"tags,omitempty"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
}

func toTemplateResponse(t *models.Template) *TemplateResponse {
	return &TemplateResponse{
		ID:                t.ID.String(),
		IssuerID:          t.IssuerID.String(),
		Name:              t.Name,
		Description:       t.Description,
		BadgeType:         string(t.BadgeType),
		Criteria:          t.Criteria,
		Skills:            t.Skills,
		ImageURL:          t.ImageURL,
		EstimatedDuration: t.EstimatedDuration,
		Prerequisites:     t.Prerequisites,
		Tags:              t.Tags,
		Active:            t.Active,
		CreatedAt:         t.CreatedAt,
	}
}

func toTemplateListResponse(templates []*models.Template) []*TemplateResponse {
	out := make([]*TemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, toTemplateResponse(t))
	}
	return out
}
