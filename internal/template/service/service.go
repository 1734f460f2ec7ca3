// Package service implements issuer-owned badge template management.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"skillpass/internal/platform/metrics"
	"skillpass/internal/template/models"
	id "skillpass/pkg/domain"
	dErrors "skillpass/pkg/domain-errors"
	"skillpass/pkg/sentinel"
)

// TemplateStore defines the persistence interface for badge templates.
// Error Contract: FindByID returns wrapped sentinel.ErrNotFound when the
// template doesn't exist.
type TemplateStore interface {
	Save(ctx context.Context, template *models.Template) error
	FindByID(ctx context.Context, templateID id.TemplateID) (*models.Template, error)
	ListByIssuer(ctx context.Context, issuerID id.UserID, activeOnly bool) ([]*models.Template, error)
}

// CreateInput carries the content of a new badge template.
type CreateInput struct {
	Name              string
	Description       string
	BadgeType         models.BadgeType
	Criteria          string
	Skills            []string
	ImageURL          string
	EstimatedDuration string
	Prerequisites     string
	Tags              []string
}

// UpdateInput edits template content. Nil fields are left unchanged.
// Issued credentials are never touched: they carry their own snapshot.
type UpdateInput struct {
	Name              *string
	Description       *string
	Criteria          *string
	Skills            []string
	ImageURL          *string
	EstimatedDuration *string
	Prerequisites     *string
	Tags              []string
	Active            *bool
}

type Service struct {
	templates TemplateStore
	logger    *slog.Logger
	metrics   *metrics.Metrics
	nowFunc   func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func NewService(templates TemplateStore, opts ...Option) *Service {
	svc := &Service{templates: templates, nowFunc: time.Now}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}

// Create registers a new active template owned by the issuer.
func (s *Service) Create(ctx context.Context, issuerID id.UserID, input CreateInput) (*models.Template, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "name must not be empty")
	}

	template := &models.Template{
		ID:                id.NewTemplateID(),
		IssuerID:          issuerID,
		Name:              strings.TrimSpace(input.Name),
		Description:       input.Description,
		BadgeType:         input.BadgeType,
		Criteria:          input.Criteria,
		Skills:            append([]string(nil), input.Skills...),
		ImageURL:          input.ImageURL,
		EstimatedDuration: input.EstimatedDuration,
		Prerequisites:     input.Prerequisites,
		Tags:              append([]string(nil), input.Tags...),
		Active:            true,
		CreatedAt:         s.nowFunc(),
	}
	if err := s.templates.Save(ctx, template); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not save badge template")
	}

	if s.metrics != nil {
		s.metrics.TemplatesCreated.Inc()
	}
	s.logger.Info("badge template created", "template_id", template.ID, "issuer_id", issuerID)
	return template, nil
}

// Get returns a template to its owning issuer.
func (s *Service) Get(ctx context.Context, issuerID id.UserID, templateID id.TemplateID) (*models.Template, error) {
	return s.owned(ctx, issuerID, templateID)
}

// List returns the issuer's templates, optionally only active ones.
func (s *Service) List(ctx context.Context, issuerID id.UserID, activeOnly bool) ([]*models.Template, error) {
	out, err := s.templates.ListByIssuer(ctx, issuerID, activeOnly)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not list badge templates")
	}
	return out, nil
}

// Update applies content edits from the owning issuer.
func (s *Service) Update(ctx context.Context, issuerID id.UserID, templateID id.TemplateID, input UpdateInput) (*models.Template, error) {
	template, err := s.owned(ctx, issuerID, templateID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, dErrors.New(dErrors.CodeValidation, "name must not be empty")
		}
		template.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		template.Description = *input.Description
	}
	if input.Criteria != nil {
		template.Criteria = *input.Criteria
	}
	if input.Skills != nil {
		template.Skills = append([]string(nil), input.Skills...)
	}
	if input.ImageURL != nil {
		template.ImageURL = *input.ImageURL
	}
	if input.EstimatedDuration != nil {
		template.EstimatedDuration = *input.EstimatedDuration
	}
	if input.Prerequisites != nil {
		template.Prerequisites = *input.Prerequisites
	}
	if input.Tags != nil {
		template.Tags = append([]string(nil), input.Tags...)
	}
	if input.Active != nil {
		template.Active = *input.Active
	}

	if err := s.templates.Save(ctx, template); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not update badge template")
	}
	return template, nil
}

// Deactivate retires a template from further issuance.
func (s *Service) Deactivate(ctx context.Context, issuerID id.UserID, templateID id.TemplateID) (*models.Template, error) {
	inactive := false
	return s.Update(ctx, issuerID, templateID, UpdateInput{Active: &inactive})
}

func (s *Service) owned(ctx context.Context, issuerID id.UserID, templateID id.TemplateID) (*models.Template, error) {
	template, err := s.templates.FindByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "badge template not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not load badge template")
	}
	// Foreign templates read as missing so their existence is not disclosed.
	if !template.OwnedBy(issuerID) {
		return nil, dErrors.New(dErrors.CodeNotFound, "badge template not found")
	}
	return template, nil
}
