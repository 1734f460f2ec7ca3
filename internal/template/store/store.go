package store

import (
	"context"

	"skillpass/internal/template/models"
	id "skillpass/pkg/domain"
)

// Store persists badge templates. Implementations return wrapped
// sentinel.ErrNotFound for missing templates.
type Store interface {
	Save(ctx context.Context, template *models.Template) error
	FindByID(ctx context.Context, templateID id.TemplateID) (*models.Template, error)
	ListByIssuer(ctx context.Context, issuerID id.UserID, activeOnly bool) ([]*models.Template, error)
}
