package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"skillpass/internal/template/models"
	id "skillpass/pkg/domain"
	"skillpass/pkg/sentinel"
)

// InMemoryStore stores templates in memory for tests and local runs.
// Save copies the template so callers mutating their own value afterwards do
// not reach into the store; this is what keeps issued-credential snapshots
// honest in tests.
type InMemoryStore struct {
	mu        sync.RWMutex
	templates map[id.TemplateID]models.Template
}

// NewInMemory constructs an empty in-memory template store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{templates: make(map[id.TemplateID]models.Template)}
}

func (s *InMemoryStore) Save(_ context.Context, template *models.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[template.ID] = cloneTemplate(template)
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, templateID id.TemplateID) (*models.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if template, ok := s.templates[templateID]; ok {
		out := cloneTemplate(&template)
		return &out, nil
	}
	return nil, fmt.Errorf("template not found: %w", sentinel.ErrNotFound)
}

func (s *InMemoryStore) ListByIssuer(_ context.Context, issuerID id.UserID, activeOnly bool) ([]*models.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Template
	for _, template := range s.templates {
		if template.IssuerID != issuerID {
			continue
		}
		if activeOnly && !template.Active {
			continue
		}
		t := cloneTemplate(&template)
		out = append(out, &t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func cloneTemplate(t *models.Template) models.Template {
	out := *t
	out.Skills = append([]string(nil), t.Skills...)
	out.Tags = append([]string(nil), t.Tags...)
	return out
}
