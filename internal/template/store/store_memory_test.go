package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillpass/internal/template/models"
	id "skillpass/pkg/domain"
	"skillpass/pkg/sentinel"
)

func newTemplate(issuerID id.UserID) *models.Template {
	return &models.Template{
		ID:        id.NewTemplateID(),
		IssuerID:  issuerID,
		Name:      "Python Developer Certification",
		BadgeType: models.BadgeTypeCertification,
		Skills:    []string{"python"},
		Active:    true,
		CreatedAt: time.Now(),
	}
}

func TestSaveAndFind(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()
	template := newTemplate(id.NewUserID())

	require.NoError(t, store.Save(ctx, template))

	found, err := store.FindByID(ctx, template.ID)
	require.NoError(t, err)
	assert.Equal(t, template.Name, found.Name)

	_, err = store.FindByID(ctx, id.NewTemplateID())
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestFind_ReturnsCopy(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()
	template := newTemplate(id.NewUserID())
	require.NoError(t, store.Save(ctx, template))

	found, err := store.FindByID(ctx, template.ID)
	require.NoError(t, err)

	// Mutating a read must not leak back into the store; credential
	// snapshots depend on this.
	found.Name = "Mutated"
	found.Skills[0] = "mutated"

	fresh, err := store.FindByID(ctx, template.ID)
	require.NoError(t, err)
	assert.Equal(t, "Python Developer Certification", fresh.Name)
	assert.Equal(t, []string{"python"}, fresh.Skills)
}

func TestListByIssuer_ActiveFilter(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()
	issuerID := id.NewUserID()

	active := newTemplate(issuerID)
	retired := newTemplate(issuerID)
	retired.Active = false
	foreign := newTemplate(id.NewUserID())
	for _, template := range []*models.Template{active, retired, foreign} {
		require.NoError(t, store.Save(ctx, template))
	}

	all, err := store.ListByIssuer(ctx, issuerID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	activeOnly, err := store.ListByIssuer(ctx, issuerID, true)
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, active.ID, activeOnly[0].ID)
}

func TestSave_Overwrites(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()
	template := newTemplate(id.NewUserID())
	require.NoError(t, store.Save(ctx, template))

	edited := *template
	edited.Name = "Edited"
	require.NoError(t, store.Save(ctx, &edited))

	found, err := store.FindByID(ctx, template.ID)
	require.NoError(t, err)
	assert.Equal(t, "Edited", found.Name)
}
