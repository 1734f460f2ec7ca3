// Package seeder populates demo accounts and templates for local runs.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	accountModels "skillpass/internal/account/models"
	accountStore "skillpass/internal/account/store"
	templateModels "skillpass/internal/template/models"
	templateStore "skillpass/internal/template/store"
	id "skillpass/pkg/domain"
	"skillpass/pkg/secrets"
	"skillpass/pkg/sentinel"
)

const demoPassword = "skillpass-demo"

// Seed inserts a demo issuer, a demo learner, and two badge templates.
// Re-running against an already seeded store is a no-op.
func Seed(ctx context.Context, accounts accountStore.Store, templates templateStore.Store, logger *slog.Logger) error {
	if _, err := accounts.FindByEmail(ctx, "issuer@skillpass.dev"); err == nil {
		logger.Info("demo data already present, skipping seed")
		return nil
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return fmt.Errorf("check existing seed: %w", err)
	}

	hash, err := secrets.HashPassword(demoPassword)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	now := time.Now()
	issuer := &accountModels.Account{
		ID:             id.NewUserID(),
		Email:          "issuer@skillpass.dev",
		HashedPassword: hash,
		Role:           id.RoleIssuer,
		FirstName:      "Tech",
		LastName:       "Academy",
		PublicProfile:  true,
		CreatedAt:      now,
	}
	learner := &accountModels.Account{
		ID:             id.NewUserID(),
		Email:          "learner@skillpass.dev",
		HashedPassword: hash,
		Role:           id.RoleLearner,
		FirstName:      "Jordan",
		LastName:       "Rivera",
		PublicProfile:  true,
		CreatedAt:      now,
	}
	for _, account := range []*accountModels.Account{issuer, learner} {
		if err := accounts.Save(ctx, account); err != nil {
			return fmt.Errorf("seed account %s: %w", account.Email, err)
		}
	}

	seedTemplates := []*templateModels.Template{
		{
			ID:                id.NewTemplateID(),
			IssuerID:          issuer.ID,
			Name:              "Python Developer Certification",
			Description:       "Covers core Python, testing, and packaging.",
			BadgeType:         templateModels.BadgeTypeCertification,
			Criteria:          "Pass the capstone project review.",
			Skills:            []string{"python", "testing", "packaging"},
			EstimatedDuration: "12 weeks",
			Tags:              []string{"backend", "programming"},
			Active:            true,
			CreatedAt:         now,
		},
		{
			ID:          id.NewTemplateID(),
			IssuerID:    issuer.ID,
			Name:        "Cloud Fundamentals",
			Description: "Introductory cloud infrastructure badge.",
			BadgeType:   templateModels.BadgeTypeSkillBadge,
			Criteria:    "Complete all four lab exercises.",
			Skills:      []string{"cloud", "networking"},
			Tags:        []string{"infrastructure"},
			Active:      true,
			CreatedAt:   now,
		},
	}
	for _, template := range seedTemplates {
		if err := templates.Save(ctx, template); err != nil {
			return fmt.Errorf("seed template %s: %w", template.Name, err)
		}
	}

	logger.Info("seeded demo data",
		"issuer_id", issuer.ID,
		"learner_id", learner.ID,
		"templates", len(seedTemplates),
	)
	return nil
}
