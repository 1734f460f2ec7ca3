package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"skillpass/internal/template/models"
	id "skillpass/pkg/domain"
	"skillpass/pkg/sentinel"
)

// PostgresStore persists badge templates in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed template store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, template *models.Template) error {
	skills, err := json.Marshal(template.Skills)
	if err != nil {
		return fmt.Errorf("marshal template skills: %w", err)
	}
	tags, err := json.Marshal(template.Tags)
	if err != nil {
		return fmt.Errorf("marshal template tags: %w", err)
	}

	query := `
		INSERT INTO badge_templates (id, issuer_id, name, description, badge_type, criteria,
			skills, image_url, estimated_duration, prerequisites, tags, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			badge_type = EXCLUDED.badge_type,
			criteria = EXCLUDED.criteria,
			skills = EXCLUDED.skills,
			image_url = EXCLUDED.image_url,
			estimated_duration = EXCLUDED.estimated_duration,
			prerequisites = EXCLUDED.prerequisites,
			tags = EXCLUDED.tags,
			active = EXCLUDED.active
	`
	_, err = s.db.ExecContext(ctx, query,
		template.ID.String(),
		template.IssuerID.String(),
		template.Name,
		template.Description,
		string(template.BadgeType),
		template.Criteria,
		skills,
		template.ImageURL,
		template.EstimatedDuration,
		template.Prerequisites,
		tags,
		template.Active,
		template.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save template: %w", err)
	}
	return nil
}

const templateColumns = `id, issuer_id, name, description, badge_type, criteria,
	skills, image_url, estimated_duration, prerequisites, tags, active, created_at`

func (s *PostgresStore) FindByID(ctx context.Context, templateID id.TemplateID) (*models.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM badge_templates WHERE id = $1`
	template, err := scanTemplate(s.db.QueryRowContext(ctx, query, templateID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("template not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find template by id: %w", err)
	}
	return template, nil
}

func (s *PostgresStore) ListByIssuer(ctx context.Context, issuerID id.UserID, activeOnly bool) ([]*models.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM badge_templates WHERE issuer_id = $1`
	if activeOnly {
		query += ` AND active`
	}
	query += ` ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, issuerID.String())
	if err != nil {
		return nil, fmt.Errorf("list templates by issuer: %w", err)
	}
	defer rows.Close()

	var out []*models.Template
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template row: %w", err)
		}
		out = append(out, template)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list templates by issuer: %w", err)
	}
	return out, nil
}

type templateRow interface {
	Scan(dest ...any) error
}

func scanTemplate(row templateRow) (*models.Template, error) {
	var template models.Template
	var rawID, rawIssuerID, rawBadgeType string
	var skills, tags []byte
	if err := row.Scan(&rawID, &rawIssuerID, &template.Name, &template.Description,
		&rawBadgeType, &template.Criteria, &skills, &template.ImageURL,
		&template.EstimatedDuration, &template.Prerequisites, &tags,
		&template.Active, &template.CreatedAt); err != nil {
		return nil, err
	}

	templateID, err := id.ParseTemplateID(rawID)
	if err != nil {
		return nil, fmt.Errorf("parse template id: %w", err)
	}
	issuerID, err := id.ParseUserID(rawIssuerID)
	if err != nil {
		return nil, fmt.Errorf("parse template issuer id: %w", err)
	}
	badgeType, err := models.ParseBadgeType(rawBadgeType)
	if err != nil {
		return nil, fmt.Errorf("parse badge type: %w", err)
	}
	template.ID = templateID
	template.IssuerID = issuerID
	template.BadgeType = badgeType

	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &template.Skills); err != nil {
			return nil, fmt.Errorf("unmarshal template skills: %w", err)
		}
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &template.Tags); err != nil {
			return nil, fmt.Errorf("unmarshal template tags: %w", err)
		}
	}
	return &template, nil
}
