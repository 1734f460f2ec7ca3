package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"skillpass/internal/credential/models"
	id "skillpass/pkg/domain"
	"skillpass/pkg/sentinel"
)

// PostgresStore persists credentials in PostgreSQL. Identifier uniqueness is
// enforced by the unique constraints on verification_code and public_token;
// Insert surfaces violations as the duplicate sentinels so the issuance
// allocator can redraw.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed credential store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const credentialColumns = `id, learner_id, issuer_id, template_id, title, description,
	skills, skill_category, tags, evidence_url, completion_date, expiry_date,
	issued_at, updated_at, verified_at, status, is_public, shared_on_linkedin,
	verification_code, public_token`

func (s *PostgresStore) Insert(ctx context.Context, credential *models.Credential) error {
	skills, err := json.Marshal(credential.Skills)
	if err != nil {
		return fmt.Errorf("marshal credential skills: %w", err)
	}
	tags, err := json.Marshal(credential.Tags)
	if err != nil {
		return fmt.Errorf("marshal credential tags: %w", err)
	}

	var templateID any
	if !credential.TemplateID.IsNil() {
		templateID = credential.TemplateID.String()
	}

	query := `
		INSERT INTO credentials (` + credentialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`
	_, err = s.db.ExecContext(ctx, query,
		credential.ID.String(),
		credential.LearnerID.String(),
		credential.IssuerID.String(),
		templateID,
		credential.Title,
		credential.Description,
		skills,
		credential.SkillCategory,
		tags,
		credential.EvidenceURL,
		credential.CompletionDate,
		credential.ExpiryDate,
		credential.IssuedAt,
		credential.UpdatedAt,
		credential.VerifiedAt,
		string(credential.Status),
		credential.IsPublic,
		credential.SharedOnLinkedIn,
		credential.VerificationCode,
		credential.PublicToken,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch {
			case strings.Contains(pgErr.ConstraintName, "verification_code"):
				return fmt.Errorf("insert credential: %w", sentinel.ErrDuplicateCode)
			case strings.Contains(pgErr.ConstraintName, "public_token"):
				return fmt.Errorf("insert credential: %w", sentinel.ErrDuplicateToken)
			}
		}
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, credentialID id.CredentialID) (*models.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE id = $1`
	return s.findOne(ctx, query, credentialID.String())
}

func (s *PostgresStore) FindByCode(ctx context.Context, code string) (*models.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE verification_code = $1`
	return s.findOne(ctx, query, code)
}

func (s *PostgresStore) FindPublicByToken(ctx context.Context, token string) (*models.Credential, error) {
	// Visibility is part of the predicate so private and unknown tokens are
	// indistinguishable to callers.
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE public_token = $1 AND is_public`
	return s.findOne(ctx, query, token)
}

func (s *PostgresStore) findOne(ctx context.Context, query string, arg any) (*models.Credential, error) {
	credential, err := scanCredential(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("credential not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}
	return credential, nil
}

func (s *PostgresStore) MarkVerified(ctx context.Context, credentialID id.CredentialID, at time.Time) (bool, error) {
	// Conditional update: the status predicate makes the transition apply at
	// most once under concurrent verifiers, and VerifiedAt is stamped by the
	// same statement so it is set at most once.
	query := `
		UPDATE credentials
		SET status = $2, verified_at = $3, updated_at = $3
		WHERE id = $1 AND status = $4
	`
	res, err := s.db.ExecContext(ctx, query,
		credentialID.String(), string(models.StatusVerified), at, string(models.StatusIssued))
	if err != nil {
		return false, fmt.Errorf("mark credential verified: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark credential verified: %w", err)
	}
	return affected == 1, nil
}

func (s *PostgresStore) MarkSharedOnLinkedIn(ctx context.Context, credentialID id.CredentialID) error {
	// Monotone flag: re-sharing is a no-op, the flag is never reset.
	query := `UPDATE credentials SET shared_on_linkedin = TRUE WHERE id = $1`
	res, err := s.db.ExecContext(ctx, query, credentialID.String())
	if err != nil {
		return fmt.Errorf("mark credential shared: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark credential shared: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("credential not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, credential *models.Credential) error {
	skills, err := json.Marshal(credential.Skills)
	if err != nil {
		return fmt.Errorf("marshal credential skills: %w", err)
	}
	tags, err := json.Marshal(credential.Tags)
	if err != nil {
		return fmt.Errorf("marshal credential tags: %w", err)
	}

	// Identifiers and ownership references are deliberately absent: they are
	// immutable once assigned.
	query := `
		UPDATE credentials
		SET title = $2, description = $3, skills = $4, skill_category = $5,
			tags = $6, evidence_url = $7, completion_date = $8, expiry_date = $9,
			status = $10, is_public = $11, updated_at = $12
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query,
		credential.ID.String(),
		credential.Title,
		credential.Description,
		skills,
		credential.SkillCategory,
		tags,
		credential.EvidenceURL,
		credential.CompletionDate,
		credential.ExpiryDate,
		string(credential.Status),
		credential.IsPublic,
		credential.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update credential: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update credential: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("credential not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, credentialID id.CredentialID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE id = $1`, credentialID.String())
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("credential not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) ListByLearner(ctx context.Context, learnerID id.UserID, publicOnly bool, offset, limit int) ([]*models.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE learner_id = $1`
	if publicOnly {
		query += ` AND is_public`
	}
	query += ` ORDER BY issued_at DESC OFFSET $2 LIMIT $3`
	return s.list(ctx, query, learnerID.String(), offset, normalizeLimit(limit))
}

func (s *PostgresStore) ListByIssuer(ctx context.Context, issuerID id.UserID, offset, limit int) ([]*models.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE issuer_id = $1 ORDER BY issued_at DESC OFFSET $2 LIMIT $3`
	return s.list(ctx, query, issuerID.String(), offset, normalizeLimit(limit))
}

func (s *PostgresStore) list(ctx context.Context, query string, args ...any) ([]*models.Credential, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	defer rows.Close()

	var out []*models.Credential
	for rows.Next() {
		credential, err := scanCredential(rows)
		if err != nil {
			return nil, fmt.Errorf("scan credential row: %w", err)
		}
		out = append(out, credential)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Count(ctx context.Context, filter Filter) (int, error) {
	query := `SELECT COUNT(*) FROM credentials WHERE TRUE`
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.LearnerID != nil {
		query += ` AND learner_id = ` + arg(filter.LearnerID.String())
	}
	if filter.IssuerID != nil {
		query += ` AND issuer_id = ` + arg(filter.IssuerID.String())
	}
	if filter.Status != nil {
		query += ` AND status = ` + arg(string(*filter.Status))
	}
	if filter.PublicOnly {
		query += ` AND is_public`
	}
	if filter.SharedOnLinkedIn {
		query += ` AND shared_on_linkedin`
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count credentials: %w", err)
	}
	return count, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 100
	}
	return limit
}

type credentialRow interface {
	Scan(dest ...any) error
}

func scanCredential(row credentialRow) (*models.Credential, error) {
	var credential models.Credential
	var rawID, rawLearnerID, rawIssuerID, rawStatus string
	var rawTemplateID sql.NullString
	var skills, tags []byte
	var completionDate, expiryDate, verifiedAt sql.NullTime

	if err := row.Scan(&rawID, &rawLearnerID, &rawIssuerID, &rawTemplateID,
		&credential.Title, &credential.Description, &skills, &credential.SkillCategory,
		&tags, &credential.EvidenceURL, &completionDate, &expiryDate,
		&credential.IssuedAt, &credential.UpdatedAt, &verifiedAt, &rawStatus,
		&credential.IsPublic, &credential.SharedOnLinkedIn,
		&credential.VerificationCode, &credential.PublicToken); err != nil {
		return nil, err
	}

	credentialID, err := id.ParseCredentialID(rawID)
	if err != nil {
		return nil, fmt.Errorf("parse credential id: %w", err)
	}
	learnerID, err := id.ParseUserID(rawLearnerID)
	if err != nil {
		return nil, fmt.Errorf("parse credential learner id: %w", err)
	}
	issuerID, err := id.ParseUserID(rawIssuerID)
	if err != nil {
		return nil, fmt.Errorf("parse credential issuer id: %w", err)
	}
	credential.ID = credentialID
	credential.LearnerID = learnerID
	credential.IssuerID = issuerID
	credential.Status = models.Status(rawStatus)

	if rawTemplateID.Valid {
		templateID, err := id.ParseTemplateID(rawTemplateID.String)
		if err != nil {
			return nil, fmt.Errorf("parse credential template id: %w", err)
		}
		credential.TemplateID = templateID
	}

	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &credential.Skills); err != nil {
			return nil, fmt.Errorf("unmarshal credential skills: %w", err)
		}
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &credential.Tags); err != nil {
			return nil, fmt.Errorf("unmarshal credential tags: %w", err)
		}
	}
	if completionDate.Valid {
		credential.CompletionDate = &completionDate.Time
	}
	if expiryDate.Valid {
		credential.ExpiryDate = &expiryDate.Time
	}
	if verifiedAt.Valid {
		credential.VerifiedAt = &verifiedAt.Time
	}
	return &credential, nil
}
