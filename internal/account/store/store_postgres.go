package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"skillpass/internal/account/models"
	id "skillpass/pkg/domain"
	"skillpass/pkg/sentinel"
)

// PostgresStore persists accounts in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed account store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (id, email, hashed_password, role, first_name, last_name, public_profile, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			hashed_password = EXCLUDED.hashed_password,
			role = EXCLUDED.role,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			public_profile = EXCLUDED.public_profile
	`
	_, err := s.db.ExecContext(ctx, query,
		account.ID.String(),
		account.Email,
		account.HashedPassword,
		account.Role.String(),
		account.FirstName,
		account.LastName,
		account.PublicProfile,
		account.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("save account: %w", sentinel.ErrDuplicateEmail)
		}
		return fmt.Errorf("save account: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, userID id.UserID) (*models.Account, error) {
	query := `
		SELECT id, email, hashed_password, role, first_name, last_name, public_profile, created_at
		FROM accounts
		WHERE id = $1
	`
	return scanAccount(s.db.QueryRowContext(ctx, query, userID.String()))
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `
		SELECT id, email, hashed_password, role, first_name, last_name, public_profile, created_at
		FROM accounts
		WHERE lower(email) = lower($1)
	`
	return scanAccount(s.db.QueryRowContext(ctx, query, email))
}

func scanAccount(row *sql.Row) (*models.Account, error) {
	var account models.Account
	var rawID, rawRole string
	if err := row.Scan(&rawID, &account.Email, &account.HashedPassword, &rawRole,
		&account.FirstName, &account.LastName, &account.PublicProfile, &account.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}

	userID, err := id.ParseUserID(rawID)
	if err != nil {
		return nil, fmt.Errorf("parse account id: %w", err)
	}
	role, err := id.ParseRole(rawRole)
	if err != nil {
		return nil, fmt.Errorf("parse account role: %w", err)
	}
	account.ID = userID
	account.Role = role
	return &account, nil
}
