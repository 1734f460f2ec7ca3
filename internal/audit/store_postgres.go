package audit

import (
	"context"
	"database/sql"
	"fmt"

	id "skillpass/pkg/domain"
)

// PostgresStore persists audit events in PostgreSQL. A single append-only
// table carries both views and shares; the kind column distinguishes them.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore constructs a PostgreSQL-backed audit store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	var actorID any
	if !event.ActorID.IsNil() {
		actorID = event.ActorID.String()
	}

	query := `
		INSERT INTO credential_events (credential_id, kind, platform, actor_id,
			viewer_ip, viewer_user_agent, viewer_browser, viewer_os, viewer_device, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(ctx, query,
		event.CredentialID.String(),
		string(event.Kind),
		event.Platform,
		actorID,
		event.Origin.IP,
		event.Origin.UserAgent,
		event.Origin.Browser,
		event.Origin.OS,
		event.Origin.Device,
		event.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByCredential(ctx context.Context, credentialID id.CredentialID) ([]Event, error) {
	query := `
		SELECT credential_id, kind, platform, actor_id,
			viewer_ip, viewer_user_agent, viewer_browser, viewer_os, viewer_device, occurred_at
		FROM credential_events
		WHERE credential_id = $1
		ORDER BY occurred_at
	`
	rows, err := s.db.QueryContext(ctx, query, credentialID.String())
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var event Event
		var rawCredentialID, rawKind string
		var rawActorID sql.NullString
		if err := rows.Scan(&rawCredentialID, &rawKind, &event.Platform, &rawActorID,
			&event.Origin.IP, &event.Origin.UserAgent, &event.Origin.Browser,
			&event.Origin.OS, &event.Origin.Device, &event.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}

		parsedCredentialID, err := id.ParseCredentialID(rawCredentialID)
		if err != nil {
			return nil, fmt.Errorf("parse audit credential id: %w", err)
		}
		event.CredentialID = parsedCredentialID
		event.Kind = Kind(rawKind)
		if rawActorID.Valid {
			actorID, err := id.ParseUserID(rawActorID.String)
			if err != nil {
				return nil, fmt.Errorf("parse audit actor id: %w", err)
			}
			event.ActorID = actorID
		}
		out = append(out, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) CountByCredential(ctx context.Context, credentialID id.CredentialID, kind Kind) (int, error) {
	query := `SELECT COUNT(*) FROM credential_events WHERE credential_id = $1 AND kind = $2`
	var count int
	if err := s.db.QueryRowContext(ctx, query, credentialID.String(), string(kind)).Scan(&count); err != nil {
		return 0, fmt.Errorf("count audit events: %w", err)
	}
	return count, nil
}
