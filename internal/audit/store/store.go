package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/freightdesk/internal/audit"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Append inserts the entry. Entries are never updated or deleted.
func (s *Store) Append(ctx context.Context, e *audit.Entry) error {
	query := `
		INSERT INTO audit_logs (tenant_id, entity_type, entity_id, action, new_value, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	newValue := []byte(e.NewValue)
	if len(newValue) == 0 {
		newValue = []byte("{}")
	}

	err := s.db.QueryRowContext(ctx, query,
		e.TenantID,
		e.EntityType,
		e.EntityID,
		e.Action,
		newValue,
		e.Notes,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("appending audit entry: %w", err)
	}

	return nil
}
