package db

import (
	"context"
	"fmt"

	"github.com/ameerhamza-malik/ItemManagement/internal/ports/outbound"
)

// AuditRepository implements the audit trail persistence interface
type AuditRepository struct {
	conn *Connection
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(conn *Connection) *AuditRepository {
	return &AuditRepository{conn: conn}
}

// Append persists a single audit event
func (r *AuditRepository) Append(ctx context.Context, event outbound.AuditEvent) error {
	query := `
		INSERT INTO item_audit (item_id, actor_id, action, occurred_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.conn.GetDB().ExecContext(ctx, query,
		event.ItemID,
		event.ActorID,
		event.Action,
		event.OccurredAt,
	)

	if err != nil {
		return fmt.Errorf("failed to append audit event: %w", err)
	}

	return nil
}
