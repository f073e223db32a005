package outbound

import (
	"context"
	"time"

	"github.com/ameerhamza-malik/ItemManagement/internal/domain/shared"
)

// AuditEvent records one item write for the audit trail
type AuditEvent struct {
	ItemID     int64              `json:"item_id"`
	ActorID    int64              `json:"actor_id"`
	Action     shared.AuditAction `json:"action"`
	OccurredAt time.Time          `json:"occurred_at"`
}

// AuditRecorder defines the interface for recording item writes.
// Recording is best-effort and asynchronous; a failed append never fails
// the request that produced it.
type AuditRecorder interface {
	// Record enqueues an audit event for persistence
	Record(event AuditEvent)

	// Stop drains pending events and releases workers
	Stop()
}

// AuditRepository defines the interface for audit trail persistence
type AuditRepository interface {
	// Append persists a single audit event
	Append(ctx context.Context, event AuditEvent) error
}
