package memory

import (
	"sync"

	"github.com/ameerhamza-malik/ItemManagement/internal/ports/outbound"
)

// AuditRecorder captures audit events synchronously for inspection in tests
type AuditRecorder struct {
	mu     sync.Mutex
	events []outbound.AuditEvent
}

// NewAuditRecorder creates a new capturing audit recorder
func NewAuditRecorder() *AuditRecorder {
	return &AuditRecorder{}
}

// Record captures an audit event
func (r *AuditRecorder) Record(event outbound.AuditEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Stop is a no-op for the in-memory recorder
func (r *AuditRecorder) Stop() {}

// Events returns a copy of the captured events
func (r *AuditRecorder) Events() []outbound.AuditEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]outbound.AuditEvent, len(r.events))
	copy(out, r.events)
	return out
}
