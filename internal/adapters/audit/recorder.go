package audit

import (
	"context"
	"time"

	"github.com/ameerhamza-malik/ItemManagement/internal/ports/outbound"

	"github.com/alitto/pond"
	"github.com/rs/zerolog"
)

// Recorder appends item write events to the audit trail through a bounded
// worker pool so request latency never depends on audit persistence.
// Appends are best-effort: a failed write is logged and dropped.
type Recorder struct {
	repo   outbound.AuditRepository
	pool   *pond.WorkerPool
	logger zerolog.Logger
}

type RecorderParams struct {
	Repo        outbound.AuditRepository
	MaxWorkers  int
	MaxCapacity int
	Logger      zerolog.Logger
}

// NewRecorder creates a new asynchronous audit recorder
func NewRecorder(params RecorderParams) *Recorder {
	return &Recorder{
		repo:   params.Repo,
		pool:   pond.New(params.MaxWorkers, params.MaxCapacity),
		logger: params.Logger.With().Str("component", "audit_recorder").Logger(),
	}
}

// Record enqueues an audit event for persistence
func (r *Recorder) Record(event outbound.AuditEvent) {
	submitted := r.pool.TrySubmit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := r.repo.Append(ctx, event); err != nil {
			r.logger.Error().Err(err).
				Int64("item_id", event.ItemID).
				Str("action", string(event.Action)).
				Msg("Failed to append audit event")
		}
	})

	if !submitted {
		r.logger.Warn().
			Int64("item_id", event.ItemID).
			Str("action", string(event.Action)).
			Msg("Audit queue full, event dropped")
	}
}

// Stop drains pending events and releases workers
func (r *Recorder) Stop() {
	r.pool.StopAndWait()
}
