package audit

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/roamline/TripBooker/internal/domain"
	"github.com/roamline/TripBooker/internal/service/ports"
)

type entryInserter interface {
	Insert(ctx context.Context, e domain.AuditEntry) error
}

// Recorder persists audit entries to the audit_log table. Failures are
// logged and swallowed: the audit trail must never fail a booking operation.
type Recorder struct {
	repo   entryInserter
	logger logger.Logger
}

func NewRecorder(repo entryInserter, logger logger.Logger) *Recorder {
	return &Recorder{repo: repo, logger: logger}
}

func (r *Recorder) Record(ctx context.Context, e domain.AuditEntry) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	if err := r.repo.Insert(ctx, e); err != nil {
		r.logger.Error("failed to write audit entry",
			logger.String("action", e.Action),
			logger.String("booking_id", e.BookingID),
			logger.String("error", err.Error()),
		)
	}
}

// Fanout delivers one entry to several sinks in order.
type Fanout struct {
	sinks []ports.AuditNotifier
}

func NewFanout(sinks ...ports.AuditNotifier) *Fanout {
	return &Fanout{sinks: sinks}
}

func (f *Fanout) Record(ctx context.Context, e domain.AuditEntry) {
	for _, s := range f.sinks {
		s.Record(ctx, e)
	}
}
