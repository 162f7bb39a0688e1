package ports

import (
	"context"

	"github.com/roamline/TripBooker/internal/domain"
)

// AuditNotifier records booking state transitions. It is strictly best-effort:
// implementations log failures internally and never propagate them, so a
// broken audit sink cannot fail a booking operation.
type AuditNotifier interface {
	Record(ctx context.Context, e domain.AuditEntry)
}
