package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/roamline/TripBooker/internal/domain"
)

// AuditRepository appends to the audit_log table. The audit trail is
// observability only; callers treat failures as non-fatal.
type AuditRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAuditRepo(db *dbpg.DB) *AuditRepository {
	return &AuditRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 2,
			Delay:    200 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AuditRepository) Insert(ctx context.Context, e domain.AuditEntry) error {
	query := `INSERT INTO audit_log (id, action, booking_id, user_id, details, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		uuid.New().String(), e.Action, e.BookingID, e.UserID, e.Details, createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
