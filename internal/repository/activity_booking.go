package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/roamline/TripBooker/internal/domain"
)

type ActivityBookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewActivityBookingRepo(db *dbpg.DB) *ActivityBookingRepository {
	return &ActivityBookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create locks the activity row so a concurrent catalog deletion cannot slip
// between the existence check and the insert.
func (r *ActivityBookingRepository) Create(ctx context.Context, b *domain.ActivityBooking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var exists string
	existsQuery := `SELECT id FROM activities WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, existsQuery, b.ActivityID).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrActivityNotFound
		}
		return fmt.Errorf("get activity: %w", err)
	}

	query := `INSERT INTO activity_bookings
	          (id, user_id, activity_id, date, people, total_price, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.UserID, b.ActivityID,
		b.Date, b.People, b.TotalPrice, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *ActivityBookingRepository) GetByID(ctx context.Context, id string) (*domain.ActivityBooking, error) {
	query := `SELECT b.id, b.user_id, b.activity_id, a.name, a.location,
	                 b.date, b.people, b.total_price, b.status, b.created_at, b.updated_at
	          FROM activity_bookings b
	          JOIN activities a ON a.id = b.activity_id
	          WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.ActivityBooking
	if err = row.Scan(
		&b.ID, &b.UserID, &b.ActivityID, &b.ActivityName, &b.ActivityLocation,
		&b.Date, &b.People, &b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *ActivityBookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.ActivityBooking, error) {
	query := `SELECT b.id, b.user_id, b.activity_id, a.name, a.location,
	                 b.date, b.people, b.total_price, b.status, b.created_at, b.updated_at
	          FROM activity_bookings b
	          JOIN activities a ON a.id = b.activity_id
	          WHERE b.user_id = $1
	          ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.ActivityBooking
	for rows.Next() {
		var b domain.ActivityBooking
		if err = rows.Scan(
			&b.ID, &b.UserID, &b.ActivityID, &b.ActivityName, &b.ActivityLocation,
			&b.Date, &b.People, &b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *ActivityBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	query := `UPDATE activity_bookings SET status = $2, updated_at = now() WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *ActivityBookingRepository) CancelStalePending(ctx context.Context, olderThan time.Time) ([]*domain.ActivityBooking, error) {
	query := `UPDATE activity_bookings
	          SET status = $1, updated_at = now()
	          WHERE status = $2 AND created_at < $3
	          RETURNING id, user_id, activity_id, date, people, total_price, status, created_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusCancelled, domain.BookingStatusPending, olderThan,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel stale bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.ActivityBooking
	for rows.Next() {
		var b domain.ActivityBooking
		if err = rows.Scan(
			&b.ID, &b.UserID, &b.ActivityID, &b.Date, &b.People,
			&b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
