package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/roamline/TripBooker/internal/domain"
)

// exclusionViolation is raised by the GiST constraint that backstops the
// overlap check inside Create.
const exclusionViolation = "23P01"

type HotelBookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewHotelBookingRepo(db *dbpg.DB) *HotelBookingRepository {
	return &HotelBookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create atomically re-checks the hotel before inserting: the row is locked,
// the availability flag is read and overlapping active bookings are counted
// inside one transaction, so two concurrent requests cannot both win.
func (r *HotelBookingRepository) Create(ctx context.Context, b *domain.HotelBooking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var available bool
	availQuery := `SELECT available FROM hotels WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, availQuery, b.HotelID).Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrHotelNotFound
		}
		return fmt.Errorf("get hotel: %w", err)
	}
	if !available {
		return domain.ErrHotelUnavailable
	}

	var overlapping int
	overlapQuery := `SELECT COUNT(*) FROM hotel_bookings
	                 WHERE hotel_id = $1 AND status = ANY($2)
	                   AND start_date < $3 AND end_date > $4`
	if err = tx.QueryRowContext(
		ctx, overlapQuery, b.HotelID,
		pq.Array(domain.ActiveStatuses), b.EndDate, b.StartDate,
	).Scan(&overlapping); err != nil {
		return fmt.Errorf("count overlapping bookings: %w", err)
	}
	if overlapping > 0 {
		return domain.Errf(domain.ErrHotelUnavailable, "hotel is already booked for the selected dates")
	}

	query := `INSERT INTO hotel_bookings
	          (id, user_id, hotel_id, start_date, end_date, total_price, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.UserID, b.HotelID,
		b.StartDate, b.EndDate, b.TotalPrice, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == exclusionViolation {
			return domain.Errf(domain.ErrHotelUnavailable, "hotel is already booked for the selected dates")
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *HotelBookingRepository) GetByID(ctx context.Context, id string) (*domain.HotelBooking, error) {
	query := `SELECT b.id, b.user_id, b.hotel_id, h.name, h.location,
	                 b.start_date, b.end_date, b.total_price, b.status, b.created_at, b.updated_at
	          FROM hotel_bookings b
	          JOIN hotels h ON h.id = b.hotel_id
	          WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.HotelBooking
	if err = row.Scan(
		&b.ID, &b.UserID, &b.HotelID, &b.HotelName, &b.HotelLocation,
		&b.StartDate, &b.EndDate, &b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *HotelBookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.HotelBooking, error) {
	query := `SELECT b.id, b.user_id, b.hotel_id, h.name, h.location,
	                 b.start_date, b.end_date, b.total_price, b.status, b.created_at, b.updated_at
	          FROM hotel_bookings b
	          JOIN hotels h ON h.id = b.hotel_id
	          WHERE b.user_id = $1
	          ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.HotelBooking
	for rows.Next() {
		var b domain.HotelBooking
		if err = rows.Scan(
			&b.ID, &b.UserID, &b.HotelID, &b.HotelName, &b.HotelLocation,
			&b.StartDate, &b.EndDate, &b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *HotelBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	query := `UPDATE hotel_bookings SET status = $2, updated_at = now() WHERE id = $1`

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

func (r *HotelBookingRepository) CancelStalePending(ctx context.Context, olderThan time.Time) ([]*domain.HotelBooking, error) {
	query := `UPDATE hotel_bookings
	          SET status = $1, updated_at = now()
	          WHERE status = $2 AND created_at < $3
	          RETURNING id, user_id, hotel_id, start_date, end_date, total_price, status, created_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusCancelled, domain.BookingStatusPending, olderThan,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel stale bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.HotelBooking
	for rows.Next() {
		var b domain.HotelBooking
		if err = rows.Scan(
			&b.ID, &b.UserID, &b.HotelID, &b.StartDate, &b.EndDate,
			&b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
