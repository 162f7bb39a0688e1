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

type HotelRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewHotelRepo(db *dbpg.DB) *HotelRepository {
	return &HotelRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	query := `INSERT INTO hotels (id, name, location, price_per_night, available, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		h.ID, h.Name, h.Location, h.PricePerNight, h.Available, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert hotel: %w", err)
	}
	return nil
}

func (r *HotelRepository) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	query := `SELECT id, name, location, price_per_night, available, created_at, updated_at
	          FROM hotels
	          WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get hotel: %w", err)
	}

	var h domain.Hotel
	if err = row.Scan(
		&h.ID, &h.Name, &h.Location, &h.PricePerNight, &h.Available, &h.CreatedAt, &h.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, fmt.Errorf("scan hotel: %w", err)
	}

	return &h, nil
}

func (r *HotelRepository) List(ctx context.Context) ([]*domain.Hotel, error) {
	query := `SELECT id, name, location, price_per_night, available, created_at, updated_at
	          FROM hotels
	          ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer rows.Close()

	var res []*domain.Hotel
	for rows.Next() {
		var h domain.Hotel
		if err = rows.Scan(
			&h.ID, &h.Name, &h.Location, &h.PricePerNight, &h.Available, &h.CreatedAt, &h.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan hotel: %w", err)
		}
		res = append(res, &h)
	}

	return res, rows.Err()
}

func (r *HotelRepository) Update(ctx context.Context, h *domain.Hotel) error {
	query := `UPDATE hotels
	          SET name = $2, location = $3, price_per_night = $4, available = $5, updated_at = $6
	          WHERE id = $1`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		h.ID, h.Name, h.Location, h.PricePerNight, h.Available, h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update hotel: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrHotelNotFound
	}

	return nil
}

// Delete enforces the deletion guard in one transaction: active bookings
// block the deletion, cancelled ones are purged before the hotel goes.
func (r *HotelRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var exists string
	if err = tx.QueryRowContext(ctx, `SELECT id FROM hotels WHERE id = $1 FOR UPDATE`, id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrHotelNotFound
		}
		return fmt.Errorf("get hotel: %w", err)
	}

	var active int
	activeQuery := `SELECT COUNT(*) FROM hotel_bookings WHERE hotel_id = $1 AND status = ANY($2)`
	if err = tx.QueryRowContext(ctx, activeQuery, id, pq.Array(domain.ActiveStatuses)).Scan(&active); err != nil {
		return fmt.Errorf("count active bookings: %w", err)
	}
	if active > 0 {
		return domain.Errf(domain.ErrHotelHasBookings, "hotel has %d active bookings", active)
	}

	if _, err = tx.ExecContext(
		ctx, `DELETE FROM hotel_bookings WHERE hotel_id = $1 AND status = $2`,
		id, domain.BookingStatusCancelled,
	); err != nil {
		return fmt.Errorf("purge cancelled bookings: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM hotels WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete hotel: %w", err)
	}

	return tx.Commit()
}
