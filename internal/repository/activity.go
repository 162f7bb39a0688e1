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

type ActivityRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewActivityRepo(db *dbpg.DB) *ActivityRepository {
	return &ActivityRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ActivityRepository) Create(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (id, name, location, price_per_person, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.ID, a.Name, a.Location, a.PricePerPerson, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT id, name, location, price_per_person, created_at, updated_at
	          FROM activities
	          WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}

	var a domain.Activity
	if err = row.Scan(
		&a.ID, &a.Name, &a.Location, &a.PricePerPerson, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("scan activity: %w", err)
	}

	return &a, nil
}

func (r *ActivityRepository) List(ctx context.Context) ([]*domain.Activity, error) {
	query := `SELECT id, name, location, price_per_person, created_at, updated_at
	          FROM activities
	          ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var res []*domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err = rows.Scan(
			&a.ID, &a.Name, &a.Location, &a.PricePerPerson, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}

func (r *ActivityRepository) Update(ctx context.Context, a *domain.Activity) error {
	query := `UPDATE activities
	          SET name = $2, location = $3, price_per_person = $4, updated_at = $5
	          WHERE id = $1`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.ID, a.Name, a.Location, a.PricePerPerson, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrActivityNotFound
	}

	return nil
}

// Delete mirrors the hotel deletion guard so the policy is uniform across
// catalog kinds.
func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var exists string
	if err = tx.QueryRowContext(ctx, `SELECT id FROM activities WHERE id = $1 FOR UPDATE`, id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrActivityNotFound
		}
		return fmt.Errorf("get activity: %w", err)
	}

	var active int
	activeQuery := `SELECT COUNT(*) FROM activity_bookings WHERE activity_id = $1 AND status = ANY($2)`
	if err = tx.QueryRowContext(ctx, activeQuery, id, pq.Array(domain.ActiveStatuses)).Scan(&active); err != nil {
		return fmt.Errorf("count active bookings: %w", err)
	}
	if active > 0 {
		return domain.Errf(domain.ErrActivityHasBookings, "activity has %d active bookings", active)
	}

	if _, err = tx.ExecContext(
		ctx, `DELETE FROM activity_bookings WHERE activity_id = $1 AND status = $2`,
		id, domain.BookingStatusCancelled,
	); err != nil {
		return fmt.Errorf("purge cancelled bookings: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM activities WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	return tx.Commit()
}
