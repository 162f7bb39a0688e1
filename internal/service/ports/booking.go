package ports

import (
	"context"
	"time"

	"github.com/roamline/TripBooker/internal/domain"
)

type HotelBookingRepo interface {
	// Create inserts the booking after atomically re-checking the hotel's
	// availability flag and overlapping active bookings.
	Create(ctx context.Context, b *domain.HotelBooking) error
	GetByID(ctx context.Context, id string) (*domain.HotelBooking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.HotelBooking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	CancelStalePending(ctx context.Context, olderThan time.Time) ([]*domain.HotelBooking, error)
}

type ActivityBookingRepo interface {
	Create(ctx context.Context, b *domain.ActivityBooking) error
	GetByID(ctx context.Context, id string) (*domain.ActivityBooking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.ActivityBooking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	CancelStalePending(ctx context.Context, olderThan time.Time) ([]*domain.ActivityBooking, error)
}
