package ports

import (
	"context"

	"github.com/roamline/TripBooker/internal/domain"
)

type HotelRepo interface {
	Create(ctx context.Context, h *domain.Hotel) error
	GetByID(ctx context.Context, id string) (*domain.Hotel, error)
	List(ctx context.Context) ([]*domain.Hotel, error)
	Update(ctx context.Context, h *domain.Hotel) error
	// Delete refuses when active bookings exist and purges cancelled ones first.
	Delete(ctx context.Context, id string) error
}

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Delete(ctx context.Context, id string) error
}
