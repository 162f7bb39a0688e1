package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/roamline/TripBooker/internal/domain"
	"github.com/roamline/TripBooker/internal/service/ports"
)

type CatalogService struct {
	hotels     ports.HotelRepo
	activities ports.ActivityRepo
	logger     logger.Logger
}

func NewCatalogService(hotels ports.HotelRepo, activities ports.ActivityRepo, logger logger.Logger) *CatalogService {
	return &CatalogService{
		hotels:     hotels,
		activities: activities,
		logger:     logger,
	}
}

func (s *CatalogService) CreateHotel(ctx context.Context, in domain.CreateHotelInput) (*domain.Hotel, error) {
	if in.Name == "" || in.Location == "" || in.PricePerNight == "" {
		return nil, domain.ErrMissingFields
	}
	price, err := parsePositivePrice(in.PricePerNight)
	if err != nil {
		return nil, err
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}

	now := time.Now().UTC()
	hotel := &domain.Hotel{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Location:      in.Location,
		PricePerNight: price,
		Available:     available,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = s.hotels.Create(ctx, hotel); err != nil {
		return nil, fmt.Errorf("create hotel: %w", err)
	}

	s.logger.Info("hotel created",
		logger.String("hotel_id", hotel.ID),
		logger.String("name", hotel.Name),
	)

	return hotel, nil
}

func (s *CatalogService) GetHotel(ctx context.Context, id string) (*domain.Hotel, error) {
	return s.hotels.GetByID(ctx, id)
}

func (s *CatalogService) ListHotels(ctx context.Context) ([]*domain.Hotel, error) {
	return s.hotels.List(ctx)
}

func (s *CatalogService) UpdateHotel(ctx context.Context, id string, in domain.UpdateHotelInput) (*domain.Hotel, error) {
	hotel, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get hotel: %w", err)
	}

	if in.Name != nil {
		hotel.Name = *in.Name
	}
	if in.Location != nil {
		hotel.Location = *in.Location
	}
	if in.PricePerNight != nil {
		price, perr := parsePositivePrice(*in.PricePerNight)
		if perr != nil {
			return nil, perr
		}
		hotel.PricePerNight = price
	}
	if in.Available != nil {
		hotel.Available = *in.Available
	}
	hotel.UpdatedAt = time.Now().UTC()

	if err = s.hotels.Update(ctx, hotel); err != nil {
		return nil, fmt.Errorf("update hotel: %w", err)
	}

	return hotel, nil
}

// DeleteHotel relies on the repository's deletion guard: refuse when active
// bookings exist, purge cancelled ones otherwise.
func (s *CatalogService) DeleteHotel(ctx context.Context, id string) error {
	if err := s.hotels.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete hotel: %w", err)
	}

	s.logger.Info("hotel deleted", logger.String("hotel_id", id))
	return nil
}

func (s *CatalogService) CreateActivity(ctx context.Context, in domain.CreateActivityInput) (*domain.Activity, error) {
	if in.Name == "" || in.Location == "" || in.PricePerPerson == "" {
		return nil, domain.ErrMissingFields
	}
	price, err := parsePositivePrice(in.PricePerPerson)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	activity := &domain.Activity{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Location:       in.Location,
		PricePerPerson: price,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err = s.activities.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}

	s.logger.Info("activity created",
		logger.String("activity_id", activity.ID),
		logger.String("name", activity.Name),
	)

	return activity, nil
}

func (s *CatalogService) GetActivity(ctx context.Context, id string) (*domain.Activity, error) {
	return s.activities.GetByID(ctx, id)
}

func (s *CatalogService) ListActivities(ctx context.Context) ([]*domain.Activity, error) {
	return s.activities.List(ctx)
}

func (s *CatalogService) UpdateActivity(ctx context.Context, id string, in domain.UpdateActivityInput) (*domain.Activity, error) {
	activity, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}

	if in.Name != nil {
		activity.Name = *in.Name
	}
	if in.Location != nil {
		activity.Location = *in.Location
	}
	if in.PricePerPerson != nil {
		price, perr := parsePositivePrice(*in.PricePerPerson)
		if perr != nil {
			return nil, perr
		}
		activity.PricePerPerson = price
	}
	activity.UpdatedAt = time.Now().UTC()

	if err = s.activities.Update(ctx, activity); err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}

	return activity, nil
}

func (s *CatalogService) DeleteActivity(ctx context.Context, id string) error {
	if err := s.activities.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	s.logger.Info("activity deleted", logger.String("activity_id", id))
	return nil
}
