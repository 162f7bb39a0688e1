package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/roamline/TripBooker/internal/domain"
	"github.com/roamline/TripBooker/internal/service/ports"
)

// Read-through cache decorators for catalog lookups. Booking creation hits
// GetByID on every request, so hot hotels and activities stay in redis;
// catalog writes invalidate the key. Cache failures fall back to postgres.

type CachedHotelRepo struct {
	inner  ports.HotelRepo
	client *redis.Client
	ttl    time.Duration
}

func NewCachedHotelRepo(inner ports.HotelRepo, client *redis.Client, ttl time.Duration) *CachedHotelRepo {
	return &CachedHotelRepo{inner: inner, client: client, ttl: ttl}
}

func hotelKey(id string) string { return fmt.Sprintf("hotel:%s", id) }

func (r *CachedHotelRepo) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	// redis.Nil and transport errors both fall through to postgres;
	// a broken cache must not break bookings.
	data, err := r.client.Get(ctx, hotelKey(id)).Bytes()
	if err == nil {
		var h domain.Hotel
		if jerr := json.Unmarshal(data, &h); jerr == nil {
			return &h, nil
		}
	}

	h, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, jerr := json.Marshal(h); jerr == nil {
		r.client.Set(ctx, hotelKey(id), data, r.ttl)
	}

	return h, nil
}

func (r *CachedHotelRepo) Create(ctx context.Context, h *domain.Hotel) error {
	return r.inner.Create(ctx, h)
}

func (r *CachedHotelRepo) List(ctx context.Context) ([]*domain.Hotel, error) {
	return r.inner.List(ctx)
}

func (r *CachedHotelRepo) Update(ctx context.Context, h *domain.Hotel) error {
	if err := r.inner.Update(ctx, h); err != nil {
		return err
	}
	r.client.Del(ctx, hotelKey(h.ID))
	return nil
}

func (r *CachedHotelRepo) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.client.Del(ctx, hotelKey(id))
	return nil
}

type CachedActivityRepo struct {
	inner  ports.ActivityRepo
	client *redis.Client
	ttl    time.Duration
}

func NewCachedActivityRepo(inner ports.ActivityRepo, client *redis.Client, ttl time.Duration) *CachedActivityRepo {
	return &CachedActivityRepo{inner: inner, client: client, ttl: ttl}
}

func activityKey(id string) string { return fmt.Sprintf("activity:%s", id) }

func (r *CachedActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	data, err := r.client.Get(ctx, activityKey(id)).Bytes()
	if err == nil {
		var a domain.Activity
		if jerr := json.Unmarshal(data, &a); jerr == nil {
			return &a, nil
		}
	}

	a, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, jerr := json.Marshal(a); jerr == nil {
		r.client.Set(ctx, activityKey(id), data, r.ttl)
	}

	return a, nil
}

func (r *CachedActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	return r.inner.Create(ctx, a)
}

func (r *CachedActivityRepo) List(ctx context.Context) ([]*domain.Activity, error) {
	return r.inner.List(ctx)
}

func (r *CachedActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	if err := r.inner.Update(ctx, a); err != nil {
		return err
	}
	r.client.Del(ctx, activityKey(a.ID))
	return nil
}

func (r *CachedActivityRepo) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.client.Del(ctx, activityKey(id))
	return nil
}
