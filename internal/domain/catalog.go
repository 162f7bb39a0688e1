package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Hotel is a bookable catalog entity. Available gates new bookings; existing
// bookings are untouched when it flips to false.
type Hotel struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Location      string          `json:"location"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	Available     bool            `json:"available"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type Activity struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Location       string          `json:"location"`
	PricePerPerson decimal.Decimal `json:"price_per_person"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type CreateHotelInput struct {
	Name          string
	Location      string
	PricePerNight string
	Available     *bool
}

type UpdateHotelInput struct {
	Name          *string
	Location      *string
	PricePerNight *string
	Available     *bool
}

type CreateActivityInput struct {
	Name           string
	Location       string
	PricePerPerson string
}

type UpdateActivityInput struct {
	Name           *string
	Location       *string
	PricePerPerson *string
}
