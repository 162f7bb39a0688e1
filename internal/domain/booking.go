package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

// ParseBookingStatus validates an admin-supplied status value.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return BookingStatus(s), true
	}
	return "", false
}

// transitions is the allowed lifecycle: pending bookings can be confirmed or
// cancelled, confirmed bookings can only be cancelled, cancelled is terminal.
var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCancelled},
	BookingStatusCancelled: {},
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type BookingKind string

const (
	BookingKindHotel    BookingKind = "HOTEL"
	BookingKindActivity BookingKind = "ACTIVITY"
)

// HotelBooking reserves a hotel for a half-open date range [StartDate, EndDate).
// HotelName and HotelLocation are read from the catalog, not stored with the row.
type HotelBooking struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	HotelID       string          `json:"hotel_id"`
	HotelName     string          `json:"hotel_name"`
	HotelLocation string          `json:"hotel_location"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Status        BookingStatus   `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (b *HotelBooking) Nights() int {
	return int(b.EndDate.Sub(b.StartDate).Hours() / 24)
}

// ActivityBooking reserves spots on an activity for a single date.
type ActivityBooking struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	ActivityID       string          `json:"activity_id"`
	ActivityName     string          `json:"activity_name"`
	ActivityLocation string          `json:"activity_location"`
	Date             time.Time       `json:"date"`
	People           int             `json:"people"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	Status           BookingStatus   `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// BookHotelInput carries raw client fields; the booking validator parses them.
type BookHotelInput struct {
	HotelID    string
	StartDate  string
	EndDate    string
	TotalPrice string
}

type BookActivityInput struct {
	ActivityID string
	Date       string
	People     string
	TotalPrice string
}

// Cancellation summarizes a user-initiated cancellation. CancelledAt is the
// wall-clock time of the operation, not a stored column; RefundAmount is a
// recorded intent only, no payment integration exists.
type Cancellation struct {
	BookingID    string          `json:"id"`
	Kind         BookingKind     `json:"kind"`
	Status       BookingStatus   `json:"status"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
	CancelledAt  time.Time       `json:"cancelled_at"`
}

// StatusChange summarizes an admin-initiated transition.
type StatusChange struct {
	BookingID string        `json:"id"`
	Kind      BookingKind   `json:"kind"`
	From      BookingStatus `json:"from"`
	To        BookingStatus `json:"to"`
	ChangedAt time.Time     `json:"changed_at"`
}

type UserBookings struct {
	Hotels     []*HotelBooking    `json:"hotels"`
	Activities []*ActivityBooking `json:"activities"`
}
