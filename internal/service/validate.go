package service

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/roamline/TripBooker/internal/domain"
)

const dateLayout = "2006-01-02"

// dateOnly truncates to midnight; all booking dates compare at day granularity.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type hotelBookingFields struct {
	start time.Time
	end   time.Time
}

type activityBookingFields struct {
	date   time.Time
	people int
}

// validateHotelBooking checks a raw creation request in contract order,
// first failure wins. Catalog and user existence are checked by the caller.
func validateHotelBooking(in domain.BookHotelInput, today time.Time) (hotelBookingFields, error) {
	var f hotelBookingFields

	if in.HotelID == "" || in.StartDate == "" || in.EndDate == "" || in.TotalPrice == "" {
		return f, domain.ErrMissingFields
	}

	start, err := time.ParseInLocation(dateLayout, in.StartDate, time.UTC)
	if err != nil {
		return f, domain.ErrInvalidDateFormat
	}
	end, err := time.ParseInLocation(dateLayout, in.EndDate, time.UTC)
	if err != nil {
		return f, domain.ErrInvalidDateFormat
	}

	if !end.After(start) {
		return f, domain.ErrInvalidDateRange
	}

	if start.Before(dateOnly(today)) {
		return f, domain.ErrPastDate
	}

	if err := validatePrice(in.TotalPrice); err != nil {
		return f, err
	}

	f.start = start
	f.end = end
	return f, nil
}

func validateActivityBooking(in domain.BookActivityInput, today time.Time) (activityBookingFields, error) {
	var f activityBookingFields

	if in.ActivityID == "" || in.Date == "" || in.People == "" || in.TotalPrice == "" {
		return f, domain.ErrMissingFields
	}

	date, err := time.ParseInLocation(dateLayout, in.Date, time.UTC)
	if err != nil {
		return f, domain.ErrInvalidDateFormat
	}

	if date.Before(dateOnly(today)) {
		return f, domain.ErrPastDate
	}

	people, err := strconv.Atoi(in.People)
	if err != nil || people < 1 {
		return f, domain.ErrInvalidPeople
	}

	if err := validatePrice(in.TotalPrice); err != nil {
		return f, err
	}

	f.date = date
	f.people = people
	return f, nil
}

// validatePrice accepts the client-sent price as a sanity check only; the
// stored total is always recomputed from the catalog price.
func validatePrice(raw string) error {
	price, err := decimal.NewFromString(raw)
	if err != nil || !price.IsPositive() {
		return domain.ErrInvalidPrice
	}
	return nil
}

func parsePositivePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil || !price.IsPositive() {
		return decimal.Zero, domain.ErrInvalidPrice
	}
	return price, nil
}
