package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamline/TripBooker/internal/domain"
)

var today = time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)

func hotelInput(mutate func(*domain.BookHotelInput)) domain.BookHotelInput {
	in := domain.BookHotelInput{
		HotelID:    "h1",
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-04",
		TotalPrice: "450.00",
	}
	if mutate != nil {
		mutate(&in)
	}
	return in
}

func activityInput(mutate func(*domain.BookActivityInput)) domain.BookActivityInput {
	in := domain.BookActivityInput{
		ActivityID: "a1",
		Date:       "2026-09-01",
		People:     "2",
		TotalPrice: "1000",
	}
	if mutate != nil {
		mutate(&in)
	}
	return in
}

func TestValidateHotelBooking(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.BookHotelInput)
		wantErr error
	}{
		{"valid", nil, nil},
		{"missing hotel id", func(in *domain.BookHotelInput) { in.HotelID = "" }, domain.ErrMissingFields},
		{"missing start date", func(in *domain.BookHotelInput) { in.StartDate = "" }, domain.ErrMissingFields},
		{"missing price", func(in *domain.BookHotelInput) { in.TotalPrice = "" }, domain.ErrMissingFields},
		{"bad start date format", func(in *domain.BookHotelInput) { in.StartDate = "01.09.2026" }, domain.ErrInvalidDateFormat},
		{"bad end date format", func(in *domain.BookHotelInput) { in.EndDate = "tomorrow" }, domain.ErrInvalidDateFormat},
		{"end equals start", func(in *domain.BookHotelInput) { in.EndDate = "2026-09-01" }, domain.ErrInvalidDateRange},
		{"end before start", func(in *domain.BookHotelInput) { in.EndDate = "2026-08-31" }, domain.ErrInvalidDateRange},
		{"start in the past", func(in *domain.BookHotelInput) {
			in.StartDate = "2026-08-29"
			in.EndDate = "2026-09-01"
		}, domain.ErrPastDate},
		{"zero price", func(in *domain.BookHotelInput) { in.TotalPrice = "0" }, domain.ErrInvalidPrice},
		{"negative price", func(in *domain.BookHotelInput) { in.TotalPrice = "-10" }, domain.ErrInvalidPrice},
		{"non-numeric price", func(in *domain.BookHotelInput) { in.TotalPrice = "abc" }, domain.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := validateHotelBooking(hotelInput(tt.mutate), today)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), fields.start)
			assert.Equal(t, time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC), fields.end)
		})
	}
}

// A booking starting today is not in the past: day granularity, not clock time.
func TestValidateHotelBooking_StartsToday(t *testing.T) {
	in := hotelInput(func(in *domain.BookHotelInput) {
		in.StartDate = "2026-08-30"
		in.EndDate = "2026-08-31"
	})

	_, err := validateHotelBooking(in, today)
	assert.NoError(t, err)
}

// Missing fields win over everything else when both would apply.
func TestValidateHotelBooking_MissingBeatsFormat(t *testing.T) {
	in := hotelInput(func(in *domain.BookHotelInput) {
		in.HotelID = ""
		in.StartDate = "not-a-date"
	})

	_, err := validateHotelBooking(in, today)
	assert.ErrorIs(t, err, domain.ErrMissingFields)
}

func TestValidateActivityBooking(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.BookActivityInput)
		wantErr error
	}{
		{"valid", nil, nil},
		{"missing activity id", func(in *domain.BookActivityInput) { in.ActivityID = "" }, domain.ErrMissingFields},
		{"missing people", func(in *domain.BookActivityInput) { in.People = "" }, domain.ErrMissingFields},
		{"bad date format", func(in *domain.BookActivityInput) { in.Date = "2026/09/01" }, domain.ErrInvalidDateFormat},
		{"past date", func(in *domain.BookActivityInput) { in.Date = "2026-08-29" }, domain.ErrPastDate},
		{"zero people", func(in *domain.BookActivityInput) { in.People = "0" }, domain.ErrInvalidPeople},
		{"negative people", func(in *domain.BookActivityInput) { in.People = "-3" }, domain.ErrInvalidPeople},
		{"non-numeric people", func(in *domain.BookActivityInput) { in.People = "two" }, domain.ErrInvalidPeople},
		{"fractional people", func(in *domain.BookActivityInput) { in.People = "1.5" }, domain.ErrInvalidPeople},
		{"bad price", func(in *domain.BookActivityInput) { in.TotalPrice = "free" }, domain.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := validateActivityBooking(activityInput(tt.mutate), today)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2, fields.people)
			assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), fields.date)
		})
	}
}

func TestValidateActivityBooking_TodayIsBookable(t *testing.T) {
	in := activityInput(func(in *domain.BookActivityInput) { in.Date = "2026-08-30" })

	_, err := validateActivityBooking(in, today)
	assert.NoError(t, err)
}
