package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusPending, BookingStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestParseBookingStatus(t *testing.T) {
	for _, valid := range []string{"PENDING", "CONFIRMED", "CANCELLED"} {
		status, ok := ParseBookingStatus(valid)
		assert.True(t, ok)
		assert.Equal(t, BookingStatus(valid), status)
	}

	for _, invalid := range []string{"", "pending", "DONE", "Confirmed"} {
		_, ok := ParseBookingStatus(invalid)
		assert.False(t, ok, "expected %q to be rejected", invalid)
	}
}

func TestHotelBooking_Nights(t *testing.T) {
	b := &HotelBooking{
		StartDate: mustDate(t, "2026-10-01"),
		EndDate:   mustDate(t, "2026-10-04"),
	}
	assert.Equal(t, 3, b.Nights())
}
