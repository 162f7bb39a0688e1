package dto

import (
	"time"

	"github.com/roamline/TripBooker/internal/domain"
)

const dateLayout = "2006-01-02"

type HotelBookingResponse struct {
	ID            string `json:"id"`
	HotelName     string `json:"hotelName"`
	HotelLocation string `json:"hotelLocation"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Nights        int    `json:"nights"`
	TotalPrice    string `json:"totalPrice"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

type ActivityBookingResponse struct {
	ID               string `json:"id"`
	ActivityName     string `json:"activityName"`
	ActivityLocation string `json:"activityLocation"`
	Date             string `json:"date"`
	People           int    `json:"people"`
	TotalPrice       string `json:"totalPrice"`
	Status           string `json:"status"`
	CreatedAt        string `json:"createdAt"`
}

type UserBookingsResponse struct {
	Hotels     []HotelBookingResponse    `json:"hotels"`
	Activities []ActivityBookingResponse `json:"activities"`
}

type CancelledBooking struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	RefundAmount string `json:"refundAmount"`
	CancelledAt  string `json:"cancelledAt"`
}

type CancelResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Booking CancelledBooking `json:"booking"`
}

type StatusChangedBooking struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	From      string `json:"from"`
	To        string `json:"to"`
	ChangedAt string `json:"changedAt"`
}

// StatusChangeResponse uses the same success envelope as CancelResponse.
type StatusChangeResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Booking StatusChangedBooking `json:"booking"`
}

type HotelResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	PricePerNight string `json:"pricePerNight"`
	Available     bool   `json:"available"`
	CreatedAt     string `json:"createdAt"`
}

type ActivityResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	PricePerPerson string `json:"pricePerPerson"`
	CreatedAt      string `json:"createdAt"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func ToHotelBookingResponse(b *domain.HotelBooking) HotelBookingResponse {
	return HotelBookingResponse{
		ID:            b.ID,
		HotelName:     b.HotelName,
		HotelLocation: b.HotelLocation,
		StartDate:     b.StartDate.Format(dateLayout),
		EndDate:       b.EndDate.Format(dateLayout),
		Nights:        b.Nights(),
		TotalPrice:    b.TotalPrice.String(),
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

func ToActivityBookingResponse(b *domain.ActivityBooking) ActivityBookingResponse {
	return ActivityBookingResponse{
		ID:               b.ID,
		ActivityName:     b.ActivityName,
		ActivityLocation: b.ActivityLocation,
		Date:             b.Date.Format(dateLayout),
		People:           b.People,
		TotalPrice:       b.TotalPrice.String(),
		Status:           string(b.Status),
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserBookingsResponse(ub *domain.UserBookings) UserBookingsResponse {
	hotels := make([]HotelBookingResponse, 0, len(ub.Hotels))
	for _, b := range ub.Hotels {
		hotels = append(hotels, ToHotelBookingResponse(b))
	}

	activities := make([]ActivityBookingResponse, 0, len(ub.Activities))
	for _, b := range ub.Activities {
		activities = append(activities, ToActivityBookingResponse(b))
	}

	return UserBookingsResponse{Hotels: hotels, Activities: activities}
}

func ToCancelResponse(c *domain.Cancellation) CancelResponse {
	return CancelResponse{
		Success: true,
		Message: "booking cancelled",
		Booking: CancelledBooking{
			ID:           c.BookingID,
			Status:       string(c.Status),
			RefundAmount: c.RefundAmount.String(),
			CancelledAt:  c.CancelledAt.Format(time.RFC3339),
		},
	}
}

func ToStatusChangeResponse(sc *domain.StatusChange) StatusChangeResponse {
	return StatusChangeResponse{
		Success: true,
		Message: "booking status updated",
		Booking: StatusChangedBooking{
			ID:        sc.BookingID,
			Kind:      string(sc.Kind),
			From:      string(sc.From),
			To:        string(sc.To),
			ChangedAt: sc.ChangedAt.Format(time.RFC3339),
		},
	}
}

func ToHotelResponse(h *domain.Hotel) HotelResponse {
	return HotelResponse{
		ID:            h.ID,
		Name:          h.Name,
		Location:      h.Location,
		PricePerNight: h.PricePerNight.String(),
		Available:     h.Available,
		CreatedAt:     h.CreatedAt.Format(time.RFC3339),
	}
}

func ToActivityResponse(a *domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:             a.ID,
		Name:           a.Name,
		Location:       a.Location,
		PricePerPerson: a.PricePerPerson.String(),
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
