package dto

import "encoding/json"

// Flexible accepts a JSON string or number and keeps the raw text. Booking
// fields arrive as either ("people": 2 and "totalPrice": "1000" are both
// legal), and the booking validator owns the coded rejections, so binding
// must not fail first.
type Flexible string

func (f *Flexible) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Flexible(s)
		return nil
	}
	if string(b) == "null" {
		*f = ""
		return nil
	}
	*f = Flexible(b)
	return nil
}

type CreateHotelBookingRequest struct {
	HotelID    string   `json:"hotelId"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	TotalPrice Flexible `json:"totalPrice"`
}

type CreateActivityBookingRequest struct {
	ActivityID string   `json:"activityId"`
	Date       string   `json:"date"`
	People     Flexible `json:"people"`
	TotalPrice Flexible `json:"totalPrice"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type CreateHotelRequest struct {
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	PricePerNight Flexible `json:"pricePerNight"`
	Available     *bool    `json:"available"`
}

type UpdateHotelRequest struct {
	Name          *string   `json:"name"`
	Location      *string   `json:"location"`
	PricePerNight *Flexible `json:"pricePerNight"`
	Available     *bool     `json:"available"`
}

type CreateActivityRequest struct {
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	PricePerPerson Flexible `json:"pricePerPerson"`
}

type UpdateActivityRequest struct {
	Name           *string   `json:"name"`
	Location       *string   `json:"location"`
	PricePerPerson *Flexible `json:"pricePerPerson"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
