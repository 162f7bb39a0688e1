package domain

import (
	"fmt"
	"net/http"
)

// Error codes are a stable machine-readable contract; clients switch on them.
const (
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeInvalidToken        = "INVALID_TOKEN"
	CodeMissingFields       = "MISSING_FIELDS"
	CodeInvalidDateFormat   = "INVALID_DATE_FORMAT"
	CodeInvalidDateRange    = "INVALID_DATE_RANGE"
	CodePastDate            = "PAST_DATE"
	CodeInvalidPeople       = "INVALID_PEOPLE"
	CodeInvalidPrice        = "INVALID_PRICE"
	CodeHotelNotFound       = "HOTEL_NOT_FOUND"
	CodeActivityNotFound    = "ACTIVITY_NOT_FOUND"
	CodeHotelUnavailable    = "HOTEL_UNAVAILABLE"
	CodeUserNotFound        = "USER_NOT_FOUND"
	CodeBookingNotFound     = "BOOKING_NOT_FOUND"
	CodeAlreadyCancelled    = "ALREADY_CANCELLED"
	CodeActivityOccurred    = "ACTIVITY_ALREADY_OCCURRED"
	CodeBookingStarted      = "BOOKING_ALREADY_STARTED"
	CodeInvalidStatus       = "INVALID_STATUS"
	CodeInvalidTransition   = "INVALID_TRANSITION"
	CodeHotelHasBookings    = "HOTEL_HAS_ACTIVE_BOOKINGS"
	CodeActivityHasBookings = "ACTIVITY_HAS_ACTIVE_BOOKINGS"
	CodeEmailTaken          = "EMAIL_TAKEN"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeInternal            = "INTERNAL_ERROR"
)

// Error is a coded domain error. Status is the HTTP status the handler
// responds with; Message is safe to show to the caller.
type Error struct {
	Code    string
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is matches by code so Errf-derived errors compare equal to their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code && t.Status == e.Status
}

// Errf builds a coded error with a formatted message, keeping the code and
// status of the sentinel it derives from.
func Errf(base *Error, format string, args ...any) *Error {
	return &Error{Code: base.Code, Status: base.Status, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrUnauthorized = &Error{CodeUnauthorized, http.StatusUnauthorized, "authentication required"}
	ErrInvalidToken = &Error{CodeInvalidToken, http.StatusUnauthorized, "invalid or expired token"}
	// ErrForbidden reuses the UNAUTHORIZED code but carries 403 semantics:
	// the caller is authenticated, just not allowed to touch the resource.
	ErrForbidden = &Error{CodeUnauthorized, http.StatusForbidden, "you do not have access to this resource"}

	ErrMissingFields     = &Error{CodeMissingFields, http.StatusBadRequest, "required fields are missing"}
	ErrInvalidDateFormat = &Error{CodeInvalidDateFormat, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD"}
	ErrInvalidDateRange  = &Error{CodeInvalidDateRange, http.StatusBadRequest, "check-out date must be after check-in date"}
	ErrPastDate          = &Error{CodePastDate, http.StatusBadRequest, "date must not be in the past"}
	ErrInvalidPeople     = &Error{CodeInvalidPeople, http.StatusBadRequest, "people must be a whole number of at least 1"}
	ErrInvalidPrice      = &Error{CodeInvalidPrice, http.StatusBadRequest, "price must be a positive number"}
	ErrInvalidStatus     = &Error{CodeInvalidStatus, http.StatusBadRequest, "status must be one of PENDING, CONFIRMED, CANCELLED"}

	ErrHotelNotFound    = &Error{CodeHotelNotFound, http.StatusNotFound, "hotel not found"}
	ErrActivityNotFound = &Error{CodeActivityNotFound, http.StatusNotFound, "activity not found"}
	ErrUserNotFound     = &Error{CodeUserNotFound, http.StatusNotFound, "user not found"}
	ErrBookingNotFound  = &Error{CodeBookingNotFound, http.StatusNotFound, "booking not found"}

	ErrHotelUnavailable    = &Error{CodeHotelUnavailable, http.StatusConflict, "hotel is not available"}
	ErrAlreadyCancelled    = &Error{CodeAlreadyCancelled, http.StatusConflict, "booking is already cancelled"}
	ErrActivityOccurred    = &Error{CodeActivityOccurred, http.StatusConflict, "activity date has already passed"}
	ErrBookingStarted      = &Error{CodeBookingStarted, http.StatusConflict, "booking has already started"}
	ErrInvalidTransition   = &Error{CodeInvalidTransition, http.StatusConflict, "status transition is not allowed"}
	ErrHotelHasBookings    = &Error{CodeHotelHasBookings, http.StatusConflict, "hotel has active bookings"}
	ErrActivityHasBookings = &Error{CodeActivityHasBookings, http.StatusConflict, "activity has active bookings"}

	ErrEmailTaken         = &Error{CodeEmailTaken, http.StatusConflict, "email is already registered"}
	ErrInvalidCredentials = &Error{CodeInvalidCredentials, http.StatusUnauthorized, "invalid email or password"}

	ErrInternal = &Error{CodeInternal, http.StatusInternalServerError, "internal server error"}
)
