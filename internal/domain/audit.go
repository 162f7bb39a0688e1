package domain

import "time"

// Audit actions follow the "<KIND>_BOOKING_<EVENT>" convention, e.g.
// HOTEL_BOOKING_CREATED, ACTIVITY_BOOKING_CANCELLED.
type AuditEntry struct {
	Action    string    `json:"action"`
	BookingID string    `json:"booking_id"`
	UserID    string    `json:"user_id"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}
