package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"

	"github.com/roamline/TripBooker/internal/domain"
	"github.com/roamline/TripBooker/internal/service/ports"
)

// Policy is the booking creation policy. Confirmation without payment is a
// business decision, so the initial status comes from configuration instead
// of being hardwired per endpoint.
type Policy struct {
	AutoConfirm bool
	PendingTTL  time.Duration
}

func (p Policy) initialStatus() domain.BookingStatus {
	if p.AutoConfirm {
		return domain.BookingStatusConfirmed
	}
	return domain.BookingStatusPending
}

type BookingService struct {
	hotelBookings    ports.HotelBookingRepo
	activityBookings ports.ActivityBookingRepo
	hotels           ports.HotelRepo
	activities       ports.ActivityRepo
	users            ports.UserRepo
	audit            ports.AuditNotifier
	policy           Policy
	logger           logger.Logger
}

func NewBookingService(
	hotelBookings ports.HotelBookingRepo,
	activityBookings ports.ActivityBookingRepo,
	hotels ports.HotelRepo,
	activities ports.ActivityRepo,
	users ports.UserRepo,
	audit ports.AuditNotifier,
	policy Policy,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		hotelBookings:    hotelBookings,
		activityBookings: activityBookings,
		hotels:           hotels,
		activities:       activities,
		users:            users,
		audit:            audit,
		policy:           policy,
		logger:           logger,
	}
}

func (s *BookingService) BookHotel(ctx context.Context, userID string, in domain.BookHotelInput) (*domain.HotelBooking, error) {
	fields, err := validateHotelBooking(in, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	hotel, err := s.hotels.GetByID(ctx, in.HotelID)
	if err != nil {
		return nil, fmt.Errorf("check hotel: %w", err)
	}
	if !hotel.Available {
		return nil, domain.ErrHotelUnavailable
	}

	if _, err = s.users.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	now := time.Now().UTC()
	booking := &domain.HotelBooking{
		ID:            uuid.New().String(),
		UserID:        userID,
		HotelID:       hotel.ID,
		HotelName:     hotel.Name,
		HotelLocation: hotel.Location,
		StartDate:     fields.start,
		EndDate:       fields.end,
		Status:        s.policy.initialStatus(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	// The client-sent price is a display hint; the stored total comes from
	// the catalog price and the length of the stay.
	booking.TotalPrice = hotel.PricePerNight.Mul(decimal.NewFromInt(int64(booking.Nights())))

	if err = s.hotelBookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create hotel booking: %w", err)
	}

	s.logger.Info("hotel booking created",
		logger.String("booking_id", booking.ID),
		logger.String("hotel_id", hotel.ID),
		logger.String("user_id", userID),
		logger.String("status", string(booking.Status)),
	)

	go s.audit.Record(context.WithoutCancel(ctx), domain.AuditEntry{
		Action:    "HOTEL_BOOKING_CREATED",
		BookingID: booking.ID,
		UserID:    userID,
		Details: fmt.Sprintf("%s in %s, %s to %s, total %s",
			hotel.Name, hotel.Location, in.StartDate, in.EndDate, booking.TotalPrice.String()),
	})

	return booking, nil
}

func (s *BookingService) BookActivity(ctx context.Context, userID string, in domain.BookActivityInput) (*domain.ActivityBooking, error) {
	fields, err := validateActivityBooking(in, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	activity, err := s.activities.GetByID(ctx, in.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("check activity: %w", err)
	}

	if _, err = s.users.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	now := time.Now().UTC()
	booking := &domain.ActivityBooking{
		ID:               uuid.New().String(),
		UserID:           userID,
		ActivityID:       activity.ID,
		ActivityName:     activity.Name,
		ActivityLocation: activity.Location,
		Date:             fields.date,
		People:           fields.people,
		TotalPrice:       activity.PricePerPerson.Mul(decimal.NewFromInt(int64(fields.people))),
		Status:           s.policy.initialStatus(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err = s.activityBookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create activity booking: %w", err)
	}

	s.logger.Info("activity booking created",
		logger.String("booking_id", booking.ID),
		logger.String("activity_id", activity.ID),
		logger.String("user_id", userID),
		logger.String("status", string(booking.Status)),
	)

	go s.audit.Record(context.WithoutCancel(ctx), domain.AuditEntry{
		Action:    "ACTIVITY_BOOKING_CREATED",
		BookingID: booking.ID,
		UserID:    userID,
		Details: fmt.Sprintf("%s in %s on %s for %d people, total %s",
			activity.Name, activity.Location, in.Date, fields.people, booking.TotalPrice.String()),
	})

	return booking, nil
}

// CancelHotelBooking is the user-initiated transition to CANCELLED. The
// refund amount is recorded intent only; no payment integration exists.
func (s *BookingService) CancelHotelBooking(ctx context.Context, userID, bookingID string) (*domain.Cancellation, error) {
	booking, err := s.hotelBookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if booking.Status == domain.BookingStatusCancelled {
		return nil, domain.ErrAlreadyCancelled
	}
	if dateOnly(booking.StartDate).Before(dateOnly(time.Now().UTC())) {
		return nil, domain.ErrBookingStarted
	}

	if err = s.hotelBookings.UpdateStatus(ctx, bookingID, domain.BookingStatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	cancellation := &domain.Cancellation{
		BookingID:    bookingID,
		Kind:         domain.BookingKindHotel,
		Status:       domain.BookingStatusCancelled,
		RefundAmount: booking.TotalPrice,
		CancelledAt:  time.Now().UTC(),
	}

	s.logger.Info("hotel booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("user_id", userID),
	)

	go s.audit.Record(context.WithoutCancel(ctx), domain.AuditEntry{
		Action:    "HOTEL_BOOKING_CANCELLED",
		BookingID: bookingID,
		UserID:    userID,
		Details:   fmt.Sprintf("refund %s", booking.TotalPrice.String()),
	})

	return cancellation, nil
}

func (s *BookingService) CancelActivityBooking(ctx context.Context, userID, bookingID string) (*domain.Cancellation, error) {
	booking, err := s.activityBookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if booking.Status == domain.BookingStatusCancelled {
		return nil, domain.ErrAlreadyCancelled
	}
	if dateOnly(booking.Date).Before(dateOnly(time.Now().UTC())) {
		return nil, domain.ErrActivityOccurred
	}

	if err = s.activityBookings.UpdateStatus(ctx, bookingID, domain.BookingStatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	cancellation := &domain.Cancellation{
		BookingID:    bookingID,
		Kind:         domain.BookingKindActivity,
		Status:       domain.BookingStatusCancelled,
		RefundAmount: booking.TotalPrice,
		CancelledAt:  time.Now().UTC(),
	}

	s.logger.Info("activity booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("user_id", userID),
	)

	go s.audit.Record(context.WithoutCancel(ctx), domain.AuditEntry{
		Action:    "ACTIVITY_BOOKING_CANCELLED",
		BookingID: bookingID,
		UserID:    userID,
		Details:   fmt.Sprintf("refund %s", booking.TotalPrice.String()),
	})

	return cancellation, nil
}

// SetStatus is the admin transition. The booking id is probed against hotel
// bookings first, then activity bookings. Transitions outside the lifecycle
// table are rejected; an admin cannot resurrect a cancelled booking.
func (s *BookingService) SetStatus(ctx context.Context, adminID, bookingID, target string) (*domain.StatusChange, error) {
	status, ok := domain.ParseBookingStatus(target)
	if !ok {
		return nil, domain.ErrInvalidStatus
	}

	kind := domain.BookingKindHotel
	var current domain.BookingStatus
	var ownerID string

	hb, err := s.hotelBookings.GetByID(ctx, bookingID)
	switch {
	case err == nil:
		current = hb.Status
		ownerID = hb.UserID
	case errors.Is(err, domain.ErrBookingNotFound):
		ab, aerr := s.activityBookings.GetByID(ctx, bookingID)
		if aerr != nil {
			return nil, fmt.Errorf("get booking: %w", aerr)
		}
		kind = domain.BookingKindActivity
		current = ab.Status
		ownerID = ab.UserID
	default:
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if !current.CanTransitionTo(status) {
		return nil, domain.Errf(domain.ErrInvalidTransition,
			"cannot move a %s booking to %s", current, status)
	}

	update := s.hotelBookings.UpdateStatus
	if kind == domain.BookingKindActivity {
		update = s.activityBookings.UpdateStatus
	}
	if err = update(ctx, bookingID, status); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	change := &domain.StatusChange{
		BookingID: bookingID,
		Kind:      kind,
		From:      current,
		To:        status,
		ChangedAt: time.Now().UTC(),
	}

	s.logger.Info("booking status changed",
		logger.String("booking_id", bookingID),
		logger.String("kind", string(kind)),
		logger.String("from", string(current)),
		logger.String("to", string(status)),
		logger.String("admin_id", adminID),
	)

	go s.audit.Record(context.WithoutCancel(ctx), domain.AuditEntry{
		Action:    fmt.Sprintf("%s_BOOKING_%s", kind, status),
		BookingID: bookingID,
		UserID:    ownerID,
		Details:   fmt.Sprintf("status %s -> %s by admin %s", current, status, adminID),
	})

	return change, nil
}

func (s *BookingService) ListUserBookings(ctx context.Context, userID string) (*domain.UserBookings, error) {
	hotels, err := s.hotelBookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list hotel bookings: %w", err)
	}

	activities, err := s.activityBookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list activity bookings: %w", err)
	}

	return &domain.UserBookings{Hotels: hotels, Activities: activities}, nil
}

// SweepStalePending cancels PENDING bookings older than the policy TTL.
// Called by the scheduler; a zero TTL disables the sweep.
func (s *BookingService) SweepStalePending(ctx context.Context) (int, error) {
	if s.policy.PendingTTL <= 0 {
		return 0, nil
	}

	cutoff := time.Now().UTC().Add(-s.policy.PendingTTL)

	hotels, err := s.hotelBookings.CancelStalePending(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("sweep hotel bookings: %w", err)
	}
	activities, err := s.activityBookings.CancelStalePending(ctx, cutoff)
	if err != nil {
		return len(hotels), fmt.Errorf("sweep activity bookings: %w", err)
	}

	for _, b := range hotels {
		go s.audit.Record(context.WithoutCancel(ctx), domain.AuditEntry{
			Action:    "HOTEL_BOOKING_CANCELLED",
			BookingID: b.ID,
			UserID:    b.UserID,
			Details:   "pending booking expired",
		})
	}
	for _, b := range activities {
		go s.audit.Record(context.WithoutCancel(ctx), domain.AuditEntry{
			Action:    "ACTIVITY_BOOKING_CANCELLED",
			BookingID: b.ID,
			UserID:    b.UserID,
			Details:   "pending booking expired",
		})
	}

	return len(hotels) + len(activities), nil
}
