package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/roamline/TripBooker/internal/domain"
	"github.com/roamline/TripBooker/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingMocks struct {
	hotelBookings    *mocks.MockHotelBookingRepo
	activityBookings *mocks.MockActivityBookingRepo
	hotels           *mocks.MockHotelRepo
	activities       *mocks.MockActivityRepo
	users            *mocks.MockUserRepo
	audit            *mocks.MockAuditNotifier
}

func newBookingService(t *testing.T, policy Policy) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		hotelBookings:    mocks.NewMockHotelBookingRepo(t),
		activityBookings: mocks.NewMockActivityBookingRepo(t),
		hotels:           mocks.NewMockHotelRepo(t),
		activities:       mocks.NewMockActivityRepo(t),
		users:            mocks.NewMockUserRepo(t),
		audit:            mocks.NewMockAuditNotifier(t),
	}

	svc := NewBookingService(
		m.hotelBookings, m.activityBookings,
		m.hotels, m.activities, m.users,
		m.audit, policy, newTestLogger(t),
	)
	return svc, m
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func testHotel() *domain.Hotel {
	return &domain.Hotel{
		ID:            "h1",
		Name:          "Grand Plaza",
		Location:      "Lisbon",
		PricePerNight: decimal.NewFromInt(150),
		Available:     true,
	}
}

func testActivity() *domain.Activity {
	return &domain.Activity{
		ID:             "a1",
		Name:           "Surf Lesson",
		Location:       "Ericeira",
		PricePerPerson: decimal.NewFromInt(500),
	}
}

func TestBookingService_BookHotel_Pending(t *testing.T) {
	svc, m := newBookingService(t, Policy{AutoConfirm: false})

	m.hotels.EXPECT().GetByID(mock.Anything, "h1").Return(testHotel(), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.hotelBookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.audit.EXPECT().Record(mock.Anything, mock.Anything).Return()

	booking, err := svc.BookHotel(context.Background(), "u1", domain.BookHotelInput{
		HotelID:    "h1",
		StartDate:  futureDate(1),
		EndDate:    futureDate(4),
		TotalPrice: "450",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "u1", booking.UserID)
	assert.Equal(t, "Grand Plaza", booking.HotelName)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine audit
}

func TestBookingService_BookHotel_AutoConfirm(t *testing.T) {
	svc, m := newBookingService(t, Policy{AutoConfirm: true})

	m.hotels.EXPECT().GetByID(mock.Anything, "h1").Return(testHotel(), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.hotelBookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.audit.EXPECT().Record(mock.Anything, mock.Anything).Return()

	booking, err := svc.BookHotel(context.Background(), "u1", domain.BookHotelInput{
		HotelID:    "h1",
		StartDate:  futureDate(1),
		EndDate:    futureDate(4),
		TotalPrice: "450",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

// The stored total is catalog price times nights; the client value is only
// sanity-checked.
func TestBookingService_BookHotel_RecomputesPrice(t *testing.T) {
	svc, m := newBookingService(t, Policy{})

	m.hotels.EXPECT().GetByID(mock.Anything, "h1").Return(testHotel(), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.hotelBookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.audit.EXPECT().Record(mock.Anything, mock.Anything).Return()

	booking, err := svc.BookHotel(context.Background(), "u1", domain.BookHotelInput{
		HotelID:    "h1",
		StartDate:  futureDate(1),
		EndDate:    futureDate(4),
		TotalPrice: "1", // wrong on purpose
	})

	require.NoError(t, err)
	assert.True(t, booking.TotalPrice.Equal(decimal.NewFromInt(450)),
		"got %s", booking.TotalPrice)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_BookHotel_ValidationFailsBeforeRepo(t *testing.T) {
	svc, _ := newBookingService(t, Policy{})

	_, err := svc.BookHotel(context.Background(), "u1", domain.BookHotelInput{
		HotelID:    "h1",
		StartDate:  futureDate(4),
		EndDate:    futureDate(1),
		TotalPrice: "450",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestBookingService_BookHotel_Unavailable(t *testing.T) {
	svc, m := newBookingService(t, Policy{})

	hotel := testHotel()
	hotel.Available = false
	m.hotels.EXPECT().GetByID(mock.Anything, "h1").Return(hotel, nil)

	_, err := svc.BookHotel(context.Background(), "u1", domain.BookHotelInput{
		HotelID:    "h1",
		StartDate:  futureDate(1),
		EndDate:    futureDate(2),
		TotalPrice: "150",
	})

	assert.ErrorIs(t, err, domain.ErrHotelUnavailable)
}

func TestBookingService_BookHotel_HotelNotFound(t *testing.T) {
	svc, m := newBookingService(t, Policy{})

	m.hotels.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrHotelNotFound)

	_, err := svc.BookHotel(context.Background(), "u1", domain.BookHotelInput{
		HotelID:    "missing",
		StartDate:  futureDate(1),
		EndDate:    futureDate(2),
		TotalPrice: "150",
	})

	assert.ErrorIs(t, err, domain.ErrHotelNotFound)
}

func TestBookingService_BookActivity_PriceByPeople(t *testing.T) {
	svc, m := newBookingService(t, Policy{})

	m.activities.EXPECT().GetByID(mock.Anything, "a1").Return(testActivity(), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.activityBookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.audit.EXPECT().Record(mock.Anything, mock.Anything).Return()

	booking, err := svc.BookActivity(context.Background(), "u1", domain.BookActivityInput{
		ActivityID: "a1",
		Date:       futureDate(1),
		People:     "2",
		TotalPrice: "1000",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, 2, booking.People)
	assert.True(t, booking.TotalPrice.Equal(decimal.NewFromInt(1000)))

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_BookActivity_InvalidPeople(t *testing.T) {
	svc, _ := newBookingService(t, Policy{})

	_, err := svc.BookActivity(context.Background(), "u1", domain.BookActivityInput{
		ActivityID: "a1",
		Date:       futureDate(1),
		People:     "0",
		TotalPrice: "1000",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidPeople)
}

func TestBookingService_CancelHotelBooking_Success(t *testing.T) {
	svc, m := newBookingService(t, Policy{})

	booking := &domain.HotelBooking{
		ID:         "b1",
		UserID:     "u1",
		StartDate:  time.Now().UTC().AddDate(0, 0, 5),
		EndDate:    time.Now().UTC().AddDate(0, 0, 8),
		TotalPrice: decimal.NewFromInt(450),
		Status:     domain.BookingStatusConfirmed,
	}

	m.hotelBookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.hotelBookings.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusCancelled).Return(nil)
	m.audit.EXPECT().Record(mock.Anything, mock.Anything).Return()

	cancellation, err := svc.CancelHotelBooking(context.Background(), "u1", "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, cancellation.Status)
	assert.True(t, cancellation.RefundAmount.Equal(decimal.NewFromInt(450)))
	assert.False(t, cancellation.CancelledAt.IsZero())

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_CancelHotelBooking_NotOwner(t *testing.T) {
	svc, m := newBookingService(t, Policy{})

	booking := &domain.HotelBooking{ID: "b1", UserID: "u1", Status: domain.BookingStatusPending}
	m.hotelBookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.CancelHotelBooking(context.Background(), "intruder", "b1")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_CancelHotelBooking_AlreadyCancelled(t *testing.T) {
	svc, m := newBookingService(t, Policy{})

	booking := &domain.HotelBooking{ID: "b1", UserID: "u1", Status: domain.BookingStatusCancelled}
	m.hotelBookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.CancelHotelBooking(context.Background(), "u1", "b1")

	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestBookingService_CancelHotelBooking_AlreadyStarted(t *testing.T) {
	svc, m := newBookingService(t, Policy{})

	booking := &domain.HotelBooking{
		ID:        "b1",
		UserID:    "u1",
		StartDate: time.Now().UTC().AddDate(0, 0, -1),
		EndDate:   time.Now().UTC().AddDate(0, 0, 2),
		Status:    domain.BookingStatusConfirmed,
	}
	m.hotelBookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.CancelHotelBooking(context.Background(), "u1", "b1")

	assert.ErrorIs(t, err, domain.ErrBookingStarted)
}

func TestBookingService_CancelActivityBooking_AlreadyOccurred(t *testing.T) {
	svc, m := newBookingService(t, Policy{})

	booking := &domain.ActivityBooking{
		ID:     "b2",
		UserID: "u1",
		Date:   time.Now().UTC().AddDate(0, 0, -1),
		Status: domain.BookingStatusConfirmed,
	}
	m.activityBookings.EXPECT().GetByID(mock.Anything, "b2").Return(booking, nil)

	_, err := svc.CancelActivityBooking(context.Background(), "u1", "b2")

	assert.ErrorIs(t, err, domain.ErrActivityOccurred)
}

func TestBookingService_CancelActivityBooking_Success(t *testing.T) {
	svc, m := newBookingService(t, Policy{})

	booking := &domain.ActivityBooking{
		ID:         "b2",
		UserID:     "u1",
		Date:       time.Now().UTC().AddDate(0, 0, 3),
		TotalPrice: decimal.NewFromInt(1000),
		Status:     domain.BookingStatusPending,
	}
	m.activityBookings.EXPECT().GetByID(mock.Anything, "b2").Return(booking, nil)
	m.activityBookings.EXPECT().UpdateStatus(mock.Anything, "b2", domain.BookingStatusCancelled).Return(nil)
	m.audit.EXPECT().Record(mock.Anything, mock.Anything).Return()

	cancellation, err := svc.CancelActivityBooking(context.Background(), "u1", "b2")

	require.NoError(t, err)
	assert.True(t, cancellation.RefundAmount.Equal(decimal.NewFromInt(1000)))

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_SetStatus_ConfirmPending(t *testing.T) {
	svc, m := newBookingService(t, Policy{})

	booking := &domain.HotelBooking{ID: "b1", UserID: "u1", Status: domain.BookingStatusPending}
	m.hotelBookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.hotelBookings.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusConfirmed).Return(nil)
	m.audit.EXPECT().Record(mock.Anything, mock.Anything).Return()

	change, err := svc.SetStatus(context.Background(), "admin", "b1", "CONFIRMED")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingKindHotel, change.Kind)
	assert.Equal(t, domain.BookingStatusPending, change.From)
	assert.Equal(t, domain.BookingStatusConfirmed, change.To)

	time.Sleep(50 * time.Millisecond)
}

// An admin cannot resurrect a cancelled booking.
func TestBookingService_SetStatus_CancelledIsTerminal(t *testing.T) {
	svc, m := newBookingService(t, Policy{})

	booking := &domain.HotelBooking{ID: "b1", UserID: "u1", Status: domain.BookingStatusCancelled}
	m.hotelBookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.SetStatus(context.Background(), "admin", "b1", "CONFIRMED")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_SetStatus_FallsBackToActivity(t *testing.T) {
	svc, m := newBookingService(t, Policy{})

	m.hotelBookings.EXPECT().GetByID(mock.Anything, "b2").Return(nil, domain.ErrBookingNotFound)
	booking := &domain.ActivityBooking{ID: "b2", UserID: "u1", Status: domain.BookingStatusPending}
	m.activityBookings.EXPECT().GetByID(mock.Anything, "b2").Return(booking, nil)
	m.activityBookings.EXPECT().UpdateStatus(mock.Anything, "b2", domain.BookingStatusCancelled).Return(nil)
	m.audit.EXPECT().Record(mock.Anything, mock.Anything).Return()

	change, err := svc.SetStatus(context.Background(), "admin", "b2", "CANCELLED")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingKindActivity, change.Kind)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_SetStatus_UnknownBooking(t *testing.T) {
	svc, m := newBookingService(t, Policy{})

	m.hotelBookings.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)
	m.activityBookings.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.SetStatus(context.Background(), "admin", "missing", "CONFIRMED")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_SetStatus_InvalidStatus(t *testing.T) {
	svc, _ := newBookingService(t, Policy{})

	_, err := svc.SetStatus(context.Background(), "admin", "b1", "DONE")

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestBookingService_ListUserBookings(t *testing.T) {
	svc, m := newBookingService(t, Policy{})

	m.hotelBookings.EXPECT().ListByUser(mock.Anything, "u1").Return([]*domain.HotelBooking{{ID: "b1"}}, nil)
	m.activityBookings.EXPECT().ListByUser(mock.Anything, "u1").Return([]*domain.ActivityBooking{{ID: "b2"}, {ID: "b3"}}, nil)

	result, err := svc.ListUserBookings(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result.Hotels, 1)
	assert.Len(t, result.Activities, 2)
}

func TestBookingService_SweepStalePending(t *testing.T) {
	svc, m := newBookingService(t, Policy{PendingTTL: 15 * time.Minute})

	m.hotelBookings.EXPECT().CancelStalePending(mock.Anything, mock.Anything).
		Return([]*domain.HotelBooking{{ID: "b1", UserID: "u1"}}, nil)
	m.activityBookings.EXPECT().CancelStalePending(mock.Anything, mock.Anything).
		Return([]*domain.ActivityBooking{{ID: "b2", UserID: "u2"}, {ID: "b3", UserID: "u3"}}, nil)
	m.audit.EXPECT().Record(mock.Anything, mock.Anything).Return().Times(3)

	swept, err := svc.SweepStalePending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, swept)

	time.Sleep(100 * time.Millisecond)
}

func TestBookingService_SweepStalePending_Disabled(t *testing.T) {
	svc, _ := newBookingService(t, Policy{PendingTTL: 0})

	swept, err := svc.SweepStalePending(context.Background())

	require.NoError(t, err)
	assert.Zero(t, swept)
}

func TestBookingService_SweepStalePending_RepoError(t *testing.T) {
	svc, m := newBookingService(t, Policy{PendingTTL: 15 * time.Minute})

	m.hotelBookings.EXPECT().CancelStalePending(mock.Anything, mock.Anything).
		Return(nil, errors.New("db down"))

	_, err := svc.SweepStalePending(context.Background())

	require.Error(t, err)
}
