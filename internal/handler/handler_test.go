package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/roamline/TripBooker/internal/auth"
	"github.com/roamline/TripBooker/internal/domain"
	"github.com/roamline/TripBooker/internal/handler/dto"
	hmocks "github.com/roamline/TripBooker/internal/handler/mocks"
	"github.com/roamline/TripBooker/internal/middleware"
	"github.com/roamline/TripBooker/internal/router"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type testEnv struct {
	bookings *hmocks.MockBookingSvc
	catalog  *hmocks.MockCatalogSvc
	auth     *hmocks.MockAuthSvc
	tokens   *auth.Manager
	srv      http.Handler
}

func setup(t *testing.T) testEnv {
	t.Helper()

	env := testEnv{
		bookings: hmocks.NewMockBookingSvc(t),
		catalog:  hmocks.NewMockCatalogSvc(t),
		auth:     hmocks.NewMockAuthSvc(t),
		tokens:   auth.NewManager(testSecret, time.Hour),
	}

	h := NewHandler(env.bookings, env.catalog, env.auth, time.Hour)
	env.srv = router.InitRouter("test", h, env.tokens)
	return env
}

func (e testEnv) request(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	e.srv.ServeHTTP(w, req)
	return w
}

func (e testEnv) userCookie(t *testing.T, id string) *http.Cookie {
	t.Helper()
	token, err := e.tokens.Issue(&domain.User{ID: id, Email: id + "@example.com", Role: domain.RoleUser})
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.UserCookie, Value: token}
}

func (e testEnv) adminCookie(t *testing.T, id string) *http.Cookie {
	t.Helper()
	token, err := e.tokens.Issue(&domain.User{ID: id, Email: id + "@example.com", Role: domain.RoleAdmin})
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.AdminCookie, Value: token}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Auth guard ---

func TestBookHotel_NoCookie(t *testing.T) {
	env := setup(t)

	w := env.request(t, http.MethodPost, "/api/bookings/hotel", map[string]string{"hotelId": "h1"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, domain.CodeUnauthorized, decodeError(t, w).Code)
}

func TestBookHotel_GarbageToken(t *testing.T) {
	env := setup(t)

	w := env.request(t, http.MethodPost, "/api/bookings/hotel", map[string]string{"hotelId": "h1"},
		&http.Cookie{Name: middleware.UserCookie, Value: "garbage"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, domain.CodeInvalidToken, decodeError(t, w).Code)
}

func TestAdminRoute_UserRoleToken(t *testing.T) {
	env := setup(t)

	// Валидный токен, но роль USER в админской куке.
	token, err := env.tokens.Issue(&domain.User{ID: "u1", Role: domain.RoleUser})
	require.NoError(t, err)

	w := env.request(t, http.MethodPatch, "/api/admin/bookings/b1/status",
		map[string]string{"status": "CONFIRMED"},
		&http.Cookie{Name: middleware.AdminCookie, Value: token})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, domain.CodeUnauthorized, decodeError(t, w).Code)
}

// --- Bookings ---

func TestBookHotel_Success(t *testing.T) {
	env := setup(t)

	booking := &domain.HotelBooking{
		ID:            "b1",
		UserID:        "u1",
		HotelID:       "h1",
		HotelName:     "Grand Plaza",
		HotelLocation: "Lisbon",
		StartDate:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		TotalPrice:    decimal.NewFromInt(450),
		Status:        domain.BookingStatusPending,
		CreatedAt:     time.Now().UTC(),
	}
	env.bookings.EXPECT().
		BookHotel(mock.Anything, "u1", domain.BookHotelInput{
			HotelID:    "h1",
			StartDate:  "2026-09-01",
			EndDate:    "2026-09-04",
			TotalPrice: "450",
		}).
		Return(booking, nil)

	w := env.request(t, http.MethodPost, "/api/bookings/hotel", map[string]any{
		"hotelId":    "h1",
		"startDate":  "2026-09-01",
		"endDate":    "2026-09-04",
		"totalPrice": "450",
	}, env.userCookie(t, "u1"))

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.HotelBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "b1", resp.ID)
	assert.Equal(t, "Grand Plaza", resp.HotelName)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, "450", resp.TotalPrice)
	assert.Equal(t, "PENDING", resp.Status)
}

// people arrives as a JSON number and is passed through as raw text.
func TestBookActivity_NumericPeople(t *testing.T) {
	env := setup(t)

	booking := &domain.ActivityBooking{
		ID:         "b2",
		UserID:     "u1",
		People:     2,
		TotalPrice: decimal.NewFromInt(1000),
		Status:     domain.BookingStatusPending,
		Date:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	env.bookings.EXPECT().
		BookActivity(mock.Anything, "u1", domain.BookActivityInput{
			ActivityID: "a1",
			Date:       "2026-09-01",
			People:     "2",
			TotalPrice: "1000",
		}).
		Return(booking, nil)

	w := env.request(t, http.MethodPost, "/api/bookings/activity", map[string]any{
		"activityId": "a1",
		"date":       "2026-09-01",
		"people":     2,
		"totalPrice": "1000",
	}, env.userCookie(t, "u1"))

	require.Equal(t, http.StatusCreated, w.Code)
}

func TestBookActivity_ValidationError(t *testing.T) {
	env := setup(t)

	env.bookings.EXPECT().
		BookActivity(mock.Anything, "u1", mock.Anything).
		Return(nil, domain.ErrInvalidPeople)

	w := env.request(t, http.MethodPost, "/api/bookings/activity", map[string]any{
		"activityId": "a1",
		"date":       "2026-09-01",
		"people":     "zero",
		"totalPrice": "1000",
	}, env.userCookie(t, "u1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domain.CodeInvalidPeople, decodeError(t, w).Code)
}

func TestCancelHotelBooking_Success(t *testing.T) {
	env := setup(t)

	cancellation := &domain.Cancellation{
		BookingID:    "b1",
		Kind:         domain.BookingKindHotel,
		Status:       domain.BookingStatusCancelled,
		RefundAmount: decimal.NewFromInt(450),
		CancelledAt:  time.Now().UTC(),
	}
	env.bookings.EXPECT().
		CancelHotelBooking(mock.Anything, "u1", "b1").
		Return(cancellation, nil)

	w := env.request(t, http.MethodDelete, "/api/bookings/hotel/b1", nil, env.userCookie(t, "u1"))

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CancelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "CANCELLED", resp.Booking.Status)
	assert.Equal(t, "450", resp.Booking.RefundAmount)
}

func TestCancelHotelBooking_NotOwner(t *testing.T) {
	env := setup(t)

	env.bookings.EXPECT().
		CancelHotelBooking(mock.Anything, "intruder", "b1").
		Return(nil, domain.ErrForbidden)

	w := env.request(t, http.MethodDelete, "/api/bookings/hotel/b1", nil, env.userCookie(t, "intruder"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, domain.CodeUnauthorized, decodeError(t, w).Code)
}

func TestCancelActivityBooking_AlreadyCancelled(t *testing.T) {
	env := setup(t)

	env.bookings.EXPECT().
		CancelActivityBooking(mock.Anything, "u1", "b2").
		Return(nil, domain.ErrAlreadyCancelled)

	w := env.request(t, http.MethodDelete, "/api/bookings/activity/b2", nil, env.userCookie(t, "u1"))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, domain.CodeAlreadyCancelled, decodeError(t, w).Code)
}

func TestListMyBookings(t *testing.T) {
	env := setup(t)

	env.bookings.EXPECT().
		ListUserBookings(mock.Anything, "u1").
		Return(&domain.UserBookings{
			Hotels:     []*domain.HotelBooking{{ID: "b1", Status: domain.BookingStatusPending}},
			Activities: nil,
		}, nil)

	w := env.request(t, http.MethodGet, "/api/bookings", nil, env.userCookie(t, "u1"))

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserBookingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Hotels, 1)
	assert.NotNil(t, resp.Activities, "empty list marshals as [], not null")
}

// --- Admin status ---

func TestUpdateBookingStatus_Success(t *testing.T) {
	env := setup(t)

	change := &domain.StatusChange{
		BookingID: "b1",
		Kind:      domain.BookingKindHotel,
		From:      domain.BookingStatusPending,
		To:        domain.BookingStatusConfirmed,
		ChangedAt: time.Now().UTC(),
	}
	env.bookings.EXPECT().
		SetStatus(mock.Anything, "adm", "b1", "CONFIRMED").
		Return(change, nil)

	w := env.request(t, http.MethodPatch, "/api/admin/bookings/b1/status",
		map[string]string{"status": "CONFIRMED"}, env.adminCookie(t, "adm"))

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.StatusChangeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "b1", resp.Booking.ID)
	assert.Equal(t, "PENDING", resp.Booking.From)
	assert.Equal(t, "CONFIRMED", resp.Booking.To)
}

// The status endpoint shares the cancel endpoint's success envelope.
func TestUpdateBookingStatus_ResponseEnvelope(t *testing.T) {
	env := setup(t)

	change := &domain.StatusChange{
		BookingID: "b1",
		Kind:      domain.BookingKindHotel,
		From:      domain.BookingStatusPending,
		To:        domain.BookingStatusConfirmed,
		ChangedAt: time.Now().UTC(),
	}
	env.bookings.EXPECT().
		SetStatus(mock.Anything, "adm", "b1", "CONFIRMED").
		Return(change, nil)

	w := env.request(t, http.MethodPatch, "/api/admin/bookings/b1/status",
		map[string]string{"status": "CONFIRMED"}, env.adminCookie(t, "adm"))

	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Contains(t, raw, "success")
	assert.Contains(t, raw, "message")
	assert.Contains(t, raw, "booking")
}

func TestUpdateBookingStatus_InvalidTransition(t *testing.T) {
	env := setup(t)

	env.bookings.EXPECT().
		SetStatus(mock.Anything, "adm", "b1", "CONFIRMED").
		Return(nil, domain.Errf(domain.ErrInvalidTransition, "cannot move a CANCELLED booking to CONFIRMED"))

	w := env.request(t, http.MethodPatch, "/api/admin/bookings/b1/status",
		map[string]string{"status": "CONFIRMED"}, env.adminCookie(t, "adm"))

	assert.Equal(t, http.StatusConflict, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, domain.CodeInvalidTransition, resp.Code)
	assert.Contains(t, resp.Error, "CANCELLED")
}

// --- Catalog ---

func TestListHotels_Public(t *testing.T) {
	env := setup(t)

	env.catalog.EXPECT().ListHotels(mock.Anything).Return([]*domain.Hotel{
		{ID: "h1", Name: "Grand Plaza", Location: "Lisbon", PricePerNight: decimal.NewFromInt(150), Available: true},
	}, nil)

	w := env.request(t, http.MethodGet, "/api/hotels", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.HotelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "150", resp[0].PricePerNight)
}

func TestDeleteHotel_ActiveBookings(t *testing.T) {
	env := setup(t)

	env.catalog.EXPECT().DeleteHotel(mock.Anything, "h1").
		Return(domain.Errf(domain.ErrHotelHasBookings, "hotel has 2 active bookings"))

	w := env.request(t, http.MethodDelete, "/api/admin/hotels/h1", nil, env.adminCookie(t, "adm"))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, domain.CodeHotelHasBookings, decodeError(t, w).Code)
}

func TestCreateHotel_AdminOnly(t *testing.T) {
	env := setup(t)

	w := env.request(t, http.MethodPost, "/api/admin/hotels",
		map[string]string{"name": "Grand Plaza"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Auth endpoints ---

func TestLogin_SetsCookie(t *testing.T) {
	env := setup(t)

	user := &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser}
	env.auth.EXPECT().
		Login(mock.Anything, "alice@example.com", "s3cret-pass").
		Return(user, "signed-token", nil)

	w := env.request(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "s3cret-pass",
	})

	require.Equal(t, http.StatusOK, w.Code)

	setCookie := w.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(setCookie, middleware.UserCookie+"="), "got %q", setCookie)
	assert.Contains(t, setCookie, "HttpOnly")
}

func TestLogin_BadCredentials(t *testing.T) {
	env := setup(t)

	env.auth.EXPECT().
		Login(mock.Anything, "alice@example.com", "wrong").
		Return(nil, "", domain.ErrInvalidCredentials)

	w := env.request(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, domain.CodeInvalidCredentials, decodeError(t, w).Code)
}

func TestLogin_MissingFields(t *testing.T) {
	env := setup(t)

	w := env.request(t, http.MethodPost, "/api/auth/login", map[string]string{"email": "alice@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domain.CodeMissingFields, decodeError(t, w).Code)
}

func TestRegister_Success(t *testing.T) {
	env := setup(t)

	user := &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser}
	env.auth.EXPECT().
		Register(mock.Anything, domain.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "s3cret-pass"}).
		Return(user, nil)

	w := env.request(t, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "s3cret-pass",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "USER", resp.Role)
}

func TestRegister_EmailTaken(t *testing.T) {
	env := setup(t)

	env.auth.EXPECT().
		Register(mock.Anything, mock.Anything).
		Return(nil, domain.ErrEmailTaken)

	w := env.request(t, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "s3cret-pass",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, domain.CodeEmailTaken, decodeError(t, w).Code)
}

func TestListUsers_Admin(t *testing.T) {
	env := setup(t)

	env.auth.EXPECT().ListUsers(mock.Anything).Return([]*domain.User{
		{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser},
	}, nil)

	w := env.request(t, http.MethodGet, "/api/admin/users", nil, env.adminCookie(t, "adm"))

	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "alice@example.com", resp[0].Email)
}

func TestListUsers_RequiresAdmin(t *testing.T) {
	env := setup(t)

	w := env.request(t, http.MethodGet, "/api/admin/users", nil, env.userCookie(t, "u1"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_ClearsCookies(t *testing.T) {
	env := setup(t)

	w := env.request(t, http.MethodPost, "/api/auth/logout", nil, env.userCookie(t, "u1"))

	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, c := range cookies {
		assert.Equal(t, -1, c.MaxAge)
	}
}

func TestHealth(t *testing.T) {
	env := setup(t)

	w := env.request(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
