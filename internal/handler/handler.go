package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/roamline/TripBooker/internal/domain"
	"github.com/roamline/TripBooker/internal/handler/dto"
	"github.com/roamline/TripBooker/internal/middleware"
)

type BookingSvc interface {
	BookHotel(ctx context.Context, userID string, in domain.BookHotelInput) (*domain.HotelBooking, error)
	BookActivity(ctx context.Context, userID string, in domain.BookActivityInput) (*domain.ActivityBooking, error)
	CancelHotelBooking(ctx context.Context, userID, bookingID string) (*domain.Cancellation, error)
	CancelActivityBooking(ctx context.Context, userID, bookingID string) (*domain.Cancellation, error)
	SetStatus(ctx context.Context, adminID, bookingID, target string) (*domain.StatusChange, error)
	ListUserBookings(ctx context.Context, userID string) (*domain.UserBookings, error)
}

type CatalogSvc interface {
	CreateHotel(ctx context.Context, in domain.CreateHotelInput) (*domain.Hotel, error)
	GetHotel(ctx context.Context, id string) (*domain.Hotel, error)
	ListHotels(ctx context.Context) ([]*domain.Hotel, error)
	UpdateHotel(ctx context.Context, id string, in domain.UpdateHotelInput) (*domain.Hotel, error)
	DeleteHotel(ctx context.Context, id string) error
	CreateActivity(ctx context.Context, in domain.CreateActivityInput) (*domain.Activity, error)
	GetActivity(ctx context.Context, id string) (*domain.Activity, error)
	ListActivities(ctx context.Context) ([]*domain.Activity, error)
	UpdateActivity(ctx context.Context, id string, in domain.UpdateActivityInput) (*domain.Activity, error)
	DeleteActivity(ctx context.Context, id string) error
}

type AuthSvc interface {
	Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	AdminLogin(ctx context.Context, email, password string) (*domain.User, string, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	bookingService BookingSvc
	catalogService CatalogSvc
	authService    AuthSvc
	cookieTTL      time.Duration
}

func NewHandler(bookingService BookingSvc, catalogService CatalogSvc, authService AuthSvc, cookieTTL time.Duration) *Handler {
	return &Handler{
		bookingService: bookingService,
		catalogService: catalogService,
		authService:    authService,
		cookieTTL:      cookieTTL,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.Errf(domain.ErrMissingFields, "invalid request body"))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	h.login(c, middleware.UserCookie, h.authService.Login)
}

func (h *Handler) AdminLogin(c *ginext.Context) {
	h.login(c, middleware.AdminCookie, h.authService.AdminLogin)
}

func (h *Handler) login(
	c *ginext.Context,
	cookie string,
	authenticate func(ctx context.Context, email, password string) (*domain.User, string, error),
) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.Errf(domain.ErrMissingFields, "invalid request body"))
		return
	}
	if req.Email == "" || req.Password == "" {
		h.handleError(c, domain.ErrMissingFields)
		return
	}

	user, token, err := authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.SetCookie(cookie, token, int(h.cookieTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.authService.ListUsers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, dto.ToUserResponse(user))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Logout(c *ginext.Context) {
	c.SetCookie(middleware.UserCookie, "", -1, "/", "", false, true)
	c.SetCookie(middleware.AdminCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, ginext.H{"success": true})
}

// Bookings

func (h *Handler) BookHotel(c *ginext.Context) {
	var req dto.CreateHotelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.Errf(domain.ErrMissingFields, "invalid request body"))
		return
	}

	booking, err := h.bookingService.BookHotel(c.Request.Context(), middleware.Identity(c).UserID, domain.BookHotelInput{
		HotelID:    req.HotelID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TotalPrice: string(req.TotalPrice),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToHotelBookingResponse(booking))
}

func (h *Handler) BookActivity(c *ginext.Context) {
	var req dto.CreateActivityBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.Errf(domain.ErrMissingFields, "invalid request body"))
		return
	}

	booking, err := h.bookingService.BookActivity(c.Request.Context(), middleware.Identity(c).UserID, domain.BookActivityInput{
		ActivityID: req.ActivityID,
		Date:       req.Date,
		People:     string(req.People),
		TotalPrice: string(req.TotalPrice),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToActivityBookingResponse(booking))
}

func (h *Handler) CancelHotelBooking(c *ginext.Context) {
	cancellation, err := h.bookingService.CancelHotelBooking(c.Request.Context(), middleware.Identity(c).UserID, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCancelResponse(cancellation))
}

func (h *Handler) CancelActivityBooking(c *ginext.Context) {
	cancellation, err := h.bookingService.CancelActivityBooking(c.Request.Context(), middleware.Identity(c).UserID, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCancelResponse(cancellation))
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListUserBookings(c.Request.Context(), middleware.Identity(c).UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserBookingsResponse(bookings))
}

func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.Errf(domain.ErrMissingFields, "invalid request body"))
		return
	}

	change, err := h.bookingService.SetStatus(c.Request.Context(), middleware.Identity(c).UserID, c.Param("id"), req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatusChangeResponse(change))
}

// Hotels

func (h *Handler) CreateHotel(c *ginext.Context) {
	var req dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.Errf(domain.ErrMissingFields, "invalid request body"))
		return
	}

	hotel, err := h.catalogService.CreateHotel(c.Request.Context(), domain.CreateHotelInput{
		Name:          req.Name,
		Location:      req.Location,
		PricePerNight: string(req.PricePerNight),
		Available:     req.Available,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToHotelResponse(hotel))
}

func (h *Handler) GetHotel(c *ginext.Context) {
	hotel, err := h.catalogService.GetHotel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHotelResponse(hotel))
}

func (h *Handler) ListHotels(c *ginext.Context) {
	hotels, err := h.catalogService.ListHotels(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		resp = append(resp, dto.ToHotelResponse(hotel))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateHotel(c *ginext.Context) {
	var req dto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.Errf(domain.ErrMissingFields, "invalid request body"))
		return
	}

	hotel, err := h.catalogService.UpdateHotel(c.Request.Context(), c.Param("id"), domain.UpdateHotelInput{
		Name:          req.Name,
		Location:      req.Location,
		PricePerNight: flexPtr(req.PricePerNight),
		Available:     req.Available,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHotelResponse(hotel))
}

func (h *Handler) DeleteHotel(c *ginext.Context) {
	if err := h.catalogService.DeleteHotel(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true})
}

// Activities

func (h *Handler) CreateActivity(c *ginext.Context) {
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.Errf(domain.ErrMissingFields, "invalid request body"))
		return
	}

	activity, err := h.catalogService.CreateActivity(c.Request.Context(), domain.CreateActivityInput{
		Name:           req.Name,
		Location:       req.Location,
		PricePerPerson: string(req.PricePerPerson),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToActivityResponse(activity))
}

func (h *Handler) GetActivity(c *ginext.Context) {
	activity, err := h.catalogService.GetActivity(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityResponse(activity))
}

func (h *Handler) ListActivities(c *ginext.Context) {
	activities, err := h.catalogService.ListActivities(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		resp = append(resp, dto.ToActivityResponse(activity))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateActivity(c *ginext.Context) {
	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.Errf(domain.ErrMissingFields, "invalid request body"))
		return
	}

	activity, err := h.catalogService.UpdateActivity(c.Request.Context(), c.Param("id"), domain.UpdateActivityInput{
		Name:           req.Name,
		Location:       req.Location,
		PricePerPerson: flexPtr(req.PricePerPerson),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityResponse(activity))
}

func (h *Handler) DeleteActivity(c *ginext.Context) {
	if err := h.catalogService.DeleteActivity(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true})
}

// handleError maps domain errors to the {error, code} contract. Anything
// without a code is an internal failure and stays opaque to the caller.
func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var derr *domain.Error
	if errors.As(err, &derr) {
		c.JSON(derr.Status, dto.ErrorResponse{Error: derr.Message, Code: derr.Code})
		return
	}

	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: domain.ErrInternal.Message,
		Code:  domain.ErrInternal.Code,
	})
}

func flexPtr(f *dto.Flexible) *string {
	if f == nil {
		return nil
	}
	s := string(*f)
	return &s
}
