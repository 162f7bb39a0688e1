package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/roamline/TripBooker/internal/auth"
	"github.com/roamline/TripBooker/internal/middleware"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	AdminLogin(c *ginext.Context)
	Logout(c *ginext.Context)
	ListUsers(c *ginext.Context)

	BookHotel(c *ginext.Context)
	BookActivity(c *ginext.Context)
	CancelHotelBooking(c *ginext.Context)
	CancelActivityBooking(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)

	CreateHotel(c *ginext.Context)
	GetHotel(c *ginext.Context)
	ListHotels(c *ginext.Context)
	UpdateHotel(c *ginext.Context)
	DeleteHotel(c *ginext.Context)

	CreateActivity(c *ginext.Context)
	GetActivity(c *ginext.Context)
	ListActivities(c *ginext.Context)
	UpdateActivity(c *ginext.Context)
	DeleteActivity(c *ginext.Context)
}

func InitRouter(mode string, h Handler, tokens *auth.Manager, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.Register)
			authGroup.POST("/login", h.Login)
			authGroup.POST("/admin/login", h.AdminLogin)
			authGroup.POST("/logout", h.Logout)
		}

		// Catalog browsing is public.
		api.GET("/hotels", h.ListHotels)
		api.GET("/hotels/:id", h.GetHotel)
		api.GET("/activities", h.ListActivities)
		api.GET("/activities/:id", h.GetActivity)

		user := api.Group("/bookings", middleware.AuthUser(tokens))
		{
			user.POST("/hotel", h.BookHotel)
			user.POST("/activity", h.BookActivity)
			user.DELETE("/hotel/:id", h.CancelHotelBooking)
			user.DELETE("/activity/:id", h.CancelActivityBooking)
			user.GET("", h.ListMyBookings)
		}

		admin := api.Group("/admin", middleware.AuthAdmin(tokens))
		{
			admin.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
			admin.GET("/users", h.ListUsers)

			admin.POST("/hotels", h.CreateHotel)
			admin.PUT("/hotels/:id", h.UpdateHotel)
			admin.DELETE("/hotels/:id", h.DeleteHotel)

			admin.POST("/activities", h.CreateActivity)
			admin.PUT("/activities/:id", h.UpdateActivity)
			admin.DELETE("/activities/:id", h.DeleteActivity)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
