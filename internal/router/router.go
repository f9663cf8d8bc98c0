package router

import (
	"net/http"

	"github.com/thisuriee/peer-pulse/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	UpdateBooking(c *ginext.Context)
	AcceptBooking(c *ginext.Context)
	DeclineBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CompleteBooking(c *ginext.Context)
	AvailableSlots(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	UpdateAvailability(c *ginext.Context)
	AddDateOverride(c *ginext.Context)
	RemoveDateOverride(c *ginext.Context)
	ListTutors(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api/v1", middleware.Identity())
	{
		// Bookings
		bookings := api.Group("/bookings")
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/available-slots", h.AvailableSlots)
		bookings.GET("/:id", h.GetBooking)
		bookings.PUT("/:id", h.UpdateBooking)
		bookings.POST("/:id/accept", middleware.RequireTutor(), h.AcceptBooking)
		bookings.POST("/:id/decline", middleware.RequireTutor(), h.DeclineBooking)
		bookings.POST("/:id/cancel", h.CancelBooking)
		bookings.POST("/:id/complete", h.CompleteBooking)

		// Own availability (tutors only)
		availability := api.Group("/availability", middleware.RequireTutor())
		availability.GET("", h.GetAvailability)
		availability.PUT("", h.UpdateAvailability)
		availability.POST("/overrides", h.AddDateOverride)
		availability.DELETE("/overrides/:date", h.RemoveDateOverride)

		// Tutor discovery
		api.GET("/tutors", h.ListTutors)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
