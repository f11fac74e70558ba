package routes

import (
	"car_home_services/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices    = "/services"
	PathPricing     = "/pricing"
	PathQuotes      = "/quotes"
	PathServiceArea = "/service-area"
	PathBookings    = "/bookings"
)

func addCatalogRoutes(rg *gin.RouterGroup, serviceHandler *handlers.ServiceHandler, quoteHandler *handlers.QuoteHandler) {
	rg.GET(PathServices, serviceHandler.ListServices)
	rg.GET(PathPricing, serviceHandler.GetPricing)
	rg.POST(PathQuotes, quoteHandler.ComputeQuote)
}

func addServiceAreaRoutes(rg *gin.RouterGroup, areaHandler *handlers.ServiceAreaHandler) {
	area := rg.Group(PathServiceArea)
	{
		area.GET("", areaHandler.Describe)
		area.GET("/check", areaHandler.Check)
	}
}

func addBookingRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("", bookingHandler.ListBookings)
		bookings.PATCH("/:id/status", bookingHandler.UpdateBookingStatus)
	}
}
