package response

import (
	"time"

	"car_home_services/internal/domain/entities"
)

// BookingCreatedResponse is the acknowledgement for a new booking: the
// generated identifier, the initial status and the frozen quoted price.
type BookingCreatedResponse struct {
	ID          string  `json:"id"`
	Status      string  `json:"status"`
	QuotedPrice float64 `json:"quoted_price"`
}

type BookingResponse struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	VehicleMake   string    `json:"vehicle_make"`
	VehicleModel  string    `json:"vehicle_model"`
	ServiceName   string    `json:"service_name"`
	PreferredDate string    `json:"preferred_date"`
	PreferredTime string    `json:"preferred_time"`
	Notes         string    `json:"notes,omitempty"`
	PackageName   string    `json:"package,omitempty"`
	AddonCodes    []string  `json:"addons,omitempty"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	QuotedPrice   float64   `json:"quoted_price"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// BookingStatusResponse acknowledges a status transition.
type BookingStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func FromBookingCreated(b entities.Booking) BookingCreatedResponse {
	return BookingCreatedResponse{ID: b.ID, Status: string(b.Status), QuotedPrice: b.QuotedPrice}
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		Phone:         b.Phone,
		Address:       b.Address,
		VehicleMake:   b.VehicleMake,
		VehicleModel:  b.VehicleModel,
		ServiceName:   string(b.ServiceName),
		PreferredDate: b.PreferredDate,
		PreferredTime: b.PreferredTime,
		Notes:         b.Notes,
		PackageName:   b.PackageName,
		AddonCodes:    b.AddonCodes,
		Latitude:      b.Latitude,
		Longitude:     b.Longitude,
		QuotedPrice:   b.QuotedPrice,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}
}

func FromBookings(bookings []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b))
	}
	return out
}

func FromBookingStatus(b entities.Booking) BookingStatusResponse {
	return BookingStatusResponse{ID: b.ID, Status: string(b.Status)}
}
