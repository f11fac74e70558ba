package response

import (
	"testing"
	"time"

	"car_home_services/internal/domain/entities"
)

func TestFromBooking(t *testing.T) {
	lat, lng := 28.7041, 77.1025
	created := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)
	b := entities.Booking{
		ID:            "b-1",
		CustomerName:  "Asha Verma",
		Phone:         "+911234567890",
		Address:       "12 MG Road",
		VehicleMake:   "Maruti",
		VehicleModel:  "Swift",
		ServiceName:   entities.ServiceCarWash,
		PreferredDate: "2026-09-01",
		PreferredTime: "10:30",
		PackageName:   "Premium",
		AddonCodes:    []string{"pickup_drop"},
		Latitude:      &lat,
		Longitude:     &lng,
		QuotedPrice:   43.0,
		Status:        entities.BookingStatusPending,
		CreatedAt:     created,
	}

	resp := FromBooking(b)

	if resp.ID != "b-1" || resp.ServiceName != "Car Wash" || resp.Status != "pending" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.QuotedPrice != 43.0 || !resp.CreatedAt.Equal(created) {
		t.Fatalf("unexpected quote or timestamp: %+v", resp)
	}
	if resp.Latitude != &lat || resp.Longitude != &lng {
		t.Fatal("coordinates should be carried over as-is")
	}
}

func TestFromBookingCreated(t *testing.T) {
	resp := FromBookingCreated(entities.Booking{ID: "b-2", Status: entities.BookingStatusPending, QuotedPrice: 37.0})

	if resp.ID != "b-2" || resp.Status != "pending" || resp.QuotedPrice != 37.0 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestFromBookings(t *testing.T) {
	resp := FromBookings(nil)
	if resp == nil || len(resp) != 0 {
		t.Fatalf("nil input must map to an empty slice, got %v", resp)
	}
}
