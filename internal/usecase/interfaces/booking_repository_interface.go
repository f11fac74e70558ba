package interfaces

import (
	"context"

	"car_home_services/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for bookings.
//
// Find returns bookings newest-first, optionally restricted to one status
// (empty status means no filter), capped at limit. A zero-value Booking
// (empty ID) from GetByID/UpdateStatus means "not found".

type IBookingRepository interface {
	Insert(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	Find(ctx context.Context, status entities.BookingStatus, limit int) ([]entities.Booking, error)
	UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
}
