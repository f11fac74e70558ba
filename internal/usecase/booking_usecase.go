package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"car_home_services/internal/domain/entities"
	"car_home_services/internal/domain/pricing"
	"car_home_services/internal/usecase/interfaces"
)

var (
	ErrBookingNotFound         = errors.New("booking not found")
	ErrInvalidBookingID        = errors.New("invalid booking id")
	ErrInvalidBookingStatus    = errors.New("invalid booking status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrOutOfServiceArea        = errors.New("location outside service area")
)

// CreateBookingInput carries the validated booking request. QuotedPrice nil
// means "compute and freeze one from the package/add-ons"; Status empty
// means pending.
type CreateBookingInput struct {
	CustomerName  string
	Phone         string
	Address       string
	VehicleMake   string
	VehicleModel  string
	ServiceName   string
	PreferredDate string
	PreferredTime string
	Notes         string
	PackageName   string
	AddonCodes    []string
	Latitude      *float64
	Longitude     *float64
	QuotedPrice   *float64
	Status        string
}

// IBookingUseCase exposes the booking lifecycle operations.

type IBookingUseCase interface {
	Create(ctx context.Context, in CreateBookingInput) (entities.Booking, error)
	List(ctx context.Context, statusFilter string) ([]entities.Booking, error)
	SetStatus(ctx context.Context, id, newStatus string) (entities.Booking, error)
}

type BookingUseCase struct {
	bookings  interfaces.IBookingRepository
	services  interfaces.IServiceRepository
	catalog   pricing.Catalog
	area      IServiceAreaUseCase
	listLimit int
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(
	bookings interfaces.IBookingRepository,
	services interfaces.IServiceRepository,
	catalog pricing.Catalog,
	area IServiceAreaUseCase,
	listLimit int,
) *BookingUseCase {
	return &BookingUseCase{
		bookings:  bookings,
		services:  services,
		catalog:   catalog,
		area:      area,
		listLimit: listLimit,
	}
}

// Create resolves the service, rejects out-of-area coordinates before
// anything is persisted, freezes the quoted price, and stores the booking
// with a creation timestamp.
func (u *BookingUseCase) Create(ctx context.Context, in CreateBookingInput) (entities.Booking, error) {
	status := entities.BookingStatusPending
	if s := strings.TrimSpace(in.Status); s != "" {
		status = entities.BookingStatus(s)
		if !status.IsValid() {
			return entities.Booking{}, ErrInvalidBookingStatus
		}
	}

	name := entities.ServiceType(strings.TrimSpace(in.ServiceName))
	if name == "" {
		return entities.Booking{}, ErrInvalidServiceName
	}
	svc, err := u.services.FindServiceByName(ctx, name)
	if err != nil {
		return entities.Booking{}, err
	}
	if svc.Name == "" || !svc.IsActive {
		return entities.Booking{}, ErrServiceNotFound
	}

	if in.Latitude != nil && in.Longitude != nil {
		if check := u.area.Check(*in.Latitude, *in.Longitude); !check.Inside {
			return entities.Booking{}, ErrOutOfServiceArea
		}
	}

	quoted := 0.0
	if in.QuotedPrice != nil {
		quoted = *in.QuotedPrice
	} else {
		quoted = pricing.ComputeQuote(u.catalog, svc, in.PackageName, in.AddonCodes).Total
	}

	b := entities.Booking{
		ID:            uuid.NewString(),
		CustomerName:  in.CustomerName,
		Phone:         in.Phone,
		Address:       in.Address,
		VehicleMake:   in.VehicleMake,
		VehicleModel:  in.VehicleModel,
		ServiceName:   svc.Name,
		PreferredDate: in.PreferredDate,
		PreferredTime: in.PreferredTime,
		Notes:         in.Notes,
		PackageName:   in.PackageName,
		AddonCodes:    in.AddonCodes,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		QuotedPrice:   quoted,
		Status:        status,
		CreatedAt:     time.Now().UTC(),
	}
	return u.bookings.Insert(ctx, b)
}

// List returns bookings newest-first, capped at the configured limit.
func (u *BookingUseCase) List(ctx context.Context, statusFilter string) ([]entities.Booking, error) {
	var status entities.BookingStatus
	if s := strings.TrimSpace(statusFilter); s != "" {
		status = entities.BookingStatus(s)
		if !status.IsValid() {
			return nil, ErrInvalidBookingStatus
		}
	}
	return u.bookings.Find(ctx, status, u.listLimit)
}

// SetStatus moves a booking along the lifecycle graph. The graph check is a
// strengthening over the permissive upstream behavior: transitions outside
// pending->confirmed/cancelled and confirmed->completed/cancelled are
// rejected.
func (u *BookingUseCase) SetStatus(ctx context.Context, id, newStatus string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	next := entities.BookingStatus(strings.TrimSpace(newStatus))
	if !next.IsValid() {
		return entities.Booking{}, ErrInvalidBookingStatus
	}

	current, err := u.bookings.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if current.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if !current.Status.CanTransitionTo(next) {
		return entities.Booking{}, ErrInvalidStatusTransition
	}

	updated, err := u.bookings.UpdateStatus(ctx, id, next)
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return updated, nil
}
