package usecase

import (
	"context"
	"errors"
	"testing"

	"car_home_services/internal/domain/entities"
	"car_home_services/internal/domain/pricing"
	mock_interfaces "car_home_services/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newBookingFixture(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIBookingRepository, *mock_interfaces.MockIServiceRepository, *BookingUseCase) {
	ctrl := gomock.NewController(t)
	bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
	services := mock_interfaces.NewMockIServiceRepository(ctrl)
	area := NewServiceAreaUseCase(entities.ServiceArea{Latitude: 28.6139, Longitude: 77.2090, RadiusKm: 25})
	uc := NewBookingUseCase(bookings, services, pricing.DefaultCatalog(), area, 100)
	return ctrl, bookings, services, uc
}

func validCreateInput() CreateBookingInput {
	return CreateBookingInput{
		CustomerName:  "Asha Verma",
		Phone:         "+911234567890",
		Address:       "12 MG Road",
		VehicleMake:   "Maruti",
		VehicleModel:  "Swift",
		ServiceName:   "Car Wash",
		PreferredDate: "2026-09-01",
		PreferredTime: "10:30",
	}
}

func TestBookingUseCase_Create(t *testing.T) {
	t.Run("unknown status value", func(t *testing.T) {
		ctrl, _, _, uc := newBookingFixture(t)
		defer ctrl.Finish()

		in := validCreateInput()
		in.Status = "archived"
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidBookingStatus) {
			t.Fatalf("expected ErrInvalidBookingStatus, got %v", err)
		}
	})

	t.Run("service not found", func(t *testing.T) {
		ctrl, _, services, uc := newBookingFixture(t)
		defer ctrl.Finish()

		services.EXPECT().FindServiceByName(gomock.Any(), entities.ServiceCarWash).Return(entities.Service{}, nil)

		_, err := uc.Create(context.Background(), validCreateInput())
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("out of area rejected before persistence", func(t *testing.T) {
		ctrl, _, services, uc := newBookingFixture(t)
		defer ctrl.Finish()

		services.EXPECT().FindServiceByName(gomock.Any(), entities.ServiceCarWash).Return(activeCarWash(), nil)

		lat, lng := 19.0760, 72.8777 // Mumbai, far outside the 25 km radius
		in := validCreateInput()
		in.Latitude, in.Longitude = &lat, &lng

		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrOutOfServiceArea) {
			t.Fatalf("expected ErrOutOfServiceArea, got %v", err)
		}
		// No Insert expectation: reaching the repository would fail the test.
	})

	t.Run("quote computed and frozen when absent", func(t *testing.T) {
		ctrl, bookings, services, uc := newBookingFixture(t)
		defer ctrl.Finish()

		services.EXPECT().FindServiceByName(gomock.Any(), entities.ServiceCarWash).Return(activeCarWash(), nil)
		bookings.EXPECT().Insert(gomock.Any(), gomock.AssignableToTypeOf(entities.Booking{})).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				if b.ID == "" {
					t.Fatalf("expected generated id")
				}
				if b.QuotedPrice != 43.0 {
					t.Fatalf("expected frozen quote 43.0, got %v", b.QuotedPrice)
				}
				if b.Status != entities.BookingStatusPending {
					t.Fatalf("expected pending status, got %s", b.Status)
				}
				if b.CreatedAt.IsZero() {
					t.Fatalf("expected creation timestamp")
				}
				return b, nil
			},
		)

		in := validCreateInput()
		in.PackageName = "Premium"
		in.AddonCodes = []string{"pickup_drop"}

		res, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.QuotedPrice != 43.0 {
			t.Fatalf("expected quoted price 43.0, got %v", res.QuotedPrice)
		}
	})

	t.Run("caller-supplied quote kept as-is", func(t *testing.T) {
		ctrl, bookings, services, uc := newBookingFixture(t)
		defer ctrl.Finish()

		services.EXPECT().FindServiceByName(gomock.Any(), entities.ServiceCarWash).Return(activeCarWash(), nil)
		bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				if b.QuotedPrice != 99.5 {
					t.Fatalf("expected supplied quote 99.5, got %v", b.QuotedPrice)
				}
				return b, nil
			},
		)

		quoted := 99.5
		in := validCreateInput()
		in.QuotedPrice = &quoted

		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("in-area coordinates accepted", func(t *testing.T) {
		ctrl, bookings, services, uc := newBookingFixture(t)
		defer ctrl.Finish()

		services.EXPECT().FindServiceByName(gomock.Any(), entities.ServiceCarWash).Return(activeCarWash(), nil)
		bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) { return b, nil },
		)

		lat, lng := 28.7, 77.3
		in := validCreateInput()
		in.Latitude, in.Longitude = &lat, &lng

		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBookingUseCase_List(t *testing.T) {
	t.Run("invalid status filter", func(t *testing.T) {
		ctrl, _, _, uc := newBookingFixture(t)
		defer ctrl.Finish()

		_, err := uc.List(context.Background(), "archived")
		if !errors.Is(err, ErrInvalidBookingStatus) {
			t.Fatalf("expected ErrInvalidBookingStatus, got %v", err)
		}
	})

	t.Run("passes filter and cap to repository", func(t *testing.T) {
		ctrl, bookings, _, uc := newBookingFixture(t)
		defer ctrl.Finish()

		expected := []entities.Booking{{ID: "b-1", Status: entities.BookingStatusPending}}
		bookings.EXPECT().Find(gomock.Any(), entities.BookingStatusPending, 100).Return(expected, nil)

		got, err := uc.List(context.Background(), "pending")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "b-1" {
			t.Fatalf("unexpected bookings: %+v", got)
		}
	})

	t.Run("no filter", func(t *testing.T) {
		ctrl, bookings, _, uc := newBookingFixture(t)
		defer ctrl.Finish()

		bookings.EXPECT().Find(gomock.Any(), entities.BookingStatus(""), 100).Return(nil, nil)

		if _, err := uc.List(context.Background(), "  "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBookingUseCase_SetStatus(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		ctrl, _, _, uc := newBookingFixture(t)
		defer ctrl.Finish()

		_, err := uc.SetStatus(context.Background(), "  ", "confirmed")
		if !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
	})

	t.Run("status outside the enumeration", func(t *testing.T) {
		ctrl, _, _, uc := newBookingFixture(t)
		defer ctrl.Finish()

		_, err := uc.SetStatus(context.Background(), "b-1", "archived")
		if !errors.Is(err, ErrInvalidBookingStatus) {
			t.Fatalf("expected ErrInvalidBookingStatus, got %v", err)
		}
	})

	t.Run("booking not found", func(t *testing.T) {
		ctrl, bookings, _, uc := newBookingFixture(t)
		defer ctrl.Finish()

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Booking{}, nil)

		_, err := uc.SetStatus(context.Background(), "b-1", "confirmed")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("transition outside the graph", func(t *testing.T) {
		ctrl, bookings, _, uc := newBookingFixture(t)
		defer ctrl.Finish()

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Booking{ID: "b-1", Status: entities.BookingStatusCompleted}, nil)

		_, err := uc.SetStatus(context.Background(), "b-1", "pending")
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("pending to confirmed", func(t *testing.T) {
		ctrl, bookings, _, uc := newBookingFixture(t)
		defer ctrl.Finish()

		gomock.InOrder(
			bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Booking{ID: "b-1", Status: entities.BookingStatusPending}, nil),
			bookings.EXPECT().UpdateStatus(gomock.Any(), "b-1", entities.BookingStatusConfirmed).Return(entities.Booking{ID: "b-1", Status: entities.BookingStatusConfirmed}, nil),
		)

		res, err := uc.SetStatus(context.Background(), " b-1 ", "confirmed")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.BookingStatusConfirmed {
			t.Fatalf("expected confirmed, got %s", res.Status)
		}
	})

	t.Run("update race loses the booking", func(t *testing.T) {
		ctrl, bookings, _, uc := newBookingFixture(t)
		defer ctrl.Finish()

		gomock.InOrder(
			bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Booking{ID: "b-1", Status: entities.BookingStatusPending}, nil),
			bookings.EXPECT().UpdateStatus(gomock.Any(), "b-1", entities.BookingStatusCancelled).Return(entities.Booking{}, nil),
		)

		_, err := uc.SetStatus(context.Background(), "b-1", "cancelled")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})
}
