package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"car_home_services/internal/adapter/http/handlers/mocks"
	"car_home_services/internal/domain/entities"
	"car_home_services/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validBookingBody = `{
	"customer_name": "Asha Verma",
	"phone": "+911234567890",
	"address": "12 MG Road",
	"vehicle_make": "Maruti",
	"vehicle_model": "Swift",
	"service_name": "Car Wash",
	"preferred_date": "2026-09-01",
	"preferred_time": "10:30",
	"package": "Premium",
	"addons": ["pickup_drop"]
}`

func newBookingRouter(uc usecase.IBookingUseCase) *gin.Engine {
	h := NewBookingHandler(uc)
	r := gin.New()
	r.POST("/api/bookings", h.CreateBooking)
	r.GET("/api/bookings", h.ListBookings)
	r.PATCH("/api/bookings/:id/status", h.UpdateBookingStatus)
	return r
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(`{"customer_name":"Asha Verma"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed preferred date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(uc)

		body := `{
			"customer_name": "Asha Verma",
			"phone": "+911234567890",
			"address": "12 MG Road",
			"vehicle_make": "Maruti",
			"vehicle_model": "Swift",
			"service_name": "Car Wash",
			"preferred_date": "01-09-2026",
			"preferred_time": "10:30"
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("out of service area", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Booking{}, usecase.ErrOutOfServiceArea)

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(validBookingBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Booking{}, usecase.ErrServiceNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(validBookingBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateBookingInput) (entities.Booking, error) {
				if in.ServiceName != "Car Wash" || in.PackageName != "Premium" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Booking{ID: "b-1", Status: entities.BookingStatusPending, QuotedPrice: 43.0, CreatedAt: time.Now().UTC()}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(validBookingBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "b-1" || body["status"] != "pending" || body["quoted_price"] != 43.0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestBookingHandler_ListBookings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(uc)

		uc.EXPECT().List(gomock.Any(), "archived").Return(nil, usecase.ErrInvalidBookingStatus)

		req := httptest.NewRequest(http.MethodGet, "/api/bookings?status=archived", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success with filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(uc)

		uc.EXPECT().List(gomock.Any(), "pending").Return([]entities.Booking{
			{ID: "b-1", Status: entities.BookingStatusPending, CreatedAt: time.Now().UTC()},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/bookings?status=pending", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 1 || body[0]["id"] != "b-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestBookingHandler_UpdateBookingStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing status field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(uc)

		req := httptest.NewRequest(http.MethodPatch, "/api/bookings/b-1/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("status outside enumeration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(uc)

		uc.EXPECT().SetStatus(gomock.Any(), "b-1", "archived").Return(entities.Booking{}, usecase.ErrInvalidBookingStatus)

		req := httptest.NewRequest(http.MethodPatch, "/api/bookings/b-1/status", bytes.NewBufferString(`{"status":"archived"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(uc)

		uc.EXPECT().SetStatus(gomock.Any(), "nope", "confirmed").Return(entities.Booking{}, usecase.ErrBookingNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/api/bookings/nope/status", bytes.NewBufferString(`{"status":"confirmed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(uc)

		uc.EXPECT().SetStatus(gomock.Any(), "b-1", "confirmed").Return(entities.Booking{ID: "b-1", Status: entities.BookingStatusConfirmed}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/api/bookings/b-1/status", bytes.NewBufferString(`{"status":"confirmed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "b-1" || body["status"] != "confirmed" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
