package entities

import "time"

// BookingStatus is the booking lifecycle state.
//
// Allowed transitions:
//
//	pending   -> confirmed | cancelled
//	confirmed -> completed | cancelled
//	completed and cancelled are terminal.

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle graph allows moving from s
// to next. Setting the current status again is not a transition.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCompleted || next == BookingStatusCancelled
	}
	return false
}

// Booking is a customer's request for a service visit, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// QuotedPrice is frozen at creation time: either supplied by the caller or
// computed from the catalog, never recomputed afterwards.
type Booking struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customer_name"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	VehicleMake   string        `json:"vehicle_make"`
	VehicleModel  string        `json:"vehicle_model"`
	ServiceName   ServiceType   `json:"service_name"`
	PreferredDate string        `json:"preferred_date"`
	PreferredTime string        `json:"preferred_time"`
	Notes         string        `json:"notes,omitempty"`
	PackageName   string        `json:"package,omitempty"`
	AddonCodes    []string      `json:"addons,omitempty"`
	Latitude      *float64      `json:"latitude,omitempty"`
	Longitude     *float64      `json:"longitude,omitempty"`
	QuotedPrice   float64       `json:"quoted_price"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}
