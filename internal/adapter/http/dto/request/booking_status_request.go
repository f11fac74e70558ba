package request

// BookingStatusRequest is the typed status-update payload. Validation of the
// value against the status enumeration happens in the use case.
type BookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
