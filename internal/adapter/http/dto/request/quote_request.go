package request

// QuoteRequest is the typed payload for quote computation. The source
// accepted an untyped bag of fields here; required fields are now enforced
// at the boundary.
type QuoteRequest struct {
	ServiceName string   `json:"service_name" binding:"required"`
	PackageName string   `json:"package"`
	AddonCodes  []string `json:"addons"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// HasCoordinates reports whether the caller asked for a service-area verdict
// alongside the quote. Both coordinates must be present.
func (r QuoteRequest) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}
