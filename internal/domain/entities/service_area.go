package entities

// ServiceArea is the circular geofence bookings must fall inside. A single
// instance is configured at startup and never mutated afterwards.
type ServiceArea struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius_km"`
}

// AreaCheck is the verdict for a single coordinate pair. DistanceKm is
// rounded to two decimals; a point exactly on the boundary counts as inside.
type AreaCheck struct {
	Inside     bool    `json:"inside"`
	DistanceKm float64 `json:"distance_km"`
}
