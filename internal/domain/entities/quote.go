package entities

// Package is a named pricing tier for a service, expressed as a multiplier
// on the service's base price. Defined in static configuration, never
// persisted.
type Package struct {
	Name        string  `json:"name"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description,omitempty"`
}

// Addon is an optional flat-fee extra, independent of service and package.
type Addon struct {
	Code  string  `json:"code"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// Quote is the computed price breakdown for a service + package + add-ons
// combination. Ephemeral: recomputed per request unless a booking freezes a
// copy of Total.
type Quote struct {
	ServiceName ServiceType `json:"service_name"`
	BasePrice   float64     `json:"base_price"`
	Multiplier  float64     `json:"multiplier"`
	Package     *Package    `json:"package,omitempty"`
	Addons      []Addon     `json:"addons"`
	Total       float64     `json:"total"`
}
