package entities

// ServiceType enumerates the services the business offers. The name doubles
// as the natural key for catalog and pricing lookups.

type ServiceType string

const (
	ServiceCarWash          ServiceType = "Car Wash"
	ServiceSmallRepair      ServiceType = "Small Repair"
	ServiceTyrePuncture     ServiceType = "Tyre Puncture"
	ServiceGeneralServicing ServiceType = "General Servicing"
)

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceCarWash, ServiceSmallRepair, ServiceTyrePuncture, ServiceGeneralServicing:
		return true
	}
	return false
}

// Service is a catalog entry persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: name
type Service struct {
	Name            ServiceType `json:"name"`
	Description     string      `json:"description"`
	BasePrice       float64     `json:"base_price"`
	DurationMinutes int         `json:"duration_minutes"`
	IsActive        bool        `json:"is_active"`
}

// DefaultServices is the seed inserted the first time the catalog is read
// while the collection is still empty.
func DefaultServices() []Service {
	return []Service{
		{Name: ServiceCarWash, Description: "Exterior & interior cleaning", BasePrice: 25.0, DurationMinutes: 60, IsActive: true},
		{Name: ServiceSmallRepair, Description: "Minor fixes and adjustments", BasePrice: 40.0, DurationMinutes: 90, IsActive: true},
		{Name: ServiceTyrePuncture, Description: "On-site puncture repair or spare change", BasePrice: 15.0, DurationMinutes: 30, IsActive: true},
		{Name: ServiceGeneralServicing, Description: "Basic fluids, filters, inspection", BasePrice: 70.0, DurationMinutes: 180, IsActive: true},
	}
}
