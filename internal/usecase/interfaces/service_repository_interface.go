package interfaces

import (
	"context"

	"car_home_services/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for the service catalog.
//
// The booking core must be able to:
//   - list the currently offered services
//   - resolve a service by its natural key (name) when quoting/booking
//   - seed the default catalog once, when the collection is empty
//
// A zero-value Service (empty Name) means "not found"; errors are reserved
// for storage failures.

type IServiceRepository interface {
	FindActiveServices(ctx context.Context) ([]entities.Service, error)
	FindServiceByName(ctx context.Context, name entities.ServiceType) (entities.Service, error)
	SeedServices(ctx context.Context, services []entities.Service) error
}
