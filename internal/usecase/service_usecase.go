package usecase

import (
	"context"

	"car_home_services/internal/domain/entities"
	"car_home_services/internal/domain/pricing"
	"car_home_services/internal/usecase/interfaces"
)

// IServiceUseCase exposes the service catalog: the live list of offered
// services and the static pricing configuration handlers merge with it.

type IServiceUseCase interface {
	ListActiveServices(ctx context.Context) ([]entities.Service, error)
	Catalog() pricing.Catalog
}

type ServiceUseCase struct {
	services interfaces.IServiceRepository
	catalog  pricing.Catalog
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(services interfaces.IServiceRepository, catalog pricing.Catalog) *ServiceUseCase {
	return &ServiceUseCase{services: services, catalog: catalog}
}

// ListActiveServices returns the offered services, seeding the default
// catalog on first call when the collection is still empty.
func (u *ServiceUseCase) ListActiveServices(ctx context.Context) ([]entities.Service, error) {
	services, err := u.services.FindActiveServices(ctx)
	if err != nil {
		return nil, err
	}
	if len(services) > 0 {
		return services, nil
	}

	if err := u.services.SeedServices(ctx, entities.DefaultServices()); err != nil {
		return nil, err
	}
	return u.services.FindActiveServices(ctx)
}

func (u *ServiceUseCase) Catalog() pricing.Catalog {
	return u.catalog
}
