package usecase

import (
	"context"
	"errors"
	"strings"

	"car_home_services/internal/domain/entities"
	"car_home_services/internal/domain/pricing"
	"car_home_services/internal/usecase/interfaces"
)

var (
	ErrInvalidServiceName = errors.New("invalid service name")
	ErrServiceNotFound    = errors.New("service not found")
)

// IQuoteUseCase exposes quote computation: resolve the service record, then
// price it against the static catalog.

type IQuoteUseCase interface {
	ComputeQuote(ctx context.Context, serviceName, packageName string, addonCodes []string) (entities.Quote, error)
}

type QuoteUseCase struct {
	services interfaces.IServiceRepository
	catalog  pricing.Catalog
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(services interfaces.IServiceRepository, catalog pricing.Catalog) *QuoteUseCase {
	return &QuoteUseCase{services: services, catalog: catalog}
}

// ComputeQuote fails only when the service record cannot be resolved.
// Unknown package names and add-on codes degrade gracefully inside the
// catalog instead of erroring.
func (u *QuoteUseCase) ComputeQuote(ctx context.Context, serviceName, packageName string, addonCodes []string) (entities.Quote, error) {
	name := entities.ServiceType(strings.TrimSpace(serviceName))
	if name == "" {
		return entities.Quote{}, ErrInvalidServiceName
	}

	svc, err := u.services.FindServiceByName(ctx, name)
	if err != nil {
		return entities.Quote{}, err
	}
	if svc.Name == "" || !svc.IsActive {
		return entities.Quote{}, ErrServiceNotFound
	}

	return pricing.ComputeQuote(u.catalog, svc, packageName, addonCodes), nil
}
