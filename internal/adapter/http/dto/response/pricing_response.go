package response

import (
	"car_home_services/internal/domain/entities"
	"car_home_services/internal/domain/pricing"
)

// PricingCatalogResponse merges the live active services with the static
// pricing configuration: per-service package tiers plus the global add-ons.
type PricingCatalogResponse struct {
	Services []PricingServiceResponse `json:"services"`
	Addons   []AddonResponse          `json:"addons"`
}

type PricingServiceResponse struct {
	ServiceResponse
	Packages []PackageResponse `json:"packages"`
}

func FromPricingCatalog(services []entities.Service, catalog pricing.Catalog) PricingCatalogResponse {
	out := PricingCatalogResponse{
		Services: make([]PricingServiceResponse, 0, len(services)),
		Addons:   fromAddons(catalog.Addons),
	}
	for _, svc := range services {
		entry := PricingServiceResponse{
			ServiceResponse: FromService(svc),
			Packages:        make([]PackageResponse, 0, len(catalog.Packages[svc.Name])),
		}
		for _, p := range catalog.Packages[svc.Name] {
			entry.Packages = append(entry.Packages, PackageResponse{
				Name:        p.Name,
				Multiplier:  p.Multiplier,
				Description: p.Description,
			})
		}
		out.Services = append(out.Services, entry)
	}
	return out
}
