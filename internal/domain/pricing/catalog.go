package pricing

import (
	"math"

	"car_home_services/internal/domain/entities"
)

// Catalog is the static pricing configuration: package tiers per service and
// one global add-on list. It is read-only for the lifetime of the process
// and injected wherever quotes are computed.
//
// Lookups deliberately never fail: an unknown package name means "no
// package" (multiplier 1.0) and an unknown add-on code is skipped, so a
// stale or creative client can always get a quote.
type Catalog struct {
	Packages map[entities.ServiceType][]entities.Package
	Addons   []entities.Addon
}

func DefaultCatalog() Catalog {
	return Catalog{
		Packages: map[entities.ServiceType][]entities.Package{
			entities.ServiceCarWash: {
				{Name: "Basic", Multiplier: 1.0, Description: "Exterior wash and dry"},
				{Name: "Premium", Multiplier: 1.4, Description: "Exterior plus full interior"},
				{Name: "Showroom", Multiplier: 1.8, Description: "Deep clean with polish"},
			},
			entities.ServiceSmallRepair: {
				{Name: "Standard", Multiplier: 1.0, Description: "Single minor fix"},
				{Name: "Premium", Multiplier: 1.3, Description: "Multiple fixes in one visit"},
			},
			entities.ServiceTyrePuncture: {
				{Name: "Standard", Multiplier: 1.0, Description: "Puncture repair"},
				{Name: "Premium", Multiplier: 1.25, Description: "Repair plus rotation check"},
			},
			entities.ServiceGeneralServicing: {
				{Name: "Basic", Multiplier: 1.0, Description: "Fluids and filters"},
				{Name: "Comprehensive", Multiplier: 1.5, Description: "Full inspection and tune-up"},
			},
		},
		Addons: []entities.Addon{
			{Code: "pickup_drop", Label: "Pickup & drop", Price: 8.0},
			{Code: "sanitization", Label: "Cabin sanitization", Price: 10.0},
			{Code: "engine_check", Label: "Engine health check", Price: 12.0},
			{Code: "wax_polish", Label: "Wax polish", Price: 14.0},
		},
	}
}

// PackageFor returns the named package for a service, or nil when either the
// service has no tiers or the name does not match.
func (c Catalog) PackageFor(service entities.ServiceType, name string) *entities.Package {
	for _, p := range c.Packages[service] {
		if p.Name == name {
			pkg := p
			return &pkg
		}
	}
	return nil
}

// AddonByCode returns the add-on with the given code, or nil.
func (c Catalog) AddonByCode(code string) *entities.Addon {
	for _, a := range c.Addons {
		if a.Code == code {
			addon := a
			return &addon
		}
	}
	return nil
}

// ComputeQuote prices a resolved service record against the catalog:
// multiplier from the matched package (1.0 when none), plus the price of
// every matched add-on code.
//
// Repeated add-on codes bill once per occurrence; that matches the upstream
// behavior and is kept until product says otherwise.
func ComputeQuote(c Catalog, svc entities.Service, packageName string, addonCodes []string) entities.Quote {
	multiplier := 1.0
	pkg := c.PackageFor(svc.Name, packageName)
	if pkg != nil {
		multiplier = pkg.Multiplier
	}

	addons := make([]entities.Addon, 0, len(addonCodes))
	addonsTotal := 0.0
	for _, code := range addonCodes {
		if a := c.AddonByCode(code); a != nil {
			addons = append(addons, *a)
			addonsTotal += a.Price
		}
	}

	return entities.Quote{
		ServiceName: svc.Name,
		BasePrice:   svc.BasePrice,
		Multiplier:  multiplier,
		Package:     pkg,
		Addons:      addons,
		Total:       RoundPrice(svc.BasePrice*multiplier + addonsTotal),
	}
}

// RoundPrice rounds a monetary amount to two decimal places.
func RoundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}
