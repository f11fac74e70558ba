package usecase

import (
	"car_home_services/internal/domain/entities"
	"car_home_services/internal/domain/geo"
	"car_home_services/internal/domain/pricing"
)

// IServiceAreaUseCase is the geofence policy: a fixed center and radius
// established at startup, never mutated afterwards.

type IServiceAreaUseCase interface {
	Check(lat, lng float64) entities.AreaCheck
	Describe() entities.ServiceArea
}

type ServiceAreaUseCase struct {
	area entities.ServiceArea
}

var _ IServiceAreaUseCase = (*ServiceAreaUseCase)(nil)

func NewServiceAreaUseCase(area entities.ServiceArea) *ServiceAreaUseCase {
	return &ServiceAreaUseCase{area: area}
}

// Check classifies a coordinate pair against the geofence. The verdict is
// taken on the rounded distance so that a reported distance_km equal to the
// radius is always inside. Purely derived from the distance calculator, no
// side effects.
func (u *ServiceAreaUseCase) Check(lat, lng float64) entities.AreaCheck {
	d := pricing.RoundPrice(geo.Distance(u.area.Latitude, u.area.Longitude, lat, lng))
	return entities.AreaCheck{
		Inside:     d <= u.area.RadiusKm,
		DistanceKm: d,
	}
}

func (u *ServiceAreaUseCase) Describe() entities.ServiceArea {
	return u.area
}
