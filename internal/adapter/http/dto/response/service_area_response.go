package response

import "car_home_services/internal/domain/entities"

type ServiceAreaResponse struct {
	Center   CoordinateResponse `json:"center"`
	RadiusKm float64            `json:"radius_km"`
}

type CoordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type AreaCheckResponse struct {
	Inside     bool    `json:"inside"`
	DistanceKm float64 `json:"distance_km"`
}

func FromServiceArea(a entities.ServiceArea) ServiceAreaResponse {
	return ServiceAreaResponse{
		Center:   CoordinateResponse{Latitude: a.Latitude, Longitude: a.Longitude},
		RadiusKm: a.RadiusKm,
	}
}

func FromAreaCheck(c entities.AreaCheck) AreaCheckResponse {
	return AreaCheckResponse{Inside: c.Inside, DistanceKm: c.DistanceKm}
}
