package response

import "car_home_services/internal/domain/entities"

type ServiceResponse struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	BasePrice       float64 `json:"base_price"`
	DurationMinutes int     `json:"duration_minutes"`
	IsActive        bool    `json:"is_active"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		Name:            string(s.Name),
		Description:     s.Description,
		BasePrice:       s.BasePrice,
		DurationMinutes: s.DurationMinutes,
		IsActive:        s.IsActive,
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}
