package response

import "car_home_services/internal/domain/entities"

type PackageResponse struct {
	Name        string  `json:"name"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description,omitempty"`
}

type AddonResponse struct {
	Code  string  `json:"code"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// QuoteResponse is the full price breakdown. ServiceArea is present only
// when the request carried coordinates.
type QuoteResponse struct {
	ServiceName string             `json:"service_name"`
	BasePrice   float64            `json:"base_price"`
	Multiplier  float64            `json:"multiplier"`
	Package     *PackageResponse   `json:"package,omitempty"`
	Addons      []AddonResponse    `json:"addons"`
	Total       float64            `json:"total"`
	ServiceArea *AreaCheckResponse `json:"service_area,omitempty"`
}

func FromQuote(q entities.Quote, check *entities.AreaCheck) QuoteResponse {
	resp := QuoteResponse{
		ServiceName: string(q.ServiceName),
		BasePrice:   q.BasePrice,
		Multiplier:  q.Multiplier,
		Addons:      fromAddons(q.Addons),
		Total:       q.Total,
	}
	if q.Package != nil {
		resp.Package = &PackageResponse{
			Name:        q.Package.Name,
			Multiplier:  q.Package.Multiplier,
			Description: q.Package.Description,
		}
	}
	if check != nil {
		verdict := FromAreaCheck(*check)
		resp.ServiceArea = &verdict
	}
	return resp
}

func fromAddons(addons []entities.Addon) []AddonResponse {
	out := make([]AddonResponse, 0, len(addons))
	for _, a := range addons {
		out = append(out, AddonResponse{Code: a.Code, Label: a.Label, Price: a.Price})
	}
	return out
}
