package request

import "car_home_services/internal/usecase"

// BookingRequest is the typed booking submission. Field constraints follow
// the catalog schema: phone 6-20 chars, preferred_date YYYY-MM-DD,
// preferred_time HH:MM. Package, add-ons, coordinates, quoted_price and
// status are optional.
type BookingRequest struct {
	CustomerName  string   `json:"customer_name" binding:"required"`
	Phone         string   `json:"phone" binding:"required,min=6,max=20"`
	Address       string   `json:"address" binding:"required"`
	VehicleMake   string   `json:"vehicle_make" binding:"required"`
	VehicleModel  string   `json:"vehicle_model" binding:"required"`
	ServiceName   string   `json:"service_name" binding:"required"`
	PreferredDate string   `json:"preferred_date" binding:"required,datetime=2006-01-02"`
	PreferredTime string   `json:"preferred_time" binding:"required,datetime=15:04"`
	Notes         string   `json:"notes"`
	PackageName   string   `json:"package"`
	AddonCodes    []string `json:"addons"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	QuotedPrice   *float64 `json:"quoted_price"`
	Status        string   `json:"status"`
}

func (r BookingRequest) ToInput() usecase.CreateBookingInput {
	return usecase.CreateBookingInput{
		CustomerName:  r.CustomerName,
		Phone:         r.Phone,
		Address:       r.Address,
		VehicleMake:   r.VehicleMake,
		VehicleModel:  r.VehicleModel,
		ServiceName:   r.ServiceName,
		PreferredDate: r.PreferredDate,
		PreferredTime: r.PreferredTime,
		Notes:         r.Notes,
		PackageName:   r.PackageName,
		AddonCodes:    r.AddonCodes,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		QuotedPrice:   r.QuotedPrice,
		Status:        r.Status,
	}
}
