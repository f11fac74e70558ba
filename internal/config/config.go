package config

import (
	"github.com/spf13/viper"

	"car_home_services/internal/domain/entities"
)

// Config holds the startup configuration. The service area and the booking
// list cap are fixed here for the lifetime of the process; DynamoDB
// connection settings stay with the database package.
type Config struct {
	ServerPort          string  `mapstructure:"SERVER_PORT"`
	Env                 string  `mapstructure:"ENV"`
	ServiceAreaLat      float64 `mapstructure:"SERVICE_AREA_LAT"`
	ServiceAreaLng      float64 `mapstructure:"SERVICE_AREA_LNG"`
	ServiceAreaRadiusKm float64 `mapstructure:"SERVICE_AREA_RADIUS_KM"`
	BookingListLimit    int     `mapstructure:"BOOKING_LIST_LIMIT"`
}

func Load() (Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("SERVICE_AREA_LAT", 28.6139)
	viper.SetDefault("SERVICE_AREA_LNG", 77.2090)
	viper.SetDefault("SERVICE_AREA_RADIUS_KM", 25.0)
	viper.SetDefault("BOOKING_LIST_LIMIT", 100)

	// A missing .env is fine; environment variables and defaults apply.
	_ = viper.ReadInConfig()

	var cfg Config
	err := viper.Unmarshal(&cfg)
	return cfg, err
}

func (c Config) ServiceArea() entities.ServiceArea {
	return entities.ServiceArea{
		Latitude:  c.ServiceAreaLat,
		Longitude: c.ServiceAreaLng,
		RadiusKm:  c.ServiceAreaRadiusKm,
	}
}
