package main

import (
	_ "car_home_services/docs"
	"car_home_services/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Car Home Services API
// @version         1.0
// @description     Booking and pricing backend for doorstep car care (quotes, service area, bookings) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
