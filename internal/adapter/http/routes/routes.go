package routes

import (
	"context"
	"log"
	"net/http"

	"car_home_services/internal/adapter/http/handlers"
	"car_home_services/internal/adapter/logger"
	"car_home_services/internal/adapter/persistence/repository"
	"car_home_services/internal/config"
	"car_home_services/internal/domain/pricing"
	"car_home_services/internal/infrastructure/database"
	"car_home_services/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run wires the whole service together and starts the HTTP server.
func Run() {
	zl, err := logger.New()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		zl.Fatal("Failed to load configuration", zap.Error(err))
	}

	setMiddlewares(zl)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(zl, cfg)

	zl.Info("Starting server", zap.String("port", cfg.ServerPort), zap.String("env", cfg.Env))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		zl.Fatal("Failed to startup the application", zap.Error(err))
	}
}

func getRoutes(zl *zap.Logger, cfg config.Config) {
	ddb, err := database.ConnectDynamoDB(context.Background())
	if err != nil {
		zl.Fatal("Failed to connect to DynamoDB", zap.Error(err))
	}

	serviceRepo := repository.NewServiceDynamoRepository(ddb)
	bookingRepo := repository.NewBookingDynamoRepository(ddb)

	catalog := pricing.DefaultCatalog()

	areaUseCase := usecase.NewServiceAreaUseCase(cfg.ServiceArea())
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, catalog)
	quoteUseCase := usecase.NewQuoteUseCase(serviceRepo, catalog)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, serviceRepo, catalog, areaUseCase, cfg.BookingListLimit)

	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, areaUseCase)
	areaHandler := handlers.NewServiceAreaHandler(areaUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "car-home-services", "status": "ok"})
	})

	api := router.Group("/api")
	addCatalogRoutes(api, serviceHandler, quoteHandler)
	addServiceAreaRoutes(api, areaHandler)
	addBookingRoutes(api, bookingHandler)
}

func setMiddlewares(zl *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zl.Error("Recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.Default())
}
