package handlers

import (
	"net/http"

	response "car_home_services/internal/adapter/http/dto/response"
	"car_home_services/internal/usecase"
	"car_home_services/pkg"

	"github.com/gin-gonic/gin"
)

// ServiceHandler serves the service catalog and the merged pricing view.

type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// ListServices returns the active services, seeding the defaults the first
// time the collection is found empty.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.ListActiveServices(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

// GetPricing returns the static pricing catalog merged with the live active
// services.
func (h *ServiceHandler) GetPricing(c *gin.Context) {
	services, err := h.usecase.ListActiveServices(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPricingCatalog(services, h.usecase.Catalog()))
}
