package handlers

import (
	"net/http"
	"strconv"

	response "car_home_services/internal/adapter/http/dto/response"
	"car_home_services/internal/usecase"
	"car_home_services/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCoordinate = pkg.NewDomainErrorSimple("INVALID_COORDINATE", "lat and lng must be valid numbers", http.StatusBadRequest)

// ServiceAreaHandler exposes the geofence: describe the configured circle
// and classify raw coordinate pairs.

type ServiceAreaHandler struct {
	usecase usecase.IServiceAreaUseCase
}

func NewServiceAreaHandler(uc usecase.IServiceAreaUseCase) *ServiceAreaHandler {
	return &ServiceAreaHandler{usecase: uc}
}

func (h *ServiceAreaHandler) Describe(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromServiceArea(h.usecase.Describe()))
}

// Check reads lat/lng query parameters. Anything that does not parse as a
// number is rejected before the policy runs.
func (h *ServiceAreaHandler) Check(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(errInvalidCoordinate.HTTPStatus, errInvalidCoordinate.ToHTTPError())
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		c.JSON(errInvalidCoordinate.HTTPStatus, errInvalidCoordinate.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAreaCheck(h.usecase.Check(lat, lng)))
}
