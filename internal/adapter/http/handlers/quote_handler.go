package handlers

import (
	"errors"
	"net/http"

	request "car_home_services/internal/adapter/http/dto/request"
	response "car_home_services/internal/adapter/http/dto/response"
	"car_home_services/internal/domain/entities"
	"car_home_services/internal/usecase"
	"car_home_services/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler computes price quotes and, when coordinates are supplied,
// attaches the service-area verdict. A quote is never rejected for being out
// of area; only bookings are.

type QuoteHandler struct {
	quotes usecase.IQuoteUseCase
	area   usecase.IServiceAreaUseCase
}

func NewQuoteHandler(quotes usecase.IQuoteUseCase, area usecase.IServiceAreaUseCase) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, area: area}
}

func (h *QuoteHandler) ComputeQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.quotes.ComputeQuote(c.Request.Context(), payload.ServiceName, payload.PackageName, payload.AddonCodes)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var check *entities.AreaCheck
	if payload.HasCoordinates() {
		verdict := h.area.Check(*payload.Latitude, *payload.Longitude)
		check = &verdict
	}

	c.JSON(http.StatusOK, response.FromQuote(quote, check))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
