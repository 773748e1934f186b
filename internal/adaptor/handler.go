package adaptor

import (
	"errors"
	"net/http"

	"shop-booking/internal/data/repository"
	"shop-booking/internal/usecase"
	"shop-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Cart     *CartHandler
	Order    *OrderHandler
	Booking  *BookingHandler
	Delivery *DeliveryHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Cart:     NewCartHandler(service.Cart, log),
		Order:    NewOrderHandler(service.Order, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Delivery: NewDeliveryHandler(service.Delivery, log),
	}
}

// handleServiceError maps business errors to HTTP status codes via sentinel
// matching. Anything unmatched is an internal error and keeps its details
// out of the response.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrEmptyCart):
		log.Warn(operation+" failed - empty cart", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, repository.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrDependency):
		log.Error(operation+" failed - dependency", zap.Error(err))
		utils.ResponseInternalError(w, err.Error())

	case errors.Is(err, usecase.ErrCheckout):
		log.Error(operation+" failed - checkout", zap.Error(err))
		utils.ResponseInternalError(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
