package adaptor

import (
	"net/http"

	"shop-booking/internal/usecase"
	"shop-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DeliveryHandler struct {
	service usecase.DeliveryService
	log     *zap.Logger
}

func NewDeliveryHandler(service usecase.DeliveryService, log *zap.Logger) *DeliveryHandler {
	return &DeliveryHandler{
		service: service,
		log:     log.With(zap.String("handler", "delivery")),
	}
}

// GetAll handles GET /api/delivery-notes
func (h *DeliveryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list delivery notes")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// GetByOrder handles GET /api/delivery-notes/order/{orderId}
func (h *DeliveryHandler) GetByOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	if orderID == "" {
		utils.ResponseBadRequest(w, "Order ID is required", nil)
		return
	}

	result, err := h.service.GetByOrderID(r.Context(), orderID)
	if err != nil {
		handleServiceError(w, h.log, err, "get delivery note")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}
