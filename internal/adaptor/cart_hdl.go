package adaptor

import (
	"encoding/json"
	"net/http"

	"shop-booking/internal/dto/request"
	"shop-booking/internal/usecase"
	"shop-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log.With(zap.String("handler", "cart")),
	}
}

// AddItem handles POST /api/cart/add
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req request.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	lineID, err := h.service.AddItem(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add cart item")
		return
	}

	utils.ResponseCreated(w, "success", map[string]string{"line_id": lineID})
}

// GetCart handles GET /api/cart/{customerId}
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerId")
	if customerID == "" {
		utils.ResponseBadRequest(w, "Customer ID is required", nil)
		return
	}

	cart, err := h.service.GetCart(r.Context(), customerID)
	if err != nil {
		handleServiceError(w, h.log, err, "get cart")
		return
	}

	utils.ResponseSuccess(w, "success", cart)
}

// UpdateItem handles PUT /api/cart/{lineId}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	lineID := chi.URLParam(r, "lineId")
	if lineID == "" {
		utils.ResponseBadRequest(w, "Cart line ID is required", nil)
		return
	}

	var req request.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateQuantity(r.Context(), lineID, &req); err != nil {
		handleServiceError(w, h.log, err, "update cart item")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// RemoveItem handles DELETE /api/cart/{lineId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	lineID := chi.URLParam(r, "lineId")
	if lineID == "" {
		utils.ResponseBadRequest(w, "Cart line ID is required", nil)
		return
	}

	if err := h.service.RemoveItem(r.Context(), lineID); err != nil {
		handleServiceError(w, h.log, err, "remove cart item")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// Clear handles DELETE /api/cart/customer/{customerId}
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerId")
	if customerID == "" {
		utils.ResponseBadRequest(w, "Customer ID is required", nil)
		return
	}

	if err := h.service.Clear(r.Context(), customerID); err != nil {
		handleServiceError(w, h.log, err, "clear cart")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
