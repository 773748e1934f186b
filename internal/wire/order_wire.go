package wire

import (
	"shop-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOrder(r chi.Router, orderHandler *adaptor.OrderHandler) {
	r.Route("/api/orders", func(r chi.Router) {
		// POST /api/orders/checkout - Convert a cart into an order
		r.Post("/checkout", orderHandler.Checkout)

		// GET /api/orders - List orders (paginated)
		r.Get("/", orderHandler.GetOrders)

		// GET /api/orders/{orderId} - Order with its lines
		r.Get("/{orderId}", orderHandler.GetOrderByID)

		// PUT /api/orders/{orderId} - Status transition; accept creates the delivery note
		r.Put("/{orderId}", orderHandler.UpdateStatus)

		// DELETE /api/orders/{orderId} - Remove an order
		r.Delete("/{orderId}", orderHandler.DeleteOrder)
	})

	// ==================== ADMIN ROUTES ====================
	// POST /api/admin/stock-adjustments/reconcile - Retry queued stock adjustments
	r.Post("/api/admin/stock-adjustments/reconcile", orderHandler.ReconcileStock)
}
