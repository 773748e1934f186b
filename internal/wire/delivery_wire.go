package wire

import (
	"shop-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDelivery(r chi.Router, deliveryHandler *adaptor.DeliveryHandler) {
	r.Route("/api/delivery-notes", func(r chi.Router) {
		// GET /api/delivery-notes - List delivery notes (paginated)
		r.Get("/", deliveryHandler.GetAll)

		// GET /api/delivery-notes/order/{orderId} - Delivery note for one order
		r.Get("/order/{orderId}", deliveryHandler.GetByOrder)
	})
}
