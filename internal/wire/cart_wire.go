package wire

import (
	"shop-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCart(r chi.Router, cartHandler *adaptor.CartHandler) {
	r.Route("/api/cart", func(r chi.Router) {
		// POST /api/cart/add - Add a product to the cart (upsert on duplicate)
		r.Post("/add", cartHandler.AddItem)

		// GET /api/cart/{customerId} - View cart with priced lines and total
		r.Get("/{customerId}", cartHandler.GetCart)

		// PUT /api/cart/{lineId} - Change quantity (0 or less removes the line)
		r.Put("/{lineId}", cartHandler.UpdateItem)

		// DELETE /api/cart/{lineId} - Remove one line
		r.Delete("/{lineId}", cartHandler.RemoveItem)

		// DELETE /api/cart/customer/{customerId} - Empty the whole cart
		r.Delete("/customer/{customerId}", cartHandler.Clear)
	})
}
