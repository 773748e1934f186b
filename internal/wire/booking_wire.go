package wire

import (
	"shop-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		// POST /api/bookings - Book a room for a date range
		r.Post("/", bookingHandler.Create)

		// GET /api/bookings/{bookingId} - Booking details
		r.Get("/{bookingId}", bookingHandler.GetByID)

		// GET /api/bookings/user/{userId} - Booking history for a user (paginated)
		r.Get("/user/{userId}", bookingHandler.GetByUser)

		// GET /api/bookings/hotel/{hotelId} - Bookings for a hotel
		r.Get("/hotel/{hotelId}", bookingHandler.GetByHotel)

		// PUT /api/bookings/{bookingId} - Status transition
		r.Put("/{bookingId}", bookingHandler.UpdateStatus)

		// PUT /api/bookings/{bookingId}/cancel - Cancel and restore availability
		r.Put("/{bookingId}/cancel", bookingHandler.Cancel)
	})
}
