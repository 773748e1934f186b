package response

import (
	"time"

	"shop-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID           string               `json:"id"`
	BookingCode  string               `json:"booking_code"`
	HotelID      string               `json:"hotel_id"`
	RoomID       string               `json:"room_id"`
	UserID       string               `json:"user_id"`
	CheckInDate  string               `json:"check_in_date"`
	CheckOutDate string               `json:"check_out_date"`
	Nights       int                  `json:"nights"`
	TotalPrice   decimal.Decimal      `json:"total_price"`
	Status       entity.BookingStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:           booking.ID.String(),
		BookingCode:  booking.BookingCode,
		HotelID:      booking.HotelID.String(),
		RoomID:       booking.RoomID.String(),
		UserID:       booking.UserID.String(),
		CheckInDate:  booking.CheckInDate.Format("2006-01-02"),
		CheckOutDate: booking.CheckOutDate.Format("2006-01-02"),
		Nights:       booking.Nights(),
		TotalPrice:   booking.TotalPrice,
		Status:       booking.Status,
		CreatedAt:    booking.CreatedAt,
	}
}
