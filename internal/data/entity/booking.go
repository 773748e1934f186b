package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return BookingStatusPending, true
	case "confirmed", "confirm":
		return BookingStatusConfirmed, true
	case "cancelled", "cancel":
		return BookingStatusCancelled, true
	default:
		return "", false
	}
}

// Booking is the hotel variant of an order: same lifecycle shape, keyed to
// a room and date range instead of a cart.
type Booking struct {
	Base
	BookingCode  string          `db:"booking_code"`
	HotelID      uuid.UUID       `db:"hotel_id"`
	RoomID       uuid.UUID       `db:"room_id"`
	UserID       uuid.UUID       `db:"user_id"`
	CheckInDate  time.Time       `db:"check_in_date"`
	CheckOutDate time.Time       `db:"check_out_date"`
	TotalPrice   decimal.Decimal `db:"total_price"`
	Status       BookingStatus   `db:"status"`
}

// Nights returns the number of nights between check-in and check-out.
func (b Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}
