package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Room struct {
	Base
	HotelID       uuid.UUID       `db:"hotel_id"`
	RoomNumber    string          `db:"room_number"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	Availability  int             `db:"availability"`
}
