package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		input  string
		want   OrderStatus
		wantOK bool
	}{
		{"pending", OrderStatusPending, true},
		{"confirmed", OrderStatusConfirmed, true},
		{"confirm", OrderStatusConfirmed, true},
		{"accepted", OrderStatusAccepted, true},
		{"accept", OrderStatusAccepted, true},
		{"cancelled", OrderStatusCancelled, true},
		{"cancel", OrderStatusCancelled, true},
		{"  Accept  ", OrderStatusAccepted, true},
		{"ACCEPTED", OrderStatusAccepted, true},
		{"shipped", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseOrderStatus(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPricedCartLine_Subtotal(t *testing.T) {
	line := PricedCartLine{
		CartLine: CartLine{
			Base:       Base{ID: uuid.New()},
			CustomerID: uuid.New(),
			ProductID:  uuid.New(),
			Quantity:   3,
		},
		UnitPrice: decimal.RequireFromString("10.50"),
	}

	assert.Equal(t, "31.50", line.Subtotal().StringFixed(2))
}

func TestBooking_Nights(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	booking := Booking{
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDate(0, 0, 4),
	}

	assert.Equal(t, 4, booking.Nights())
}

func TestParseBookingStatus(t *testing.T) {
	got, ok := ParseBookingStatus("cancel")
	assert.True(t, ok)
	assert.Equal(t, BookingStatusCancelled, got)

	_, ok = ParseBookingStatus("accepted")
	assert.False(t, ok)
}
