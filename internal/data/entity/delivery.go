package entity

import (
	"time"

	"github.com/google/uuid"
)

type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusShipped   DeliveryStatus = "shipped"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
)

// DeliveryNote is derived from an order when it is accepted. At most one
// note exists per order.
type DeliveryNote struct {
	BaseSimple
	OrderID         uuid.UUID      `db:"order_id"`
	DeliveryDate    time.Time      `db:"delivery_date"`
	DeliveryAddress string         `db:"delivery_address"`
	Status          DeliveryStatus `db:"status"`
	Note            *string        `db:"note"`
}
