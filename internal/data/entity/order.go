package entity

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus maps a client-supplied status string to an OrderStatus.
// Short verb forms ("accept", "confirm", "cancel") are accepted for
// compatibility with the admin front end.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return OrderStatusPending, true
	case "confirmed", "confirm":
		return OrderStatusConfirmed, true
	case "accepted", "accept":
		return OrderStatusAccepted, true
	case "cancelled", "cancel":
		return OrderStatusCancelled, true
	default:
		return "", false
	}
}

// Order is created atomically from a non-empty cart snapshot. TotalAmount is
// frozen at checkout time; only Status changes afterwards.
type Order struct {
	Base
	OrderCode   string          `db:"order_code"`
	CustomerID  uuid.UUID       `db:"customer_id"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	Status      OrderStatus     `db:"status"`
}

// OrderDetail is a frozen snapshot of one purchased product. Created once
// alongside its order, never mutated.
type OrderDetail struct {
	BaseSimple
	OrderID   uuid.UUID       `db:"order_id"`
	ProductID uuid.UUID       `db:"product_id"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
}
