package entity

import (
	"github.com/google/uuid"
)

type AdjustmentStatus string

const (
	AdjustmentStatusPending AdjustmentStatus = "pending"
	AdjustmentStatusApplied AdjustmentStatus = "applied"
)

// StockAdjustment records an inventory or room-availability decrement that
// failed after its order/booking already committed. The order must not be
// rolled back at that point, so the decrement is kept as a pending row and
// retried by the reconcile endpoint.
type StockAdjustment struct {
	BaseSimple
	ProductID *uuid.UUID       `db:"product_id"`
	RoomID    *uuid.UUID       `db:"room_id"`
	Quantity  int              `db:"quantity"`
	Reason    string           `db:"reason"`
	Status    AdjustmentStatus `db:"status"`
}
