package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one pending purchase for a customer. Unique per
// (customer_id, product_id); quantity is always positive, a zero or
// negative quantity removes the line instead.
type CartLine struct {
	Base
	CustomerID uuid.UUID `db:"customer_id"`
	ProductID  uuid.UUID `db:"product_id"`
	Quantity   int       `db:"quantity"`
}

// PricedCartLine is a cart line joined with the current catalog price.
// The join is advisory for display; checkout re-reads the price inside
// its own transaction.
type PricedCartLine struct {
	CartLine
	UnitPrice decimal.Decimal `db:"unit_price"`
}

// Subtotal returns quantity x current unit price.
func (l PricedCartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
