package response

import (
	"time"

	"shop-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type CartLineResponse struct {
	LineID     string          `json:"line_id"`
	CustomerID string          `json:"customer_id"`
	ProductID  string          `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	CreatedAt  time.Time       `json:"created_at"`
}

type CartResponse struct {
	CustomerID string             `json:"customer_id"`
	Lines      []CartLineResponse `json:"lines"`
	Total      decimal.Decimal    `json:"total"`
}

func CartLineToResponse(line *entity.PricedCartLine) CartLineResponse {
	return CartLineResponse{
		LineID:     line.ID.String(),
		CustomerID: line.CustomerID.String(),
		ProductID:  line.ProductID.String(),
		Quantity:   line.Quantity,
		UnitPrice:  line.UnitPrice,
		Subtotal:   line.Subtotal(),
		CreatedAt:  line.CreatedAt,
	}
}

func CartToResponse(customerID string, lines []*entity.PricedCartLine) *CartResponse {
	resp := &CartResponse{
		CustomerID: customerID,
		Lines:      make([]CartLineResponse, len(lines)),
		Total:      decimal.Zero,
	}

	for i, line := range lines {
		resp.Lines[i] = CartLineToResponse(line)
		resp.Total = resp.Total.Add(line.Subtotal())
	}

	return resp
}
