package response

import (
	"time"

	"shop-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type CheckoutResponse struct {
	OrderID     string          `json:"order_id"`
	OrderCode   string          `json:"order_code"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type OrderLineResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type OrderResponse struct {
	ID          string             `json:"id"`
	OrderCode   string             `json:"order_code"`
	CustomerID  string             `json:"customer_id"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Status      entity.OrderStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
}

type OrderDetailResponse struct {
	OrderResponse
	Lines []OrderLineResponse `json:"lines"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		ID:          order.ID.String(),
		OrderCode:   order.OrderCode,
		CustomerID:  order.CustomerID.String(),
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
	}
}

func OrderDetailToResponse(order *entity.Order, details []*entity.OrderDetail) *OrderDetailResponse {
	lines := make([]OrderLineResponse, len(details))
	for i, detail := range details {
		lines[i] = OrderLineResponse{
			ProductID: detail.ProductID.String(),
			Quantity:  detail.Quantity,
			UnitPrice: detail.UnitPrice,
		}
	}

	return &OrderDetailResponse{
		OrderResponse: OrderToResponse(order),
		Lines:         lines,
	}
}
