package request

type AddCartItemRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid4"`
	ProductID  string `json:"product_id" validate:"required,uuid4"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
}

// Quantity carries no validation tag: zero or negative means "remove the
// line" and is handled by the service.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
