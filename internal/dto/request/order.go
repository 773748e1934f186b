package request

type CheckoutRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid4"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
