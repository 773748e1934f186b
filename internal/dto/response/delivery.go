package response

import (
	"time"

	"shop-booking/internal/data/entity"
)

type DeliveryNoteResponse struct {
	ID              string                `json:"id"`
	OrderID         string                `json:"order_id"`
	DeliveryDate    time.Time             `json:"delivery_date"`
	DeliveryAddress string                `json:"delivery_address"`
	Status          entity.DeliveryStatus `json:"status"`
	Note            *string               `json:"note,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

func DeliveryNoteToResponse(note *entity.DeliveryNote) DeliveryNoteResponse {
	return DeliveryNoteResponse{
		ID:              note.ID.String(),
		OrderID:         note.OrderID.String(),
		DeliveryDate:    note.DeliveryDate,
		DeliveryAddress: note.DeliveryAddress,
		Status:          note.Status,
		Note:            note.Note,
		CreatedAt:       note.CreatedAt,
	}
}
