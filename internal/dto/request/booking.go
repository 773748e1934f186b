package request

type CreateBookingRequest struct {
	HotelID      string `json:"hotel_id" validate:"required,uuid4"`
	RoomID       string `json:"room_id" validate:"required,uuid4"`
	UserID       string `json:"user_id" validate:"required,uuid4"`
	CheckInDate  string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
