package repository

import (
	"shop-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Cart            CartRepository
	Product         ProductRepository
	Room            RoomRepository
	Order           OrderRepository
	Delivery        DeliveryRepository
	Booking         BookingRepository
	User            UserRepository
	StockAdjustment StockAdjustmentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Cart:            NewCartRepository(db, log),
		Product:         NewProductRepository(db, log),
		Room:            NewRoomRepository(db, log),
		Order:           NewOrderRepository(db, log),
		Delivery:        NewDeliveryRepository(db, log),
		Booking:         NewBookingRepository(db, log),
		User:            NewUserRepository(db, log),
		StockAdjustment: NewStockAdjustmentRepository(db, log),
	}
}
