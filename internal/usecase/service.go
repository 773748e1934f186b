package usecase

import (
	"shop-booking/internal/data/repository"
	"shop-booking/pkg/database"
	"shop-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Cart     CartService
	Order    OrderService
	Booking  BookingService
	Delivery DeliveryService
}

func NewService(repo *repository.Repository, db database.PgxIface, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Cart:     NewCartService(repo, log),
		Order:    NewOrderService(repo, db, config, log),
		Booking:  NewBookingService(repo, log),
		Delivery: NewDeliveryService(repo, log),
	}
}
