package usecase

import (
	"context"
	"fmt"
	"time"

	"shop-booking/internal/data/entity"
	"shop-booking/internal/data/repository"
	"shop-booking/internal/dto/request"
	"shop-booking/internal/dto/response"
	"shop-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type BookingService interface {
	// Create books a room for a date range; total price is nights times
	// the room's nightly rate. Room availability is decremented
	// best-effort after the booking row is written.
	Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	GetByUser(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetByHotel(ctx context.Context, hotelID string) ([]response.BookingResponse, error)
	UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) error
	Cancel(ctx context.Context, bookingID string) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	hotelID, err := uuid.Parse(req.HotelID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hotel ID %s", ErrValidation, req.HotelID)
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room ID %s", ErrValidation, req.RoomID)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, req.UserID)
	}

	checkIn, err := time.Parse(dateLayout, req.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid check-in date %s", ErrValidation, req.CheckInDate)
	}

	checkOut, err := time.Parse(dateLayout, req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid check-out date %s", ErrValidation, req.CheckOutDate)
	}

	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: check-out must be after check-in", ErrValidation)
	}

	if checkIn.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, fmt.Errorf("%w: cannot book for past dates", ErrValidation)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("check room %s: %w", req.RoomID, err)
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room %s not found", ErrValidation, req.RoomID)
	}
	if room.HotelID != hotelID {
		return nil, fmt.Errorf("%w: room %s does not belong to hotel %s", ErrValidation, req.RoomID, req.HotelID)
	}
	if room.Availability <= 0 {
		return nil, fmt.Errorf("%w: room %s is not available", ErrValidation, req.RoomID)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	totalPrice := room.PricePerNight.Mul(decimal.NewFromInt(int64(nights)))

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingCode:  utils.GenerateOrderCode("BOOK"),
		HotelID:      hotelID,
		RoomID:       roomID,
		UserID:       userID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalPrice:   totalPrice,
		Status:       entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("booking_code", booking.BookingCode),
		zap.String("room_id", req.RoomID),
		zap.Int("nights", nights),
		zap.String("total_price", totalPrice.String()),
	)

	// The booking row is committed; availability follows best-effort with
	// the same compensation path as product stock.
	s.adjustRoomAvailability(context.WithoutCancel(ctx), booking, false)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// adjustRoomAvailability decrements (or restores, on cancel) room
// availability after the booking state change committed. Failures queue a
// pending adjustment for the reconcile endpoint.
func (s *bookingService) adjustRoomAvailability(ctx context.Context, booking *entity.Booking, restore bool) {
	var affected int64
	var err error
	if restore {
		affected, err = s.repo.Room.IncrementAvailability(ctx, booking.RoomID)
	} else {
		affected, err = s.repo.Room.DecrementAvailability(ctx, booking.RoomID)
	}
	if err == nil && affected > 0 {
		return
	}

	s.log.Warn("Room availability adjustment failed, queuing",
		zap.Error(err),
		zap.String("booking_code", booking.BookingCode),
		zap.String("room_id", booking.RoomID.String()),
		zap.Bool("restore", restore),
	)

	quantity := 1
	reason := fmt.Sprintf("availability decrement for booking %s", booking.BookingCode)
	if restore {
		quantity = -1
		reason = fmt.Sprintf("availability restore for booking %s", booking.BookingCode)
	}

	roomID := booking.RoomID
	adjustment := &entity.StockAdjustment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		RoomID:   &roomID,
		Quantity: quantity,
		Reason:   reason,
		Status:   entity.AdjustmentStatusPending,
	}

	if err := s.repo.StockAdjustment.Create(ctx, adjustment); err != nil {
		s.log.Error("Failed to queue room availability adjustment",
			zap.Error(err),
			zap.String("booking_code", booking.BookingCode),
		)
	}
}

func (s *bookingService) GetByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, repository.ErrNotFound
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetByUser(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, id, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get bookings for user %s: %w", userID, err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count bookings for user %s: %w", userID, err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetByHotel(ctx context.Context, hotelID string) ([]response.BookingResponse, error) {
	id, err := uuid.Parse(hotelID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hotel ID %s", ErrValidation, hotelID)
	}

	bookings, err := s.repo.Booking.FindByHotelID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get bookings for hotel %s: %w", hotelID, err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return bookingResponses, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	status, ok := entity.ParseBookingStatus(req.Status)
	if !ok {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
	}

	if status == entity.BookingStatusCancelled {
		return s.Cancel(ctx, bookingID)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", string(status)),
	)

	return nil
}

func (s *bookingService) Cancel(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return repository.ErrNotFound
	}

	if booking.Status == entity.BookingStatusCancelled {
		return nil
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, entity.BookingStatusCancelled); err != nil {
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("booking_code", booking.BookingCode),
	)

	// Give the unit of availability back to the room.
	s.adjustRoomAvailability(context.WithoutCancel(ctx), booking, true)

	return nil
}
