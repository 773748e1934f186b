package usecase

import (
	"context"
	"fmt"
	"time"

	"shop-booking/internal/data/entity"
	"shop-booking/internal/data/repository"
	"shop-booking/internal/dto/request"
	"shop-booking/internal/dto/response"
	"shop-booking/pkg/database"
	"shop-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderService interface {
	// Checkout converts the customer's cart into an order atomically:
	// read priced cart lines, compute the total, write order and lines,
	// empty the cart, commit. Stock is decremented best-effort after the
	// commit.
	Checkout(ctx context.Context, req *request.CheckoutRequest) (*response.CheckoutResponse, error)

	// UpdateStatus writes the new status; on the accept transition it also
	// creates the delivery note in the same transaction, once per order.
	UpdateStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatusRequest) error

	GetOrders(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	GetOrderByID(ctx context.Context, orderID string) (*response.OrderDetailResponse, error)
	DeleteOrder(ctx context.Context, orderID string) error

	// ReconcileStockAdjustments retries decrements that failed after their
	// order committed. Returns the number of adjustments applied.
	ReconcileStockAdjustments(ctx context.Context) (int, error)
}

type orderService struct {
	repo   *repository.Repository
	db     database.PgxIface
	config *utils.Config
	log    *zap.Logger
}

func NewOrderService(repo *repository.Repository, db database.PgxIface, config *utils.Config, log *zap.Logger) OrderService {
	return &orderService{
		repo:   repo,
		db:     db,
		config: config,
		log:    log.With(zap.String("service", "order")),
	}
}

func (s *orderService) Checkout(ctx context.Context, req *request.CheckoutRequest) (*response.CheckoutResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Checkout validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid customer ID %s", ErrValidation, req.CustomerID)
	}

	// An expired deadline aborts the transaction; no partial order is ever
	// visible.
	ctx, cancel := context.WithTimeout(ctx, s.config.Checkout.Timeout())
	defer cancel()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: begin transaction: %v", ErrCheckout, err)
	}
	defer tx.Rollback(ctx)

	// The cart rows are locked until commit, so a concurrent checkout for
	// the same customer either waits here or finds the cart already empty.
	lines, err := s.repo.Cart.FindByCustomerForUpdate(ctx, tx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: read cart: %v", ErrCheckout, err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	totalAmount := decimal.Zero
	for _, line := range lines {
		totalAmount = totalAmount.Add(line.Subtotal())
	}

	now := time.Now()
	order := &entity.Order{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderCode:   utils.GenerateOrderCode("ORD"),
		CustomerID:  customerID,
		TotalAmount: totalAmount,
		Status:      entity.OrderStatusPending,
	}

	if err := s.repo.Order.CreateTx(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("%w: create order: %v", ErrCheckout, err)
	}

	for _, line := range lines {
		detail := &entity.OrderDetail{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			// Freezes the price read at step one; later catalog changes do
			// not touch this order.
			UnitPrice: line.UnitPrice,
		}

		if err := s.repo.Order.CreateDetailTx(ctx, tx, detail); err != nil {
			return nil, fmt.Errorf("%w: create order detail: %v", ErrCheckout, err)
		}
	}

	if err := s.repo.Cart.ClearTx(ctx, tx, customerID); err != nil {
		return nil, fmt.Errorf("%w: clear cart: %v", ErrCheckout, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%w: commit: %v", ErrCheckout, err)
	}

	s.log.Info("Checkout completed",
		zap.String("order_id", order.ID.String()),
		zap.String("order_code", order.OrderCode),
		zap.String("customer_id", req.CustomerID),
		zap.Int("line_count", len(lines)),
		zap.String("total_amount", totalAmount.String()),
	)

	// Past this point the order is committed and must not be rolled back.
	// Decrement failures become pending adjustments instead.
	s.applyStockDecrements(context.WithoutCancel(ctx), order, lines)

	return &response.CheckoutResponse{
		OrderID:     order.ID.String(),
		OrderCode:   order.OrderCode,
		TotalAmount: totalAmount,
	}, nil
}

func (s *orderService) applyStockDecrements(ctx context.Context, order *entity.Order, lines []*entity.PricedCartLine) {
	for _, line := range lines {
		affected, err := s.repo.Product.DecrementStock(ctx, line.ProductID, line.Quantity)
		if err == nil && affected > 0 {
			continue
		}

		if err != nil {
			s.log.Warn("Stock decrement failed, queuing adjustment",
				zap.Error(err),
				zap.String("order_code", order.OrderCode),
				zap.String("product_id", line.ProductID.String()),
			)
		} else {
			s.log.Warn("Stock decrement found no eligible row, queuing adjustment",
				zap.String("order_code", order.OrderCode),
				zap.String("product_id", line.ProductID.String()),
				zap.Int("quantity", line.Quantity),
			)
		}

		productID := line.ProductID
		adjustment := &entity.StockAdjustment{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			ProductID: &productID,
			Quantity:  line.Quantity,
			Reason:    fmt.Sprintf("stock decrement for order %s", order.OrderCode),
			Status:    entity.AdjustmentStatusPending,
		}

		if err := s.repo.StockAdjustment.Create(ctx, adjustment); err != nil {
			s.log.Error("Failed to queue stock adjustment",
				zap.Error(err),
				zap.String("order_code", order.OrderCode),
				zap.String("product_id", line.ProductID.String()),
			)
		}
	}
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	status, ok := entity.ParseOrderStatus(req.Status)
	if !ok {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
	}

	id, err := uuid.Parse(orderID)
	if err != nil {
		return fmt.Errorf("%w: invalid order ID %s", ErrValidation, orderID)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	order, err := s.repo.Order.FindByIDTx(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("load order %s: %w", orderID, err)
	}
	if order == nil {
		return repository.ErrNotFound
	}

	if err := s.repo.Order.UpdateStatusTx(ctx, tx, id, status); err != nil {
		return fmt.Errorf("update order %s status: %w", orderID, err)
	}

	if status == entity.OrderStatusAccepted {
		if err := s.createDeliveryNote(ctx, tx, order); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit status update for order %s: %w", orderID, err)
	}

	s.log.Info("Order status updated",
		zap.String("order_id", orderID),
		zap.String("order_code", order.OrderCode),
		zap.String("status", string(status)),
	)

	return nil
}

// createDeliveryNote runs inside the accept transaction: the status write
// and the note land together or not at all. Re-accepting an order that
// already has a note is a no-op.
func (s *orderService) createDeliveryNote(ctx context.Context, tx database.Tx, order *entity.Order) error {
	existing, err := s.repo.Delivery.FindByOrderIDTx(ctx, tx, order.ID)
	if err != nil {
		return fmt.Errorf("check existing delivery note: %w", err)
	}
	if existing != nil {
		s.log.Info("Delivery note already exists, skipping",
			zap.String("order_id", order.ID.String()),
		)
		return nil
	}

	contact, err := s.repo.User.GetContactInfoTx(ctx, tx, order.CustomerID)
	if err != nil {
		return fmt.Errorf("%w: load contact info: %v", ErrDependency, err)
	}
	if contact == nil {
		return fmt.Errorf("%w: contact info for customer %s not found", ErrDependency, order.CustomerID.String())
	}

	now := time.Now()
	note := &entity.DeliveryNote{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		OrderID:         order.ID,
		DeliveryDate:    now.AddDate(0, 0, s.config.Checkout.DeliveryLeadDays),
		DeliveryAddress: contact.Address,
		Status:          entity.DeliveryStatusPending,
	}

	if err := s.repo.Delivery.CreateTx(ctx, tx, note); err != nil {
		return fmt.Errorf("create delivery note: %w", err)
	}

	s.log.Info("Delivery note created",
		zap.String("order_id", order.ID.String()),
		zap.Time("delivery_date", note.DeliveryDate),
	)

	return nil
}

func (s *orderService) GetOrders(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	orders, err := s.repo.Order.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	total, err := s.repo.Order.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	orderResponses := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		orderResponses[i] = response.OrderToResponse(order)
	}

	return response.NewPaginatedResponse(orderResponses, req.Page, req.PerPage, total), nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (*response.OrderDetailResponse, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid order ID %s", ErrValidation, orderID)
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	if order == nil {
		return nil, repository.ErrNotFound
	}

	details, err := s.repo.Order.FindDetailsByOrderID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get details for order %s: %w", orderID, err)
	}

	return response.OrderDetailToResponse(order, details), nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return fmt.Errorf("%w: invalid order ID %s", ErrValidation, orderID)
	}

	return s.repo.Order.Delete(ctx, id)
}

func (s *orderService) ReconcileStockAdjustments(ctx context.Context) (int, error) {
	pending, err := s.repo.StockAdjustment.FindPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("load pending adjustments: %w", err)
	}

	applied := 0
	for _, adjustment := range pending {
		var affected int64
		var applyErr error

		switch {
		case adjustment.ProductID != nil:
			affected, applyErr = s.repo.Product.DecrementStock(ctx, *adjustment.ProductID, adjustment.Quantity)
		case adjustment.RoomID != nil && adjustment.Quantity < 0:
			affected, applyErr = s.repo.Room.IncrementAvailability(ctx, *adjustment.RoomID)
		case adjustment.RoomID != nil:
			affected, applyErr = s.repo.Room.DecrementAvailability(ctx, *adjustment.RoomID)
		default:
			s.log.Warn("Stock adjustment references neither product nor room",
				zap.String("adjustment_id", adjustment.ID.String()),
			)
			continue
		}

		if applyErr != nil || affected == 0 {
			s.log.Warn("Stock adjustment still not applicable",
				zap.Error(applyErr),
				zap.String("adjustment_id", adjustment.ID.String()),
			)
			continue
		}

		if err := s.repo.StockAdjustment.MarkApplied(ctx, adjustment.ID); err != nil {
			s.log.Error("Failed to mark stock adjustment applied",
				zap.Error(err),
				zap.String("adjustment_id", adjustment.ID.String()),
			)
			continue
		}

		applied++
	}

	s.log.Info("Stock adjustments reconciled",
		zap.Int("pending", len(pending)),
		zap.Int("applied", applied),
	)

	return applied, nil
}
