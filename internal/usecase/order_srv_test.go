package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"shop-booking/internal/data/entity"
	"shop-booking/internal/data/repository"
	"shop-booking/internal/dto/request"
	"shop-booking/pkg/database"
	"shop-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Checkout: utils.CheckoutConfig{
			TimeoutSeconds:   5,
			DeliveryLeadDays: 2,
		},
	}
}

func pricedLine(customerID uuid.UUID, quantity int, price string) *entity.PricedCartLine {
	return &entity.PricedCartLine{
		CartLine: entity.CartLine{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			CustomerID: customerID,
			ProductID:  uuid.New(),
			Quantity:   quantity,
		},
		UnitPrice: decimal.RequireFromString(price),
	}
}

func TestOrderService_Checkout(t *testing.T) {
	customerID := uuid.New()
	lines := []*entity.PricedCartLine{
		pricedLine(customerID, 2, "10.50"),
		pricedLine(customerID, 1, "4.00"),
	}

	t.Run("success creates order, details, clears cart and decrements stock", func(t *testing.T) {
		tx := &fakeTx{}
		var createdOrder *entity.Order
		var createdDetails []*entity.OrderDetail
		var clearedCustomer uuid.UUID
		decremented := map[uuid.UUID]int{}

		repo := &repository.Repository{
			Cart: &mockCartRepo{
				FindByCustomerForUpdateFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID) ([]*entity.PricedCartLine, error) {
					assert.Equal(t, customerID, id)
					return lines, nil
				},
				ClearTxFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID) error {
					clearedCustomer = id
					return nil
				},
			},
			Order: &mockOrderRepo{
				CreateTxFunc: func(ctx context.Context, q database.Queryer, order *entity.Order) error {
					createdOrder = order
					return nil
				},
				CreateDetailTxFunc: func(ctx context.Context, q database.Queryer, detail *entity.OrderDetail) error {
					createdDetails = append(createdDetails, detail)
					return nil
				},
			},
			Product: &mockProductRepo{
				DecrementStockFunc: func(ctx context.Context, id uuid.UUID, quantity int) (int64, error) {
					decremented[id] = quantity
					return 1, nil
				},
			},
		}

		svc := NewOrderService(repo, &fakeDB{tx: tx}, testConfig(), zap.NewNop())

		resp, err := svc.Checkout(context.Background(), &request.CheckoutRequest{CustomerID: customerID.String()})
		require.NoError(t, err)

		assert.True(t, tx.committed)
		assert.False(t, tx.rolledBack)

		assert.Equal(t, "25.00", resp.TotalAmount.StringFixed(2))
		assert.Equal(t, createdOrder.ID.String(), resp.OrderID)
		assert.Equal(t, createdOrder.OrderCode, resp.OrderCode)

		require.NotNil(t, createdOrder)
		assert.Equal(t, entity.OrderStatusPending, createdOrder.Status)
		assert.Equal(t, customerID, createdOrder.CustomerID)
		assert.True(t, createdOrder.TotalAmount.Equal(decimal.RequireFromString("25.00")))

		require.Len(t, createdDetails, 2)
		for i, detail := range createdDetails {
			assert.Equal(t, createdOrder.ID, detail.OrderID)
			assert.Equal(t, lines[i].ProductID, detail.ProductID)
			assert.Equal(t, lines[i].Quantity, detail.Quantity)
			assert.True(t, detail.UnitPrice.Equal(lines[i].UnitPrice))
		}

		assert.Equal(t, customerID, clearedCustomer)

		require.Len(t, decremented, 2)
		for _, line := range lines {
			assert.Equal(t, line.Quantity, decremented[line.ProductID])
		}
	})

	t.Run("empty cart returns ErrEmptyCart without committing", func(t *testing.T) {
		tx := &fakeTx{}
		repo := &repository.Repository{
			Cart: &mockCartRepo{
				FindByCustomerForUpdateFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID) ([]*entity.PricedCartLine, error) {
					return nil, nil
				},
			},
		}

		svc := NewOrderService(repo, &fakeDB{tx: tx}, testConfig(), zap.NewNop())

		_, err := svc.Checkout(context.Background(), &request.CheckoutRequest{CustomerID: customerID.String()})
		assert.ErrorIs(t, err, ErrEmptyCart)
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
	})

	t.Run("order insert failure rolls back and leaves cart intact", func(t *testing.T) {
		tx := &fakeTx{}
		cartCleared := false

		repo := &repository.Repository{
			Cart: &mockCartRepo{
				FindByCustomerForUpdateFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID) ([]*entity.PricedCartLine, error) {
					return lines, nil
				},
				ClearTxFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID) error {
					cartCleared = true
					return nil
				},
			},
			Order: &mockOrderRepo{
				CreateTxFunc: func(ctx context.Context, q database.Queryer, order *entity.Order) error {
					return errors.New("insert failed")
				},
			},
		}

		svc := NewOrderService(repo, &fakeDB{tx: tx}, testConfig(), zap.NewNop())

		_, err := svc.Checkout(context.Background(), &request.CheckoutRequest{CustomerID: customerID.String()})
		assert.ErrorIs(t, err, ErrCheckout)
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
		assert.False(t, cartCleared)
	})

	t.Run("invalid customer id fails validation", func(t *testing.T) {
		svc := NewOrderService(&repository.Repository{}, &fakeDB{tx: &fakeTx{}}, testConfig(), zap.NewNop())

		_, err := svc.Checkout(context.Background(), &request.CheckoutRequest{CustomerID: "not-a-uuid"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("failed stock decrement queues adjustment but checkout still succeeds", func(t *testing.T) {
		tx := &fakeTx{}
		var queued []*entity.StockAdjustment

		repo := &repository.Repository{
			Cart: &mockCartRepo{
				FindByCustomerForUpdateFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID) ([]*entity.PricedCartLine, error) {
					return lines, nil
				},
				ClearTxFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID) error {
					return nil
				},
			},
			Order: &mockOrderRepo{
				CreateTxFunc: func(ctx context.Context, q database.Queryer, order *entity.Order) error {
					return nil
				},
				CreateDetailTxFunc: func(ctx context.Context, q database.Queryer, detail *entity.OrderDetail) error {
					return nil
				},
			},
			Product: &mockProductRepo{
				DecrementStockFunc: func(ctx context.Context, id uuid.UUID, quantity int) (int64, error) {
					// Under-stocked: guarded update matches no row.
					return 0, nil
				},
			},
			StockAdjustment: &mockStockAdjustmentRepo{
				CreateFunc: func(ctx context.Context, adjustment *entity.StockAdjustment) error {
					queued = append(queued, adjustment)
					return nil
				},
			},
		}

		svc := NewOrderService(repo, &fakeDB{tx: tx}, testConfig(), zap.NewNop())

		resp, err := svc.Checkout(context.Background(), &request.CheckoutRequest{CustomerID: customerID.String()})
		require.NoError(t, err)
		assert.True(t, tx.committed)
		assert.Equal(t, "25.00", resp.TotalAmount.StringFixed(2))

		require.Len(t, queued, 2)
		for i, adjustment := range queued {
			require.NotNil(t, adjustment.ProductID)
			assert.Equal(t, lines[i].ProductID, *adjustment.ProductID)
			assert.Equal(t, lines[i].Quantity, adjustment.Quantity)
			assert.Equal(t, entity.AdjustmentStatusPending, adjustment.Status)
		}
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	orderID := uuid.New()
	customerID := uuid.New()

	existingOrder := func() *entity.Order {
		return &entity.Order{
			Base:        entity.Base{ID: orderID},
			OrderCode:   "ORD-20260101-120000-0001",
			CustomerID:  customerID,
			TotalAmount: decimal.RequireFromString("25.00"),
			Status:      entity.OrderStatusPending,
		}
	}

	t.Run("accept creates delivery note in the same transaction", func(t *testing.T) {
		tx := &fakeTx{}
		var updatedStatus entity.OrderStatus
		var createdNote *entity.DeliveryNote

		repo := &repository.Repository{
			Order: &mockOrderRepo{
				FindByIDTxFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Order, error) {
					return existingOrder(), nil
				},
				UpdateStatusTxFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID, status entity.OrderStatus) error {
					updatedStatus = status
					return nil
				},
			},
			Delivery: &mockDeliveryRepo{
				FindByOrderIDTxFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.DeliveryNote, error) {
					return nil, nil
				},
				CreateTxFunc: func(ctx context.Context, q database.Queryer, note *entity.DeliveryNote) error {
					createdNote = note
					return nil
				},
			},
			User: &mockUserRepo{
				GetContactInfoTxFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.ContactInfo, error) {
					assert.Equal(t, customerID, id)
					return &entity.ContactInfo{FullName: "Jane Roe", Address: "12 Harbor St", Phone: "555-0101"}, nil
				},
			},
		}

		svc := NewOrderService(repo, &fakeDB{tx: tx}, testConfig(), zap.NewNop())

		err := svc.UpdateStatus(context.Background(), orderID.String(), &request.UpdateOrderStatusRequest{Status: "accept"})
		require.NoError(t, err)

		assert.True(t, tx.committed)
		assert.Equal(t, entity.OrderStatusAccepted, updatedStatus)

		require.NotNil(t, createdNote)
		assert.Equal(t, orderID, createdNote.OrderID)
		assert.Equal(t, "12 Harbor St", createdNote.DeliveryAddress)
		assert.Equal(t, entity.DeliveryStatusPending, createdNote.Status)

		wantDate := time.Now().AddDate(0, 0, 2)
		assert.WithinDuration(t, wantDate, createdNote.DeliveryDate, time.Minute)
	})

	t.Run("re-accept with existing note is a no-op for the note", func(t *testing.T) {
		tx := &fakeTx{}
		noteCreated := false

		repo := &repository.Repository{
			Order: &mockOrderRepo{
				FindByIDTxFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Order, error) {
					order := existingOrder()
					order.Status = entity.OrderStatusAccepted
					return order, nil
				},
				UpdateStatusTxFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID, status entity.OrderStatus) error {
					return nil
				},
			},
			Delivery: &mockDeliveryRepo{
				FindByOrderIDTxFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.DeliveryNote, error) {
					return &entity.DeliveryNote{OrderID: id}, nil
				},
				CreateTxFunc: func(ctx context.Context, q database.Queryer, note *entity.DeliveryNote) error {
					noteCreated = true
					return nil
				},
			},
		}

		svc := NewOrderService(repo, &fakeDB{tx: tx}, testConfig(), zap.NewNop())

		err := svc.UpdateStatus(context.Background(), orderID.String(), &request.UpdateOrderStatusRequest{Status: "accepted"})
		require.NoError(t, err)
		assert.True(t, tx.committed)
		assert.False(t, noteCreated)
	})

	t.Run("missing contact info fails the whole transition", func(t *testing.T) {
		tx := &fakeTx{}

		repo := &repository.Repository{
			Order: &mockOrderRepo{
				FindByIDTxFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Order, error) {
					return existingOrder(), nil
				},
				UpdateStatusTxFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID, status entity.OrderStatus) error {
					return nil
				},
			},
			Delivery: &mockDeliveryRepo{
				FindByOrderIDTxFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.DeliveryNote, error) {
					return nil, nil
				},
			},
			User: &mockUserRepo{
				GetContactInfoTxFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.ContactInfo, error) {
					return nil, nil
				},
			},
		}

		svc := NewOrderService(repo, &fakeDB{tx: tx}, testConfig(), zap.NewNop())

		err := svc.UpdateStatus(context.Background(), orderID.String(), &request.UpdateOrderStatusRequest{Status: "accept"})
		assert.ErrorIs(t, err, ErrDependency)
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
	})

	t.Run("confirm does not touch delivery notes", func(t *testing.T) {
		tx := &fakeTx{}
		noteLookups := 0

		repo := &repository.Repository{
			Order: &mockOrderRepo{
				FindByIDTxFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Order, error) {
					return existingOrder(), nil
				},
				UpdateStatusTxFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID, status entity.OrderStatus) error {
					assert.Equal(t, entity.OrderStatusConfirmed, status)
					return nil
				},
			},
			Delivery: &mockDeliveryRepo{
				FindByOrderIDTxFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.DeliveryNote, error) {
					noteLookups++
					return nil, nil
				},
			},
		}

		svc := NewOrderService(repo, &fakeDB{tx: tx}, testConfig(), zap.NewNop())

		err := svc.UpdateStatus(context.Background(), orderID.String(), &request.UpdateOrderStatusRequest{Status: "confirm"})
		require.NoError(t, err)
		assert.True(t, tx.committed)
		assert.Zero(t, noteLookups)
	})

	t.Run("unknown order returns ErrNotFound", func(t *testing.T) {
		tx := &fakeTx{}

		repo := &repository.Repository{
			Order: &mockOrderRepo{
				FindByIDTxFunc: func(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Order, error) {
					return nil, nil
				},
			},
		}

		svc := NewOrderService(repo, &fakeDB{tx: tx}, testConfig(), zap.NewNop())

		err := svc.UpdateStatus(context.Background(), orderID.String(), &request.UpdateOrderStatusRequest{Status: "accept"})
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.False(t, tx.committed)
	})

	t.Run("unknown status string fails validation", func(t *testing.T) {
		svc := NewOrderService(&repository.Repository{}, &fakeDB{tx: &fakeTx{}}, testConfig(), zap.NewNop())

		err := svc.UpdateStatus(context.Background(), orderID.String(), &request.UpdateOrderStatusRequest{Status: "shipped"})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestOrderService_ReconcileStockAdjustments(t *testing.T) {
	productID := uuid.New()
	roomID := uuid.New()

	applicable := &entity.StockAdjustment{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		ProductID:  &productID,
		Quantity:   3,
		Status:     entity.AdjustmentStatusPending,
	}
	stillFailing := &entity.StockAdjustment{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		RoomID:     &roomID,
		Quantity:   1,
		Status:     entity.AdjustmentStatusPending,
	}

	var applied []uuid.UUID

	repo := &repository.Repository{
		Product: &mockProductRepo{
			DecrementStockFunc: func(ctx context.Context, id uuid.UUID, quantity int) (int64, error) {
				assert.Equal(t, productID, id)
				assert.Equal(t, 3, quantity)
				return 1, nil
			},
		},
		Room: &mockRoomRepo{
			DecrementAvailabilityFunc: func(ctx context.Context, id uuid.UUID) (int64, error) {
				return 0, nil
			},
		},
		StockAdjustment: &mockStockAdjustmentRepo{
			FindPendingFunc: func(ctx context.Context) ([]*entity.StockAdjustment, error) {
				return []*entity.StockAdjustment{applicable, stillFailing}, nil
			},
			MarkAppliedFunc: func(ctx context.Context, id uuid.UUID) error {
				applied = append(applied, id)
				return nil
			},
		},
	}

	svc := NewOrderService(repo, &fakeDB{tx: &fakeTx{}}, testConfig(), zap.NewNop())

	count, err := svc.ReconcileStockAdjustments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, applied, 1)
	assert.Equal(t, applicable.ID, applied[0])
}
