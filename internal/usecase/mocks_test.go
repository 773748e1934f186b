package usecase

import (
	"context"

	"shop-booking/internal/data/entity"
	"shop-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// fakeTx satisfies database.Tx and records commit/rollback calls. The raw
// query surface is unused because the services only touch it through
// repository mocks.
type fakeTx struct {
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeDB struct {
	tx       *fakeTx
	beginErr error
}

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (db *fakeDB) Begin(ctx context.Context) (database.Tx, error) {
	if db.beginErr != nil {
		return nil, db.beginErr
	}
	return db.tx, nil
}

func (db *fakeDB) Ping(ctx context.Context) error { return nil }

func (db *fakeDB) Close() {}

type mockCartRepo struct {
	AddItemFunc                 func(ctx context.Context, customerID, productID uuid.UUID, quantity int) (uuid.UUID, error)
	FindByIDFunc                func(ctx context.Context, id uuid.UUID) (*entity.CartLine, error)
	FindByCustomerFunc          func(ctx context.Context, customerID uuid.UUID) ([]*entity.PricedCartLine, error)
	FindByCustomerForUpdateFunc func(ctx context.Context, q database.Queryer, customerID uuid.UUID) ([]*entity.PricedCartLine, error)
	UpdateQuantityFunc          func(ctx context.Context, id uuid.UUID, quantity int) error
	DeleteFunc                  func(ctx context.Context, id uuid.UUID) error
	ClearFunc                   func(ctx context.Context, customerID uuid.UUID) error
	ClearTxFunc                 func(ctx context.Context, q database.Queryer, customerID uuid.UUID) error
}

func (m *mockCartRepo) AddItem(ctx context.Context, customerID, productID uuid.UUID, quantity int) (uuid.UUID, error) {
	return m.AddItemFunc(ctx, customerID, productID, quantity)
}

func (m *mockCartRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.CartLine, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockCartRepo) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.PricedCartLine, error) {
	return m.FindByCustomerFunc(ctx, customerID)
}

func (m *mockCartRepo) FindByCustomerForUpdate(ctx context.Context, q database.Queryer, customerID uuid.UUID) ([]*entity.PricedCartLine, error) {
	return m.FindByCustomerForUpdateFunc(ctx, q, customerID)
}

func (m *mockCartRepo) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	return m.UpdateQuantityFunc(ctx, id, quantity)
}

func (m *mockCartRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockCartRepo) Clear(ctx context.Context, customerID uuid.UUID) error {
	return m.ClearFunc(ctx, customerID)
}

func (m *mockCartRepo) ClearTx(ctx context.Context, q database.Queryer, customerID uuid.UUID) error {
	return m.ClearTxFunc(ctx, q, customerID)
}

type mockProductRepo struct {
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetUnitPriceFunc   func(ctx context.Context, id uuid.UUID) (*decimal.Decimal, error)
	DecrementStockFunc func(ctx context.Context, id uuid.UUID, quantity int) (int64, error)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockProductRepo) GetUnitPrice(ctx context.Context, id uuid.UUID) (*decimal.Decimal, error) {
	return m.GetUnitPriceFunc(ctx, id)
}

func (m *mockProductRepo) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (int64, error) {
	return m.DecrementStockFunc(ctx, id, quantity)
}

type mockRoomRepo struct {
	FindByIDFunc              func(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	DecrementAvailabilityFunc func(ctx context.Context, id uuid.UUID) (int64, error)
	IncrementAvailabilityFunc func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *mockRoomRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockRoomRepo) DecrementAvailability(ctx context.Context, id uuid.UUID) (int64, error) {
	return m.DecrementAvailabilityFunc(ctx, id)
}

func (m *mockRoomRepo) IncrementAvailability(ctx context.Context, id uuid.UUID) (int64, error) {
	return m.IncrementAvailabilityFunc(ctx, id)
}

type mockOrderRepo struct {
	CreateTxFunc             func(ctx context.Context, q database.Queryer, order *entity.Order) error
	CreateDetailTxFunc       func(ctx context.Context, q database.Queryer, detail *entity.OrderDetail) error
	FindByIDTxFunc           func(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Order, error)
	UpdateStatusTxFunc       func(ctx context.Context, q database.Queryer, id uuid.UUID, status entity.OrderStatus) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindDetailsByOrderIDFunc func(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderDetail, error)
	FindAllFunc              func(ctx context.Context, limit, offset int) ([]*entity.Order, error)
	CountFunc                func(ctx context.Context) (int64, error)
	DeleteFunc               func(ctx context.Context, id uuid.UUID) error
}

func (m *mockOrderRepo) CreateTx(ctx context.Context, q database.Queryer, order *entity.Order) error {
	return m.CreateTxFunc(ctx, q, order)
}

func (m *mockOrderRepo) CreateDetailTx(ctx context.Context, q database.Queryer, detail *entity.OrderDetail) error {
	return m.CreateDetailTxFunc(ctx, q, detail)
}

func (m *mockOrderRepo) FindByIDTx(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Order, error) {
	return m.FindByIDTxFunc(ctx, q, id)
}

func (m *mockOrderRepo) UpdateStatusTx(ctx context.Context, q database.Queryer, id uuid.UUID, status entity.OrderStatus) error {
	return m.UpdateStatusTxFunc(ctx, q, id, status)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockOrderRepo) FindDetailsByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderDetail, error) {
	return m.FindDetailsByOrderIDFunc(ctx, orderID)
}

func (m *mockOrderRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	return m.FindAllFunc(ctx, limit, offset)
}

func (m *mockOrderRepo) Count(ctx context.Context) (int64, error) {
	return m.CountFunc(ctx)
}

func (m *mockOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

type mockDeliveryRepo struct {
	CreateTxFunc        func(ctx context.Context, q database.Queryer, note *entity.DeliveryNote) error
	FindByOrderIDTxFunc func(ctx context.Context, q database.Queryer, orderID uuid.UUID) (*entity.DeliveryNote, error)
	FindByOrderIDFunc   func(ctx context.Context, orderID uuid.UUID) (*entity.DeliveryNote, error)
	FindAllFunc         func(ctx context.Context, limit, offset int) ([]*entity.DeliveryNote, error)
	CountFunc           func(ctx context.Context) (int64, error)
}

func (m *mockDeliveryRepo) CreateTx(ctx context.Context, q database.Queryer, note *entity.DeliveryNote) error {
	return m.CreateTxFunc(ctx, q, note)
}

func (m *mockDeliveryRepo) FindByOrderIDTx(ctx context.Context, q database.Queryer, orderID uuid.UUID) (*entity.DeliveryNote, error) {
	return m.FindByOrderIDTxFunc(ctx, q, orderID)
}

func (m *mockDeliveryRepo) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.DeliveryNote, error) {
	return m.FindByOrderIDFunc(ctx, orderID)
}

func (m *mockDeliveryRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.DeliveryNote, error) {
	return m.FindAllFunc(ctx, limit, offset)
}

func (m *mockDeliveryRepo) Count(ctx context.Context) (int64, error) {
	return m.CountFunc(ctx)
}

type mockBookingRepo struct {
	CreateFunc        func(ctx context.Context, booking *entity.Booking) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserIDFunc  func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserIDFunc func(ctx context.Context, userID uuid.UUID) (int64, error)
	FindByHotelIDFunc func(ctx context.Context, hotelID uuid.UUID) ([]*entity.Booking, error)
	UpdateStatusFunc  func(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	return m.CreateFunc(ctx, booking)
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	return m.FindByUserIDFunc(ctx, userID, limit, offset)
}

func (m *mockBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return m.CountByUserIDFunc(ctx, userID)
}

func (m *mockBookingRepo) FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.Booking, error) {
	return m.FindByHotelIDFunc(ctx, hotelID)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	return m.UpdateStatusFunc(ctx, id, status)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

type mockUserRepo struct {
	GetContactInfoFunc   func(ctx context.Context, userID uuid.UUID) (*entity.ContactInfo, error)
	GetContactInfoTxFunc func(ctx context.Context, q database.Queryer, userID uuid.UUID) (*entity.ContactInfo, error)
}

func (m *mockUserRepo) GetContactInfo(ctx context.Context, userID uuid.UUID) (*entity.ContactInfo, error) {
	return m.GetContactInfoFunc(ctx, userID)
}

func (m *mockUserRepo) GetContactInfoTx(ctx context.Context, q database.Queryer, userID uuid.UUID) (*entity.ContactInfo, error) {
	return m.GetContactInfoTxFunc(ctx, q, userID)
}

type mockStockAdjustmentRepo struct {
	CreateFunc      func(ctx context.Context, adjustment *entity.StockAdjustment) error
	FindPendingFunc func(ctx context.Context) ([]*entity.StockAdjustment, error)
	MarkAppliedFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *mockStockAdjustmentRepo) Create(ctx context.Context, adjustment *entity.StockAdjustment) error {
	return m.CreateFunc(ctx, adjustment)
}

func (m *mockStockAdjustmentRepo) FindPending(ctx context.Context) ([]*entity.StockAdjustment, error) {
	return m.FindPendingFunc(ctx)
}

func (m *mockStockAdjustmentRepo) MarkApplied(ctx context.Context, id uuid.UUID) error {
	return m.MarkAppliedFunc(ctx, id)
}
