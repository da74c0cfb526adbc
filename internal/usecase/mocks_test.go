package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// 共通ヘルパー
// =====================

func assertErrContains(t *testing.T, err error, substr string) {
	t.Helper()
	assert.Error(t, err)
	if err != nil {
		assert.Contains(t, strings.ToLower(err.Error()), strings.ToLower(substr))
	}
}

func assertErrKind(t *testing.T, err error, kind usecase.ErrorKind) {
	t.Helper()
	assert.Error(t, err)
	ue, ok := usecase.AsError(err)
	assert.True(t, ok, "expected *usecase.Error, got %T", err)
	if ok {
		assert.Equal(t, kind, ue.Kind)
	}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// =====================
// Repository mocks
// =====================

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) ExistsByEmailOrUsername(ctx context.Context, email string, username string) (bool, error) {
	args := m.Called(ctx, email, username)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepoMock) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) UpdateProfile(ctx context.Context, userID int64, firstName, lastName, phone, address string) error {
	args := m.Called(ctx, userID, firstName, lastName, phone, address)
	return args.Error(0)
}

func (m *UserRepoMock) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]repo.ProductDetail, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]repo.ProductDetail)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, productID int64) (repo.ProductDetail, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(repo.ProductDetail)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) UpdateOwned(ctx context.Context, p model.Product, sellerID int64) error {
	args := m.Called(ctx, p, sellerID)
	return args.Error(0)
}

func (m *ProductRepoMock) DeleteOwned(ctx context.Context, productID int64, sellerID int64) error {
	args := m.Called(ctx, productID, sellerID)
	return args.Error(0)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]model.Category)
	return cs, args.Error(1)
}

func (m *CategoryRepoMock) FindByID(ctx context.Context, categoryID int64) (model.Category, error) {
	args := m.Called(ctx, categoryID)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) Create(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Category)
	return created, args.Error(1)
}

func (m *CategoryRepoMock) Update(ctx context.Context, c model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CategoryRepoMock) Delete(ctx context.Context, categoryID int64) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) ListLines(ctx context.Context, userID int64) ([]repo.CartLineView, error) {
	args := m.Called(ctx, userID)
	lines, _ := args.Get(0).([]repo.CartLineView)
	return lines, args.Error(1)
}

func (m *CartRepoMock) AddOrMerge(ctx context.Context, userID int64, productID int64, qty int64) error {
	args := m.Called(ctx, userID, productID, qty)
	return args.Error(0)
}

func (m *CartRepoMock) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartItemID)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *CartRepoMock) IsOwnedByUser(ctx context.Context, cartItemID int64, userID int64) (bool, error) {
	args := m.Called(ctx, cartItemID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *CartRepoMock) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	args := m.Called(ctx, cartItemID, qty)
	return args.Error(0)
}

func (m *CartRepoMock) DeleteByID(ctx context.Context, cartItemID int64) error {
	args := m.Called(ctx, cartItemID)
	return args.Error(0)
}

func (m *CartRepoMock) DeleteAllByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) ListAdmin(ctx context.Context) ([]repo.AdminOrderRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repo.AdminOrderRow)
	return rows, args.Error(1)
}

func (m *OrderRepoMock) FindAdminByID(ctx context.Context, orderID int64) (repo.AdminOrderRow, error) {
	args := m.Called(ctx, orderID)
	row, _ := args.Get(0).(repo.AdminOrderRow)
	return row, args.Error(1)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]repo.OrderItemDetail, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]repo.OrderItemDetail)
	return items, args.Error(1)
}

type StatsRepoMock struct{ mock.Mock }

func (m *StatsRepoMock) TotalUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StatsRepoMock) TotalProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StatsRepoMock) TotalOrders(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StatsRepoMock) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *StatsRepoMock) NewUsersSince(ctx context.Context, from time.Time) (int64, error) {
	args := m.Called(ctx, from)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StatsRepoMock) NewOrdersSince(ctx context.Context, from time.Time) (int64, error) {
	args := m.Called(ctx, from)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StatsRepoMock) RevenueSince(ctx context.Context, from time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *StatsRepoMock) RevenueBetween(ctx context.Context, from time.Time, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *StatsRepoMock) TopProducts(ctx context.Context, from time.Time, limit int) ([]repo.TopProductRow, error) {
	args := m.Called(ctx, from, limit)
	rows, _ := args.Get(0).([]repo.TopProductRow)
	return rows, args.Error(1)
}

func (m *StatsRepoMock) RecentOrders(ctx context.Context, limit int) ([]repo.RecentOrderRow, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]repo.RecentOrderRow)
	return rows, args.Error(1)
}

// =====================
// Fake transaction manager
// =====================

// fnをそのまま実行するだけ。commit/rollbackの中身はGORM実装側のテスト範囲。
type fakeTxRepos struct {
	orders repo.OrderRepository
	items  repo.OrderItemRepository
	carts  repo.CartRepository
}

func (r *fakeTxRepos) Orders() repo.OrderRepository         { return r.orders }
func (r *fakeTxRepos) OrderItems() repo.OrderItemRepository { return r.items }
func (r *fakeTxRepos) Carts() repo.CartRepository           { return r.carts }

type fakeTxManager struct {
	repos repo.TxRepos
}

func newFakeTxManager(orders repo.OrderRepository, items repo.OrderItemRepository, carts repo.CartRepository) *fakeTxManager {
	return &fakeTxManager{repos: &fakeTxRepos{orders: orders, items: items, carts: carts}}
}

func (m *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}
