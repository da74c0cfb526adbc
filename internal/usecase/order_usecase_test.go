package usecase_test

import (
	"context"
	"errors"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderUsecase_PlaceOrder_EmptyCart(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	orderRepo := new(OrderRepoMock)
	itemRepo := new(OrderItemRepoMock)
	uc := usecase.NewOrderUsecase(newFakeTxManager(orderRepo, itemRepo, cartRepo))

	cartRepo.On("ListLines", mock.Anything, int64(1)).Return([]repo.CartLineView{}, nil)

	_, err := uc.PlaceOrder(ctx, 1, usecase.PlaceOrderInput{})
	assertErrKind(t, err, usecase.KindValidation)
	assertErrContains(t, err, "cart is empty")

	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// 合計は「数量×その時点の価格」の総和。読んだ価格がそのまま明細に凍結される。
func TestOrderUsecase_PlaceOrder_Success(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	orderRepo := new(OrderRepoMock)
	itemRepo := new(OrderItemRepoMock)
	uc := usecase.NewOrderUsecase(newFakeTxManager(orderRepo, itemRepo, cartRepo))

	lines := []repo.CartLineView{
		{ID: 1, ProductID: 10, Quantity: 2, Name: "Coffee", Price: dec("10.00")},
		{ID: 2, ProductID: 20, Quantity: 1, Name: "Mug", Price: dec("5.00")},
	}
	cartRepo.On("ListLines", mock.Anything, int64(1)).Return(lines, nil)

	orderRepo.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.UserID == 1 &&
			o.Status == model.OrderStatusPending &&
			o.TotalAmount.Equal(dec("25.00"))
	})).Return(int64(100), nil)

	itemRepo.On("CreateBulk", mock.Anything, int64(100), mock.MatchedBy(func(items []model.OrderItem) bool {
		return len(items) == 2 &&
			items[0].ProductID == 10 && items[0].Quantity == 2 && items[0].PriceAtPurchase.Equal(dec("10.00")) &&
			items[1].ProductID == 20 && items[1].Quantity == 1 && items[1].PriceAtPurchase.Equal(dec("5.00"))
	})).Return(nil)

	cartRepo.On("DeleteAllByUserID", mock.Anything, int64(1)).Return(nil)

	out, err := uc.PlaceOrder(ctx, 1, usecase.PlaceOrderInput{
		ShippingAddress: "1-2-3 Shibuya",
		Phone:           "090-0000-0000",
		PaymentMethod:   "credit_card",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Order placed successfully", out.Message)
	assert.Equal(t, int64(100), out.OrderID)
	assert.True(t, out.TotalAmount.Equal(dec("25.00")))

	cartRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
}

// 発注後に商品価格が変わっても、保存済み注文の金額は動かない。
// 注文詳細は保存済みのorder/order_items行だけから組み立てられ、
// 現在の商品価格は一切参照しない。
func TestOrderUsecase_PlacedOrderSurvivesPriceChange(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	orderRepo := new(OrderRepoMock)
	itemRepo := new(OrderItemRepoMock)
	uc := usecase.NewOrderUsecase(newFakeTxManager(orderRepo, itemRepo, cartRepo))

	lines := []repo.CartLineView{
		{ID: 1, ProductID: 10, Quantity: 2, Name: "Coffee", Price: dec("10.00")},
	}
	cartRepo.On("ListLines", mock.Anything, int64(1)).Return(lines, nil)

	// 発注時に書き込まれた行をそのまま捕まえておく
	var stored model.Order
	var storedItems []model.OrderItem
	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("model.Order")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(model.Order)
			stored.ID = 100
		}).Return(int64(100), nil)
	itemRepo.On("CreateBulk", mock.Anything, int64(100), mock.Anything).
		Run(func(args mock.Arguments) {
			storedItems = args.Get(2).([]model.OrderItem)
		}).Return(nil)
	cartRepo.On("DeleteAllByUserID", mock.Anything, int64(1)).Return(nil)

	_, err := uc.PlaceOrder(ctx, 1, usecase.PlaceOrderInput{})
	assert.NoError(t, err)

	// ここで商品が値上げされたとする。保存済みの注文行は当然そのまま。
	lines[0].Price = dec("99.99")

	detail := make([]repo.OrderItemDetail, 0, len(storedItems))
	for i, it := range storedItems {
		detail = append(detail, repo.OrderItemDetail{
			ID:              int64(i + 1),
			ProductID:       it.ProductID,
			Quantity:        it.Quantity,
			PriceAtPurchase: it.PriceAtPurchase,
			ProductName:     "Coffee",
		})
	}
	orderRepo.On("FindByID", mock.Anything, int64(100)).Return(stored, nil)
	itemRepo.On("ListByOrderID", mock.Anything, int64(100)).Return(detail, nil)

	out, err := uc.GetMyOrderDetail(ctx, 1, 100)
	assert.NoError(t, err)
	assert.True(t, out.TotalAmount.Equal(dec("20.00")))
	assert.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].PriceAtPurchase.Equal(dec("10.00")))
}

// 明細insertが失敗したらカートには触らない（全体ロールバック）
func TestOrderUsecase_PlaceOrder_RollbackLeavesCart(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	orderRepo := new(OrderRepoMock)
	itemRepo := new(OrderItemRepoMock)
	uc := usecase.NewOrderUsecase(newFakeTxManager(orderRepo, itemRepo, cartRepo))

	lines := []repo.CartLineView{
		{ID: 1, ProductID: 10, Quantity: 1, Price: dec("10.00")},
	}
	cartRepo.On("ListLines", mock.Anything, int64(1)).Return(lines, nil)
	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("model.Order")).Return(int64(100), nil)
	itemRepo.On("CreateBulk", mock.Anything, int64(100), mock.Anything).Return(errors.New("db down"))

	_, err := uc.PlaceOrder(ctx, 1, usecase.PlaceOrderInput{})
	assertErrKind(t, err, usecase.KindInternal)
	assertErrContains(t, err, "order placement failed")

	cartRepo.AssertNotCalled(t, "DeleteAllByUserID", mock.Anything, mock.Anything)
}

func TestOrderUsecase_ListMyOrders_Success(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	orderRepo := new(OrderRepoMock)
	itemRepo := new(OrderItemRepoMock)
	uc := usecase.NewOrderUsecase(newFakeTxManager(orderRepo, itemRepo, cartRepo))

	orders := []model.Order{
		{ID: 100, UserID: 1, TotalAmount: dec("25.00"), Status: model.OrderStatusPending},
	}
	items := []repo.OrderItemDetail{
		{ID: 1, ProductID: 10, Quantity: 2, PriceAtPurchase: dec("10.00"), ProductName: "Coffee"},
	}
	orderRepo.On("ListByUserID", mock.Anything, int64(1)).Return(orders, nil)
	itemRepo.On("ListByOrderID", mock.Anything, int64(100)).Return(items, nil)

	out, err := uc.ListMyOrders(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, int64(100), out[0].ID)
	assert.Equal(t, "pending", out[0].Status)
	assert.Len(t, out[0].Items, 1)
	assert.Equal(t, "Coffee", out[0].Items[0].ProductName)
}

// 他人の注文は存在しない扱い
func TestOrderUsecase_GetMyOrderDetail_OtherUsersOrder(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	orderRepo := new(OrderRepoMock)
	itemRepo := new(OrderItemRepoMock)
	uc := usecase.NewOrderUsecase(newFakeTxManager(orderRepo, itemRepo, cartRepo))

	orderRepo.On("FindByID", mock.Anything, int64(100)).Return(model.Order{ID: 100, UserID: 2}, nil)

	_, err := uc.GetMyOrderDetail(ctx, 1, 100)
	assertErrKind(t, err, usecase.KindNotFound)
	assertErrContains(t, err, "Order not found")

	itemRepo.AssertNotCalled(t, "ListByOrderID", mock.Anything, mock.Anything)
}

func TestOrderUsecase_GetMyOrderDetail_NotFound(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	orderRepo := new(OrderRepoMock)
	itemRepo := new(OrderItemRepoMock)
	uc := usecase.NewOrderUsecase(newFakeTxManager(orderRepo, itemRepo, cartRepo))

	orderRepo.On("FindByID", mock.Anything, int64(999)).Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.GetMyOrderDetail(ctx, 1, 999)
	assertErrKind(t, err, usecase.KindNotFound)
}

func TestOrderUsecase_GetMyOrderDetail_Success(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	orderRepo := new(OrderRepoMock)
	itemRepo := new(OrderItemRepoMock)
	uc := usecase.NewOrderUsecase(newFakeTxManager(orderRepo, itemRepo, cartRepo))

	orderRepo.On("FindByID", mock.Anything, int64(100)).Return(model.Order{
		ID: 100, UserID: 1, TotalAmount: dec("25.00"), Status: model.OrderStatusShipped,
	}, nil)
	itemRepo.On("ListByOrderID", mock.Anything, int64(100)).Return([]repo.OrderItemDetail{
		{ID: 1, ProductID: 10, Quantity: 2, PriceAtPurchase: dec("10.00")},
	}, nil)

	out, err := uc.GetMyOrderDetail(ctx, 1, 100)
	assert.NoError(t, err)
	assert.Equal(t, "shipped", out.Status)
	assert.Len(t, out.Items, 1)
}
