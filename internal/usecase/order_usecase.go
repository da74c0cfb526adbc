package usecase

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type PlaceOrderInput struct {
	ShippingAddress string
	Phone           string
	PaymentMethod   string
}

type PlaceOrderOutput struct {
	Message     string          `json:"message"`
	OrderID     int64           `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type OrderItemOutput struct {
	ID              int64           `json:"id"`
	ProductID       int64           `json:"product_id"`
	Quantity        int64           `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
	ProductName     string          `json:"product_name"`
}

type OrderOutput struct {
	ID              int64             `json:"id"`
	UserID          int64             `json:"user_id"`
	TotalAmount     decimal.Decimal   `json:"total_amount"`
	Status          string            `json:"status"`
	ShippingAddress string            `json:"shipping_address"`
	Phone           string            `json:"phone"`
	PaymentMethod   string            `json:"payment_method"`
	CreatedAt       time.Time         `json:"created_at"`
	Items           []OrderItemOutput `json:"items"`
}

// PlaceOrder はカートから注文を確定する。
//
//  1. カート明細を現在の商品価格と結合して読む
//  2. total=Σ(数量×現在価格)。ここで読んだ価格がprice_at_purchaseとして凍結される
//  3. 注文（pending）を作成
//  4. 明細を一括作成
//  5. カートをクリア
//
// 3〜5はひとつのトランザクション。途中で失敗したら全部ロールバックして
// カートは手つかずのまま残る。在庫の減算はしない。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if userID <= 0 {
		return PlaceOrderOutput{}, NewError(KindUnauthorized, "unauthorized")
	}

	var out PlaceOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//カート明細取得（現在価格つき）
		lines, err := r.Carts().ListLines(ctx, userID)
		if err != nil {
			return NewError(KindInternal, "db error")
		}
		if len(lines) == 0 {
			return NewError(KindValidation, "Your cart is empty")
		}

		//合計計算と価格スナップショット
		total := decimal.Zero
		items := make([]model.OrderItem, 0, len(lines))
		for _, line := range lines {
			total = total.Add(line.Price.Mul(decimal.NewFromInt(line.Quantity)))
			items = append(items, model.OrderItem{
				ProductID:       line.ProductID,
				Quantity:        line.Quantity,
				PriceAtPurchase: line.Price,
			})
		}

		//注文作成
		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:          userID,
			TotalAmount:     total,
			Status:          model.OrderStatusPending,
			ShippingAddress: in.ShippingAddress,
			Phone:           in.Phone,
			PaymentMethod:   in.PaymentMethod,
		})
		if err != nil {
			return err
		}

		//注文明細一括作成
		if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
			return err
		}

		//カートをクリア（再注文防止）
		if err := r.Carts().DeleteAllByUserID(ctx, userID); err != nil {
			return err
		}

		out = PlaceOrderOutput{
			Message:     "Order placed successfully",
			OrderID:     orderID,
			TotalAmount: total,
		}
		return nil
	})

	if err != nil {
		if _, ok := AsError(err); ok {
			return PlaceOrderOutput{}, err
		}
		//途中失敗はロールバック済み。理由は外に出さない。
		return PlaceOrderOutput{}, NewError(KindInternal, "order placement failed")
	}
	return out, nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewError(KindUnauthorized, "unauthorized")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return NewError(KindInternal, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewError(KindInternal, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, userID int64, orderID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewError(KindUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewError(KindValidation, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewError(KindNotFound, "Order not found")
		}
		if err != nil {
			return NewError(KindInternal, "db error")
		}
		if o.UserID != userID {
			//他人の注文は「存在しない扱い」にする
			return NewError(KindNotFound, "Order not found")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewError(KindInternal, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func toOrderOutput(o model.Order, items []repo.OrderItemDetail) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ID:              it.ID,
			ProductID:       it.ProductID,
			Quantity:        it.Quantity,
			PriceAtPurchase: it.PriceAtPurchase,
			ProductName:     it.ProductName,
		})
	}

	return OrderOutput{
		ID:              o.ID,
		UserID:          o.UserID,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		ShippingAddress: o.ShippingAddress,
		Phone:           o.Phone,
		PaymentMethod:   o.PaymentMethod,
		CreatedAt:       o.CreatedAt,
		Items:           outItems,
	}
}
