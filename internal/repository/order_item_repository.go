package repository

import (
	"context"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 注文明細＋商品名を結合した読み取り用の行。
type OrderItemDetail struct {
	ID              int64           `json:"id"`
	ProductID       int64           `json:"product_id"`
	Quantity        int64           `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
	ProductName     string          `json:"product_name"`
}

type OrderItemRepository interface {
	//注文明細の一括作成（1注文分をまとめて挿入）。
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error

	ListByOrderID(ctx context.Context, orderID int64) ([]OrderItemDetail, error)
}
