package repository

import (
	"context"
	"time"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 管理者一覧用。注文にユーザー名とメールを結合した行。
type AdminOrderRow struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          string          `json:"status"`
	ShippingAddress string          `json:"shipping_address"`
	Phone           string          `json:"phone"`
	PaymentMethod   string          `json:"payment_method"`
	CreatedAt       time.Time       `json:"created_at"`
	UserName        string          `json:"user_name"`
	UserEmail       string          `json:"user_email"`
}

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	//本人の注文履歴（新しい順）。
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)

	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	//管理者用の注文一覧（全件、新しい順）。
	ListAdmin(ctx context.Context) ([]AdminOrderRow, error)
	FindAdminByID(ctx context.Context, orderID int64) (AdminOrderRow, error)
}
