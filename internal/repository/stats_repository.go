package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// 売上上位の商品。
type TopProductRow struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	TotalSold int64           `json:"total_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// 直近の注文（顧客名つき）。
type RecentOrderRow struct {
	ID          int64           `json:"id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UserName    string          `json:"user_name"`
}

// ダッシュボード用の集計。キャッシュせず毎回実行する。
type StatsRepository interface {
	TotalUsers(ctx context.Context) (int64, error)
	TotalProducts(ctx context.Context) (int64, error)
	TotalOrders(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)

	NewUsersSince(ctx context.Context, from time.Time) (int64, error)
	NewOrdersSince(ctx context.Context, from time.Time) (int64, error)
	RevenueSince(ctx context.Context, from time.Time) (decimal.Decimal, error)
	RevenueBetween(ctx context.Context, from time.Time, to time.Time) (decimal.Decimal, error)

	TopProducts(ctx context.Context, from time.Time, limit int) ([]TopProductRow, error)
	RecentOrders(ctx context.Context, limit int) ([]RecentOrderRow, error)
}
