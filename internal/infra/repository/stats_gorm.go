package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type StatsGormRepository struct {
	db *gorm.DB
}

func NewStatsGormRepository(db *gorm.DB) *StatsGormRepository {
	return &StatsGormRepository{db: db}
}

func (r *StatsGormRepository) TotalUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&n).Error
	return n, err
}

func (r *StatsGormRepository) TotalProducts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&n).Error
	return n, err
}

func (r *StatsGormRepository) TotalOrders(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&n).Error
	return n, err
}

// SUMはNULLになり得るのでCOALESCEで0にする。
type sumRow struct {
	Sum decimal.Decimal
}

func (r *StatsGormRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var row sumRow
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(SUM(total_amount), 0) AS sum FROM orders`).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Sum, nil
}

func (r *StatsGormRepository) NewUsersSince(ctx context.Context, from time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("created_at >= ?", from).
		Count(&n).Error
	return n, err
}

func (r *StatsGormRepository) NewOrdersSince(ctx context.Context, from time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("created_at >= ?", from).
		Count(&n).Error
	return n, err
}

func (r *StatsGormRepository) RevenueSince(ctx context.Context, from time.Time) (decimal.Decimal, error) {
	var row sumRow
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(SUM(total_amount), 0) AS sum FROM orders WHERE created_at >= ?`, from).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Sum, nil
}

func (r *StatsGormRepository) RevenueBetween(ctx context.Context, from time.Time, to time.Time) (decimal.Decimal, error) {
	var row sumRow
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(SUM(total_amount), 0) AS sum FROM orders
			WHERE created_at >= ? AND created_at < ?`, from, to).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Sum, nil
}

// 売上上位の商品（期間内、revenue降順）。
func (r *StatsGormRepository) TopProducts(ctx context.Context, from time.Time, limit int) ([]repo.TopProductRow, error) {
	var rows []repo.TopProductRow

	err := r.db.WithContext(ctx).
		Raw(`SELECT p.id, p.name,
			SUM(oi.quantity) AS total_sold,
			SUM(oi.quantity * oi.price_at_purchase) AS revenue
		FROM products p
		JOIN order_items oi ON p.id = oi.product_id
		JOIN orders o ON oi.order_id = o.id
		WHERE o.created_at >= ?
		GROUP BY p.id, p.name
		ORDER BY revenue DESC
		LIMIT ?`, from, limit).
		Scan(&rows).Error

	if err != nil {
		return []repo.TopProductRow{}, err
	}
	return rows, nil
}

func (r *StatsGormRepository) RecentOrders(ctx context.Context, limit int) ([]repo.RecentOrderRow, error) {
	var rows []repo.RecentOrderRow

	err := r.db.WithContext(ctx).
		Raw(`SELECT o.id, o.total_amount, o.status, o.created_at,
			u.first_name || ' ' || u.last_name AS user_name
		FROM orders o
		JOIN users u ON o.user_id = u.id
		ORDER BY o.created_at DESC
		LIMIT ?`, limit).
		Scan(&rows).Error

	if err != nil {
		return []repo.RecentOrderRow{}, err
	}
	return rows, nil
}
