package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

// 1注文分の明細を1文でまとめて挿入する。
func (r *OrderItemGormRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]model.OrderItem, 0, len(items))
	for _, it := range items {
		it.OrderID = orderID
		if it.CreatedAt.IsZero() {
			it.CreatedAt = now
		}
		rows = append(rows, it)
	}

	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]repo.OrderItemDetail, error) {
	var rows []repo.OrderItemDetail

	err := r.db.WithContext(ctx).
		Table("order_items").
		Select(`order_items.id, order_items.product_id, order_items.quantity,
			order_items.price_at_purchase, products.name as product_name`).
		Joins("join products on products.id = order_items.product_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id asc").
		Scan(&rows).Error

	if err != nil {
		return []repo.OrderItemDetail{}, err
	}
	return rows, nil
}
