package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

const adminOrderSelect = `orders.id, orders.user_id, orders.total_amount, orders.status,
	orders.shipping_address, orders.phone, orders.payment_method, orders.created_at,
	users.first_name || ' ' || users.last_name as user_name,
	users.email as user_email`

func (r *OrderGormRepository) ListAdmin(ctx context.Context) ([]repo.AdminOrderRow, error) {
	var rows []repo.AdminOrderRow

	err := r.db.WithContext(ctx).
		Table("orders").
		Select(adminOrderSelect).
		Joins("join users on users.id = orders.user_id").
		Order("orders.created_at desc").
		Scan(&rows).Error

	if err != nil {
		return []repo.AdminOrderRow{}, err
	}
	return rows, nil
}

func (r *OrderGormRepository) FindAdminByID(ctx context.Context, orderID int64) (repo.AdminOrderRow, error) {
	var row repo.AdminOrderRow

	res := r.db.WithContext(ctx).
		Table("orders").
		Select(adminOrderSelect).
		Joins("join users on users.id = orders.user_id").
		Where("orders.id = ?", orderID).
		Scan(&row)

	if res.Error != nil {
		return repo.AdminOrderRow{}, res.Error
	}
	if res.RowsAffected == 0 {
		return repo.AdminOrderRow{}, repo.ErrNotFound
	}
	return row, nil
}
