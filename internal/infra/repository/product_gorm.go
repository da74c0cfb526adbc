package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 商品一覧。category_name/seller_nameは読み取り時に結合する。
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]repo.ProductDetail, error) {
	query := r.db.WithContext(ctx).
		Table("products").
		Select(`products.id, products.name, products.description, products.price,
			products.stock_quantity, products.category_id, products.seller_id,
			products.image_url, products.created_at, products.updated_at,
			categories.name as category_name, users.username as seller_name`).
		Joins("left join categories on categories.id = products.category_id").
		Joins("left join users on users.id = products.seller_id")

	if q.Category != "" {
		query = query.Where("categories.name = ?", q.Category)
	}

	var rows []repo.ProductDetail
	if err := query.Order("products.created_at desc").Scan(&rows).Error; err != nil {
		return []repo.ProductDetail{}, err
	}
	return rows, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, productID int64) (repo.ProductDetail, error) {
	var row repo.ProductDetail

	res := r.db.WithContext(ctx).
		Table("products").
		Select(`products.id, products.name, products.description, products.price,
			products.stock_quantity, products.category_id, products.seller_id,
			products.image_url, products.created_at, products.updated_at,
			categories.name as category_name, users.username as seller_name`).
		Joins("left join categories on categories.id = products.category_id").
		Joins("left join users on users.id = products.seller_id").
		Where("products.id = ?", productID).
		Scan(&row)

	if res.Error != nil {
		return repo.ProductDetail{}, res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ProductDetail{}, repo.ErrNotFound
	}
	return row, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func productUpdates(p model.Product) map[string]interface{} {
	return map[string]interface{}{
		"name":           p.Name,
		"description":    p.Description,
		"price":          p.Price,
		"stock_quantity": p.StockQuantity,
		"category_id":    p.CategoryID,
		"image_url":      p.ImageURL,
		"updated_at":     time.Now(),
	}
}

// 所有チェックは「id AND seller_id」の述語で行う。
// 他人の商品はRowsAffected=0になりErrNotFoundを返す。
func (r *ProductGormRepository) UpdateOwned(ctx context.Context, p model.Product, sellerID int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ? AND seller_id = ?", p.ID, sellerID).
		Updates(productUpdates(p))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) DeleteOwned(ctx context.Context, productID int64, sellerID int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND seller_id = ?", productID, sellerID).
		Delete(&model.Product{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 管理者用。seller_idの付け替えも許す。
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	updates := productUpdates(p)
	updates["seller_id"] = p.SellerID

	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", p.ID).
		Updates(updates)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) Delete(ctx context.Context, productID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, productID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
