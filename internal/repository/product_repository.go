package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

// unique制約違反（email/usernameの重複など）
var ErrConflict = errors.New("conflict")

// 一覧検索。categoryはカテゴリ名での絞り込み（空なら全件）。
type ProductListQuery struct {
	Category string
}

// 商品1件＋読み取り時に結合する表示用の名前。
type ProductDetail struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int64           `json:"stock_quantity"`
	CategoryID    int64           `json:"category_id"`
	SellerID      int64           `json:"seller_id"`
	ImageURL      string          `json:"image_url"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	CategoryName  string          `json:"category_name"`
	SellerName    string          `json:"seller_name"`
}

// 商品の永続化（保存・取得）だけを約束。
// 出品者の操作は「id AND seller_id」の述語で所有を確認する。
// 他人の商品は存在しない扱い（ErrNotFound）になる。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]ProductDetail, error)
	FindByID(ctx context.Context, productID int64) (ProductDetail, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)

	//出品者用（所有チェックつき）
	UpdateOwned(ctx context.Context, p model.Product, sellerID int64) error
	DeleteOwned(ctx context.Context, productID int64, sellerID int64) error

	//管理者用（所有チェックなし）
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, productID int64) error
}
