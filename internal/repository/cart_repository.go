package repository

import (
	"context"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

// カート明細と商品を結合した読み取り用の行。
// name/price/image_urlは読み取り時点の商品から引く（キャッシュしない）。
type CartLineView struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url"`
}

type CartRepository interface {
	//商品を結合した明細一覧。
	ListLines(ctx context.Context, userID int64) ([]CartLineView, error)

	// 同一商品はプラス（数量加算）、無ければ新規行。
	AddOrMerge(ctx context.Context, userID int64, productID int64, qty int64) error

	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)

	//明細がそのユーザーのものかを判定。
	IsOwnedByUser(ctx context.Context, cartItemID int64, userID int64) (bool, error)

	//数量の絶対値セット（加算ではない）。
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error

	DeleteByID(ctx context.Context, cartItemID int64) error

	//チェックアウト時にユーザーの明細を全削除。
	DeleteAllByUserID(ctx context.Context, userID int64) error
}
