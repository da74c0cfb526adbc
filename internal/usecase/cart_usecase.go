package usecase

import (
	"context"
	"errors"

	repo "app/internal/repository"
)

// CartUsecase は /cart の業務ロジック。
type CartUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
}

func NewCartUsecase(cartRepo repo.CartRepository, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

type AddCartInput struct {
	ProductID int64
	Quantity  int64
}

type UpdateCartItemInput struct {
	Quantity int64
}

type SuccessOutput struct {
	Message string `json:"message"`
}

// GetCart はカート取得。商品を結合した明細をそのまま返す。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) ([]repo.CartLineView, error) {
	if userID <= 0 {
		return nil, NewError(KindUnauthorized, "unauthorized")
	}

	lines, err := u.cartRepo.ListLines(ctx, userID)
	if err != nil {
		return nil, NewError(KindInternal, "db error")
	}
	return lines, nil
}

// AddToCart はカートに追加（同一商品は数量加算）。
// 加算セマンティクス：quantity=1で2回呼ぶと数量は2になる。
// この時点では在庫上限のチェックはしない。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, in AddCartInput) (SuccessOutput, error) {
	if userID <= 0 {
		return SuccessOutput{}, NewError(KindUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 {
		return SuccessOutput{}, NewError(KindValidation, "invalid product_id")
	}
	if in.Quantity < 1 {
		return SuccessOutput{}, NewError(KindValidation, "invalid quantity")
	}

	// 商品の存在チェック
	_, err := u.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return SuccessOutput{}, NewError(KindNotFound, "Product not found")
	}
	if err != nil {
		return SuccessOutput{}, NewError(KindInternal, "db error")
	}

	if err := u.cartRepo.AddOrMerge(ctx, userID, in.ProductID, in.Quantity); err != nil {
		return SuccessOutput{}, NewError(KindInternal, "db error")
	}

	return SuccessOutput{Message: "Product added to cart"}, nil
}

// 数量変更（絶対値セット、所有チェックつき）。
func (u *CartUsecase) UpdateCartItem(ctx context.Context, userID int64, cartItemID int64, in UpdateCartItemInput) (SuccessOutput, error) {
	if userID <= 0 {
		return SuccessOutput{}, NewError(KindUnauthorized, "unauthorized")
	}
	if cartItemID <= 0 {
		return SuccessOutput{}, NewError(KindValidation, "invalid id")
	}
	if in.Quantity < 1 {
		return SuccessOutput{}, NewError(KindValidation, "invalid quantity")
	}

	owned, err := u.cartRepo.IsOwnedByUser(ctx, cartItemID, userID)
	if err != nil {
		return SuccessOutput{}, NewError(KindInternal, "db error")
	}
	if !owned {
		//他人の明細は存在しない扱い
		return SuccessOutput{}, NewError(KindNotFound, "Cart item not found")
	}

	if err := u.cartRepo.UpdateQuantity(ctx, cartItemID, in.Quantity); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return SuccessOutput{}, NewError(KindNotFound, "Cart item not found")
		}
		return SuccessOutput{}, NewError(KindInternal, "db error")
	}

	return SuccessOutput{Message: "Cart item updated"}, nil
}

// 明細削除
func (u *CartUsecase) RemoveCartItem(ctx context.Context, userID int64, cartItemID int64) (SuccessOutput, error) {
	if userID <= 0 {
		return SuccessOutput{}, NewError(KindUnauthorized, "unauthorized")
	}
	if cartItemID <= 0 {
		return SuccessOutput{}, NewError(KindValidation, "invalid id")
	}

	owned, err := u.cartRepo.IsOwnedByUser(ctx, cartItemID, userID)
	if err != nil {
		return SuccessOutput{}, NewError(KindInternal, "db error")
	}
	if !owned {
		return SuccessOutput{}, NewError(KindNotFound, "Cart item not found")
	}

	if err := u.cartRepo.DeleteByID(ctx, cartItemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return SuccessOutput{}, NewError(KindNotFound, "Cart item not found")
		}
		return SuccessOutput{}, NewError(KindInternal, "db error")
	}

	return SuccessOutput{Message: "Cart item removed"}, nil
}
