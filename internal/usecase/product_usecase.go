package usecase

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

type ProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int64
	CategoryID    int64
	ImageURL      string
}

type ProductOutput struct {
	Message string        `json:"message"`
	Product model.Product `json:"product"`
}

func validateProductInput(in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewError(KindValidation, "name required")
	}
	if len(in.Name) > 100 {
		return NewError(KindValidation, "name too long")
	}
	if !in.Price.IsPositive() {
		return NewError(KindValidation, "price must be > 0")
	}
	if in.StockQuantity < 0 {
		return NewError(KindValidation, "stock_quantity must be >= 0")
	}
	if in.CategoryID <= 0 {
		return NewError(KindValidation, "invalid category_id")
	}
	return nil
}

// 公開一覧。categoryはカテゴリ名での絞り込み（空なら全件）。
func (u *ProductUsecase) ListProducts(ctx context.Context, category string) ([]repo.ProductDetail, error) {
	items, err := u.productRepo.List(ctx, repo.ProductListQuery{Category: category})
	if err != nil {
		return nil, NewError(KindInternal, "db error")
	}
	return items, nil
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (repo.ProductDetail, error) {
	if productID <= 0 {
		return repo.ProductDetail{}, NewError(KindValidation, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return repo.ProductDetail{}, NewError(KindNotFound, "Product not found")
	}
	if err != nil {
		return repo.ProductDetail{}, NewError(KindInternal, "db error")
	}
	return p, nil
}

// 出品者による新規作成。seller_idはトークンから取る。
func (u *ProductUsecase) SellerCreateProduct(ctx context.Context, sellerID int64, in ProductInput) (ProductOutput, error) {
	if sellerID <= 0 {
		return ProductOutput{}, NewError(KindUnauthorized, "unauthorized")
	}
	if err := validateProductInput(in); err != nil {
		return ProductOutput{}, err
	}

	created, err := u.productRepo.Create(ctx, model.Product{
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		CategoryID:    in.CategoryID,
		SellerID:      sellerID,
		ImageURL:      in.ImageURL,
	})
	if err != nil {
		return ProductOutput{}, NewError(KindInternal, "db error")
	}

	return ProductOutput{Message: "Product created successfully", Product: created}, nil
}

// 出品者による更新。所有チェックはrepo側の「id AND seller_id」述語。
// 他人の商品は403ではなく404になる。
func (u *ProductUsecase) SellerUpdateProduct(ctx context.Context, sellerID int64, productID int64, in ProductInput) (SuccessOutput, error) {
	if sellerID <= 0 {
		return SuccessOutput{}, NewError(KindUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return SuccessOutput{}, NewError(KindValidation, "invalid product id")
	}
	if err := validateProductInput(in); err != nil {
		return SuccessOutput{}, err
	}

	err := u.productRepo.UpdateOwned(ctx, model.Product{
		ID:            productID,
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		CategoryID:    in.CategoryID,
		ImageURL:      in.ImageURL,
	}, sellerID)

	if errors.Is(err, repo.ErrNotFound) {
		return SuccessOutput{}, NewError(KindNotFound, "Product not found or not authorized")
	}
	if err != nil {
		return SuccessOutput{}, NewError(KindInternal, "db error")
	}

	return SuccessOutput{Message: "Product updated successfully"}, nil
}

func (u *ProductUsecase) SellerDeleteProduct(ctx context.Context, sellerID int64, productID int64) (SuccessOutput, error) {
	if sellerID <= 0 {
		return SuccessOutput{}, NewError(KindUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return SuccessOutput{}, NewError(KindValidation, "invalid product id")
	}

	err := u.productRepo.DeleteOwned(ctx, productID, sellerID)
	if errors.Is(err, repo.ErrNotFound) {
		return SuccessOutput{}, NewError(KindNotFound, "Product not found or not authorized")
	}
	if err != nil {
		return SuccessOutput{}, NewError(KindInternal, "db error")
	}

	return SuccessOutput{Message: "Product deleted successfully"}, nil
}

// 管理者用。所有チェックなしで任意の出品者の商品を扱える。

type AdminProductInput struct {
	ProductInput
	SellerID int64
}

func (u *ProductUsecase) AdminCreateProduct(ctx context.Context, in AdminProductInput) (ProductOutput, error) {
	if err := validateProductInput(in.ProductInput); err != nil {
		return ProductOutput{}, err
	}
	if in.SellerID <= 0 {
		return ProductOutput{}, NewError(KindValidation, "invalid seller_id")
	}

	created, err := u.productRepo.Create(ctx, model.Product{
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		CategoryID:    in.CategoryID,
		SellerID:      in.SellerID,
		ImageURL:      in.ImageURL,
	})
	if err != nil {
		return ProductOutput{}, NewError(KindInternal, "db error")
	}

	return ProductOutput{Message: "Product created successfully", Product: created}, nil
}

func (u *ProductUsecase) AdminUpdateProduct(ctx context.Context, productID int64, in AdminProductInput) (SuccessOutput, error) {
	if productID <= 0 {
		return SuccessOutput{}, NewError(KindValidation, "invalid product id")
	}
	if err := validateProductInput(in.ProductInput); err != nil {
		return SuccessOutput{}, err
	}
	if in.SellerID <= 0 {
		return SuccessOutput{}, NewError(KindValidation, "invalid seller_id")
	}

	err := u.productRepo.Update(ctx, model.Product{
		ID:            productID,
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		CategoryID:    in.CategoryID,
		SellerID:      in.SellerID,
		ImageURL:      in.ImageURL,
	})

	if errors.Is(err, repo.ErrNotFound) {
		return SuccessOutput{}, NewError(KindNotFound, "Product not found")
	}
	if err != nil {
		return SuccessOutput{}, NewError(KindInternal, "db error")
	}

	return SuccessOutput{Message: "Product updated successfully"}, nil
}

func (u *ProductUsecase) AdminDeleteProduct(ctx context.Context, productID int64) (SuccessOutput, error) {
	if productID <= 0 {
		return SuccessOutput{}, NewError(KindValidation, "invalid product id")
	}

	err := u.productRepo.Delete(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return SuccessOutput{}, NewError(KindNotFound, "Product not found")
	}
	if err != nil {
		return SuccessOutput{}, NewError(KindInternal, "db error")
	}

	return SuccessOutput{Message: "Product deleted successfully"}, nil
}
