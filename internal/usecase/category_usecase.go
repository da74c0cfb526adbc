package usecase

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
}

func NewCategoryUsecase(categoryRepo repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo}
}

type CategoryInput struct {
	Name        string
	Description string
}

type CategoryOutput struct {
	Message  string         `json:"message"`
	Category model.Category `json:"category"`
}

func (u *CategoryUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categoryRepo.List(ctx)
	if err != nil {
		return nil, NewError(KindInternal, "db error")
	}
	return categories, nil
}

func (u *CategoryUsecase) GetCategory(ctx context.Context, categoryID int64) (model.Category, error) {
	if categoryID <= 0 {
		return model.Category{}, NewError(KindValidation, "invalid id")
	}

	c, err := u.categoryRepo.FindByID(ctx, categoryID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Category{}, NewError(KindNotFound, "Category not found")
	}
	if err != nil {
		return model.Category{}, NewError(KindInternal, "db error")
	}
	return c, nil
}

func (u *CategoryUsecase) CreateCategory(ctx context.Context, in CategoryInput) (CategoryOutput, error) {
	if strings.TrimSpace(in.Name) == "" {
		return CategoryOutput{}, NewError(KindValidation, "name required")
	}

	created, err := u.categoryRepo.Create(ctx, model.Category{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	})
	if err != nil {
		return CategoryOutput{}, NewError(KindInternal, "db error")
	}

	return CategoryOutput{Message: "Category created successfully", Category: created}, nil
}

func (u *CategoryUsecase) UpdateCategory(ctx context.Context, categoryID int64, in CategoryInput) (SuccessOutput, error) {
	if categoryID <= 0 {
		return SuccessOutput{}, NewError(KindValidation, "invalid id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return SuccessOutput{}, NewError(KindValidation, "name required")
	}

	err := u.categoryRepo.Update(ctx, model.Category{
		ID:          categoryID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return SuccessOutput{}, NewError(KindNotFound, "Category not found")
	}
	if err != nil {
		return SuccessOutput{}, NewError(KindInternal, "db error")
	}

	return SuccessOutput{Message: "Category updated successfully"}, nil
}

func (u *CategoryUsecase) DeleteCategory(ctx context.Context, categoryID int64) (SuccessOutput, error) {
	if categoryID <= 0 {
		return SuccessOutput{}, NewError(KindValidation, "invalid id")
	}

	err := u.categoryRepo.Delete(ctx, categoryID)
	if errors.Is(err, repo.ErrNotFound) {
		return SuccessOutput{}, NewError(KindNotFound, "Category not found")
	}
	if err != nil {
		return SuccessOutput{}, NewError(KindInternal, "db error")
	}

	return SuccessOutput{Message: "Category deleted successfully"}, nil
}
