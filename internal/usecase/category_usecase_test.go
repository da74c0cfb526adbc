package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCategoryUsecase_ListCategories_Success(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo)

	cRepo.On("List", mock.Anything).Return([]model.Category{{ID: 1, Name: "drinks"}}, nil)

	out, err := uc.ListCategories(ctx)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestCategoryUsecase_CreateCategory_NameRequired(t *testing.T) {
	uc := usecase.NewCategoryUsecase(new(CategoryRepoMock))

	_, err := uc.CreateCategory(context.Background(), usecase.CategoryInput{Name: "  "})
	assertErrKind(t, err, usecase.KindValidation)
}

func TestCategoryUsecase_CreateCategory_Success(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo)

	cRepo.On("Create", mock.Anything, mock.MatchedBy(func(c model.Category) bool {
		return c.Name == "drinks"
	})).Return(model.Category{ID: 1, Name: "drinks"}, nil)

	out, err := uc.CreateCategory(ctx, usecase.CategoryInput{Name: " drinks "})
	assert.NoError(t, err)
	assert.Equal(t, "Category created successfully", out.Message)
	assert.Equal(t, int64(1), out.Category.ID)

	cRepo.AssertExpectations(t)
}

func TestCategoryUsecase_UpdateCategory_NotFound(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo)

	cRepo.On("Update", mock.Anything, mock.AnythingOfType("model.Category")).Return(repo.ErrNotFound)

	_, err := uc.UpdateCategory(ctx, 999, usecase.CategoryInput{Name: "drinks"})
	assertErrKind(t, err, usecase.KindNotFound)
	assertErrContains(t, err, "Category not found")
}

func TestCategoryUsecase_DeleteCategory_Success(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUsecase(cRepo)

	cRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

	out, err := uc.DeleteCategory(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, "Category deleted successfully", out.Message)
}
