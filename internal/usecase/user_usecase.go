package usecase

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type UserUsecase struct {
	userRepo repo.UserRepository
}

func NewUserUsecase(userRepo repo.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

type ProfileInput struct {
	FirstName string
	LastName  string
	Phone     string
	Address   string
}

type ProfileOutput struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}

// 本人のプロフィール更新。role/email/username はここでは変更させない。
func (u *UserUsecase) UpdateProfile(ctx context.Context, userID int64, in ProfileInput) (ProfileOutput, error) {
	err := u.userRepo.UpdateProfile(ctx, userID, in.FirstName, in.LastName, in.Phone, in.Address)
	if errors.Is(err, repo.ErrNotFound) {
		return ProfileOutput{}, NewError(KindNotFound, "User not found")
	}
	if err != nil {
		return ProfileOutput{}, NewError(KindInternal, "db error")
	}

	updated, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return ProfileOutput{}, NewError(KindInternal, "db error")
	}

	return ProfileOutput{Message: "User updated successfully", User: updated}, nil
}
