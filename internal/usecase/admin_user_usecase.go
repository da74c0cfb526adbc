package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 管理者によるユーザーCRUD。
type AdminUserUsecase struct {
	userRepo repo.UserRepository
}

func NewAdminUserUsecase(userRepo repo.UserRepository) *AdminUserUsecase {
	return &AdminUserUsecase{userRepo: userRepo}
}

type AdminUserInput struct {
	Username  string
	Email     string
	Password  string
	Role      model.Role
	FirstName string
	LastName  string
	Phone     string
	Address   string
}

type AdminUserOutput struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}

func validRole(r model.Role) bool {
	switch r {
	case model.RoleCustomer, model.RoleSeller, model.RoleAdmin:
		return true
	}
	return false
}

func (u *AdminUserUsecase) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, NewError(KindInternal, "db error")
	}
	return users, nil
}

func (u *AdminUserUsecase) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewError(KindNotFound, "User not found")
	}
	if err != nil {
		return nil, NewError(KindInternal, "db error")
	}
	return user, nil
}

func (u *AdminUserUsecase) CreateUser(ctx context.Context, in AdminUserInput) (AdminUserOutput, error) {
	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Email) == "" {
		return AdminUserOutput{}, NewError(KindValidation, "username and email required")
	}
	if len(in.Password) < 6 {
		return AdminUserOutput{}, NewError(KindValidation, "password must be at least 6 characters")
	}
	if !validRole(in.Role) {
		return AdminUserOutput{}, NewError(KindValidation, "invalid role")
	}

	exists, err := u.userRepo.ExistsByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil {
		return AdminUserOutput{}, NewError(KindInternal, "db error")
	}
	if exists {
		return AdminUserOutput{}, NewError(KindConflict, "User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return AdminUserOutput{}, NewError(KindInternal, "failed to hash password")
	}

	user := &model.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Address:      in.Address,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return AdminUserOutput{}, NewError(KindConflict, "User already exists")
		}
		return AdminUserOutput{}, NewError(KindInternal, "db error")
	}

	return AdminUserOutput{Message: "User created successfully", User: user}, nil
}

func (u *AdminUserUsecase) UpdateUser(ctx context.Context, userID int64, in AdminUserInput) (AdminUserOutput, error) {
	if !validRole(in.Role) {
		return AdminUserOutput{}, NewError(KindValidation, "invalid role")
	}

	current, err := u.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return AdminUserOutput{}, NewError(KindNotFound, "User not found")
	}
	if err != nil {
		return AdminUserOutput{}, NewError(KindInternal, "db error")
	}

	current.Username = in.Username
	current.Email = in.Email
	current.Role = in.Role
	current.FirstName = in.FirstName
	current.LastName = in.LastName
	current.Phone = in.Phone
	current.Address = in.Address

	// パスワードは指定された時だけ更新する。
	if in.Password != "" {
		if len(in.Password) < 6 {
			return AdminUserOutput{}, NewError(KindValidation, "password must be at least 6 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return AdminUserOutput{}, NewError(KindInternal, "failed to hash password")
		}
		current.PasswordHash = string(hash)
	}

	if err := u.userRepo.Update(ctx, current); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return AdminUserOutput{}, NewError(KindConflict, "User already exists")
		}
		if errors.Is(err, repo.ErrNotFound) {
			return AdminUserOutput{}, NewError(KindNotFound, "User not found")
		}
		return AdminUserOutput{}, NewError(KindInternal, "db error")
	}

	return AdminUserOutput{Message: "User updated successfully", User: current}, nil
}

func (u *AdminUserUsecase) DeleteUser(ctx context.Context, userID int64) (SuccessOutput, error) {
	err := u.userRepo.Delete(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return SuccessOutput{}, NewError(KindNotFound, "User not found")
	}
	if err != nil {
		return SuccessOutput{}, NewError(KindInternal, "db error")
	}
	return SuccessOutput{Message: "User deleted successfully"}, nil
}
