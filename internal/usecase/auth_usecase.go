package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// accesstokenの有効期限
const accessTokenTTL = 1 * time.Hour

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateRegister(ctx context.Context, in RegisterInput) error
	ValidateLogin(ctx context.Context, email string, password string) error
}

type UserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Role      string
	FirstName string
	LastName  string
	Phone     string
	Address   string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthOutput struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

type AuthUsecase struct {
	cfg       config.Config
	users     repo.UserRepository
	validator AuthValidator
}

func NewAuthUsecase(cfg config.Config, users repo.UserRepository, validator AuthValidator) *AuthUsecase {
	return &AuthUsecase{
		cfg:       cfg,
		users:     users,
		validator: validator,
	}
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (AuthOutput, error) {
	//入力検証（validatorに寄せる）
	if err := u.validator.ValidateRegister(ctx, in); err != nil {
		return AuthOutput{}, err
	}

	//email/username重複チェック
	exists, err := u.users.ExistsByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil {
		return AuthOutput{}, NewError(KindInternal, "db error")
	}
	if exists {
		return AuthOutput{}, NewError(KindConflict, "User already exists")
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthOutput{}, NewError(KindInternal, "internal error")
	}

	//role未指定はcustomer扱い
	role := model.Role(in.Role)
	if role == "" {
		role = model.RoleCustomer
	}

	user := &model.User{
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: string(pwHash),
		Role:         role,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Address:      in.Address,
	}

	//保存（同時登録の重複はuniqueインデックスで弾かれる）
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return AuthOutput{}, NewError(KindConflict, "User already exists")
		}
		return AuthOutput{}, NewError(KindInternal, "db error")
	}

	token, err := u.issueAccessToken(user)
	if err != nil {
		return AuthOutput{}, NewError(KindInternal, "internal error")
	}

	return AuthOutput{
		Message: "User registered successfully",
		Token:   token,
		User:    toUserDTO(user),
	}, nil
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (AuthOutput, error) {
	if err := u.validator.ValidateLogin(ctx, in.Email, in.Password); err != nil {
		return AuthOutput{}, err
	}

	//ユーザー取得。不在でもパスワード不一致でも同じメッセージを返す。
	user, err := u.users.FindByEmail(ctx, in.Email)
	if errors.Is(err, repo.ErrNotFound) {
		return AuthOutput{}, NewError(KindValidation, "Invalid credentials")
	}
	if err != nil || user == nil {
		return AuthOutput{}, NewError(KindInternal, "db error")
	}

	//パスワード照合（bcrypt）
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return AuthOutput{}, NewError(KindValidation, "Invalid credentials")
	}

	token, err := u.issueAccessToken(user)
	if err != nil {
		return AuthOutput{}, NewError(KindInternal, "internal error")
	}

	return AuthOutput{
		Message: "Login successful",
		Token:   token,
		User:    toUserDTO(user),
	}, nil
}

// jwt発行
func (u *AuthUsecase) issueAccessToken(user *model.User) (string, error) {
	now := time.Now()
	exp := now.Add(accessTokenTTL)

	claims := jwt.MapClaims{
		"sub": user.ID,
		"iat": now.Unix(),
		"exp": exp.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(u.cfg.JWTSecret))
}

// model.UserをAPI返却用DTOに変換。
func toUserDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
	}
}
