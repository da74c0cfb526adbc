package validator

import (
	"context"
	"regexp"
	"strings"

	"app/internal/usecase"
)

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// サインアップの入力を検証
func (v *authValidator) ValidateRegister(ctx context.Context, in usecase.RegisterInput) error {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	// 必須チェック
	if username == "" || email == "" || in.Password == "" {
		return usecase.NewError(usecase.KindValidation, "username, email and password are required")
	}

	if len(username) < 3 || len(username) > 50 {
		return usecase.NewError(usecase.KindValidation, "username must be 3-50 characters")
	}

	// email形式
	if len(email) < 5 || len(email) > 100 || !isEmailLike(email) {
		return usecase.NewError(usecase.KindValidation, "invalid email format")
	}

	// パスワード最低文字数
	if len(in.Password) < 6 {
		return usecase.NewError(usecase.KindValidation, "password must be at least 6 characters")
	}

	// 自己登録で選べるのは customer / seller のみ。adminは管理者が作る。
	if in.Role != "" && in.Role != "customer" && in.Role != "seller" {
		return usecase.NewError(usecase.KindValidation, "invalid role")
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" {
		return usecase.NewError(usecase.KindValidation, "email and password are required")
	}

	// email形式
	if !isEmailLike(email) {
		return usecase.NewError(usecase.KindValidation, "invalid email format")
	}

	return nil
}

// 簡易メール形式をチェック
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func isEmailLike(s string) bool {
	return emailRe.MatchString(s)
}
