package repository

import (
	"app/internal/domain/model"
	"context"
)

// ユーザーの保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成。email/usernameの重複はErrConflict。
	Create(ctx context.Context, user *model.User) error

	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID int64) (*model.User, error)

	//メールからユーザーを1件取得する。
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	//email か username が既に使われているか。
	ExistsByEmailOrUsername(ctx context.Context, email string, username string) (bool, error)

	//全ユーザー一覧（管理者用、ページングなし）。
	List(ctx context.Context) ([]model.User, error)

	// ユーザー情報の更新=>ロールの変更・連絡先の変更など（管理者用）
	Update(ctx context.Context, user *model.User) error

	//本人によるプロフィール更新（role/email/usernameは触らない）。
	UpdateProfile(ctx context.Context, userID int64, firstName, lastName, phone, address string) error

	//ユーザー削除（管理者用）。
	Delete(ctx context.Context, userID int64) error
}
