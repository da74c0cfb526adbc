package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	repo "app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type AuthUserRepoMock struct{ mock.Mock }

func (m *AuthUserRepoMock) Create(ctx context.Context, user *model.User) error {
	panic("not used in middleware tests")
}

func (m *AuthUserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *AuthUserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	panic("not used in middleware tests")
}

func (m *AuthUserRepoMock) ExistsByEmailOrUsername(ctx context.Context, email string, username string) (bool, error) {
	panic("not used in middleware tests")
}

func (m *AuthUserRepoMock) List(ctx context.Context) ([]model.User, error) {
	panic("not used in middleware tests")
}

func (m *AuthUserRepoMock) Update(ctx context.Context, user *model.User) error {
	panic("not used in middleware tests")
}

func (m *AuthUserRepoMock) UpdateProfile(ctx context.Context, userID int64, firstName, lastName, phone, address string) error {
	panic("not used in middleware tests")
}

func (m *AuthUserRepoMock) Delete(ctx context.Context, userID int64) error {
	panic("not used in middleware tests")
}

const testSecret = "test_secret"

func testCfg() config.Config {
	return config.Config{JWTSecret: testSecret}
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func validClaims(userID int64) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}
}

// 認証に通ったらuser_id/user_roleがcontextに入る
func runAuth(t *testing.T, users repo.UserRepository, authz string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := middleware.AuthJWT(testCfg(), users)(next)
	err := h(c)
	assert.NoError(t, err)
	return rec
}

func TestAuthJWT_Success(t *testing.T) {
	users := new(AuthUserRepoMock)
	users.On("FindByID", mock.Anything, int64(42)).Return(&model.User{
		ID:   42,
		Role: model.RoleSeller,
	}, nil)

	token := signToken(t, testSecret, validClaims(42))

	var gotID int64
	var gotRole string
	rec := runAuth(t, users, "Bearer "+token, func(c echo.Context) error {
		gotID = c.Get(middleware.CtxUserIDKey).(int64)
		gotRole = c.Get(middleware.CtxUserRoleKey).(string)
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotID)
	assert.Equal(t, "seller", gotRole)

	users.AssertExpectations(t)
}

func TestAuthJWT_NoHeader(t *testing.T) {
	rec := runAuth(t, new(AuthUserRepoMock), "", func(c echo.Context) error {
		t.Fatal("next should not be called")
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No token provided")
}

func TestAuthJWT_BadScheme(t *testing.T) {
	rec := runAuth(t, new(AuthUserRepoMock), "Basic abc", func(c echo.Context) error {
		t.Fatal("next should not be called")
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_TamperedSignature(t *testing.T) {
	token := signToken(t, "other_secret", validClaims(42))

	rec := runAuth(t, new(AuthUserRepoMock), "Bearer "+token, func(c echo.Context) error {
		t.Fatal("next should not be called")
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication failed")
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	claims := validClaims(42)
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	token := signToken(t, testSecret, claims)

	rec := runAuth(t, new(AuthUserRepoMock), "Bearer "+token, func(c echo.Context) error {
		t.Fatal("next should not be called")
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// トークンが有効でもユーザーが消えていれば401
func TestAuthJWT_DeletedUser(t *testing.T) {
	users := new(AuthUserRepoMock)
	users.On("FindByID", mock.Anything, int64(42)).Return(nil, repo.ErrNotFound)

	token := signToken(t, testSecret, validClaims(42))

	rec := runAuth(t, users, "Bearer "+token, func(c echo.Context) error {
		t.Fatal("next should not be called")
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}
