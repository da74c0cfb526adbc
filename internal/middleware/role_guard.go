package middleware

import (
	"net/http"

	"app/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// エンドポイントごとに許可ロールの集合を宣言し、
// contextに入っているroleが集合に含まれるかだけを確認する。
func RequireRoles(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRole := c.Get(CtxUserRoleKey)
			role, ok := rawRole.(string)
			if !ok || role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("Access denied. No token provided."))
			}

			if _, ok := allowed[model.Role(role)]; !ok {
				return c.JSON(http.StatusForbidden, errorJSON("Access denied. Insufficient permissions."))
			}

			return next(c)
		}
	}
}
