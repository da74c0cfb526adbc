package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin/stats のHTTP
type AdminStatsHandler struct {
	uc *usecase.AdminStatsUsecase
}

// DI
func NewAdminStatsHandler(uc *usecase.AdminStatsUsecase) *AdminStatsHandler {
	return &AdminStatsHandler{uc: uc}
}

func (h *AdminStatsHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	e.GET("/admin/stats", h.dashboard,
		middleware.AuthJWT(cfg, userRepo),
		middleware.RequireRoles(model.RoleAdmin),
	)
}

func (h *AdminStatsHandler) dashboard(c echo.Context) error {
	out, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
