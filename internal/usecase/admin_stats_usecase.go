package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	repo "app/internal/repository"
)

const (
	topProductsLimit  = 10
	recentOrdersLimit = 10
)

// 管理者ダッシュボード用の集計。
type AdminStatsUsecase struct {
	statsRepo repo.StatsRepository
	now       func() time.Time
}

func NewAdminStatsUsecase(statsRepo repo.StatsRepository) *AdminStatsUsecase {
	return &AdminStatsUsecase{statsRepo: statsRepo, now: time.Now}
}

type DashboardOutput struct {
	TotalUsers         int64                 `json:"totalUsers"`
	TotalProducts      int64                 `json:"totalProducts"`
	TotalOrders        int64                 `json:"totalOrders"`
	TotalRevenue       decimal.Decimal       `json:"totalRevenue"`
	NewUsersThisMonth  int64                 `json:"newUsersThisMonth"`
	NewOrdersThisMonth int64                 `json:"newOrdersThisMonth"`
	RevenueThisMonth   decimal.Decimal       `json:"revenueThisMonth"`
	RevenueLastMonth   decimal.Decimal       `json:"revenueLastMonth"`
	TopProducts        []repo.TopProductRow  `json:"topProducts"`
	RecentOrders       []repo.RecentOrderRow `json:"recentOrders"`
}

func (u *AdminStatsUsecase) Dashboard(ctx context.Context) (DashboardOutput, error) {
	now := u.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := monthStart.AddDate(0, -1, 0)
	twoMonthsAgo := monthStart.AddDate(0, -2, 0)

	var out DashboardOutput
	var err error

	if out.TotalUsers, err = u.statsRepo.TotalUsers(ctx); err != nil {
		return DashboardOutput{}, NewError(KindInternal, "db error")
	}
	if out.TotalProducts, err = u.statsRepo.TotalProducts(ctx); err != nil {
		return DashboardOutput{}, NewError(KindInternal, "db error")
	}
	if out.TotalOrders, err = u.statsRepo.TotalOrders(ctx); err != nil {
		return DashboardOutput{}, NewError(KindInternal, "db error")
	}
	if out.TotalRevenue, err = u.statsRepo.TotalRevenue(ctx); err != nil {
		return DashboardOutput{}, NewError(KindInternal, "db error")
	}
	if out.NewUsersThisMonth, err = u.statsRepo.NewUsersSince(ctx, monthStart); err != nil {
		return DashboardOutput{}, NewError(KindInternal, "db error")
	}
	if out.NewOrdersThisMonth, err = u.statsRepo.NewOrdersSince(ctx, monthStart); err != nil {
		return DashboardOutput{}, NewError(KindInternal, "db error")
	}
	if out.RevenueThisMonth, err = u.statsRepo.RevenueSince(ctx, monthStart); err != nil {
		return DashboardOutput{}, NewError(KindInternal, "db error")
	}
	if out.RevenueLastMonth, err = u.statsRepo.RevenueBetween(ctx, prevMonthStart, monthStart); err != nil {
		return DashboardOutput{}, NewError(KindInternal, "db error")
	}
	if out.TopProducts, err = u.statsRepo.TopProducts(ctx, twoMonthsAgo, topProductsLimit); err != nil {
		return DashboardOutput{}, NewError(KindInternal, "db error")
	}
	if out.RecentOrders, err = u.statsRepo.RecentOrders(ctx, recentOrdersLimit); err != nil {
		return DashboardOutput{}, NewError(KindInternal, "db error")
	}

	return out, nil
}
