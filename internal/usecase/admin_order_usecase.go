package usecase

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 管理者による注文の閲覧・ステータス変更。
type AdminOrderUsecase struct {
	orderRepo     repo.OrderRepository
	orderItemRepo repo.OrderItemRepository
}

func NewAdminOrderUsecase(orderRepo repo.OrderRepository, orderItemRepo repo.OrderItemRepository) *AdminOrderUsecase {
	return &AdminOrderUsecase{orderRepo: orderRepo, orderItemRepo: orderItemRepo}
}

type AdminOrderOutput struct {
	repo.AdminOrderRow
	Items []repo.OrderItemDetail `json:"items"`
}

func validOrderStatus(s model.OrderStatus) bool {
	switch s {
	case model.OrderStatusPending, model.OrderStatusProcessing,
		model.OrderStatusShipped, model.OrderStatusDelivered, model.OrderStatusCancelled:
		return true
	}
	return false
}

func (u *AdminOrderUsecase) ListOrders(ctx context.Context) ([]AdminOrderOutput, error) {
	rows, err := u.orderRepo.ListAdmin(ctx)
	if err != nil {
		return nil, NewError(KindInternal, "db error")
	}

	out := make([]AdminOrderOutput, 0, len(rows))
	for _, row := range rows {
		items, err := u.orderItemRepo.ListByOrderID(ctx, row.ID)
		if err != nil {
			return nil, NewError(KindInternal, "db error")
		}
		out = append(out, AdminOrderOutput{AdminOrderRow: row, Items: items})
	}
	return out, nil
}

func (u *AdminOrderUsecase) GetOrder(ctx context.Context, orderID int64) (AdminOrderOutput, error) {
	row, err := u.orderRepo.FindAdminByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return AdminOrderOutput{}, NewError(KindNotFound, "Order not found")
	}
	if err != nil {
		return AdminOrderOutput{}, NewError(KindInternal, "db error")
	}

	items, err := u.orderItemRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return AdminOrderOutput{}, NewError(KindInternal, "db error")
	}
	return AdminOrderOutput{AdminOrderRow: row, Items: items}, nil
}

func (u *AdminOrderUsecase) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (SuccessOutput, error) {
	if !validOrderStatus(status) {
		return SuccessOutput{}, NewError(KindValidation, "invalid status")
	}

	err := u.orderRepo.UpdateStatus(ctx, orderID, status)
	if errors.Is(err, repo.ErrNotFound) {
		return SuccessOutput{}, NewError(KindNotFound, "Order not found")
	}
	if err != nil {
		return SuccessOutput{}, NewError(KindInternal, "db error")
	}

	return SuccessOutput{Message: "Order status updated successfully"}, nil
}
