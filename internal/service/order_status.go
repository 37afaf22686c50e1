package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/art-exhibition/internal/constants"
	"github.com/art-exhibition/internal/logger"
	"github.com/art-exhibition/internal/models"
)

var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusConfirmed: true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusConfirmed: {
		constants.OrderStatusShipped:   true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusShipped: {
		constants.OrderStatusDelivered: true,
	},
}

var statusTimestampColumns = map[string]string{
	constants.OrderStatusConfirmed: "confirmed_at",
	constants.OrderStatusShipped:   "shipped_at",
	constants.OrderStatusDelivered: "delivered_at",
	constants.OrderStatusCancelled: "cancelled_at",
}

// IsKnownOrderStatus 是否为合法订单状态
func IsKnownOrderStatus(status string) bool {
	switch status {
	case constants.OrderStatusPending,
		constants.OrderStatusConfirmed,
		constants.OrderStatusShipped,
		constants.OrderStatusDelivered,
		constants.OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminalOrderStatus 已送达/已取消为终态
func IsTerminalOrderStatus(status string) bool {
	return status == constants.OrderStatusDelivered || status == constants.OrderStatusCancelled
}

// CanTransitionOrderStatus 判断状态流转是否允许
func CanTransitionOrderStatus(from, to string) bool {
	return allowedTransitions[from][to]
}

// UpdateStatus 管理端更新订单状态
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, target string) (*models.Order, error) {
	target = strings.ToLower(strings.TrimSpace(target))
	if !IsKnownOrderStatus(target) {
		return nil, ErrOrderStatusInvalid
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if err := s.transition(order, target); err != nil {
		return nil, err
	}
	s.enqueueStatusEmail(order, "")
	return order, nil
}

// CancelExpired 取消超时仍待确认的订单，非待确认或未过期时忽略
func (s *OrderService) CancelExpired(ctx context.Context, orderID uint) (bool, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return false, err
	}
	if order == nil || order.Status != constants.OrderStatusPending {
		return false, nil
	}
	if order.ExpiresAt != nil && order.ExpiresAt.After(s.now()) {
		return false, nil
	}
	if err := s.transition(order, constants.OrderStatusCancelled); err != nil {
		if errors.Is(err, ErrOrderStatusInvalid) || errors.Is(err, ErrOrderImmutable) {
			return false, nil
		}
		return false, err
	}
	logger.Infow("order_timeout_cancelled", "order_id", order.ID, "order_no", order.OrderNo)
	s.enqueueStatusEmail(order, "")
	return true, nil
}

// SweepExpired 批量取消超时订单，返回取消数量
func (s *OrderService) SweepExpired(ctx context.Context, limit int) (int, error) {
	orders, err := s.orderRepo.ListExpiredPending(s.now(), limit)
	if err != nil {
		return 0, err
	}
	cancelled := 0
	for _, order := range orders {
		ok, err := s.CancelExpired(ctx, order.ID)
		if err != nil {
			logger.Warnw("order_sweep_cancel_failed", "order_id", order.ID, "error", err)
			continue
		}
		if ok {
			cancelled++
		}
	}
	return cancelled, nil
}

// transition 按当前状态条件更新，并发修改时返回状态错误
func (s *OrderService) transition(order *models.Order, target string) error {
	from := order.Status
	if IsTerminalOrderStatus(from) {
		return ErrOrderImmutable
	}
	if !CanTransitionOrderStatus(from, target) {
		return ErrOrderStatusInvalid
	}
	now := s.now()
	updates := map[string]interface{}{"updated_at": now}
	if column, ok := statusTimestampColumns[target]; ok {
		updates[column] = now
	}
	ok, err := s.orderRepo.TransitionStatus(order.ID, from, target, updates)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOrderStatusInvalid
	}
	order.Status = target
	applyStatusTimestamp(order, target, now)
	return nil
}

func applyStatusTimestamp(order *models.Order, status string, at time.Time) {
	switch status {
	case constants.OrderStatusConfirmed:
		order.ConfirmedAt = &at
	case constants.OrderStatusShipped:
		order.ShippedAt = &at
	case constants.OrderStatusDelivered:
		order.DeliveredAt = &at
	case constants.OrderStatusCancelled:
		order.CancelledAt = &at
	}
	order.UpdatedAt = at
}
