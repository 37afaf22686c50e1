package service

import (
	"strings"
	"time"

	"github.com/art-exhibition/internal/models"
	"github.com/art-exhibition/internal/repository"
)

// AdminOrderListInput 管理端订单列表查询
type AdminOrderListInput struct {
	Page        int
	PageSize    int
	Status      string
	Keyword     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// ListAdmin 管理端订单列表
func (s *OrderService) ListAdmin(input AdminOrderListInput) ([]models.Order, int64, error) {
	status := strings.ToLower(strings.TrimSpace(input.Status))
	if status != "" && !IsKnownOrderStatus(status) {
		return nil, 0, ErrOrderStatusInvalid
	}
	return s.orderRepo.ListAdmin(repository.OrderListFilter{
		Page:        input.Page,
		PageSize:    input.PageSize,
		Status:      status,
		Keyword:     strings.TrimSpace(input.Keyword),
		CreatedFrom: input.CreatedFrom,
		CreatedTo:   input.CreatedTo,
	})
}

// GetAdmin 管理端订单详情
func (s *OrderService) GetAdmin(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetGuestOrder 游客凭订单号与下单邮箱查询订单，邮箱不匹配时按不存在处理
func (s *OrderService) GetGuestOrder(orderNo, email string) (*models.Order, error) {
	orderNo = strings.TrimSpace(orderNo)
	normalizedEmail, err := normalizeEmail(email)
	if orderNo == "" || err != nil {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil || !strings.EqualFold(order.CustomerEmail, normalizedEmail) {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
