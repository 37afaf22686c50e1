package worker

import (
	"context"
	"fmt"
	"strings"

	"github.com/art-exhibition/internal/logger"
	"github.com/art-exhibition/internal/models"
	"github.com/art-exhibition/internal/provider"
	"github.com/art-exhibition/internal/queue"
	"github.com/art-exhibition/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 订单相关任务的处理器，依赖从容器取
type Consumer struct {
	*provider.Container
}

func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{Container: c}
}

// Register 挂载全部任务类型
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusEmail, c.handleOrderStatusEmail)
	mux.HandleFunc(queue.TaskOrderTimeoutCancel, c.handleOrderTimeoutCancel)
}

// skip 记录跳过原因；返回 nil 让 asynq 视为成功
func skip(task, reason string, kv ...interface{}) error {
	logger.Debugw("worker_task_skipped", append([]interface{}{"task", task, "reason", reason}, kv...)...)
	return nil
}

// malformed 载荷无法解析时不再重试
func malformed(task string, err error) error {
	logger.Warnw("worker_task_payload_invalid", "task", task, "error", err)
	return fmt.Errorf("decode %s payload: %v: %w", task, err, asynq.SkipRetry)
}

func (c *Consumer) handleOrderStatusEmail(_ context.Context, task *asynq.Task) error {
	const name = queue.TaskOrderStatusEmail
	payload, err := queue.ParseOrderStatusEmailPayload(task)
	if err != nil {
		return malformed(name, err)
	}
	if payload.OrderID == 0 {
		return skip(name, "empty_order_id")
	}
	if !c.EmailService.Enabled() {
		return skip(name, "email_disabled", "order_id", payload.OrderID)
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_email_load_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		return skip(name, "order_not_found", "order_id", payload.OrderID)
	}
	to := strings.TrimSpace(order.CustomerEmail)
	if to == "" {
		return skip(name, "no_receiver", "order_no", order.OrderNo)
	}

	input := buildOrderStatusEmailInput(order, payload.Status)
	if err := c.EmailService.SendOrderStatusEmail(to, input, payload.Locale); err != nil {
		logger.Warnw("worker_order_status_email_send_failed",
			"order_no", order.OrderNo,
			"status", input.Status,
			"error", err,
		)
		return err
	}
	logger.Infow("worker_order_status_email_sent", "order_no", order.OrderNo, "status", input.Status)
	return nil
}

func (c *Consumer) handleOrderTimeoutCancel(ctx context.Context, task *asynq.Task) error {
	const name = queue.TaskOrderTimeoutCancel
	payload, err := queue.ParseOrderTimeoutCancelPayload(task)
	if err != nil {
		return malformed(name, err)
	}
	if payload.OrderID == 0 {
		return skip(name, "empty_order_id")
	}
	if c.OrderService == nil {
		return skip(name, "order_service_unavailable", "order_id", payload.OrderID)
	}
	cancelled, err := c.OrderService.CancelExpired(ctx, payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_timeout_cancel_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if !cancelled {
		return skip(name, "not_pending", "order_id", payload.OrderID)
	}
	logger.Infow("worker_order_timeout_cancelled", "order_id", payload.OrderID)
	return nil
}

// buildOrderStatusEmailInput 任务未携带状态时取订单当前状态
func buildOrderStatusEmailInput(order *models.Order, status string) service.OrderStatusEmailInput {
	if order == nil {
		return service.OrderStatusEmailInput{}
	}
	if status = strings.TrimSpace(status); status == "" {
		status = order.Status
	}
	return service.OrderStatusEmailInput{
		OrderNo:      order.OrderNo,
		CustomerName: strings.TrimSpace(order.CustomerName),
		Status:       status,
		Total:        order.Total,
		Currency:     order.Currency,
		IsGuest:      order.UserID == nil,
	}
}
