package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/art-exhibition/internal/models"
	"github.com/art-exhibition/internal/provider"
	"github.com/art-exhibition/internal/queue"

	"github.com/hibiken/asynq"
)

func TestBuildOrderStatusEmailInputNilOrder(t *testing.T) {
	got := buildOrderStatusEmailInput(nil, "shipped")
	if got.OrderNo != "" || got.Status != "" {
		t.Fatalf("expected empty input for nil order, got %+v", got)
	}
}

func TestBuildOrderStatusEmailInputFallbackStatus(t *testing.T) {
	order := &models.Order{
		OrderNo:      "AE20260101000001",
		CustomerName: "  Lan  ",
		Status:       "confirmed",
		Currency:     "VND",
		Total:        models.NewMoney(450000),
	}

	got := buildOrderStatusEmailInput(order, "  ")
	if got.Status != "confirmed" {
		t.Fatalf("status want confirmed got %s", got.Status)
	}
	if got.CustomerName != "Lan" {
		t.Fatalf("customer name want Lan got %q", got.CustomerName)
	}
	if !got.IsGuest {
		t.Fatalf("order without user should be guest")
	}
	if got.Total.String() != "450000" {
		t.Fatalf("total want 450000 got %s", got.Total.String())
	}
}

func TestBuildOrderStatusEmailInputLinkedUser(t *testing.T) {
	userID := uint(3)
	order := &models.Order{OrderNo: "AE1", Status: "pending", UserID: &userID}

	got := buildOrderStatusEmailInput(order, "shipped")
	if got.Status != "shipped" {
		t.Fatalf("status want shipped got %s", got.Status)
	}
	if got.IsGuest {
		t.Fatalf("order with user should not be guest")
	}
}

func TestHandleOrderStatusEmailSkipsInvalidPayload(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})

	task, err := queue.NewOrderStatusEmailTask(queue.OrderStatusEmailPayload{})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if err := consumer.handleOrderStatusEmail(context.Background(), task); err != nil {
		t.Fatalf("zero order id should be skipped, got %v", err)
	}

	broken := asynq.NewTask(queue.TaskOrderStatusEmail, []byte("{"))
	if err := consumer.handleOrderStatusEmail(context.Background(), broken); err == nil {
		t.Fatalf("malformed payload should return error")
	}
}

func TestHandleOrderTimeoutCancelWithoutOrderService(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})

	task, err := queue.NewOrderTimeoutCancelTask(queue.OrderTimeoutCancelPayload{OrderID: 5})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if err := consumer.handleOrderTimeoutCancel(context.Background(), task); err != nil {
		t.Fatalf("missing order service should be skipped, got %v", err)
	}
}

func TestMalformedPayloadSkipsRetry(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})
	broken := asynq.NewTask(queue.TaskOrderTimeoutCancel, []byte("not-json"))
	err := consumer.handleOrderTimeoutCancel(context.Background(), broken)
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("malformed payload should skip retry, got %v", err)
	}
}
