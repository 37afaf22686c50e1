package queue

import (
	"testing"
	"time"

	"github.com/art-exhibition/internal/config"
)

func TestOrderTaskPayloadRoundTrip(t *testing.T) {
	task, err := NewOrderStatusEmailTask(OrderStatusEmailPayload{OrderID: 7, Status: "shipped", Locale: "vi"})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if task.Type() != TaskOrderStatusEmail {
		t.Fatalf("unexpected task type: %s", task.Type())
	}
	payload, err := ParseOrderStatusEmailPayload(task)
	if err != nil {
		t.Fatalf("parse payload failed: %v", err)
	}
	if payload.OrderID != 7 || payload.Status != "shipped" || payload.Locale != "vi" {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	cancelTask, err := NewOrderTimeoutCancelTask(OrderTimeoutCancelPayload{OrderID: 9})
	if err != nil {
		t.Fatalf("new cancel task failed: %v", err)
	}
	cancelPayload, err := ParseOrderTimeoutCancelPayload(cancelTask)
	if err != nil || cancelPayload.OrderID != 9 {
		t.Fatalf("unexpected cancel payload: %+v err=%v", cancelPayload, err)
	}
}

func TestDisabledClientIsNoop(t *testing.T) {
	client, err := NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	if client.Enabled() {
		t.Fatalf("client should be disabled")
	}
	if err := client.EnqueueOrderStatusEmail(OrderStatusEmailPayload{OrderID: 1}); err != nil {
		t.Fatalf("disabled enqueue should be noop: %v", err)
	}
	if err := client.EnqueueOrderTimeoutCancel(OrderTimeoutCancelPayload{OrderID: 1}, time.Minute); err != nil {
		t.Fatalf("disabled enqueue should be noop: %v", err)
	}
	var nilClient *Client
	if nilClient.Enabled() || nilClient.Close() != nil {
		t.Fatalf("nil client should be disabled and closable")
	}
}

func TestBuildServerConfigDefaults(t *testing.T) {
	opt, cfg := BuildServerConfig(nil)
	if opt.Addr != "127.0.0.1:6379" {
		t.Fatalf("unexpected addr: %s", opt.Addr)
	}
	if cfg.Concurrency != 10 || cfg.Queues[DefaultQueue] != 1 {
		t.Fatalf("unexpected server config: %+v", cfg)
	}
}
