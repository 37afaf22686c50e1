package worker

import (
	"context"
	"errors"
	"time"

	"github.com/art-exhibition/internal/config"
	"github.com/art-exhibition/internal/logger"
	"github.com/art-exhibition/internal/queue"

	"github.com/hibiken/asynq"
)

const (
	sweepInterval = time.Minute
	sweepBatch    = 100
)

// Service asynq 消费端，同时负责定期扫描超时未确认订单
type Service struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
}

// NewService 队列未启用时返回错误，调用方据此决定是否托管 worker
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	serverCfg.Logger = logger.SW("component", "asynq")
	serverCfg.ErrorHandler = asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
		retried, _ := asynq.GetRetryCount(ctx)
		logger.Warnw("worker_task_failed", "task", task.Type(), "retried", retried, "error", err)
	})

	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		server:   asynq.NewServer(opt, serverCfg),
		mux:      mux,
		consumer: consumer,
	}, nil
}

func (s *Service) Name() string { return "worker" }

// Start 阻塞直到 Stop 被调用
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer.OrderService != nil {
		go s.sweepLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop 等待进行中的任务结束，asynq 自带超时
func (s *Service) Stop(context.Context) error {
	if s != nil && s.server != nil {
		s.server.Shutdown()
	}
	return nil
}

// sweepLoop 兜底取消已过期但延时任务丢失的订单
func (s *Service) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		cancelled, err := s.consumer.OrderService.SweepExpired(ctx, sweepBatch)
		switch {
		case err != nil:
			logger.Warnw("worker_expired_order_sweep_failed", "error", err)
		case cancelled > 0:
			logger.Infow("worker_expired_order_sweep_done", "cancelled", cancelled)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
