package queue

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/art-exhibition/internal/config"
	"github.com/art-exhibition/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// DefaultQueue 通知类任务
	DefaultQueue = constants.QueueDefault
	// CriticalQueue 超时取消等时效任务
	CriticalQueue = constants.QueueCritical

	emailMaxRetry        = 5
	emailTimeout         = 30 * time.Second
	defaultConcurrency   = 10
	defaultRedisHost     = "127.0.0.1"
	defaultRedisPort     = 6379
	timeoutCancelIDShape = "%s:%d"
)

// Client 任务投递端，未启用或为 nil 时所有投递静默忽略
type Client struct {
	inner *asynq.Client
}

// NewClient 按队列配置创建投递端
func NewClient(cfg *config.QueueConfig) (*Client, error) {
	if cfg == nil || !cfg.Enabled {
		return &Client{}, nil
	}
	return &Client{inner: asynq.NewClient(buildRedisOpt(cfg))}, nil
}

// Enabled 是否真正连接了队列
func (c *Client) Enabled() bool {
	return c != nil && c.inner != nil
}

// Close 释放 redis 连接
func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.inner.Close()
}

func (c *Client) enqueue(build func() (*asynq.Task, error), opts ...asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	task, err := build()
	if err != nil {
		return fmt.Errorf("build task: %w", err)
	}
	_, err = c.inner.Enqueue(task, opts...)
	return err
}

// EnqueueOrderStatusEmail 投递订单状态变更邮件
func (c *Client) EnqueueOrderStatusEmail(payload OrderStatusEmailPayload) error {
	return c.enqueue(
		func() (*asynq.Task, error) { return NewOrderStatusEmailTask(payload) },
		asynq.Queue(DefaultQueue),
		asynq.MaxRetry(emailMaxRetry),
		asynq.Timeout(emailTimeout),
	)
}

// EnqueueOrderTimeoutCancel 延迟投递待确认订单的超时取消，同一订单只保留一个任务
func (c *Client) EnqueueOrderTimeoutCancel(payload OrderTimeoutCancelPayload, delay time.Duration) error {
	err := c.enqueue(
		func() (*asynq.Task, error) { return NewOrderTimeoutCancelTask(payload) },
		asynq.Queue(CriticalQueue),
		asynq.ProcessIn(max(delay, 0)),
		asynq.TaskID(fmt.Sprintf(timeoutCancelIDShape, TaskOrderTimeoutCancel, payload.OrderID)),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}

// BuildServerConfig 生成 worker 端连接与调度配置
func BuildServerConfig(cfg *config.QueueConfig) (asynq.RedisClientOpt, asynq.Config) {
	serverCfg := asynq.Config{
		Concurrency: defaultConcurrency,
		Queues:      map[string]int{DefaultQueue: 1, CriticalQueue: 2},
	}
	if cfg != nil {
		if cfg.Concurrency > 0 {
			serverCfg.Concurrency = cfg.Concurrency
		}
		if len(cfg.Queues) > 0 {
			serverCfg.Queues = cfg.Queues
		}
	}
	return buildRedisOpt(cfg), serverCfg
}

func buildRedisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	if cfg == nil {
		return asynq.RedisClientOpt{Addr: net.JoinHostPort(defaultRedisHost, strconv.Itoa(defaultRedisPort))}
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = defaultRedisHost
	}
	port := cfg.Port
	if port <= 0 {
		port = defaultRedisPort
	}
	return asynq.RedisClientOpt{
		Addr:     net.JoinHostPort(host, strconv.Itoa(port)),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}
