package app

import (
	"context"
	"errors"
	"os/signal"
	"time"

	"go.uber.org/zap"
)

const defaultStopTimeout = 10 * time.Second

// Service 可被 Runner 托管的长驻组件
type Service interface {
	Name() string
	// Start 阻塞运行直到 ctx 取消或出错
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Runner 并发启动一组服务，任一退出即整体收尾
type Runner struct {
	services []Service
	closers  []func() error
}

func NewRunner(services ...Service) *Runner {
	return &Runner{services: services}
}

// OnStop 注册在全部服务停止后执行的资源释放函数
func (r *Runner) OnStop(fn func() error) {
	if r != nil && fn != nil {
		r.closers = append(r.closers, fn)
	}
}

// RunWithOptions 绑定系统信号后运行
func RunWithOptions(runner *Runner, opts Options) error {
	if runner == nil {
		return errors.New("runner is nil")
	}
	opts = normalizeOptions(opts)
	ctx := context.Background()
	if len(opts.Signals) > 0 {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, opts.Signals...)
		defer stop()
	}
	return runner.Run(ctx, opts.ShutdownTimeout, opts.Logger)
}

// Run 信号取消视为正常退出，返回 nil；否则返回首个服务错误
func (r *Runner) Run(ctx context.Context, stopTimeout time.Duration, log *zap.SugaredLogger) error {
	if r == nil || len(r.services) == 0 {
		return errors.New("no services to run")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	exited := make(chan error, len(r.services))
	for _, svc := range r.services {
		go r.start(runCtx, svc, log, exited)
	}

	var cause error
	select {
	case <-runCtx.Done():
		cause = runCtx.Err()
	case cause = <-exited:
	}
	cancel()

	r.shutdown(stopTimeout, log)
	if errors.Is(cause, context.Canceled) {
		return nil
	}
	return cause
}

func (r *Runner) start(ctx context.Context, svc Service, log *zap.SugaredLogger, exited chan<- error) {
	if svc == nil {
		exited <- errors.New("service is nil")
		return
	}
	log.Infow("service_start", "service", svc.Name())
	err := svc.Start(ctx)
	log.Infow("service_exit", "service", svc.Name(), "error", err)
	exited <- err
}

// shutdown 共享一个超时预算依次停止服务，再释放资源
func (r *Runner) shutdown(timeout time.Duration, log *zap.SugaredLogger) {
	if timeout <= 0 {
		timeout = defaultStopTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	for _, svc := range r.services {
		if svc == nil {
			continue
		}
		if err := svc.Stop(ctx); err != nil {
			log.Errorw("service_stop_failed", "service", svc.Name(), "error", err)
		}
	}
	for _, closeFn := range r.closers {
		if err := closeFn(); err != nil {
			log.Warnw("resource_close_failed", "error", err)
		}
	}
}
