package app

import (
	"os"
	"strings"
	"time"

	"github.com/art-exhibition/internal/config"
	"github.com/art-exhibition/internal/logger"

	"go.uber.org/zap"
)

// 启动模式：all 同进程运行 API 与 Worker
const (
	ModeAll    = "all"
	ModeAPI    = "api"
	ModeWorker = "worker"
)

// Options 进程级启动参数，零值字段由 normalizeOptions 补齐
type Options struct {
	Config *config.Config
	Logger *zap.SugaredLogger
	// Signals 为空时不监听信号，由调用方控制生命周期
	Signals         []os.Signal
	ShutdownTimeout time.Duration
	Mode            string
}

func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = defaultStopTimeout
	}
	opts.Mode = strings.ToLower(strings.TrimSpace(opts.Mode))
	if opts.Mode == "" {
		opts.Mode = ModeAll
	}
	return opts
}

func isKnownMode(mode string) bool {
	switch mode {
	case ModeAll, ModeAPI, ModeWorker:
		return true
	}
	return false
}
