package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/art-exhibition/internal/app"
	"github.com/art-exhibition/internal/config"
	"github.com/art-exhibition/internal/logger"
	"github.com/art-exhibition/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	ansiReset     = "\033[0m"
	ansiBold      = "\033[1m"
	ansiDim       = "\033[2m"
	ansiGreen     = "\033[32m"
	ansiBlue      = "\033[34m"
	ansiCyan      = "\033[36m"
	ansiBrightMag = "\033[95m"
)

func main() {
	printStartupBanner()

	// .env 可选，存在时先注入环境变量再加载配置
	_ = godotenv.Load()
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer func() { _ = logger.Sync() }()
	stdLog := logger.StdLogger()

	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, worker")
	flag.Parse()

	if err := checkSecret(cfg); err != nil {
		stdLog.Fatalf("%v", err)
	}
	if err := prepareDatabase(cfg); err != nil {
		stdLog.Fatalf("%v", err)
	}
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

// checkSecret release 模式拒绝弱 JWT 密钥，其余模式仅告警
func checkSecret(cfg *config.Config) error {
	if !isWeakSecret(cfg.JWT.SecretKey) {
		return nil
	}
	if cfg.Server.Mode == "release" {
		return errors.New("JWT secret 过弱或仍为默认值，请在生产环境中配置强随机密钥")
	}
	logger.Warnw("jwt_secret_weak", "hint", "建议在生产环境中更换")
	return nil
}

// prepareDatabase 连接、迁移并初始化默认管理员
func prepareDatabase(cfg *config.Config) error {
	pool := cfg.Database.Pool
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           pool.MaxOpenConns,
		MaxIdleConns:           pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		return fmt.Errorf("数据库初始化失败: %w", err)
	}
	if err := models.AutoMigrate(); err != nil {
		return fmt.Errorf("数据库迁移失败: %w", err)
	}

	username := os.Getenv("AE_DEFAULT_ADMIN_USERNAME")
	password := os.Getenv("AE_DEFAULT_ADMIN_PASSWORD")
	if cfg.Server.Mode == "release" && password == "" {
		logger.Warnw("default_admin_skipped", "reason", "AE_DEFAULT_ADMIN_PASSWORD not set")
		return nil
	}
	if err := models.InitDefaultAdmin(username, password); err != nil {
		logger.Warnw("default_admin_init_failed", "error", err)
	}
	return nil
}

func printStartupBanner() {
	fmt.Println(ansiBrightMag + "╔══════════════════════════════════════════════════════════╗" + ansiReset)
	fmt.Println(ansiBrightMag + "║              Art Exhibition API 启动中                   ║" + ansiReset)
	fmt.Println(ansiBrightMag + "╚══════════════════════════════════════════════════════════╝" + ansiReset)
	fmt.Println(ansiCyan + "   ▲  candles · art · custom gifts" + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "Endpoints" + ansiReset)
	fmt.Println(ansiBlue + "• Storefront: /api/shop, /api/cart, /api/customize, /api/checkout" + ansiReset)
	fmt.Println(ansiBlue + "• Catalog:    /api/categories, /api/colors, /api/scents, /api/sizes, /api/products" + ansiReset)
	fmt.Println(ansiBlue + "• Admin:      /api/admin" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}
