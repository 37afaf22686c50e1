package provider

import (
	"context"
	"errors"
	"time"

	"github.com/art-exhibition/internal/authz"
	"github.com/art-exhibition/internal/cache"
	"github.com/art-exhibition/internal/config"
	"github.com/art-exhibition/internal/logger"
	"github.com/art-exhibition/internal/models"
	"github.com/art-exhibition/internal/queue"
	"github.com/art-exhibition/internal/repository"
	"github.com/art-exhibition/internal/service"

	"gorm.io/gorm"
)

const defaultCartTTLHours = 72

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	DB          *gorm.DB
	QueueClient *queue.Client

	// Repositories
	AdminRepo     repository.AdminRepository
	UserRepo      repository.UserRepository
	OrderRepo     repository.OrderRepository
	ProductRepo   repository.ProductRepository
	CategoryRepo  repository.CatalogRepository[models.Category]
	ColorRepo     repository.CatalogRepository[models.Color]
	ScentRepo     repository.CatalogRepository[models.Scent]
	SizeRepo      repository.CatalogRepository[models.Size]
	PostRepo      repository.PostRepository
	DashboardRepo repository.DashboardRepository
	CartRepo      repository.CartRepository

	// Services
	AuthzService     *authz.Service
	AuthService      *service.AuthService
	EmailService     *service.EmailService
	CaptchaService   *service.CaptchaService
	UploadService    *service.UploadService
	CategoryService  *service.CategoryService
	ColorService     *service.ColorService
	ScentService     *service.ScentService
	SizeService      *service.SizeService
	ProductService   *service.ProductService
	CartService      *service.CartService
	CustomizeService *service.CustomizeService
	OrderService     *service.OrderService
	UserService      *service.UserService
	PostService      *service.PostService
	DashboardService *service.DashboardService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cache.InitRedis(ctx, &cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		DB:          models.DB,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := c.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ColorRepo = repository.NewColorRepository(db)
	c.ScentRepo = repository.NewScentRepository(db)
	c.SizeRepo = repository.NewSizeRepository(db)
	c.PostRepo = repository.NewPostRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)

	ttlHours := c.Config.Cart.TTLHours
	if ttlHours <= 0 {
		ttlHours = defaultCartTTLHours
	}
	c.CartRepo = repository.NewCartRepository(time.Duration(ttlHours) * time.Hour)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(c.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UploadService = service.NewUploadService(c.Config.Upload)

	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ColorService = service.NewColorService(c.ColorRepo)
	c.ScentService = service.NewScentService(c.ScentRepo)
	c.SizeService = service.NewSizeService(c.SizeRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.ColorRepo, c.SizeRepo, c.CategoryRepo)

	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.Config.Cart)
	c.CustomizeService = service.NewCustomizeService(c.ProductRepo, c.ColorRepo, c.ScentRepo, c.CartService, c.Config.Customize)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.UserRepo, c.CartService, c.QueueClient, c.Config.Order)

	c.UserService = service.NewUserService(c.UserRepo, c.Config.Security.PasswordPolicy)
	c.PostService = service.NewPostService(c.PostRepo)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo)
}

// Close 释放队列客户端与 Redis 连接
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	return errors.Join(c.QueueClient.Close(), cache.Close())
}
