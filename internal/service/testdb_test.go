package service

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/art-exhibition/internal/config"
	"github.com/art-exhibition/internal/models"
	"github.com/art-exhibition/internal/queue"
	"github.com/art-exhibition/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// openServiceTestDB 按测试名隔离的 sqlite 内存库
func openServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.User{},
		&models.Category{},
		&models.Color{},
		&models.Scent{},
		&models.Size{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Post{},
	); err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

type shopFixture struct {
	db          *gorm.DB
	products    *repository.GormProductRepository
	colors      *repository.GormCatalogRepository[models.Color]
	scents      *repository.GormCatalogRepository[models.Scent]
	sizes       *repository.GormCatalogRepository[models.Size]
	categories  *repository.GormCatalogRepository[models.Category]
	orders      *repository.GormOrderRepository
	users       *repository.GormUserRepository
	cart        *CartService
	customize   *CustomizeService
	orderSvc    *OrderService
	tasks       *recordingEnqueuer
	plainCandle *models.Product
	customMug   *models.Product
}

func newShopFixture(t *testing.T) *shopFixture {
	t.Helper()
	db := openServiceTestDB(t)
	f := &shopFixture{
		db:         db,
		products:   repository.NewProductRepository(db),
		colors:     repository.NewColorRepository(db),
		scents:     repository.NewScentRepository(db),
		sizes:      repository.NewSizeRepository(db),
		categories: repository.NewCategoryRepository(db),
		orders:     repository.NewOrderRepository(db),
		users:      repository.NewUserRepository(db),
		tasks:      &recordingEnqueuer{},
	}

	ivory := models.Color{Name: "Trắng ngà", HexCode: "#FFFFF0"}
	pink := models.Color{Name: "Hồng phấn", HexCode: "#F8C8DC"}
	for _, c := range []*models.Color{&ivory, &pink} {
		if err := f.colors.Create(c); err != nil {
			t.Fatalf("create color failed: %v", err)
		}
	}
	for _, name := range []string{"Oải hương", "Vani", "Quế", "Cam ngọt"} {
		if err := f.scents.Create(&models.Scent{Name: name}); err != nil {
			t.Fatalf("create scent failed: %v", err)
		}
	}
	medium := models.Size{Name: "MEDIUM"}
	if err := f.sizes.Create(&medium); err != nil {
		t.Fatalf("create size failed: %v", err)
	}

	f.plainCandle = &models.Product{
		Name:          "Nến thơm oải hương",
		Slug:          "nen-thom-oai-huong",
		OriginalPrice: models.NewMoney(350000),
		SalePrice:     models.NewMoney(320000),
		IsActive:      true,
	}
	if err := f.products.Create(f.plainCandle, repository.ProductRelations{
		Colors: []models.Color{ivory, pink},
		Sizes:  []models.Size{medium},
	}); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	f.customMug = &models.Product{
		Name:           "Nến ly khắc tên",
		Slug:           "nen-ly-khac-ten",
		OriginalPrice:  models.NewMoney(320000),
		SalePrice:      models.NewMoney(320000),
		IsActive:       true,
		IsCustomizable: true,
	}
	if err := f.products.Create(f.customMug, repository.ProductRelations{}); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	f.cart = NewCartService(repository.NewMemoryCartRepository(time.Hour), f.products, config.CartConfig{})
	f.customize = NewCustomizeService(f.products, f.colors, f.scents, f.cart, config.CustomizeConfig{
		MaxScents:    3,
		MaxTitleLen:  40,
		LogoSizeFees: map[string]int64{"l": 80000},
	})
	f.orderSvc = NewOrderService(f.orders, f.products, f.users, f.cart, f.tasks, config.OrderConfig{
		PendingExpireMinutes: 30,
		ShippingFee:          30000,
	})
	return f
}

type recordingEnqueuer struct {
	mu       sync.Mutex
	emails   []queue.OrderStatusEmailPayload
	timeouts []queue.OrderTimeoutCancelPayload
	delays   []time.Duration
}

func (r *recordingEnqueuer) EnqueueOrderStatusEmail(payload queue.OrderStatusEmailPayload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.emails = append(r.emails, payload)
	return nil
}

func (r *recordingEnqueuer) EnqueueOrderTimeoutCancel(payload queue.OrderTimeoutCancelPayload, delay time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timeouts = append(r.timeouts, payload)
	r.delays = append(r.delays, delay)
	return nil
}
