package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/art-exhibition/internal/config"
	"github.com/art-exhibition/internal/logger"
	"github.com/art-exhibition/internal/models"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

type productSeed struct {
	Product    models.Product
	ColorHexes []string
	SizeNames  []string
	Categories []string
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	// 连接数据库
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	colors := []models.Color{
		{Name: "Trắng ngà", HexCode: "#FFFFF0"},
		{Name: "Hồng phấn", HexCode: "#F4C2C2"},
		{Name: "Xanh olive", HexCode: "#808000"},
		{Name: "Nâu gỗ", HexCode: "#8B5A2B"},
		{Name: "Đen", HexCode: "#000000"},
	}
	for _, color := range colors {
		seedByName(stdLog, &models.Color{}, color.Name, &color)
	}

	scents := []models.Scent{
		{Name: "Lavender", Description: "Oải hương dịu nhẹ"},
		{Name: "Vanilla", Description: "Vani ngọt ấm"},
		{Name: "Sandalwood", Description: "Gỗ đàn hương"},
		{Name: "Lemongrass", Description: "Sả chanh tươi mát"},
		{Name: "Jasmine", Description: "Hoa nhài"},
	}
	for _, scent := range scents {
		seedByName(stdLog, &models.Scent{}, scent.Name, &scent)
	}

	sizes := []models.Size{
		{Name: "SMALL", Description: "100g"},
		{Name: "MEDIUM", Description: "200g"},
		{Name: "LARGE", Description: "350g"},
	}
	for _, size := range sizes {
		seedByName(stdLog, &models.Size{}, size.Name, &size)
	}

	categories := []models.Category{
		{Name: "Nến thơm", Slug: "nen-thom", Description: "Nến thơm thủ công", SortOrder: 30},
		{Name: "Quà tặng", Slug: "qua-tang", Description: "Set quà tặng", SortOrder: 20},
		{Name: "Tranh nghệ thuật", Slug: "tranh-nghe-thuat", Description: "Tranh trang trí", SortOrder: 10},
	}
	for _, category := range categories {
		var existing models.Category
		err := models.DB.Where("slug = ?", category.Slug).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := models.DB.Create(&category).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", category.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", category.Slug)
			}
		case err != nil:
			stdLog.Printf("Failed to load category %s: %v", category.Slug, err)
		default:
			stdLog.Printf("Category already exists: %s", category.Slug)
		}
	}

	products := []productSeed{
		{
			Product: models.Product{
				Name:           "Nến thơm Lavender",
				Slug:           "nen-thom-lavender",
				Description:    "Nến sáp đậu nành hương oải hương, cháy khoảng 40 giờ.",
				OriginalPrice:  models.NewMoney(250000),
				SalePrice:      models.NewMoney(199000),
				ThumbnailURL:   "/uploads/seed/lavender.jpg",
				ImageURLs:      models.StringArray{"/uploads/seed/lavender.jpg"},
				IsCustomizable: true,
				IsActive:       true,
				SortOrder:      100,
			},
			ColorHexes: []string{"#FFFFF0", "#F4C2C2", "#808000"},
			SizeNames:  []string{"SMALL", "MEDIUM", "LARGE"},
			Categories: []string{"nen-thom"},
		},
		{
			Product: models.Product{
				Name:           "Nến ly gỗ Sandalwood",
				Slug:           "nen-ly-go-sandalwood",
				Description:    "Nến ly gỗ hương đàn hương, nắp gỗ tự nhiên.",
				OriginalPrice:  models.NewMoney(320000),
				SalePrice:      models.NewMoney(320000),
				ThumbnailURL:   "/uploads/seed/sandalwood.jpg",
				ImageURLs:      models.StringArray{"/uploads/seed/sandalwood.jpg"},
				IsCustomizable: true,
				IsActive:       true,
				SortOrder:      90,
			},
			ColorHexes: []string{"#8B5A2B", "#000000"},
			SizeNames:  []string{"MEDIUM", "LARGE"},
			Categories: []string{"nen-thom", "qua-tang"},
		},
		{
			Product: models.Product{
				Name:          "Set quà Hộp nến mini",
				Slug:          "set-qua-hop-nen-mini",
				Description:   "Hộp 3 nến mini kèm thiệp viết tay.",
				OriginalPrice: models.NewMoney(450000),
				SalePrice:     models.NewMoney(390000),
				ThumbnailURL:  "/uploads/seed/gift-box.jpg",
				ImageURLs:     models.StringArray{"/uploads/seed/gift-box.jpg"},
				IsActive:      true,
				SortOrder:     80,
			},
			SizeNames:  []string{"SMALL"},
			Categories: []string{"qua-tang"},
		},
		{
			Product: models.Product{
				Name:          "Tranh sơn dầu Hoa sen",
				Slug:          "tranh-son-dau-hoa-sen",
				Description:   "Tranh sơn dầu vẽ tay khổ 40x60.",
				OriginalPrice: models.NewMoney(1500000),
				SalePrice:     models.NewMoney(1290000),
				ThumbnailURL:  "/uploads/seed/lotus.jpg",
				ImageURLs:     models.StringArray{"/uploads/seed/lotus.jpg"},
				IsActive:      true,
				SortOrder:     70,
			},
			Categories: []string{"tranh-nghe-thuat"},
		},
	}
	for _, seed := range products {
		seedProduct(stdLog, seed)
	}

	now := time.Now()
	welcome := models.Post{
		Slug:        "chao-mung-den-art-exhibition",
		Title:       "Chào mừng đến Art Exhibition",
		Summary:     "Nến thơm thủ công và tranh nghệ thuật cho không gian của bạn.",
		Content:     "## Xin chào\n\nCửa hàng nhận **thiết kế nến theo yêu cầu**: chọn màu, mùi hương và in logo riêng.",
		IsPublished: true,
		PublishedAt: &now,
	}
	var existingPost models.Post
	if err := models.DB.Where("slug = ?", welcome.Slug).First(&existingPost).Error; err != nil {
		if err := models.DB.Create(&welcome).Error; err != nil {
			stdLog.Printf("Failed to create post %s: %v", welcome.Slug, err)
		} else {
			stdLog.Printf("Created post: %s", welcome.Slug)
		}
	} else {
		stdLog.Printf("Post already exists: %s", welcome.Slug)
	}

	fmt.Println("\n✅ Seed data created successfully!")
	fmt.Println("Summary:")
	fmt.Printf("- %d Colors\n", len(colors))
	fmt.Printf("- %d Scents\n", len(scents))
	fmt.Printf("- %d Sizes\n", len(sizes))
	fmt.Printf("- %d Categories\n", len(categories))
	fmt.Printf("- %d Products\n", len(products))
	fmt.Println("- 1 Post")
}

// seedByName 按名称幂等写入字典数据
func seedByName(stdLog *log.Logger, model interface{}, name string, value interface{}) {
	var count int64
	if err := models.DB.Model(model).Where("name = ?", name).Count(&count).Error; err != nil {
		stdLog.Printf("Failed to check %s: %v", name, err)
		return
	}
	if count > 0 {
		stdLog.Printf("Already exists: %s", name)
		return
	}
	if err := models.DB.Create(value).Error; err != nil {
		stdLog.Printf("Failed to create %s: %v", name, err)
		return
	}
	stdLog.Printf("Created: %s", name)
}

func seedProduct(stdLog *log.Logger, seed productSeed) {
	prod := seed.Product
	if len(seed.ColorHexes) > 0 {
		if err := models.DB.Where("hex_code IN ?", seed.ColorHexes).Find(&prod.Colors).Error; err != nil {
			stdLog.Printf("Failed to load colors for %s: %v", prod.Slug, err)
			return
		}
	}
	if len(seed.SizeNames) > 0 {
		if err := models.DB.Where("name IN ?", seed.SizeNames).Find(&prod.Sizes).Error; err != nil {
			stdLog.Printf("Failed to load sizes for %s: %v", prod.Slug, err)
			return
		}
	}
	if len(seed.Categories) > 0 {
		if err := models.DB.Where("slug IN ?", seed.Categories).Find(&prod.Categories).Error; err != nil {
			stdLog.Printf("Failed to load categories for %s: %v", prod.Slug, err)
			return
		}
	}

	var existing models.Product
	if err := models.DB.Where("slug = ?", prod.Slug).First(&existing).Error; err == nil {
		stdLog.Printf("Product already exists: %s", prod.Slug)
		return
	}
	if err := models.DB.Create(&prod).Error; err != nil {
		stdLog.Printf("Failed to create product %s: %v", prod.Slug, err)
		return
	}
	stdLog.Printf("Created product: %s", prod.Slug)
}
