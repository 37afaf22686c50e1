package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                        // 主键
	Name           string         `gorm:"type:varchar(255);not null;index" json:"name"`                // 名称
	Slug           string         `gorm:"type:varchar(255);not null;index" json:"slug"`                // 唯一标识
	Description    string         `gorm:"type:text" json:"description"`                                // 描述
	OriginalPrice  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"originalPrice"`  // 原价
	SalePrice      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"salePrice"`      // 售价
	ThumbnailURL   string         `gorm:"type:varchar(500)" json:"thumbnailUrl"`                       // 缩略图
	ImageURLs      StringArray    `gorm:"type:json" json:"imageUrls"`                                  // 图片列表（有序）
	IsCustomizable bool           `gorm:"not null;default:false;index" json:"isCustomizable"`          // 是否支持定制
	IsActive       bool           `gorm:"not null;index" json:"isActive"`                              // 是否上架
	SortOrder      int            `gorm:"default:0;index" json:"sortOrder"`                            // 排序权重
	CreatedAt      time.Time      `gorm:"index" json:"createdAt"`                                      // 创建时间
	UpdatedAt      time.Time      `json:"updatedAt"`                                                   // 更新时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                              // 软删除时间

	// 关联
	Colors     []Color    `gorm:"many2many:product_colors;" json:"colors"`         // 可选颜色
	Sizes      []Size     `gorm:"many2many:product_sizes;" json:"sizes"`           // 可选尺寸
	Categories []Category `gorm:"many2many:product_categories;" json:"categories"` // 所属分类
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// ColorHexCodes 返回商品可选颜色的色值
func (p *Product) ColorHexCodes() []string {
	codes := make([]string, 0, len(p.Colors))
	for _, c := range p.Colors {
		codes = append(codes, c.HexCode)
	}
	return codes
}
