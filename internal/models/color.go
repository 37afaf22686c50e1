package models

import (
	"time"

	"gorm.io/gorm"
)

// Color 颜色表
type Color struct {
	ID        uint           `gorm:"primarykey" json:"id"`                         // 主键
	Name      string         `gorm:"type:varchar(100);not null;index" json:"name"` // 名称
	HexCode   string         `gorm:"type:varchar(7);not null" json:"hexCode"`      // 色值（#RRGGBB）
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`                       // 创建时间
	UpdatedAt time.Time      `json:"updatedAt"`                                    // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                               // 软删除时间
}

// TableName 指定表名
func (Color) TableName() string {
	return "colors"
}
