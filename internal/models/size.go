package models

import (
	"time"

	"gorm.io/gorm"
)

// Size 尺寸表
type Size struct {
	ID          uint           `gorm:"primarykey" json:"id"`                        // 主键
	Name        string         `gorm:"type:varchar(50);not null;index" json:"name"` // 名称（SMALL/MEDIUM/LARGE）
	Description string         `gorm:"type:text" json:"description"`                // 描述
	CreatedAt   time.Time      `gorm:"index" json:"createdAt"`                      // 创建时间
	UpdatedAt   time.Time      `json:"updatedAt"`                                   // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                              // 软删除时间
}

// TableName 指定表名
func (Size) TableName() string {
	return "sizes"
}
