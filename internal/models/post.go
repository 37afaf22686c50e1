package models

import (
	"time"

	"gorm.io/gorm"
)

// Post 博客文章表
type Post struct {
	ID          uint           `gorm:"primarykey" json:"id"`                           // 主键
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`               // 唯一标识
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`        // 标题
	Summary     string         `gorm:"type:text" json:"summary"`                       // 摘要
	Content     string         `gorm:"type:text" json:"content"`                       // 正文（Markdown）
	Thumbnail   string         `gorm:"type:varchar(500)" json:"thumbnail"`             // 缩略图
	IsPublished bool           `gorm:"not null;default:false;index" json:"isPublished"` // 是否发布
	PublishedAt *time.Time     `gorm:"index" json:"publishedAt"`                       // 发布时间
	CreatedAt   time.Time      `gorm:"index" json:"createdAt"`                         // 创建时间
	UpdatedAt   time.Time      `json:"updatedAt"`                                      // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                 // 软删除时间
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}
