package models

import (
	"time"

	"gorm.io/gorm"
)

// User 顾客账号表
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                // 主键
	Name         string         `gorm:"type:varchar(255);not null;default:''" json:"name"`   // 姓名
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`                   // 邮箱
	Phone        string         `gorm:"type:varchar(50);not null;default:''" json:"phone"`   // 电话
	PasswordHash string         `gorm:"not null;default:''" json:"-"`                        // 密码哈希（不返回给前端）
	Status       string         `gorm:"type:varchar(20);default:'active'" json:"status"`     // 账号状态
	LastOrderAt  *time.Time     `json:"lastOrderAt"`                                         // 最近下单时间
	CreatedAt    time.Time      `gorm:"index" json:"createdAt"`                              // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updatedAt"`                              // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                      // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
