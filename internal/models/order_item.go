package models

import (
	"time"
)

// OrderItem 订单项表
type OrderItem struct {
	ID                uint        `gorm:"primarykey" json:"id"`                                       // 主键
	OrderID           uint        `gorm:"index;not null" json:"orderId"`                              // 订单ID
	ProductID         uint        `gorm:"index;not null" json:"productId"`                            // 商品ID
	ProductName       string      `gorm:"type:varchar(255);not null" json:"productName"`              // 商品名称快照
	ThumbnailURL      string      `gorm:"type:varchar(500)" json:"thumbnailUrl"`                      // 缩略图快照
	Quantity          int         `gorm:"not null" json:"quantity"`                                   // 数量
	OriginalPrice     Money       `gorm:"type:decimal(20,2);not null;default:0" json:"originalPrice"` // 原单价
	UnitPrice         Money       `gorm:"type:decimal(20,2);not null;default:0" json:"unitPrice"`     // 成交单价
	TotalPrice        Money       `gorm:"type:decimal(20,2);not null;default:0" json:"totalPrice"`    // 小计
	SelectedColors    StringArray `gorm:"type:json" json:"selectedColors"`                            // 所选颜色
	SelectedSize      string      `gorm:"type:varchar(20)" json:"selectedSize"`                       // 所选尺寸
	CustomizationJSON JSON        `gorm:"type:json" json:"customization,omitempty"`                   // 定制信息快照
	CreatedAt         time.Time   `gorm:"index" json:"createdAt"`                                     // 创建时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
