package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                     // 主键
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"orderNo"`                      // 订单号
	UserID          *uint          `gorm:"index" json:"userId,omitempty"`                            // 关联用户ID
	CustomerName    string         `gorm:"type:varchar(255);not null" json:"customerName"`           // 收件人
	CustomerEmail   string         `gorm:"type:varchar(255);not null;index" json:"customerEmail"`    // 联系邮箱
	CustomerPhone   string         `gorm:"type:varchar(50);not null" json:"customerPhone"`           // 联系电话
	ShippingAddress string         `gorm:"type:text;not null" json:"shippingAddress"`                // 收货地址
	Note            string         `gorm:"type:text" json:"note"`                                    // 备注
	Status          string         `gorm:"type:varchar(20);not null;index" json:"status"`            // 订单状态
	Currency        string         `gorm:"type:varchar(10);not null" json:"currency"`                // 币种
	Subtotal        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`    // 原价合计
	Discount        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount"`    // 优惠金额
	ShippingFee     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"shippingFee"` // 运费
	Total           Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total"`       // 实付金额
	ExpiresAt       *time.Time     `gorm:"index" json:"expiresAt"`                                   // 待确认过期时间
	ConfirmedAt     *time.Time     `json:"confirmedAt"`                                              // 确认时间
	ShippedAt       *time.Time     `json:"shippedAt"`                                                // 发货时间
	DeliveredAt     *time.Time     `json:"deliveredAt"`                                              // 送达时间
	CancelledAt     *time.Time     `json:"cancelledAt"`                                              // 取消时间
	CreatedAt       time.Time      `gorm:"index" json:"createdAt"`                                   // 创建时间
	UpdatedAt       time.Time      `gorm:"index" json:"updatedAt"`                                   // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                           // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
