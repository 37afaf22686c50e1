package repository

import (
	"fmt"
	"time"

	"github.com/art-exhibition/internal/constants"
	"github.com/art-exhibition/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository 仪表盘聚合查询接口
// 说明：仅聚合统计数据，不承载业务规则。
type DashboardRepository interface {
	CountOrdersByStatus() (map[string]int64, error)
	SumRevenue(startAt, endAt *time.Time) (float64, error)
	GetTopProducts(limit int) ([]DashboardProductRankingRow, error)
	GetDailyRevenue(startAt, endAt time.Time) ([]DashboardRevenueTrendRow, error)
	CountActiveProducts() (int64, error)
	CountUsers() (int64, error)
}

// DashboardProductRankingRow 商品销量排行
type DashboardProductRankingRow struct {
	ProductID   uint    `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int64   `json:"quantity"`
	Amount      float64 `json:"amount"`
}

// DashboardRevenueTrendRow 每日营收
type DashboardRevenueTrendRow struct {
	Day     string  `json:"day"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// GormDashboardRepository GORM 仪表盘聚合实现
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository 创建仪表盘仓库
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// RevenueOrderStatuses 计入营收的订单状态
func RevenueOrderStatuses() []string {
	return []string{
		constants.OrderStatusConfirmed,
		constants.OrderStatusShipped,
		constants.OrderStatusDelivered,
	}
}

// CountOrdersByStatus 按状态统计订单数
func (r *GormDashboardRepository) CountOrdersByStatus() (map[string]int64, error) {
	type statusRow struct {
		Status string
		Total  int64
	}
	var rows []statusRow
	if err := r.db.Model(&models.Order{}).
		Select("status, COUNT(*) as total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	result := map[string]int64{
		constants.OrderStatusPending:   0,
		constants.OrderStatusConfirmed: 0,
		constants.OrderStatusShipped:   0,
		constants.OrderStatusDelivered: 0,
		constants.OrderStatusCancelled: 0,
	}
	for _, row := range rows {
		result[row.Status] = row.Total
	}
	return result, nil
}

// SumRevenue 汇总营收，时间范围可选
func (r *GormDashboardRepository) SumRevenue(startAt, endAt *time.Time) (float64, error) {
	var revenue float64
	query := r.db.Model(&models.Order{}).Where("status IN ?", RevenueOrderStatuses())
	if startAt != nil {
		query = query.Where("created_at >= ?", *startAt)
	}
	if endAt != nil {
		query = query.Where("created_at < ?", *endAt)
	}
	if err := query.Select("COALESCE(SUM(total), 0)").Scan(&revenue).Error; err != nil {
		return 0, err
	}
	return revenue, nil
}

// GetTopProducts 商品销量排行
func (r *GormDashboardRepository) GetTopProducts(limit int) ([]DashboardProductRankingRow, error) {
	if limit <= 0 {
		limit = 5
	}
	rows := make([]DashboardProductRankingRow, 0)
	err := r.db.Table("order_items").
		Select("order_items.product_id as product_id, MAX(order_items.product_name) as product_name, SUM(order_items.quantity) as quantity, SUM(order_items.total_price) as amount").
		Joins("JOIN orders ON orders.id = order_items.order_id AND orders.deleted_at IS NULL").
		Where("orders.status IN ?", RevenueOrderStatuses()).
		Group("order_items.product_id").
		Order("quantity DESC, product_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetDailyRevenue 按天统计营收
func (r *GormDashboardRepository) GetDailyRevenue(startAt, endAt time.Time) ([]DashboardRevenueTrendRow, error) {
	dayExpr := dayExprByDialect(dbDialectName(r.db), "created_at")
	rows := make([]DashboardRevenueTrendRow, 0)
	err := r.db.Model(&models.Order{}).
		Select(fmt.Sprintf("%s as day, COUNT(*) as orders, COALESCE(SUM(total), 0) as revenue", dayExpr)).
		Where("created_at >= ? AND created_at < ? AND status IN ?", startAt, endAt, RevenueOrderStatuses()).
		Group(dayExpr).
		Order("day asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountActiveProducts 统计上架商品
func (r *GormDashboardRepository) CountActiveProducts() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountUsers 统计顾客数
func (r *GormDashboardRepository) CountUsers() (int64, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
