package service

import (
	"context"
	"time"

	"github.com/art-exhibition/internal/cache"
	"github.com/art-exhibition/internal/constants"
	"github.com/art-exhibition/internal/logger"
	"github.com/art-exhibition/internal/models"
	"github.com/art-exhibition/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	dashboardCacheTTL     = 60 * time.Second
	dashboardTopProducts  = 5
	dashboardTrendDays    = 7
	dashboardTrendDayForm = "2006-01-02"
)

// DashboardService 仪表盘服务
// 说明：聚合后台首页核心经营数据。
type DashboardService struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(repo repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo, now: time.Now}
}

// DashboardOverview 仪表盘总览
type DashboardOverview struct {
	OrdersByStatus map[string]int64          `json:"ordersByStatus"`
	OrdersTotal    int64                     `json:"ordersTotal"`
	ActiveProducts int64                     `json:"activeProducts"`
	Users          int64                     `json:"users"`
	Revenue        models.Money              `json:"revenue"`
	TopProducts    []DashboardProductRanking `json:"topProducts"`
	RevenueTrend   []DashboardTrendPoint     `json:"revenueTrend"`
	GeneratedAt    time.Time                 `json:"generatedAt"`
}

// DashboardProductRanking 商品销量排行项
type DashboardProductRanking struct {
	ProductID   uint         `json:"productId"`
	ProductName string       `json:"productName"`
	Quantity    int64        `json:"quantity"`
	Amount      models.Money `json:"amount"`
}

// DashboardTrendPoint 每日营收点
type DashboardTrendPoint struct {
	Date    string       `json:"date"`
	Orders  int64        `json:"orders"`
	Revenue models.Money `json:"revenue"`
}

// GetOverview 获取仪表盘总览，forceRefresh 时跳过缓存
func (s *DashboardService) GetOverview(ctx context.Context, forceRefresh bool) (*DashboardOverview, error) {
	if !forceRefresh {
		var cached DashboardOverview
		hit, err := cache.GetJSON(ctx, cache.DashboardOverviewKey, &cached)
		if err != nil {
			logger.Warnw("dashboard_cache_read_failed", "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	counts, err := s.repo.CountOrdersByStatus()
	if err != nil {
		return nil, err
	}
	byStatus := map[string]int64{
		constants.OrderStatusPending:   0,
		constants.OrderStatusConfirmed: 0,
		constants.OrderStatusShipped:   0,
		constants.OrderStatusDelivered: 0,
		constants.OrderStatusCancelled: 0,
	}
	var ordersTotal int64
	for status, count := range counts {
		byStatus[status] = count
		ordersTotal += count
	}

	revenue, err := s.repo.SumRevenue(nil, nil)
	if err != nil {
		return nil, err
	}
	products, err := s.repo.CountActiveProducts()
	if err != nil {
		return nil, err
	}
	users, err := s.repo.CountUsers()
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.GetTopProducts(dashboardTopProducts)
	if err != nil {
		return nil, err
	}
	top := make([]DashboardProductRanking, 0, len(rows))
	for _, row := range rows {
		top = append(top, DashboardProductRanking{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			Amount:      moneyFromFloat(row.Amount),
		})
	}

	trend, err := s.revenueTrend()
	if err != nil {
		return nil, err
	}

	overview := &DashboardOverview{
		OrdersByStatus: byStatus,
		OrdersTotal:    ordersTotal,
		ActiveProducts: products,
		Users:          users,
		Revenue:        moneyFromFloat(revenue),
		TopProducts:    top,
		RevenueTrend:   trend,
		GeneratedAt:    s.now(),
	}
	if err := cache.SetJSON(ctx, cache.DashboardOverviewKey, overview, dashboardCacheTTL); err != nil {
		logger.Warnw("dashboard_cache_write_failed", "error", err)
	}
	return overview, nil
}

// revenueTrend 最近 7 天每日营收，无订单的日期补零
func (s *DashboardService) revenueTrend() ([]DashboardTrendPoint, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := today.AddDate(0, 0, -(dashboardTrendDays - 1))
	end := today.AddDate(0, 0, 1)

	rows, err := s.repo.GetDailyRevenue(start, end)
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]repository.DashboardRevenueTrendRow, len(rows))
	for _, row := range rows {
		byDay[row.Day] = row
	}

	points := make([]DashboardTrendPoint, 0, dashboardTrendDays)
	for i := 0; i < dashboardTrendDays; i++ {
		day := start.AddDate(0, 0, i).Format(dashboardTrendDayForm)
		row := byDay[day]
		points = append(points, DashboardTrendPoint{
			Date:    day,
			Orders:  row.Orders,
			Revenue: moneyFromFloat(row.Revenue),
		})
	}
	return points, nil
}

func moneyFromFloat(v float64) models.Money {
	return models.NewMoneyFromDecimal(decimal.NewFromFloat(v))
}
