package cache

import "fmt"

// DashboardOverviewKey 仪表盘总览缓存 key
const DashboardOverviewKey = "dashboard:overview"

// CartKey 购物车缓存 key
func CartKey(cartID string) string {
	return fmt.Sprintf("cart:%s", cartID)
}

// CatalogColorsKey 定制流程颜色白名单缓存 key
const CatalogColorsKey = "catalog:customize_colors"

// AdminAuthStateKey 管理员鉴权快照缓存 key
func AdminAuthStateKey(adminID uint) string {
	return fmt.Sprintf("auth:admin:%d", adminID)
}
