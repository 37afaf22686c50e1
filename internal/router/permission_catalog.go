package router

import (
	"cmp"
	"net/http"
	"slices"
	"strings"

	"github.com/art-exhibition/internal/authz"

	"github.com/gin-gonic/gin"
)

// adminSelfRoutes 登录即可访问，不参与授权
var adminSelfRoutes = map[string]bool{
	adminRoutePrefix + "/login":    true,
	adminRoutePrefix + "/captcha":  true,
	adminRoutePrefix + "/me":       true,
	adminRoutePrefix + "/password": true,
}

type adminPermissionCatalogItem struct {
	Module     string `json:"module"`
	Method     string `json:"method"`
	Object     string `json:"object"`
	Permission string `json:"permission"`
}

// buildAdminPermissionCatalog 从已注册路由生成可授予的权限清单，按模块、对象、方法排序
func buildAdminPermissionCatalog(engine *gin.Engine) []adminPermissionCatalogItem {
	items := make([]adminPermissionCatalogItem, 0)
	if engine == nil {
		return items
	}
	seen := make(map[string]bool)
	for _, route := range engine.Routes() {
		if !isGrantableAdminRoute(route) {
			continue
		}
		method := strings.ToUpper(route.Method)
		object := authz.NormalizeObject(route.Path)
		permission := method + ":" + object
		if seen[permission] {
			continue
		}
		seen[permission] = true
		items = append(items, adminPermissionCatalogItem{
			Module:     deriveAdminPermissionModule(object),
			Method:     method,
			Object:     object,
			Permission: permission,
		})
	}
	slices.SortFunc(items, func(a, b adminPermissionCatalogItem) int {
		return cmp.Or(
			cmp.Compare(a.Module, b.Module),
			cmp.Compare(a.Object, b.Object),
			cmp.Compare(a.Method, b.Method),
		)
	})
	return items
}

func isGrantableAdminRoute(route gin.RouteInfo) bool {
	switch strings.ToUpper(route.Method) {
	case "", http.MethodOptions, http.MethodHead:
		return false
	}
	return strings.HasPrefix(route.Path, adminRoutePrefix+"/") && !adminSelfRoutes[route.Path]
}

// deriveAdminPermissionModule /admin/<module>/... 取 module，authz 子路由统一归入 authz
func deriveAdminPermissionModule(object string) string {
	segments := strings.Split(strings.Trim(object, "/"), "/")
	switch {
	case segments[0] == "":
		return "system"
	case segments[0] != "admin" || len(segments) == 1:
		return segments[0]
	default:
		return segments[1]
	}
}
