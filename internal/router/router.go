package router

import (
	"github.com/art-exhibition/internal/cache"
	"github.com/art-exhibition/internal/config"
	adminhandlers "github.com/art-exhibition/internal/http/handlers/admin"
	publichandlers "github.com/art-exhibition/internal/http/handlers/public"
	"github.com/art-exhibition/internal/http/response"
	"github.com/art-exhibition/internal/logger"
	"github.com/art-exhibition/internal/provider"

	"github.com/gin-gonic/gin"
)

const adminRoutePrefix = "/api/admin"

// SetupRouter 挂载中间件与全部 /api 路由，后台路由按登录与 RBAC 分两组
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	adminLoginRule := RateLimitRule{
		Prefix:        cache.BuildKey("rate:admin_login"),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.rate_limited",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(logger.Z()))
	r.Use(CORSMiddleware(cfg.CORS))

	// 上传文件静态访问
	r.Static("/uploads", c.UploadService.Dir())

	api := r.Group("/api")
	{
		// 目录资源：GET/POST/PUT/DELETE 同一路径，id 走查询参数
		api.Any("/categories", publicHandler.Categories)
		api.Any("/colors", publicHandler.Colors)
		api.Any("/scents", publicHandler.Scents)
		api.Any("/sizes", publicHandler.Sizes)
		api.Any("/products", publicHandler.Products)

		// 购物车
		api.GET("/cart", publicHandler.GetCart)
		api.DELETE("/cart", publicHandler.ClearCart)
		api.POST("/cart/items", publicHandler.AddCartItem)
		api.PATCH("/cart/items/:id", publicHandler.UpdateCartItem)
		api.DELETE("/cart/items/:id", publicHandler.DeleteCartItem)

		// 定制向导
		api.GET("/customize/options", publicHandler.GetCustomizeOptions)
		api.POST("/customize/quote", publicHandler.QuoteCustomize)
		api.POST("/customize/submit", publicHandler.SubmitCustomize)

		api.POST("/uploads", publicHandler.UploadImage)

		// 结账与订单查询
		api.POST("/checkout", publicHandler.Checkout)
		api.GET("/orders/:orderNo", publicHandler.GetOrderByOrderNo)

		// 前台展示
		shop := api.Group("/shop")
		{
			shop.GET("/products", publicHandler.GetShopProducts)
			shop.GET("/products/:slug", publicHandler.GetShopProductBySlug)
			shop.GET("/posts", publicHandler.GetShopPosts)
			shop.GET("/posts/:slug", publicHandler.GetShopPostBySlug)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(cache.Client(), adminLoginRule, KeyByIPAndJSONField("username")), adminHandler.AdminLogin)
			admin.GET("/captcha", adminHandler.GetCaptcha)

			// 仅需登录
			self := admin.Group("", JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				self.GET("/me", adminHandler.GetMe)
				self.PUT("/password", adminHandler.UpdateAdminPassword)
			}

			authorized := admin.Group("", JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo), AdminRBACMiddleware(c.AuthzService))
			{
				authorized.GET("/dashboard/overview", adminHandler.GetDashboardOverview)

				// 订单管理
				authorized.GET("/orders", adminHandler.AdminListOrders)
				authorized.GET("/orders/:id", adminHandler.AdminGetOrder)
				authorized.PATCH("/orders/:id/status", adminHandler.AdminUpdateOrderStatus)

				// 用户管理
				authorized.GET("/users", adminHandler.GetAdminUsers)
				authorized.POST("/users", adminHandler.CreateAdminUser)
				authorized.GET("/users/:id", adminHandler.GetAdminUser)
				authorized.PUT("/users/:id", adminHandler.UpdateAdminUser)
				authorized.PATCH("/users/:id/status", adminHandler.UpdateAdminUserStatus)
				authorized.DELETE("/users/:id", adminHandler.DeleteAdminUser)

				// 文章管理
				authorized.GET("/posts", adminHandler.GetAdminPosts)
				authorized.POST("/posts", adminHandler.CreatePost)
				authorized.GET("/posts/:id", adminHandler.GetAdminPost)
				authorized.PUT("/posts/:id", adminHandler.UpdatePost)
				authorized.DELETE("/posts/:id", adminHandler.DeletePost)

				// 权限管理
				authorized.GET("/authz/roles", adminHandler.ListAuthzRoles)
				authorized.POST("/authz/roles", adminHandler.CreateAuthzRole)
				authorized.DELETE("/authz/roles/:role", adminHandler.DeleteAuthzRole)
				authorized.GET("/authz/roles/:role/policies", adminHandler.GetAuthzRolePolicies)
				authorized.POST("/authz/policies", adminHandler.GrantAuthzPolicy)
				authorized.DELETE("/authz/policies", adminHandler.RevokeAuthzPolicy)
				authorized.GET("/authz/admins", adminHandler.ListAuthzAdmins)
				authorized.GET("/authz/admins/:id/roles", adminHandler.GetAuthzAdminRoles)
				authorized.PUT("/authz/admins/:id/roles", adminHandler.SetAuthzAdminRoles)
				authorized.GET("/authz/permissions/catalog", func(ctx *gin.Context) {
					response.Success(ctx, buildAdminPermissionCatalog(r))
				})
			}
		}
	}

	// 健康检查
	r.GET("/health", publicHandler.Health)

	return r
}
