package admin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/art-exhibition/internal/authz"
	"github.com/art-exhibition/internal/config"
	"github.com/art-exhibition/internal/constants"
	"github.com/art-exhibition/internal/models"
	"github.com/art-exhibition/internal/provider"
	"github.com/art-exhibition/internal/repository"
	"github.com/art-exhibition/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type adminTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
	admin  *models.Admin
	order  *models.Order
}

func newAdminTestEnv(t *testing.T) *adminTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:admin_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}, &models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}, &models.Post{}); err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := config.Default()
	c := &provider.Container{Config: cfg}
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)

	authzService, err := authz.NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	if err := authzService.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap roles failed: %v", err)
	}
	c.AuthzService = authzService
	c.AuthService = service.NewAuthService(cfg, c.AdminRepo)
	c.CaptchaService = service.NewCaptchaService(cfg.Captcha)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.UserRepo, nil, nil, cfg.Order)

	hash, err := service.HashPassword("Secret#2026")
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	admin := &models.Admin{Username: "ops", PasswordHash: hash}
	if err := c.AdminRepo.Create(admin); err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	order := &models.Order{
		OrderNo:         "AE202601010001",
		CustomerName:    "Lan",
		CustomerEmail:   "lan@example.com",
		CustomerPhone:   "0901",
		ShippingAddress: "Hà Nội",
		Status:          constants.OrderStatusPending,
		Currency:        constants.SiteCurrencyDefault,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	h := New(c)
	r := gin.New()
	api := r.Group("/api/admin")
	api.POST("/login", h.AdminLogin)
	api.GET("/captcha", h.GetCaptcha)
	authed := api.Group("", func(ctx *gin.Context) {
		ctx.Set("admin_id", admin.ID)
		ctx.Next()
	})
	authed.GET("/me", h.GetMe)
	authed.GET("/orders/:id", h.AdminGetOrder)
	authed.PATCH("/orders/:id/status", h.AdminUpdateOrderStatus)
	authed.GET("/authz/admins/:id/roles", h.GetAuthzAdminRoles)
	authed.PUT("/authz/admins/:id/roles", h.SetAuthzAdminRoles)
	authed.DELETE("/authz/roles/:role", h.DeleteAuthzRole)

	return &adminTestEnv{db: db, router: r, admin: admin, order: order}
}

func (e *adminTestEnv) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestAdminLogin(t *testing.T) {
	env := newAdminTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/admin/login", `{"username":"ops","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password status want 401 got %d", w.Code)
	}

	w = env.do(t, http.MethodPost, "/api/admin/login", `{"username":"ops","password":"Secret#2026"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status want 200 got %d body=%s", w.Code, w.Body.String())
	}
	var resp LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal login response failed: %v", err)
	}
	if resp.Token == "" || resp.ExpiresAt == "" {
		t.Fatalf("token and expiry should be returned: %+v", resp)
	}

	w = env.do(t, http.MethodPost, "/api/admin/login", `{"username":"ops"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing password status want 400 got %d", w.Code)
	}
}

func TestGetCaptchaDisabled(t *testing.T) {
	env := newAdminTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/admin/captcha", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"enabled":false`) {
		t.Fatalf("captcha should report disabled, got %d %s", w.Code, w.Body.String())
	}
}

func TestGetMe(t *testing.T) {
	env := newAdminTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/admin/me", "")
	if w.Code != http.StatusOK {
		t.Fatalf("me status want 200 got %d", w.Code)
	}
	var resp struct {
		Username string   `json:"username"`
		Roles    []string `json:"roles"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal me failed: %v", err)
	}
	if resp.Username != "ops" {
		t.Fatalf("username want ops got %s", resp.Username)
	}
}

func TestAdminUpdateOrderStatusLifecycle(t *testing.T) {
	env := newAdminTestEnv(t)
	target := fmt.Sprintf("/api/admin/orders/%d/status", env.order.ID)

	w := env.do(t, http.MethodPatch, target, `{"status":"delivered"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("pending to delivered status want 400 got %d", w.Code)
	}

	w = env.do(t, http.MethodPatch, target, `{"status":"confirmed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("pending to confirmed status want 200 got %d body=%s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodPatch, target, `{"status":"cancelled"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("confirmed to cancelled status want 200 got %d", w.Code)
	}

	w = env.do(t, http.MethodPatch, target, `{"status":"shipped"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("terminal order change status want 409 got %d", w.Code)
	}

	w = env.do(t, http.MethodPatch, "/api/admin/orders/999/status", `{"status":"confirmed"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown order status want 404 got %d", w.Code)
	}

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/admin/orders/%d", env.order.ID), "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"cancelled"`) {
		t.Fatalf("order should be cancelled, got %d %s", w.Code, w.Body.String())
	}
}

func TestSetAuthzAdminRoles(t *testing.T) {
	env := newAdminTestEnv(t)
	target := fmt.Sprintf("/api/admin/authz/admins/%d/roles", env.admin.ID)

	w := env.do(t, http.MethodPut, target, `{"roles":["ghost"]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown role status want 400 got %d", w.Code)
	}

	w = env.do(t, http.MethodPut, target, `{"roles":["order_manager"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("set roles status want 200 got %d body=%s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodGet, target, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), authz.RoleOrderManager) {
		t.Fatalf("roles should contain order_manager, got %d %s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodGet, "/api/admin/authz/admins/999/roles", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown admin status want 404 got %d", w.Code)
	}

	w = env.do(t, http.MethodDelete, "/api/admin/authz/roles/viewer", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("builtin role delete status want 400 got %d", w.Code)
	}
}
