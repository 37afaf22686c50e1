package public

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

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

type publicTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
	candle *models.Product
}

func newPublicTestEnv(t *testing.T) *publicTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:public_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Color{},
		&models.Scent{},
		&models.Size{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Post{},
	); err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := config.Default()
	cfg.Order.ShippingFee = 30000
	cfg.Order.FreeShippingThreshold = 0

	c := &provider.Container{Config: cfg, DB: db}
	c.UserRepo = repository.NewUserRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ColorRepo = repository.NewColorRepository(db)
	c.ScentRepo = repository.NewScentRepository(db)
	c.SizeRepo = repository.NewSizeRepository(db)
	c.PostRepo = repository.NewPostRepository(db)
	c.CartRepo = repository.NewMemoryCartRepository(time.Hour)

	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ColorService = service.NewColorService(c.ColorRepo)
	c.ScentService = service.NewScentService(c.ScentRepo)
	c.SizeService = service.NewSizeService(c.SizeRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.ColorRepo, c.SizeRepo, c.CategoryRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, cfg.Cart)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.UserRepo, c.CartService, nil, cfg.Order)
	c.PostService = service.NewPostService(c.PostRepo)

	candle := &models.Product{
		Name:          "Nến thơm oải hương",
		Slug:          "nen-thom-oai-huong",
		OriginalPrice: models.NewMoney(350000),
		SalePrice:     models.NewMoney(320000),
		IsActive:      true,
	}
	if err := c.ProductRepo.Create(candle, repository.ProductRelations{}); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	h := New(c)
	r := gin.New()
	api := r.Group("/api")
	api.Any("/categories", h.Categories)
	api.Any("/colors", h.Colors)
	api.Any("/products", h.Products)
	api.GET("/cart", h.GetCart)
	api.DELETE("/cart", h.ClearCart)
	api.POST("/cart/items", h.AddCartItem)
	api.PATCH("/cart/items/:id", h.UpdateCartItem)
	api.DELETE("/cart/items/:id", h.DeleteCartItem)
	api.POST("/checkout", h.Checkout)
	api.GET("/orders/:orderNo", h.GetOrderByOrderNo)
	api.GET("/shop/products", h.GetShopProducts)
	api.GET("/shop/products/:slug", h.GetShopProductBySlug)
	r.GET("/health", h.Health)

	return &publicTestEnv{db: db, router: r, candle: candle}
}

func (e *publicTestEnv) do(t *testing.T, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("unmarshal response failed: %v body=%s", err, w.Body.String())
	}
}

func TestColorResourceLifecycle(t *testing.T) {
	env := newPublicTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/colors", `{"name":"Hồng phấn","hexCode":"f8c8dc"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status want 201 got %d body=%s", w.Code, w.Body.String())
	}
	var created models.Color
	decodeBody(t, w, &created)
	if created.ID == 0 || created.HexCode != "#F8C8DC" {
		t.Fatalf("unexpected created color: %+v", created)
	}

	w = env.do(t, http.MethodGet, "/api/colors", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status want 200 got %d", w.Code)
	}
	var list []models.Color
	decodeBody(t, w, &list)
	if len(list) != 1 {
		t.Fatalf("list size want 1 got %d", len(list))
	}

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/colors?id=%d", created.ID), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status want 200 got %d", w.Code)
	}

	w = env.do(t, http.MethodGet, "/api/colors?id=999", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown id status want 404 got %d", w.Code)
	}

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/colors?id=%d", created.ID), "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"success":true`) {
		t.Fatalf("delete want 200 success got %d body=%s", w.Code, w.Body.String())
	}
}

func TestColorUpdateWithoutHexCodeKeepsRow(t *testing.T) {
	env := newPublicTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/colors", `{"name":"Trắng ngà","hexCode":"#FFFFF0"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status want 201 got %d", w.Code)
	}
	var created models.Color
	decodeBody(t, w, &created)

	w = env.do(t, http.MethodPut, fmt.Sprintf("/api/colors?id=%d", created.ID), `{"name":"Kem"}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("update status want 400 got %d", w.Code)
	}
	var errResp struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &errResp)
	if errResp.Error == "" {
		t.Fatalf("error message should not be empty")
	}

	var stored models.Color
	if err := env.db.First(&stored, created.ID).Error; err != nil {
		t.Fatalf("load color failed: %v", err)
	}
	if stored.Name != "Trắng ngà" || stored.HexCode != "#FFFFF0" {
		t.Fatalf("row should be unchanged, got %+v", stored)
	}
}

func TestCategoryResourceErrors(t *testing.T) {
	env := newPublicTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/categories", `{"name":"Nến thơm"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status want 201 got %d body=%s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodPost, "/api/categories", `{"name":"  Nến thơm "}`, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate name status want 409 got %d", w.Code)
	}

	w = env.do(t, http.MethodDelete, "/api/categories", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("delete without id status want 400 got %d", w.Code)
	}

	w = env.do(t, http.MethodPut, "/api/categories?id=abc", `{"name":"x"}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid id status want 400 got %d", w.Code)
	}

	w = env.do(t, http.MethodPost, "/api/categories", `{"name":`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed body status want 400 got %d", w.Code)
	}

	w = env.do(t, http.MethodPatch, "/api/categories", "", nil)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("patch status want 405 got %d", w.Code)
	}
	if allow := w.Header().Get("Allow"); allow != "GET, POST, PUT, DELETE" {
		t.Fatalf("allow header mismatch: %q", allow)
	}
}

func TestProductResourceRejectsSalePriceAboveOriginal(t *testing.T) {
	env := newPublicTestEnv(t)

	body := `{"name":"Nến ly","originalPrice":200000,"salePrice":"250000"}`
	w := env.do(t, http.MethodPost, "/api/products", body, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status want 400 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestCartFlowIssuesCartID(t *testing.T) {
	env := newPublicTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/cart", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get cart status want 200 got %d", w.Code)
	}
	cartID := w.Header().Get(constants.HeaderCartID)
	if cartID == "" {
		t.Fatalf("cart id header should be issued")
	}
	headers := map[string]string{constants.HeaderCartID: cartID}

	w = env.do(t, http.MethodPost, "/api/cart/items", fmt.Sprintf(`{"productId":%d,"quantity":1}`, env.candle.ID), headers)
	if w.Code != http.StatusOK {
		t.Fatalf("add item status want 200 got %d body=%s", w.Code, w.Body.String())
	}
	if got := w.Header().Get(constants.HeaderCartID); got != cartID {
		t.Fatalf("cart id should be echoed, want %s got %s", cartID, got)
	}
	var view service.CartView
	decodeBody(t, w, &view)
	if len(view.Items) != 1 || view.Items[0].Quantity != 1 {
		t.Fatalf("unexpected cart view: %+v", view)
	}
	lineID := view.Items[0].ID

	w = env.do(t, http.MethodPatch, "/api/cart/items/"+lineID, `{"direction":"decrease"}`, headers)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("decrease below one status want 400 got %d", w.Code)
	}

	w = env.do(t, http.MethodPatch, "/api/cart/items/"+lineID, `{"direction":"increase"}`, headers)
	if w.Code != http.StatusOK {
		t.Fatalf("increase status want 200 got %d", w.Code)
	}
	decodeBody(t, w, &view)
	if view.Items[0].Quantity != 2 || view.Total.String() != "640000" {
		t.Fatalf("unexpected cart after increase: qty=%d total=%s", view.Items[0].Quantity, view.Total.String())
	}

	w = env.do(t, http.MethodDelete, "/api/cart/items/missing", "", headers)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown line status want 404 got %d", w.Code)
	}

	w = env.do(t, http.MethodDelete, "/api/cart", "", headers)
	if w.Code != http.StatusOK {
		t.Fatalf("clear status want 200 got %d", w.Code)
	}
	decodeBody(t, w, &view)
	if len(view.Items) != 0 {
		t.Fatalf("cart should be empty after clear")
	}
}

func TestCheckoutAndGuestLookup(t *testing.T) {
	env := newPublicTestEnv(t)
	headers := map[string]string{constants.HeaderCartID: "8b0f9a52-5c5e-4a70-9d55-0d1f3c2b7e11"}

	w := env.do(t, http.MethodPost, "/api/checkout", `{"customerName":"Lan","customerEmail":"lan@example.com","customerPhone":"0901","shippingAddress":"Hà Nội"}`, headers)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty cart checkout status want 400 got %d", w.Code)
	}

	w = env.do(t, http.MethodPost, "/api/cart/items", fmt.Sprintf(`{"productId":%d,"quantity":2}`, env.candle.ID), headers)
	if w.Code != http.StatusOK {
		t.Fatalf("add item status want 200 got %d body=%s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodPost, "/api/checkout", `{"customerName":"Lan","customerEmail":"bad","customerPhone":"0901","shippingAddress":"Hà Nội"}`, headers)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid email status want 400 got %d", w.Code)
	}

	w = env.do(t, http.MethodPost, "/api/checkout", `{"customerName":"Lan","customerEmail":"Lan@Example.com","customerPhone":"0901","shippingAddress":"Hà Nội"}`, headers)
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout status want 201 got %d body=%s", w.Code, w.Body.String())
	}
	var order struct {
		OrderNo     string `json:"orderNo"`
		Status      string `json:"status"`
		Subtotal    int64  `json:"subtotal"`
		Discount    int64  `json:"discount"`
		ShippingFee int64  `json:"shippingFee"`
		Total       int64  `json:"total"`
	}
	decodeBody(t, w, &order)
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("status want pending got %s", order.Status)
	}
	if order.Subtotal != 700000 || order.Discount != 60000 || order.ShippingFee != 30000 || order.Total != 670000 {
		t.Fatalf("unexpected totals: %+v", order)
	}

	w = env.do(t, http.MethodGet, "/api/cart", "", headers)
	var view service.CartView
	decodeBody(t, w, &view)
	if len(view.Items) != 0 {
		t.Fatalf("cart should be cleared after checkout")
	}

	w = env.do(t, http.MethodGet, "/api/orders/"+order.OrderNo+"?email=lan@example.com", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("lookup status want 200 got %d body=%s", w.Code, w.Body.String())
	}
	w = env.do(t, http.MethodGet, "/api/orders/"+order.OrderNo+"?email=other@example.com", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("lookup with wrong email status want 404 got %d", w.Code)
	}
}

func TestShopProductsAndHealth(t *testing.T) {
	env := newPublicTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/shop/products?page=1&pageSize=10", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("shop list status want 200 got %d", w.Code)
	}
	var page struct {
		Data       []models.Product `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	decodeBody(t, w, &page)
	if len(page.Data) != 1 || page.Pagination.Total != 1 {
		t.Fatalf("unexpected shop page: %+v", page.Pagination)
	}

	w = env.do(t, http.MethodGet, "/api/shop/products/"+env.candle.Slug, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("shop detail status want 200 got %d", w.Code)
	}
	w = env.do(t, http.MethodGet, "/api/shop/products/unknown", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown slug status want 404 got %d", w.Code)
	}

	w = env.do(t, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("health unexpected: %d %s", w.Code, w.Body.String())
	}
}
