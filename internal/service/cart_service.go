package service

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/art-exhibition/internal/config"
	"github.com/art-exhibition/internal/constants"
	"github.com/art-exhibition/internal/models"
	"github.com/art-exhibition/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultCartMaxQuantity = 99
	defaultCartMaxItems    = 50
)

// CartService 购物车服务
type CartService struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
	maxQuantity int
	maxItems    int
	now         func() time.Time
}

// NewCartService 创建购物车服务
func NewCartService(repo repository.CartRepository, productRepo repository.ProductRepository, cfg config.CartConfig) *CartService {
	maxQuantity := cfg.MaxQuantity
	if maxQuantity <= 0 {
		maxQuantity = defaultCartMaxQuantity
	}
	maxItems := cfg.MaxItems
	if maxItems <= 0 {
		maxItems = defaultCartMaxItems
	}
	return &CartService{
		repo:        repo,
		productRepo: productRepo,
		maxQuantity: maxQuantity,
		maxItems:    maxItems,
		now:         time.Now,
	}
}

// AddCartItemInput 加入购物车输入
type AddCartItemInput struct {
	ProductID      uint
	Quantity       int
	SelectedColors []string
	SelectedSize   string
}

// CartView 购物车展示数据
type CartView struct {
	ID            string            `json:"id"`
	Items         []models.CartItem `json:"items"`
	ItemCount     int               `json:"itemCount"`
	OriginalTotal models.Money      `json:"originalTotal"`
	Total         models.Money      `json:"total"`
}

// BuildCartView 构建购物车展示数据
func BuildCartView(cart *models.Cart) CartView {
	view := CartView{Items: []models.CartItem{}}
	if cart == nil {
		view.Total = models.NewMoney(0)
		view.OriginalTotal = models.NewMoney(0)
		return view
	}
	view.ID = cart.ID
	if len(cart.Items) > 0 {
		view.Items = cart.Items
	}
	view.ItemCount = cart.ItemCount()
	view.OriginalTotal = cart.OriginalTotal()
	view.Total = cart.Total()
	return view
}

// MaxQuantity 单行数量上限
func (s *CartService) MaxQuantity() int {
	return s.maxQuantity
}

// Get 获取购物车，不存在时返回空购物车
func (s *CartService) Get(ctx context.Context, cartID string) (*models.Cart, error) {
	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &models.Cart{ID: cartID, Items: []models.CartItem{}}
	}
	return cart, nil
}

// AddItem 加入普通商品，相同商品与选项合并为一行
func (s *CartService) AddItem(ctx context.Context, cartID string, input AddCartItemInput) (*models.Cart, error) {
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, ErrQuantityBelowMinimum
	}
	if quantity > s.maxQuantity {
		return nil, ErrQuantityAboveMaximum
	}

	product, err := s.loadSellableProduct(input.ProductID)
	if err != nil {
		return nil, err
	}
	size, err := normalizeCartSize(input.SelectedSize, product)
	if err != nil {
		return nil, err
	}
	colors, err := normalizeCartColors(input.SelectedColors, product)
	if err != nil {
		return nil, err
	}

	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	for i := range cart.Items {
		line := &cart.Items[i]
		if line.Customization != nil || line.ProductID != product.ID || line.SelectedSize != size {
			continue
		}
		if !slices.Equal(line.SelectedColors, colors) {
			continue
		}
		if line.Quantity+quantity > s.maxQuantity {
			return nil, ErrQuantityAboveMaximum
		}
		line.Quantity += quantity
		return cart, s.save(ctx, cart)
	}

	if len(cart.Items) >= s.maxItems {
		return nil, ErrCartFull
	}
	cart.Items = append(cart.Items, models.CartItem{
		ID:             uuid.NewString(),
		ProductID:      product.ID,
		Name:           product.Name,
		ThumbnailURL:   product.ThumbnailURL,
		Quantity:       quantity,
		SelectedColors: colors,
		SelectedSize:   size,
		OriginalPrice:  product.OriginalPrice,
		SalePrice:      product.SalePrice,
	})
	return cart, s.save(ctx, cart)
}

// AddCustomItem 加入定制商品行，定制行不与其它行合并
func (s *CartService) AddCustomItem(ctx context.Context, cartID string, item models.CartItem) (*models.Cart, error) {
	if item.Quantity < 1 {
		return nil, ErrQuantityBelowMinimum
	}
	if item.Quantity > s.maxQuantity {
		return nil, ErrQuantityAboveMaximum
	}
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) >= s.maxItems {
		return nil, ErrCartFull
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	cart.Items = append(cart.Items, item)
	return cart, s.save(ctx, cart)
}

// UpdateQuantity 按方向调整数量，减到 1 以下会被拒绝且数量不变
func (s *CartService) UpdateQuantity(ctx context.Context, cartID, itemID, direction string) (*models.Cart, error) {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	idx := cart.FindItem(itemID)
	if idx < 0 {
		return nil, ErrCartItemNotFound
	}
	line := &cart.Items[idx]
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case constants.QuantityIncrease:
		if line.Quantity+1 > s.maxQuantity {
			return nil, ErrQuantityAboveMaximum
		}
		line.Quantity++
	case constants.QuantityDecrease:
		if line.Quantity-1 < 1 {
			return nil, ErrQuantityBelowMinimum
		}
		line.Quantity--
	default:
		return nil, ErrInvalidDirection
	}
	return cart, s.save(ctx, cart)
}

// RemoveItem 删除行
func (s *CartService) RemoveItem(ctx context.Context, cartID, itemID string) (*models.Cart, error) {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	idx := cart.FindItem(itemID)
	if idx < 0 {
		return nil, ErrCartItemNotFound
	}
	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	return cart, s.save(ctx, cart)
}

// Clear 清空购物车
func (s *CartService) Clear(ctx context.Context, cartID string) error {
	return s.repo.Delete(ctx, cartID)
}

func (s *CartService) save(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = s.now()
	return s.repo.Save(ctx, cart)
}

func (s *CartService) loadSellableProduct(productID uint) (*models.Product, error) {
	if productID == 0 {
		return nil, ErrProductNotFound
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductNotAvailable
	}
	return product, nil
}

// normalizeCartSize 尺寸须为 SMALL/MEDIUM/LARGE，商品配置了尺寸时还须属于商品
func normalizeCartSize(raw string, product *models.Product) (string, error) {
	size := strings.ToUpper(strings.TrimSpace(raw))
	if size == "" {
		return "", nil
	}
	if !slices.Contains(constants.SupportedSizes, size) {
		return "", ErrInvalidSize
	}
	if len(product.Sizes) == 0 {
		return size, nil
	}
	for _, item := range product.Sizes {
		if strings.EqualFold(item.Name, size) {
			return size, nil
		}
	}
	return "", ErrInvalidSize
}

// normalizeCartColors 色值须为商品可选颜色，结果去重并排序
func normalizeCartColors(raw []string, product *models.Product) ([]string, error) {
	allowed := product.ColorHexCodes()
	seen := make(map[string]struct{}, len(raw))
	colors := make([]string, 0, len(raw))
	for _, value := range raw {
		hex, err := NormalizeHexCode(value)
		if err != nil {
			return nil, ErrInvalidColor
		}
		if len(allowed) > 0 && !containsFold(allowed, hex) {
			return nil, ErrInvalidColor
		}
		if _, ok := seen[hex]; ok {
			continue
		}
		seen[hex] = struct{}{}
		colors = append(colors, hex)
	}
	sort.Strings(colors)
	return colors, nil
}

func containsFold(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}
