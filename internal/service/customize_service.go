package service

import (
	"context"
	"strings"
	"time"

	"github.com/art-exhibition/internal/cache"
	"github.com/art-exhibition/internal/config"
	"github.com/art-exhibition/internal/constants"
	"github.com/art-exhibition/internal/logger"
	"github.com/art-exhibition/internal/models"
	"github.com/art-exhibition/internal/repository"
)

const customizeColorsCacheTTL = 5 * time.Minute

// CustomizeService 定制向导服务
type CustomizeService struct {
	productRepo repository.ProductRepository
	colorRepo   repository.CatalogRepository[models.Color]
	scentRepo   repository.CatalogRepository[models.Scent]
	cartService *CartService
	cfg         config.CustomizeConfig
}

// NewCustomizeService 创建定制服务
func NewCustomizeService(
	productRepo repository.ProductRepository,
	colorRepo repository.CatalogRepository[models.Color],
	scentRepo repository.CatalogRepository[models.Scent],
	cartService *CartService,
	cfg config.CustomizeConfig,
) *CustomizeService {
	return &CustomizeService{
		productRepo: productRepo,
		colorRepo:   colorRepo,
		scentRepo:   scentRepo,
		cartService: cartService,
		cfg:         cfg,
	}
}

// LogoSizeOption logo 尺寸选项
type LogoSizeOption struct {
	Size string       `json:"size"`
	Fee  models.Money `json:"fee"`
}

// CustomizeOptions 定制选项
type CustomizeOptions struct {
	ProductID   uint             `json:"productId"`
	ProductName string           `json:"productName"`
	BasePrice   models.Money     `json:"basePrice"`
	Colors      []WizardColor    `json:"colors"`
	Scents      []string         `json:"scents"`
	LogoSizes   []LogoSizeOption `json:"logoSizes"`
	MaxScents   int              `json:"maxScents"`
	MaxTitleLen int              `json:"maxTitleLen"`
}

// QuoteInput 报价输入
type QuoteInput struct {
	ProductID uint
	LogoSize  string
	Quantity  int
}

// SubmitDesignInput 提交定制输入
type SubmitDesignInput struct {
	CartID    string
	ProductID uint
	Design    CustomDesign
	Quantity  int
	Approved  bool
}

// Options 获取指定商品的定制选项
func (s *CustomizeService) Options(ctx context.Context, productID uint) (*CustomizeOptions, error) {
	product, err := s.loadCustomizableProduct(productID)
	if err != nil {
		return nil, err
	}
	opts := s.wizardOptions(ctx)
	sizes := make([]LogoSizeOption, 0, len(opts.LogoSizeFees))
	for _, size := range []string{constants.LogoSizeMedium, constants.LogoSizeLarge} {
		if fee, ok := opts.LogoSizeFees[size]; ok {
			sizes = append(sizes, LogoSizeOption{Size: size, Fee: fee})
		}
	}
	return &CustomizeOptions{
		ProductID:   product.ID,
		ProductName: product.Name,
		BasePrice:   product.SalePrice,
		Colors:      opts.Colors,
		Scents:      opts.Scents,
		LogoSizes:   sizes,
		MaxScents:   opts.MaxScents,
		MaxTitleLen: opts.MaxTitleLen,
	}, nil
}

// Quote 计算定制报价
func (s *CustomizeService) Quote(ctx context.Context, input QuoteInput) (*PriceQuote, error) {
	product, err := s.loadCustomizableProduct(input.ProductID)
	if err != nil {
		return nil, err
	}
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, ErrQuantityBelowMinimum
	}
	if quantity > s.cartService.MaxQuantity() {
		return nil, ErrQuantityAboveMaximum
	}
	size := strings.ToUpper(strings.TrimSpace(input.LogoSize))
	if size == "" {
		size = constants.LogoSizeMedium
	}
	fee, ok := s.logoSizeFees()[size]
	if !ok {
		return nil, ErrWizardLogoSizeInvalid
	}
	quote := ComputeCustomPrice(product.SalePrice, fee, quantity)
	quote.LogoSize = size
	return &quote, nil
}

// Submit 重放向导校验设计后加入购物车
func (s *CustomizeService) Submit(ctx context.Context, input SubmitDesignInput) (*models.Cart, error) {
	product, err := s.loadCustomizableProduct(input.ProductID)
	if err != nil {
		return nil, err
	}
	wizard, err := ReplayDesign(s.wizardOptions(ctx), input.Design)
	if err != nil {
		return nil, err
	}
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	item, err := wizard.Submit(product, quantity, input.Approved)
	if err != nil {
		return nil, err
	}
	return s.cartService.AddCustomItem(ctx, input.CartID, item)
}

func (s *CustomizeService) loadCustomizableProduct(productID uint) (*models.Product, error) {
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
	if !product.IsCustomizable {
		return nil, ErrProductNotCustomizable
	}
	return product, nil
}

func (s *CustomizeService) wizardOptions(ctx context.Context) WizardOptions {
	maxScents := s.cfg.MaxScents
	if maxScents <= 0 {
		maxScents = 3
	}
	return WizardOptions{
		Colors:       s.allowedColors(ctx),
		Scents:       s.allowedScents(),
		MaxScents:    maxScents,
		MaxTitleLen:  s.cfg.MaxTitleLen,
		LogoSizeFees: s.logoSizeFees(),
	}
}

// allowedColors 取颜色目录前 N 个，目录不可用或为空时回退静态列表
func (s *CustomizeService) allowedColors(ctx context.Context) []WizardColor {
	var cached []WizardColor
	if hit, err := cache.GetJSON(ctx, cache.CatalogColorsKey, &cached); err == nil && hit && len(cached) > 0 {
		return cached
	}

	limit := s.cfg.MaxColors
	if limit <= 0 {
		limit = 6
	}
	colors, err := s.colorRepo.List()
	if err != nil {
		logger.Warnw("customize_colors_load_failed", "error", err)
		return FallbackWizardColors()
	}
	if len(colors) == 0 {
		return FallbackWizardColors()
	}
	if len(colors) > limit {
		colors = colors[:limit]
	}
	result := make([]WizardColor, 0, len(colors))
	for _, color := range colors {
		result = append(result, WizardColor{Name: color.Name, HexCode: color.HexCode})
	}
	if err := cache.SetJSON(ctx, cache.CatalogColorsKey, result, customizeColorsCacheTTL); err != nil {
		logger.Warnw("customize_colors_cache_set_failed", "error", err)
	}
	return result
}

func (s *CustomizeService) allowedScents() []string {
	scents, err := s.scentRepo.List()
	if err != nil {
		logger.Warnw("customize_scents_load_failed", "error", err)
		return FallbackWizardScents()
	}
	if len(scents) == 0 {
		return FallbackWizardScents()
	}
	names := make([]string, 0, len(scents))
	for _, scent := range scents {
		names = append(names, scent.Name)
	}
	return names
}

// logoSizeFees 配置覆盖默认费用；viper 会把 map key 转小写，这里统一转大写
func (s *CustomizeService) logoSizeFees() map[string]models.Money {
	fees := DefaultLogoSizeFees()
	for key, amount := range s.cfg.LogoSizeFees {
		size := strings.ToUpper(strings.TrimSpace(key))
		if size != constants.LogoSizeMedium && size != constants.LogoSizeLarge {
			continue
		}
		if amount < 0 {
			continue
		}
		fees[size] = models.NewMoney(amount)
	}
	return fees
}
