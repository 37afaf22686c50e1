package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/mail"
	"strings"
	"time"

	"github.com/art-exhibition/internal/config"
	"github.com/art-exhibition/internal/constants"
	"github.com/art-exhibition/internal/logger"
	"github.com/art-exhibition/internal/models"
	"github.com/art-exhibition/internal/queue"
	"github.com/art-exhibition/internal/repository"

	"gorm.io/gorm"
)

const defaultPendingExpireMinutes = 1440

// OrderTaskEnqueuer 订单异步任务投递
type OrderTaskEnqueuer interface {
	EnqueueOrderStatusEmail(payload queue.OrderStatusEmailPayload) error
	EnqueueOrderTimeoutCancel(payload queue.OrderTimeoutCancelPayload, delay time.Duration) error
}

// OrderService 订单服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	cartService *CartService
	tasks       OrderTaskEnqueuer
	cfg         config.OrderConfig
	now         func() time.Time
}

// NewOrderService 创建订单服务
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	cartService *CartService,
	tasks OrderTaskEnqueuer,
	cfg config.OrderConfig,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		cartService: cartService,
		tasks:       tasks,
		cfg:         cfg,
		now:         time.Now,
	}
}

// CheckoutInput 结账输入
type CheckoutInput struct {
	CartID          string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	Note            string
	Locale          string
}

// OrderTotals 订单金额汇总
type OrderTotals struct {
	Subtotal    models.Money `json:"subtotal"`
	Discount    models.Money `json:"discount"`
	ShippingFee models.Money `json:"shippingFee"`
	Total       models.Money `json:"total"`
}

// Checkout 将购物车转为待确认订单，成功后清空购物车
func (s *OrderService) Checkout(ctx context.Context, input CheckoutInput) (*models.Order, error) {
	contact, err := normalizeCheckoutContact(input)
	if err != nil {
		return nil, err
	}
	cart, err := s.cartService.Get(ctx, input.CartID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	items, err := s.buildOrderItems(cart.Items)
	if err != nil {
		return nil, err
	}
	totals := s.computeTotals(items)

	now := s.now()
	expiresAt := now.Add(time.Duration(s.pendingExpireMinutes()) * time.Minute)
	order := &models.Order{
		OrderNo:         generateOrderNo(now),
		CustomerName:    contact.CustomerName,
		CustomerEmail:   contact.CustomerEmail,
		CustomerPhone:   contact.CustomerPhone,
		ShippingAddress: contact.ShippingAddress,
		Note:            contact.Note,
		Status:          constants.OrderStatusPending,
		Currency:        constants.SiteCurrencyDefault,
		Subtotal:        totals.Subtotal,
		Discount:        totals.Discount,
		ShippingFee:     totals.ShippingFee,
		Total:           totals.Total,
		ExpiresAt:       &expiresAt,
	}

	user, err := s.userRepo.GetByEmail(contact.CustomerEmail)
	if err != nil {
		return nil, err
	}
	if user != nil {
		order.UserID = &user.ID
	}

	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order, items); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if user != nil {
			if err := s.userRepo.WithTx(tx).TouchLastOrder(user.ID, now); err != nil {
				return fmt.Errorf("touch user last order: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.cartService.Clear(ctx, input.CartID); err != nil {
		logger.Warnw("checkout_cart_clear_failed", "cart_id", input.CartID, "order_no", order.OrderNo, "error", err)
	}
	s.enqueueTimeoutCancel(order)
	s.enqueueStatusEmail(order, input.Locale)
	return order, nil
}

// buildOrderItems 以商品最新价格生成订单项快照
func (s *OrderService) buildOrderItems(lines []models.CartItem) ([]models.OrderItem, error) {
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
		if !product.IsActive {
			return nil, ErrProductNotAvailable
		}
		originalPrice := product.OriginalPrice
		unitPrice := product.SalePrice
		var customization models.JSON
		if line.Customization != nil {
			if !product.IsCustomizable {
				return nil, ErrProductNotCustomizable
			}
			snapshot := *line.Customization
			snapshot.BasePrice = product.SalePrice
			originalPrice = originalPrice.Plus(snapshot.LogoFee)
			unitPrice = unitPrice.Plus(snapshot.LogoFee)
			customization = snapshot.ToJSON()
		}
		items = append(items, models.OrderItem{
			ProductID:         product.ID,
			ProductName:       product.Name,
			ThumbnailURL:      firstNonEmpty(line.ThumbnailURL, product.ThumbnailURL),
			Quantity:          line.Quantity,
			OriginalPrice:     originalPrice,
			UnitPrice:         unitPrice,
			TotalPrice:        unitPrice.Times(line.Quantity),
			SelectedColors:    models.StringArray(line.SelectedColors),
			SelectedSize:      line.SelectedSize,
			CustomizationJSON: customization,
		})
	}
	return items, nil
}

// computeTotals 小计按原价，优惠 = 小计 − 售价合计，满额免运费
func (s *OrderService) computeTotals(items []models.OrderItem) OrderTotals {
	subtotal := models.NewMoney(0)
	cartTotal := models.NewMoney(0)
	for _, item := range items {
		subtotal = subtotal.Plus(item.OriginalPrice.Times(item.Quantity))
		cartTotal = cartTotal.Plus(item.TotalPrice)
	}
	return ComputeOrderTotals(subtotal, cartTotal, s.cfg.ShippingFee, s.cfg.FreeShippingThreshold)
}

// ComputeOrderTotals 计算订单金额；免运费门槛为 0 表示不启用
func ComputeOrderTotals(subtotal, cartTotal models.Money, shippingFee, freeShippingThreshold int64) OrderTotals {
	discount := subtotal.Minus(cartTotal)
	if discount.IsNegative() {
		discount = models.NewMoney(0)
	}
	fee := models.NewMoney(shippingFee)
	if shippingFee < 0 {
		fee = models.NewMoney(0)
	}
	if freeShippingThreshold > 0 && cartTotal.GreaterThanOrEqual(models.NewMoney(freeShippingThreshold).Decimal) {
		fee = models.NewMoney(0)
	}
	return OrderTotals{
		Subtotal:    subtotal,
		Discount:    discount,
		ShippingFee: fee,
		Total:       subtotal.Minus(discount).Plus(fee),
	}
}

func (s *OrderService) pendingExpireMinutes() int {
	if s.cfg.PendingExpireMinutes > 0 {
		return s.cfg.PendingExpireMinutes
	}
	return defaultPendingExpireMinutes
}

func (s *OrderService) enqueueTimeoutCancel(order *models.Order) {
	if s.tasks == nil || order == nil {
		return
	}
	delay := time.Duration(s.pendingExpireMinutes()) * time.Minute
	if err := s.tasks.EnqueueOrderTimeoutCancel(queue.OrderTimeoutCancelPayload{OrderID: order.ID}, delay); err != nil {
		logger.Warnw("order_enqueue_timeout_cancel_failed", "order_id", order.ID, "order_no", order.OrderNo, "error", err)
	}
}

func (s *OrderService) enqueueStatusEmail(order *models.Order, locale string) {
	if s.tasks == nil || order == nil || strings.TrimSpace(order.CustomerEmail) == "" {
		return
	}
	payload := queue.OrderStatusEmailPayload{OrderID: order.ID, Status: order.Status, Locale: locale}
	if err := s.tasks.EnqueueOrderStatusEmail(payload); err != nil {
		logger.Warnw("order_enqueue_status_email_failed", "order_id", order.ID, "status", order.Status, "error", err)
	}
}

type checkoutContact struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	Note            string
}

func normalizeCheckoutContact(input CheckoutInput) (checkoutContact, error) {
	contact := checkoutContact{
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		ShippingAddress: strings.TrimSpace(input.ShippingAddress),
		Note:            strings.TrimSpace(input.Note),
	}
	if contact.CustomerName == "" {
		return contact, ErrCustomerNameRequired
	}
	email, err := normalizeEmail(input.CustomerEmail)
	if err != nil {
		return contact, ErrCustomerEmailInvalid
	}
	contact.CustomerEmail = email
	if contact.CustomerPhone == "" {
		return contact, ErrCustomerPhoneRequired
	}
	if contact.ShippingAddress == "" {
		return contact, ErrShippingAddressRequired
	}
	return contact, nil
}

func normalizeEmail(raw string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return "", ErrCustomerEmailInvalid
	}
	addr, err := mail.ParseAddress(normalized)
	if err != nil || addr.Address != normalized {
		return "", ErrCustomerEmailInvalid
	}
	return normalized, nil
}

// generateOrderNo 订单号：AE + yyyymmddHHMMSS + 6 位随机数字
func generateOrderNo(now time.Time) string {
	return fmt.Sprintf("%s%s%s", constants.OrderNoPrefix, now.Format("20060102150405"), randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
