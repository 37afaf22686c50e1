package constants

// 订单状态常量
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// 订单号前缀
const OrderNoPrefix = "AE"

// 商品尺寸常量
const (
	SizeSmall  = "SMALL"
	SizeMedium = "MEDIUM"
	SizeLarge  = "LARGE"
)

// SupportedSizes 购物车可选尺寸
var SupportedSizes = []string{SizeSmall, SizeMedium, SizeLarge}

// Logo 尺寸常量
const (
	LogoSizeMedium = "M"
	LogoSizeLarge  = "L"
)

// 购物车数量调整方向
const (
	QuantityIncrease = "increase"
	QuantityDecrease = "decrease"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 上传场景常量
const (
	UploadSceneLabel   = "label"
	UploadSceneProduct = "product"
	UploadScenePost    = "post"
	UploadSceneCommon  = "common"
)

// 队列常量
const (
	QueueDefault           = "default"
	QueueCritical          = "critical"
	TaskOrderStatusEmail   = "order:status_email"
	TaskOrderTimeoutCancel = "order:timeout_cancel"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "ae"
)

// 请求头常量
const (
	HeaderCartID    = "X-Cart-ID"
	HeaderRequestID = "X-Request-ID"
)

// 站点语言常量
const (
	LocaleVi = "vi"
	LocaleEn = "en"
)

// SupportedLocales 支持的站点语言顺序（首个为默认语言）
var SupportedLocales = []string{LocaleVi, LocaleEn}

// 币种常量
const (
	SiteCurrencyDefault = "VND"
)
