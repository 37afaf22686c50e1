package service

import "errors"

// 通用
var (
	ErrNotFound      = errors.New("not found")
	ErrNameRequired  = errors.New("name is required")
	ErrNameExists    = errors.New("name already exists")
	ErrSlugExists    = errors.New("slug already exists")
	ErrTitleRequired = errors.New("title is required")
)

// 目录
var (
	ErrHexCodeRequired          = errors.New("hex code is required")
	ErrInvalidHexCode           = errors.New("invalid hex code")
	ErrInvalidPrice             = errors.New("invalid price")
	ErrSalePriceExceedsOriginal = errors.New("sale price exceeds original price")
	ErrRelationInvalid          = errors.New("unknown color, size or category")
)

// 购物车
var (
	ErrProductNotFound        = errors.New("product not found")
	ErrProductNotAvailable    = errors.New("product not available")
	ErrProductNotCustomizable = errors.New("product not customizable")
	ErrInvalidSize            = errors.New("invalid size")
	ErrInvalidColor           = errors.New("invalid color")
	ErrInvalidQuantity        = errors.New("invalid quantity")
	ErrQuantityBelowMinimum   = errors.New("quantity below minimum")
	ErrQuantityAboveMaximum   = errors.New("quantity above maximum")
	ErrInvalidDirection       = errors.New("invalid direction")
	ErrCartItemNotFound       = errors.New("cart item not found")
	ErrCartEmpty              = errors.New("cart is empty")
	ErrCartFull               = errors.New("cart is full")
)

// 定制向导
var (
	ErrWizardInvalidStep      = errors.New("action not allowed at current step")
	ErrWizardColorRequired    = errors.New("color is required")
	ErrWizardColorNotAllowed  = errors.New("color not allowed")
	ErrWizardScentRequired    = errors.New("at least one scent is required")
	ErrWizardScentInvalid     = errors.New("invalid scent")
	ErrWizardScentLimit       = errors.New("too many scents")
	ErrWizardTitleRequired    = errors.New("label title is required")
	ErrWizardTitleTooLong     = errors.New("label title too long")
	ErrWizardLogoSizeInvalid  = errors.New("invalid logo size")
	ErrWizardApprovalRequired = errors.New("design approval is required")
)

// 订单
var (
	ErrCustomerNameRequired    = errors.New("customer name is required")
	ErrCustomerEmailInvalid    = errors.New("invalid customer email")
	ErrCustomerPhoneRequired   = errors.New("customer phone is required")
	ErrShippingAddressRequired = errors.New("shipping address is required")
	ErrOrderNotFound           = errors.New("order not found")
	ErrOrderStatusInvalid      = errors.New("invalid order status transition")
	ErrOrderImmutable          = errors.New("order is closed")
)

// 账号与鉴权
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrCaptchaRequired    = errors.New("captcha required")
	ErrCaptchaInvalid     = errors.New("captcha invalid")
	ErrOldPasswordInvalid = errors.New("old password invalid")
	ErrPasswordWeak       = errors.New("password too weak")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserEmailExists    = errors.New("user email exists")
	ErrUserStatusInvalid  = errors.New("invalid user status")
	ErrAdminNotFound      = errors.New("admin not found")
)

// 上传
var (
	ErrFileMissing        = errors.New("file missing")
	ErrFileTooLarge       = errors.New("file too large")
	ErrFileTypeInvalid    = errors.New("file type not allowed")
	ErrImageTooLarge      = errors.New("image dimensions too large")
	ErrUploadSceneInvalid = errors.New("invalid upload scene")
)

// 邮件
var (
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrInvalidEmail              = errors.New("invalid email")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")
)
