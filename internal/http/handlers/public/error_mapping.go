package public

import (
	handlershared "github.com/art-exhibition/internal/http/handlers/shared"
	"github.com/art-exhibition/internal/http/response"
	"github.com/art-exhibition/internal/service"

	"github.com/gin-gonic/gin"
)

type mappedHandlerError = handlershared.MappedError

var cartErrorRules = []mappedHandlerError{
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound, Key: "error.product_not_found"},
	{Target: service.ErrProductNotAvailable, Code: response.CodeBadRequest, Key: "error.product_unavailable"},
	{Target: service.ErrInvalidSize, Code: response.CodeBadRequest, Key: "error.size_invalid"},
	{Target: service.ErrInvalidColor, Code: response.CodeBadRequest, Key: "error.color_invalid"},
	{Target: service.ErrInvalidQuantity, Code: response.CodeBadRequest, Key: "error.quantity_invalid"},
	{Target: service.ErrQuantityBelowMinimum, Code: response.CodeBadRequest, Key: "error.quantity_below_minimum"},
	{Target: service.ErrQuantityAboveMaximum, Code: response.CodeBadRequest, Key: "error.quantity_above_maximum"},
	{Target: service.ErrInvalidDirection, Code: response.CodeBadRequest, Key: "error.direction_invalid"},
	{Target: service.ErrCartItemNotFound, Code: response.CodeNotFound, Key: "error.cart_item_not_found"},
	{Target: service.ErrCartFull, Code: response.CodeBadRequest, Key: "error.cart_full"},
}

var customizeErrorRules = []mappedHandlerError{
	{Target: service.ErrProductNotCustomizable, Code: response.CodeBadRequest, Key: "error.product_not_customizable"},
	{Target: service.ErrWizardInvalidStep, Code: response.CodeBadRequest, Key: "error.wizard_step_invalid"},
	{Target: service.ErrWizardColorRequired, Code: response.CodeBadRequest, Key: "error.wizard_color_required"},
	{Target: service.ErrWizardColorNotAllowed, Code: response.CodeBadRequest, Key: "error.wizard_color_not_allowed"},
	{Target: service.ErrWizardScentRequired, Code: response.CodeBadRequest, Key: "error.wizard_scent_required"},
	{Target: service.ErrWizardScentInvalid, Code: response.CodeBadRequest, Key: "error.wizard_scent_invalid"},
	{Target: service.ErrWizardScentLimit, Code: response.CodeBadRequest, Key: "error.wizard_scent_limit"},
	{Target: service.ErrWizardTitleRequired, Code: response.CodeBadRequest, Key: "error.wizard_title_required"},
	{Target: service.ErrWizardTitleTooLong, Code: response.CodeBadRequest, Key: "error.wizard_title_too_long"},
	{Target: service.ErrWizardLogoSizeInvalid, Code: response.CodeBadRequest, Key: "error.wizard_logo_size_invalid"},
	{Target: service.ErrWizardApprovalRequired, Code: response.CodeBadRequest, Key: "error.wizard_approval_required"},
}

var checkoutErrorRules = []mappedHandlerError{
	{Target: service.ErrCartEmpty, Code: response.CodeBadRequest, Key: "error.cart_empty"},
	{Target: service.ErrCustomerNameRequired, Code: response.CodeBadRequest, Key: "error.customer_name_required"},
	{Target: service.ErrCustomerEmailInvalid, Code: response.CodeBadRequest, Key: "error.customer_email_invalid"},
	{Target: service.ErrCustomerPhoneRequired, Code: response.CodeBadRequest, Key: "error.customer_phone_required"},
	{Target: service.ErrShippingAddressRequired, Code: response.CodeBadRequest, Key: "error.shipping_address_required"},
}

var orderLookupErrorRules = []mappedHandlerError{
	{Target: service.ErrOrderNotFound, Code: response.CodeNotFound, Key: "error.order_not_found"},
	{Target: service.ErrCustomerEmailInvalid, Code: response.CodeBadRequest, Key: "error.customer_email_invalid"},
}

var uploadErrorRules = []mappedHandlerError{
	{Target: service.ErrFileMissing, Code: response.CodeBadRequest, Key: "error.file_missing"},
	{Target: service.ErrFileTooLarge, Code: response.CodeBadRequest, Key: "error.file_too_large"},
	{Target: service.ErrFileTypeInvalid, Code: response.CodeBadRequest, Key: "error.file_type_invalid"},
	{Target: service.ErrImageTooLarge, Code: response.CodeBadRequest, Key: "error.image_too_large"},
	{Target: service.ErrUploadSceneInvalid, Code: response.CodeBadRequest, Key: "error.upload_scene_invalid"},
}

var shopErrorRules = []mappedHandlerError{
	{Target: service.ErrNotFound, Code: response.CodeNotFound, Key: "error.not_found"},
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	handlershared.RespondMappedError(c, err, rules, fallbackCode, fallbackKey)
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.internal")
}

func respondCustomizeError(c *gin.Context, err error) {
	respondWithMappedError(c, err, handlershared.ConcatMappedErrors(customizeErrorRules, cartErrorRules), response.CodeInternal, "error.internal")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, handlershared.ConcatMappedErrors(checkoutErrorRules, cartErrorRules), response.CodeInternal, "error.internal")
}
