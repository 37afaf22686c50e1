package public

import (
	"github.com/art-exhibition/internal/http/response"
	"github.com/art-exhibition/internal/i18n"
	"github.com/art-exhibition/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest 结账请求
type CheckoutRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	ShippingAddress string `json:"shippingAddress"`
	Note            string `json:"note"`
}

// Checkout 使用当前购物车下单
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	cartID := resolveCartID(c)
	order, err := h.OrderService.Checkout(c.Request.Context(), service.CheckoutInput{
		CartID:          cartID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		Note:            req.Note,
		Locale:          i18n.ResolveLocale(c),
	})
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	requestLog(c).Infow("order_checkout_created", "order_id", order.ID, "order_no", order.OrderNo, "total", order.Total.String())
	response.Created(c, order)
}

// GetOrderByOrderNo 游客凭订单号与邮箱查询订单
func (h *Handler) GetOrderByOrderNo(c *gin.Context) {
	order, err := h.OrderService.GetGuestOrder(c.Param("orderNo"), c.Query("email"))
	if err != nil {
		respondWithMappedError(c, err, orderLookupErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, order)
}
