package public

import (
	"strings"

	"github.com/art-exhibition/internal/constants"
	"github.com/art-exhibition/internal/http/response"
	"github.com/art-exhibition/internal/models"
	"github.com/art-exhibition/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AddCartItemRequest 加入购物车请求
type AddCartItemRequest struct {
	ProductID      uint     `json:"productId" binding:"required"`
	Quantity       int      `json:"quantity"`
	SelectedColors []string `json:"selectedColors"`
	SelectedSize   string   `json:"selectedSize"`
}

// UpdateCartItemRequest 调整数量请求
type UpdateCartItemRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// resolveCartID 读取 X-Cart-ID，缺失或非法时签发新的购物车 ID 并回写响应头
func resolveCartID(c *gin.Context) string {
	cartID := strings.TrimSpace(c.GetHeader(constants.HeaderCartID))
	if _, err := uuid.Parse(cartID); err != nil {
		cartID = uuid.NewString()
	}
	c.Header(constants.HeaderCartID, cartID)
	return cartID
}

func respondCart(c *gin.Context, cart *models.Cart) {
	response.Success(c, service.BuildCartView(cart))
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	cartID := resolveCartID(c)
	cart, err := h.CartService.Get(c.Request.Context(), cartID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	respondCart(c, cart)
}

// AddCartItem 加入购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	cartID := resolveCartID(c)
	cart, err := h.CartService.AddItem(c.Request.Context(), cartID, service.AddCartItemInput{
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		SelectedColors: req.SelectedColors,
		SelectedSize:   req.SelectedSize,
	})
	if err != nil {
		respondCartError(c, err)
		return
	}
	respondCart(c, cart)
}

// UpdateCartItem 调整购物车行数量（increase/decrease）
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	cartID := resolveCartID(c)
	cart, err := h.CartService.UpdateQuantity(c.Request.Context(), cartID, c.Param("id"), req.Direction)
	if err != nil {
		respondCartError(c, err)
		return
	}
	respondCart(c, cart)
}

// DeleteCartItem 删除购物车行
func (h *Handler) DeleteCartItem(c *gin.Context) {
	cartID := resolveCartID(c)
	cart, err := h.CartService.RemoveItem(c.Request.Context(), cartID, c.Param("id"))
	if err != nil {
		respondCartError(c, err)
		return
	}
	respondCart(c, cart)
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	cartID := resolveCartID(c)
	if err := h.CartService.Clear(c.Request.Context(), cartID); err != nil {
		respondCartError(c, err)
		return
	}
	respondCart(c, &models.Cart{ID: cartID})
}
