package public

import (
	"strings"

	handlershared "github.com/art-exhibition/internal/http/handlers/shared"
	"github.com/art-exhibition/internal/http/response"
	"github.com/art-exhibition/internal/service"

	"github.com/gin-gonic/gin"
)

// CustomizeQuoteRequest 定制报价请求
type CustomizeQuoteRequest struct {
	ProductID uint   `json:"productId" binding:"required"`
	LogoSize  string `json:"logoSize"`
	Quantity  int    `json:"quantity"`
}

// CustomizeSubmitRequest 提交定制设计请求
type CustomizeSubmitRequest struct {
	ProductID uint                 `json:"productId" binding:"required"`
	Design    service.CustomDesign `json:"design"`
	Quantity  int                  `json:"quantity"`
	Approved  bool                 `json:"approved"`
}

// GetCustomizeOptions 获取定制选项
func (h *Handler) GetCustomizeOptions(c *gin.Context) {
	productID, err := handlershared.ParseID(strings.TrimSpace(c.Query("productId")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.id_invalid", nil)
		return
	}
	options, err := h.CustomizeService.Options(c.Request.Context(), productID)
	if err != nil {
		respondCustomizeError(c, err)
		return
	}
	response.Success(c, options)
}

// QuoteCustomize 计算定制报价
func (h *Handler) QuoteCustomize(c *gin.Context) {
	var req CustomizeQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	quote, err := h.CustomizeService.Quote(c.Request.Context(), service.QuoteInput{
		ProductID: req.ProductID,
		LogoSize:  req.LogoSize,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondCustomizeError(c, err)
		return
	}
	response.Success(c, quote)
}

// SubmitCustomize 重放并提交定制设计，写入购物车
func (h *Handler) SubmitCustomize(c *gin.Context) {
	var req CustomizeSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	cartID := resolveCartID(c)
	cart, err := h.CustomizeService.Submit(c.Request.Context(), service.SubmitDesignInput{
		CartID:    cartID,
		ProductID: req.ProductID,
		Design:    req.Design,
		Quantity:  req.Quantity,
		Approved:  req.Approved,
	})
	if err != nil {
		respondCustomizeError(c, err)
		return
	}
	response.Created(c, service.BuildCartView(cart))
}
