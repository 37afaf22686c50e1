package public

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/art-exhibition/internal/cache"
	handlershared "github.com/art-exhibition/internal/http/handlers/shared"
	"github.com/art-exhibition/internal/http/response"
	"github.com/art-exhibition/internal/models"

	"github.com/gin-gonic/gin"
)

// GetShopProducts 获取上架商品列表
func (h *Handler) GetShopProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	var categoryID uint
	if raw := strings.TrimSpace(c.Query("categoryId")); raw != "" {
		id, err := handlershared.ParseID(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.id_invalid", nil)
			return
		}
		categoryID = id
	}

	products, total, err := h.ProductService.ListPublic(categoryID, c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, products, response.BuildPagination(page, pageSize, total))
}

// GetShopProductBySlug 获取上架商品详情
func (h *Handler) GetShopProductBySlug(c *gin.Context) {
	product, err := h.ProductService.GetPublicBySlug(c.Param("slug"))
	if err != nil {
		respondWithMappedError(c, err, shopErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, product)
}

// GetShopPosts 获取已发布文章列表
func (h *Handler) GetShopPosts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	posts, total, err := h.PostService.ListPublic(page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, posts, response.BuildPagination(page, pageSize, total))
}

// GetShopPostBySlug 获取已发布文章详情
func (h *Handler) GetShopPostBySlug(c *gin.Context) {
	post, err := h.PostService.GetPublicBySlug(c.Param("slug"))
	if err != nil {
		respondWithMappedError(c, err, shopErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, post)
}

// Health 健康检查，数据库不可用时返回 503
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	redisState := "ok"
	if err := cache.Ping(ctx); errors.Is(err, cache.ErrDisabled) {
		redisState = "disabled"
	} else if err != nil {
		redisState = "error"
	}
	if err := models.Ping(ctx, h.DB); err != nil {
		requestLog(c).Warnw("health_database_unreachable", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "error", "redis": redisState})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok", "redis": redisState})
}
