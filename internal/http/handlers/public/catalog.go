package public

import (
	"github.com/art-exhibition/internal/models"
	"github.com/art-exhibition/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryRequest 分类请求体
type CategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}

func (r CategoryRequest) toInput() service.CategoryInput {
	return service.CategoryInput{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		SortOrder:   r.SortOrder,
	}
}

// ColorRequest 颜色请求体
type ColorRequest struct {
	Name    string `json:"name"`
	HexCode string `json:"hexCode"`
}

func (r ColorRequest) toInput() service.ColorInput {
	return service.ColorInput{Name: r.Name, HexCode: r.HexCode}
}

// ScentRequest 香味请求体
type ScentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r ScentRequest) toInput() service.ScentInput {
	return service.ScentInput{Name: r.Name, Description: r.Description}
}

// SizeRequest 尺寸请求体
type SizeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r SizeRequest) toInput() service.SizeInput {
	return service.SizeInput{Name: r.Name, Description: r.Description}
}

// ProductRequest 商品请求体
type ProductRequest struct {
	Name           string       `json:"name"`
	Slug           string       `json:"slug"`
	Description    string       `json:"description"`
	OriginalPrice  models.Money `json:"originalPrice"`
	SalePrice      models.Money `json:"salePrice"`
	ThumbnailURL   string       `json:"thumbnailUrl"`
	ImageURLs      []string     `json:"imageUrls"`
	IsCustomizable bool         `json:"isCustomizable"`
	IsActive       *bool        `json:"isActive"`
	SortOrder      int          `json:"sortOrder"`
	ColorIDs       []uint       `json:"colorIds"`
	SizeIDs        []uint       `json:"sizeIds"`
	CategoryIDs    []uint       `json:"categoryIds"`
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:           r.Name,
		Slug:           r.Slug,
		Description:    r.Description,
		OriginalPrice:  r.OriginalPrice,
		SalePrice:      r.SalePrice,
		ThumbnailURL:   r.ThumbnailURL,
		ImageURLs:      r.ImageURLs,
		IsCustomizable: r.IsCustomizable,
		IsActive:       r.IsActive,
		SortOrder:      r.SortOrder,
		ColorIDs:       r.ColorIDs,
		SizeIDs:        r.SizeIDs,
		CategoryIDs:    r.CategoryIDs,
	}
}

// Categories 分类资源（/api/categories）
func (h *Handler) Categories(c *gin.Context) {
	h.categories.Handle(c)
}

// Colors 颜色资源（/api/colors）
func (h *Handler) Colors(c *gin.Context) {
	h.colors.Handle(c)
}

// Scents 香味资源（/api/scents）
func (h *Handler) Scents(c *gin.Context) {
	h.scents.Handle(c)
}

// Sizes 尺寸资源（/api/sizes）
func (h *Handler) Sizes(c *gin.Context) {
	h.sizes.Handle(c)
}

// Products 商品资源（/api/products）
func (h *Handler) Products(c *gin.Context) {
	h.products.Handle(c)
}
