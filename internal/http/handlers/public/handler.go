package public

import (
	handlershared "github.com/art-exhibition/internal/http/handlers/shared"
	"github.com/art-exhibition/internal/models"
	"github.com/art-exhibition/internal/provider"
	"github.com/art-exhibition/internal/service"
)

// Handler 前台/公开接口处理器入口
// 说明：该处理器用于目录资源、购物车、定制、结账与店铺浏览 API。
type Handler struct {
	*provider.Container

	categories *handlershared.ResourceHandler[models.Category, CategoryRequest, service.CategoryInput]
	colors     *handlershared.ResourceHandler[models.Color, ColorRequest, service.ColorInput]
	scents     *handlershared.ResourceHandler[models.Scent, ScentRequest, service.ScentInput]
	sizes      *handlershared.ResourceHandler[models.Size, SizeRequest, service.SizeInput]
	products   *handlershared.ResourceHandler[models.Product, ProductRequest, service.ProductInput]
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{
		Container:  c,
		categories: handlershared.NewResourceHandler[models.Category, CategoryRequest, service.CategoryInput](c.CategoryService, CategoryRequest.toInput),
		colors:     handlershared.NewResourceHandler[models.Color, ColorRequest, service.ColorInput](c.ColorService, ColorRequest.toInput),
		scents:     handlershared.NewResourceHandler[models.Scent, ScentRequest, service.ScentInput](c.ScentService, ScentRequest.toInput),
		sizes:      handlershared.NewResourceHandler[models.Size, SizeRequest, service.SizeInput](c.SizeService, SizeRequest.toInput),
		products:   handlershared.NewResourceHandler[models.Product, ProductRequest, service.ProductInput](c.ProductService, ProductRequest.toInput),
	}
}
