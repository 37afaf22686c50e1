package shared

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/art-exhibition/internal/http/response"
	"github.com/art-exhibition/internal/i18n"
	"github.com/art-exhibition/internal/service"

	"github.com/gin-gonic/gin"
)

// ResourceAllowedMethods 资源接口允许的方法
const ResourceAllowedMethods = "GET, POST, PUT, DELETE"

// ResourceErrorRules 目录资源通用错误映射
var ResourceErrorRules = []MappedError{
	{Target: service.ErrNotFound, Code: response.CodeNotFound, Key: "error.not_found"},
	{Target: service.ErrNameExists, Code: response.CodeConflict, Key: "error.name_exists"},
	{Target: service.ErrSlugExists, Code: response.CodeConflict, Key: "error.slug_exists"},
	{Target: service.ErrNameRequired, Code: response.CodeBadRequest, Key: "error.name_required"},
	{Target: service.ErrHexCodeRequired, Code: response.CodeBadRequest, Key: "error.hex_code_required"},
	{Target: service.ErrInvalidHexCode, Code: response.CodeBadRequest, Key: "error.hex_code_invalid"},
	{Target: service.ErrInvalidPrice, Code: response.CodeBadRequest, Key: "error.price_invalid"},
	{Target: service.ErrSalePriceExceedsOriginal, Code: response.CodeBadRequest, Key: "error.sale_price_exceeds"},
	{Target: service.ErrRelationInvalid, Code: response.CodeBadRequest, Key: "error.relation_invalid"},
}

// ResourceHandler 通用资源处理器
// 说明：单一路径按 HTTP 方法分派，单条资源通过 ?id= 定位。
// T 为实体类型，R 为请求体类型，I 为 service 层输入类型。
type ResourceHandler[T any, R any, I any] struct {
	service service.ResourceService[T, I]
	toInput func(R) I
	rules   []MappedError
}

// NewResourceHandler 创建通用资源处理器
func NewResourceHandler[T any, R any, I any](svc service.ResourceService[T, I], toInput func(R) I) *ResourceHandler[T, R, I] {
	return &ResourceHandler[T, R, I]{
		service: svc,
		toInput: toInput,
		rules:   ResourceErrorRules,
	}
}

// Handle 按方法分派
func (h *ResourceHandler[T, R, I]) Handle(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		h.get(c)
	case http.MethodPost:
		h.create(c)
	case http.MethodPut:
		h.update(c)
	case http.MethodDelete:
		h.delete(c)
	default:
		response.MethodNotAllowed(c, ResourceAllowedMethods, i18n.T(i18n.ResolveLocale(c), "error.method_not_allowed"))
	}
}

func (h *ResourceHandler[T, R, I]) get(c *gin.Context) {
	if strings.TrimSpace(c.Query("id")) == "" {
		items, err := h.service.List()
		if err != nil {
			RespondError(c, response.CodeInternal, "error.internal", err)
			return
		}
		if items == nil {
			items = []T{}
		}
		response.Success(c, items)
		return
	}

	id, ok := h.requireID(c)
	if !ok {
		return
	}
	item, err := h.service.Get(id)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	response.Success(c, item)
}

func (h *ResourceHandler[T, R, I]) create(c *gin.Context) {
	input, ok := h.bind(c)
	if !ok {
		return
	}
	item, err := h.service.Create(input)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	response.Created(c, item)
}

func (h *ResourceHandler[T, R, I]) update(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	input, ok := h.bind(c)
	if !ok {
		return
	}
	item, err := h.service.Update(id, input)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	response.Success(c, item)
}

func (h *ResourceHandler[T, R, I]) delete(c *gin.Context) {
	id, ok := h.requireID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		h.respondServiceError(c, err)
		return
	}
	response.OK(c)
}

func (h *ResourceHandler[T, R, I]) bind(c *gin.Context) (I, bool) {
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		var zero I
		RequestLog(c).Debugw("resource_bind_failed", "path", c.FullPath(), "error", err)
		RespondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return zero, false
	}
	return h.toInput(req), true
}

func (h *ResourceHandler[T, R, I]) requireID(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Query("id"))
	if raw == "" {
		RespondError(c, response.CodeBadRequest, "error.id_required", nil)
		return 0, false
	}
	id, err := ParseID(raw)
	if err != nil {
		RespondError(c, response.CodeBadRequest, "error.id_invalid", nil)
		return 0, false
	}
	return id, true
}

func (h *ResourceHandler[T, R, I]) respondServiceError(c *gin.Context, err error) {
	RespondMappedError(c, err, h.rules, response.CodeInternal, "error.internal")
}

// ParseID 解析正整数 ID
func ParseID(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, err
	}
	if value == 0 {
		return 0, strconv.ErrRange
	}
	return uint(value), nil
}
