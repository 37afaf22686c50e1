package admin

import (
	handlershared "github.com/art-exhibition/internal/http/handlers/shared"
	"github.com/art-exhibition/internal/http/response"
	"github.com/art-exhibition/internal/service"

	"github.com/gin-gonic/gin"
)

// UserRequest 创建/更新顾客请求
type UserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Status   string `json:"status"`
}

func (r UserRequest) toInput() service.UserInput {
	return service.UserInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
		Status:   r.Status,
	}
}

// UpdateUserStatusRequest 更新顾客状态请求
type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetAdminUsers 顾客列表
func (h *Handler) GetAdminUsers(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	users, total, err := h.UserService.List(service.UserListInput{
		Page:     page,
		PageSize: pageSize,
		Keyword:  c.Query("keyword"),
		Status:   c.Query("status"),
	})
	if err != nil {
		respondWithMappedError(c, err, userErrorRules)
		return
	}
	response.SuccessWithPage(c, users, response.BuildPagination(page, pageSize, total))
}

// GetAdminUser 顾客详情
func (h *Handler) GetAdminUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	user, err := h.UserService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, userErrorRules)
		return
	}
	response.Success(c, user)
}

// CreateAdminUser 创建顾客
func (h *Handler) CreateAdminUser(c *gin.Context) {
	var req UserRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.UserService.Create(req.toInput())
	if err != nil {
		respondWithMappedError(c, err, userErrorRules)
		return
	}
	response.Created(c, user)
}

// UpdateAdminUser 更新顾客
func (h *Handler) UpdateAdminUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UserRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.UserService.Update(id, req.toInput())
	if err != nil {
		respondWithMappedError(c, err, userErrorRules)
		return
	}
	response.Success(c, user)
}

// UpdateAdminUserStatus 启用/禁用顾客
func (h *Handler) UpdateAdminUserStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateUserStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.UserService.UpdateStatus(id, req.Status)
	if err != nil {
		respondWithMappedError(c, err, userErrorRules)
		return
	}
	response.Success(c, user)
}

// DeleteAdminUser 删除顾客
func (h *Handler) DeleteAdminUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.UserService.Delete(id); err != nil {
		respondWithMappedError(c, err, userErrorRules)
		return
	}
	response.OK(c)
}
