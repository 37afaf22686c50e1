package admin

import (
	"time"

	handlershared "github.com/art-exhibition/internal/http/handlers/shared"
	"github.com/art-exhibition/internal/http/response"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	handlershared.CaptchaPayloadRequest
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string                 `json:"token"`
	User      map[string]interface{} `json:"user"`
	ExpiresAt string                 `json:"expiresAt"`
}

// AdminLogin 管理员登录
func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.CaptchaService.Verify(req.ToServicePayload()); err != nil {
		respondWithMappedError(c, err, authErrorRules)
		return
	}

	result, err := h.AuthService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondWithMappedError(c, err, authErrorRules)
		return
	}
	requestLog(c).Infow("admin_login_succeeded", "admin_id", result.Admin.ID, "client_ip", c.ClientIP())

	response.Success(c, LoginResponse{
		Token: result.Token,
		User: map[string]interface{}{
			"id":       result.Admin.ID,
			"username": result.Admin.Username,
			"isSuper":  result.Admin.IsSuper,
		},
		ExpiresAt: result.ExpiresAt.Format(time.RFC3339),
	})
}

// GetCaptcha 获取登录图片验证码
func (h *Handler) GetCaptcha(c *gin.Context) {
	if !h.CaptchaService.Enabled() {
		response.Success(c, gin.H{"enabled": false})
		return
	}
	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{
		"enabled":     true,
		"captchaId":   challenge.CaptchaID,
		"imageBase64": challenge.ImageBase64,
	})
}

// GetMe 获取当前管理员信息与角色
func (h *Handler) GetMe(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	admin, err := h.AuthService.GetAdmin(adminID)
	if err != nil {
		respondWithMappedError(c, err, authErrorRules)
		return
	}
	roles, err := h.AuthzService.GetAdminRoles(adminID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{
		"id":          admin.ID,
		"username":    admin.Username,
		"isSuper":     admin.IsSuper,
		"lastLoginAt": admin.LastLoginAt,
		"roles":       roles,
	})
}

// UpdatePasswordRequest 修改密码请求
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// UpdateAdminPassword 修改管理员密码
func (h *Handler) UpdateAdminPassword(c *gin.Context) {
	id, ok := getAdminID(c)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.AuthService.ChangePassword(c.Request.Context(), id, req.OldPassword, req.NewPassword); err != nil {
		respondWithMappedError(c, err, authErrorRules)
		return
	}
	response.OK(c)
}
