package admin

import (
	"net/url"
	"strings"

	"github.com/art-exhibition/internal/http/response"

	"github.com/gin-gonic/gin"
)

type authzRolePayload struct {
	Role string `json:"role" binding:"required"`
}

type authzPolicyPayload struct {
	Role   string `json:"role" binding:"required"`
	Object string `json:"object" binding:"required"`
	Action string `json:"action" binding:"required"`
}

type authzSetAdminRolesPayload struct {
	Roles []string `json:"roles"`
}

// ListAuthzRoles 全部角色
func (h *Handler) ListAuthzRoles(c *gin.Context) {
	roles, err := h.AuthzService.ListRoles()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, roles)
}

// ListAuthzAdmins 管理员及其直接角色
func (h *Handler) ListAuthzAdmins(c *gin.Context) {
	admins, err := h.AdminRepo.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	items := make([]gin.H, 0, len(admins))
	for _, a := range admins {
		roles, err := h.AuthzService.GetAdminRoles(a.ID)
		if err != nil {
			respondError(c, response.CodeInternal, "error.internal", err)
			return
		}
		items = append(items, gin.H{
			"id":          a.ID,
			"username":    a.Username,
			"isSuper":     a.IsSuper,
			"lastLoginAt": a.LastLoginAt,
			"createdAt":   a.CreatedAt,
			"roles":       roles,
		})
	}
	response.Success(c, items)
}

// CreateAuthzRole 登记角色，已存在时幂等
func (h *Handler) CreateAuthzRole(c *gin.Context) {
	var req authzRolePayload
	if !bindJSON(c, &req) {
		return
	}
	role, err := h.AuthzService.EnsureRole(req.Role)
	if err != nil {
		respondAuthzError(c, err)
		return
	}
	auditLog(c, "admin_authz_role_created", "role", role)
	response.Created(c, gin.H{"role": role})
}

// DeleteAuthzRole 内置角色不可删除
func (h *Handler) DeleteAuthzRole(c *gin.Context) {
	role := decodeRoleParam(c.Param("role"))
	if err := h.AuthzService.DeleteRole(role); err != nil {
		respondAuthzError(c, err)
		return
	}
	auditLog(c, "admin_authz_role_deleted", "role", role)
	response.OK(c)
}

func (h *Handler) GetAuthzRolePolicies(c *gin.Context) {
	policies, err := h.AuthzService.GetRolePolicies(decodeRoleParam(c.Param("role")))
	if err != nil {
		respondAuthzError(c, err)
		return
	}
	response.Success(c, policies)
}

func (h *Handler) GrantAuthzPolicy(c *gin.Context) {
	h.changeAuthzPolicy(c, h.AuthzService.GrantRolePolicy, "admin_authz_policy_granted")
}

func (h *Handler) RevokeAuthzPolicy(c *gin.Context) {
	h.changeAuthzPolicy(c, h.AuthzService.RevokeRolePolicy, "admin_authz_policy_revoked")
}

func (h *Handler) changeAuthzPolicy(c *gin.Context, apply func(role, object, action string) error, event string) {
	var req authzPolicyPayload
	if !bindJSON(c, &req) {
		return
	}
	if err := apply(req.Role, req.Object, req.Action); err != nil {
		respondAuthzError(c, err)
		return
	}
	auditLog(c, event, "role", req.Role, "object", req.Object, "action", req.Action)
	response.OK(c)
}

// GetAuthzAdminRoles 管理员不存在时 404
func (h *Handler) GetAuthzAdminRoles(c *gin.Context) {
	adminID, ok := h.requireAdminParam(c)
	if !ok {
		return
	}
	h.respondAdminRoles(c, adminID)
}

// SetAuthzAdminRoles 覆盖分配，只接受已登记的角色
func (h *Handler) SetAuthzAdminRoles(c *gin.Context) {
	adminID, ok := h.requireAdminParam(c)
	if !ok {
		return
	}
	var req authzSetAdminRolesPayload
	if !bindJSON(c, &req) {
		return
	}
	for _, role := range req.Roles {
		exists, err := h.AuthzService.HasRole(role)
		if err != nil {
			respondAuthzError(c, err)
			return
		}
		if !exists {
			respondError(c, response.CodeBadRequest, "error.role_invalid", nil)
			return
		}
	}
	if err := h.AuthzService.SetAdminRoles(adminID, req.Roles); err != nil {
		respondAuthzError(c, err)
		return
	}
	auditLog(c, "admin_authz_admin_roles_updated", "target_admin_id", adminID, "roles", req.Roles)
	h.respondAdminRoles(c, adminID)
}

func (h *Handler) requireAdminParam(c *gin.Context) (uint, bool) {
	adminID, ok := parseIDParam(c)
	if !ok {
		return 0, false
	}
	if _, err := h.AuthService.GetAdmin(adminID); err != nil {
		respondAuthzError(c, err)
		return 0, false
	}
	return adminID, true
}

func (h *Handler) respondAdminRoles(c *gin.Context, adminID uint) {
	roles, err := h.AuthzService.GetAdminRoles(adminID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, roles)
}

func respondAuthzError(c *gin.Context, err error) {
	respondWithMappedError(c, err, authzErrorRules)
}

// decodeRoleParam 路径中的角色名可能被 URL 编码
func decodeRoleParam(value string) string {
	if decoded, err := url.PathUnescape(value); err == nil {
		value = decoded
	}
	return strings.TrimSpace(value)
}
