package admin

import (
	handlershared "github.com/art-exhibition/internal/http/handlers/shared"
	"github.com/art-exhibition/internal/http/response"

	"github.com/gin-gonic/gin"
)

func getAdminID(c *gin.Context) (uint, bool) {
	return handlershared.ContextUint(c, "admin_id")
}

// parseIDParam 解析路径参数 :id
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := handlershared.ParseID(c.Param("id"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.id_invalid", nil)
		return 0, false
	}
	return id, true
}

// bindJSON 绑定失败时直接返回 400
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return false
	}
	return true
}

// auditLog 后台写操作审计，自动带上操作者
func auditLog(c *gin.Context, event string, kv ...interface{}) {
	requestLog(c).Infow(event, append([]interface{}{"operator_admin_id", c.GetUint("admin_id")}, kv...)...)
}
