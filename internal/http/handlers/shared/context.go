package shared

import (
	"github.com/art-exhibition/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ContextUint 读取中间件写入的 uint 身份信息；缺失视为未登录，类型不符视为内部错误
func ContextUint(c *gin.Context, key string) (uint, bool) {
	value, exists := c.Get(key)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return 0, false
	}
	id, ok := value.(uint)
	if !ok || id == 0 {
		RespondError(c, response.CodeInternal, "error.internal", nil)
		return 0, false
	}
	return id, true
}
