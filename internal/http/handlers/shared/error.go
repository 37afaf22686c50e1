package shared

import (
	"github.com/art-exhibition/internal/http/response"
	"github.com/art-exhibition/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if id := c.GetString("request_id"); id != "" {
		return logger.SW("request_id", id)
	}
	return logger.S()
}

// RespondError 返回国际化错误响应，err 非空时记录日志，不回传给客户端。
func RespondError(c *gin.Context, code int, key string, err error) {
	respondAppError(c, response.NewAppError(code, key, err))
}

// RespondErrorWithArgs 返回带格式化参数的国际化错误响应。
func RespondErrorWithArgs(c *gin.Context, code int, key string, args ...interface{}) {
	respondAppError(c, response.NewAppError(code, key, nil, args...))
}

func respondAppError(c *gin.Context, appErr *response.AppError) {
	if appErr.Err != nil {
		RequestLog(c).Errorw("handler_error",
			"status", appErr.Status,
			"key", appErr.Key,
			"path", c.FullPath(),
			"error", appErr.Err,
		)
	}
	appErr.Render(c)
}
