package response

import (
	"github.com/art-exhibition/internal/i18n"

	"github.com/gin-gonic/gin"
)

// AppError 接口错误：HTTP 状态 + 文案 key，Err 为仅记录日志的原始错误
type AppError struct {
	Status int
	Key    string
	Args   []interface{}
	Err    error
}

// NewAppError 创建接口错误
func NewAppError(status int, key string, err error, args ...interface{}) *AppError {
	return &AppError{Status: status, Key: key, Args: args, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Key
	}
	return e.Key + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Message 按语言渲染文案
func (e *AppError) Message(locale string) string {
	if len(e.Args) > 0 {
		return i18n.Sprintf(locale, e.Key, e.Args...)
	}
	return i18n.T(locale, e.Key)
}

// Render 以请求语言写出错误响应
func (e *AppError) Render(c *gin.Context) {
	Error(c, e.Status, e.Message(i18n.ResolveLocale(c)))
}
