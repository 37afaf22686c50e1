package shared

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// MappedError 定义业务错误到接口错误响应的映射关系。
type MappedError struct {
	Target error
	Code   int
	Key    string
}

// RespondMappedError 按规则匹配错误并响应，未命中时使用兜底错误码并记录原始错误。
func RespondMappedError(c *gin.Context, err error, rules []MappedError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.Target) {
			if key, args, ok := localizedArgs(err); ok {
				RespondErrorWithArgs(c, rule.Code, key, args...)
				return
			}
			RespondError(c, rule.Code, rule.Key, nil)
			return
		}
	}
	RespondError(c, fallbackCode, fallbackKey, err)
}

// ConcatMappedErrors 合并多组规则。
func ConcatMappedErrors(groups ...[]MappedError) []MappedError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]MappedError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

// localizedError 携带 i18n key 与参数的错误（如密码策略）
type localizedError interface {
	Key() string
	Args() []interface{}
}

func localizedArgs(err error) (string, []interface{}, bool) {
	var target localizedError
	if errors.As(err, &target) {
		return target.Key(), target.Args(), true
	}
	return "", nil, false
}
