package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	LocaleVI = "vi"
	LocaleEN = "en"

	// DefaultLocale 默认语言
	DefaultLocale = LocaleVI
)

var catalogs = map[string]map[string]string{
	LocaleVI: messagesVI,
	LocaleEN: messagesEN,
}

// ResolveLocale 从 ?lang= 或 Accept-Language 解析语言，默认越南语
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if locale := NormalizeLocale(c.Query("lang")); locale != "" {
		return locale
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if locale := NormalizeLocale(tag); locale != "" {
			return locale
		}
	}
	return DefaultLocale
}

// NormalizeLocale 归一化语言标签，不支持时返回空串
func NormalizeLocale(raw string) string {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if tag == "" {
		return ""
	}
	tag = strings.ReplaceAll(tag, "_", "-")
	base := strings.SplitN(tag, "-", 2)[0]
	if _, ok := catalogs[base]; ok {
		return base
	}
	return ""
}

// T 获取翻译文本，缺失时回退默认语言，再回退 key 本身
func T(locale, key string) string {
	if messages, ok := catalogs[NormalizeLocale(locale)]; ok {
		if msg, ok := messages[key]; ok {
			return msg
		}
	}
	if msg, ok := catalogs[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 获取翻译模板并格式化
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
