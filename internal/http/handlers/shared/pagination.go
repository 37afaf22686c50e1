package shared

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// NormalizePagination page 至少为 1，pageSize 落在 [1, 100]，缺省 20
func NormalizePagination(page, pageSize int) (int, int) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return max(page, 1), min(pageSize, maxPageSize)
}

// ParsePagination 读取 page 与 pageSize（兼容 page_size），非法值按缺省处理
func ParsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	raw := c.Query("pageSize")
	if raw == "" {
		raw = c.Query("page_size")
	}
	pageSize, _ := strconv.Atoi(raw)
	return NormalizePagination(page, pageSize)
}
