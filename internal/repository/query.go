package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

const maxPageSize = 100

// applyPagination 追加 LIMIT/OFFSET，pageSize <= 0 时不分页
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	pageSize = min(pageSize, maxPageSize)
	page = max(page, 1)
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}

// firstOrNil 取第一条记录，不存在时返回 (nil, nil)
func firstOrNil[T any](query *gorm.DB, conds ...interface{}) (*T, error) {
	var row T
	err := query.First(&row, conds...).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// countWhere 统计满足条件且排除 excludeID 的记录数，用于唯一性校验
func countWhere(query *gorm.DB, excludeID uint) (int64, error) {
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// keywordScope 关键字为空时不追加条件，否则多列模糊匹配任一
func keywordScope(keyword string, columns ...string) func(*gorm.DB) *gorm.DB {
	keyword = strings.TrimSpace(keyword)
	return func(db *gorm.DB) *gorm.DB {
		if keyword == "" {
			return db
		}
		condition, n := buildLikeConditionByDialect(dbDialectName(db), columns...)
		if n == 0 {
			return db
		}
		return db.Where(condition, repeatLikeArgs("%"+keyword+"%", n)...)
	}
}

// pageScope 包装 applyPagination 供 Scopes 使用
func pageScope(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return applyPagination(db, page, pageSize)
	}
}

// findPage 先统计总数再取当前页，extra 只作用于取数（如 Preload）
func findPage[T any](query *gorm.DB, page, pageSize int, order string, extra ...func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := make([]T, 0)
	err := query.Scopes(extra...).Scopes(pageScope(page, pageSize)).Order(order).Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
