package repository

import (
	"github.com/art-exhibition/internal/models"

	"gorm.io/gorm"
)

// CatalogEntity 目录类实体（分类/颜色/香味/尺寸）
type CatalogEntity interface {
	models.Category | models.Color | models.Scent | models.Size
}

// CatalogRepository 目录类资源通用数据访问接口
type CatalogRepository[T CatalogEntity] interface {
	List() ([]T, error)
	GetByID(id uint) (*T, error)
	ListByIDs(ids []uint) ([]T, error)
	Create(entity *T) error
	Update(entity *T) error
	Delete(id uint) error
	CountByName(name string, excludeID uint) (int64, error)
}

// GormCatalogRepository GORM 泛型实现
type GormCatalogRepository[T CatalogEntity] struct {
	db      *gorm.DB
	orderBy string
}

// NewCategoryRepository 创建分类仓库
func NewCategoryRepository(db *gorm.DB) *GormCatalogRepository[models.Category] {
	return &GormCatalogRepository[models.Category]{db: db, orderBy: "sort_order DESC, id ASC"}
}

// NewColorRepository 创建颜色仓库
func NewColorRepository(db *gorm.DB) *GormCatalogRepository[models.Color] {
	return &GormCatalogRepository[models.Color]{db: db, orderBy: "id ASC"}
}

// NewScentRepository 创建香味仓库
func NewScentRepository(db *gorm.DB) *GormCatalogRepository[models.Scent] {
	return &GormCatalogRepository[models.Scent]{db: db, orderBy: "id ASC"}
}

// NewSizeRepository 创建尺寸仓库
func NewSizeRepository(db *gorm.DB) *GormCatalogRepository[models.Size] {
	return &GormCatalogRepository[models.Size]{db: db, orderBy: "id ASC"}
}

// WithTx 绑定事务
func (r *GormCatalogRepository[T]) WithTx(tx *gorm.DB) *GormCatalogRepository[T] {
	if tx == nil {
		return r
	}
	return &GormCatalogRepository[T]{db: tx, orderBy: r.orderBy}
}

// List 全量列表
func (r *GormCatalogRepository[T]) List() ([]T, error) {
	items := make([]T, 0)
	if err := r.db.Order(r.orderBy).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID 根据 ID 获取，不存在返回 nil
func (r *GormCatalogRepository[T]) GetByID(id uint) (*T, error) {
	return firstOrNil[T](r.db, id)
}

// ListByIDs 批量获取
func (r *GormCatalogRepository[T]) ListByIDs(ids []uint) ([]T, error) {
	items := make([]T, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}
	if err := r.db.Where("id IN ?", ids).Order(r.orderBy).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create 创建
func (r *GormCatalogRepository[T]) Create(entity *T) error {
	return r.db.Create(entity).Error
}

// Update 更新
func (r *GormCatalogRepository[T]) Update(entity *T) error {
	return r.db.Save(entity).Error
}

// Delete 删除
func (r *GormCatalogRepository[T]) Delete(id uint) error {
	var entity T
	return r.db.Delete(&entity, id).Error
}

// CountByName 统计同名数量（忽略大小写），excludeID 为 0 表示不排除
func (r *GormCatalogRepository[T]) CountByName(name string, excludeID uint) (int64, error) {
	var entity T
	return countWhere(r.db.Model(&entity).Where("LOWER(name) = LOWER(?)", name), excludeID)
}
