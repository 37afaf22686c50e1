package repository

import (
	"github.com/art-exhibition/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	ListAll() ([]models.Product, error)
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	GetBySlug(slug string, onlyActive bool) (*models.Product, error)
	Create(product *models.Product, relations ProductRelations) error
	Update(product *models.Product, relations ProductRelations) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID uint) (int64, error)
	CountActive() (int64, error)
}

// ProductRelations 商品多对多关联
type ProductRelations struct {
	Colors     []models.Color
	Sizes      []models.Size
	Categories []models.Category
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) *GormProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

func (r *GormProductRepository) withRelations(query *gorm.DB) *gorm.DB {
	return query.Preload("Colors").Preload("Sizes").Preload("Categories")
}

// ListAll 全量商品（含关联）
func (r *GormProductRepository) ListAll() ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := r.withRelations(r.db).Order("sort_order DESC, id DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// List 商品分页列表
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})
	if filter.OnlyActive {
		query = query.Where("products.is_active = ?", true)
	}
	if filter.OnlyCustomized {
		query = query.Where("products.is_customizable = ?", true)
	}
	if filter.CategoryID != 0 {
		query = query.Where("products.id IN (?)",
			r.db.Table("product_categories").Select("product_id").Where("category_id = ?", filter.CategoryID))
	}
	query = query.Scopes(keywordScope(filter.Search, "products.name", "products.slug", "products.description"))
	return findPage[models.Product](query, filter.Page, filter.PageSize,
		"products.sort_order DESC, products.id DESC", r.withRelations)
}

// GetByID 根据 ID 获取商品
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	return firstOrNil[models.Product](r.withRelations(r.db), id)
}

// GetBySlug 根据 slug 获取商品
func (r *GormProductRepository) GetBySlug(slug string, onlyActive bool) (*models.Product, error) {
	query := r.withRelations(r.db).Where("slug = ?", slug)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	return firstOrNil[models.Product](query)
}

// Create 创建商品并写入关联
func (r *GormProductRepository) Create(product *models.Product, relations ProductRelations) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		product.Colors = nil
		product.Sizes = nil
		product.Categories = nil
		if err := tx.Omit("Colors", "Sizes", "Categories").Create(product).Error; err != nil {
			return err
		}
		return replaceProductRelations(tx, product, relations)
	})
}

// Update 更新商品并替换关联
func (r *GormProductRepository) Update(product *models.Product, relations ProductRelations) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		product.Colors = nil
		product.Sizes = nil
		product.Categories = nil
		if err := tx.Omit("Colors", "Sizes", "Categories").Save(product).Error; err != nil {
			return err
		}
		return replaceProductRelations(tx, product, relations)
	})
}

func replaceProductRelations(tx *gorm.DB, product *models.Product, relations ProductRelations) error {
	if err := tx.Model(product).Association("Colors").Replace(nonNilColors(relations.Colors)); err != nil {
		return err
	}
	if err := tx.Model(product).Association("Sizes").Replace(nonNilSizes(relations.Sizes)); err != nil {
		return err
	}
	return tx.Model(product).Association("Categories").Replace(nonNilCategories(relations.Categories))
}

func nonNilColors(items []models.Color) []models.Color {
	if items == nil {
		return []models.Color{}
	}
	return items
}

func nonNilSizes(items []models.Size) []models.Size {
	if items == nil {
		return []models.Size{}
	}
	return items
}

func nonNilCategories(items []models.Category) []models.Category {
	if items == nil {
		return []models.Category{}
	}
	return items
}

// Delete 删除商品（软删除，同时清除关联）
func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		product := &models.Product{ID: id}
		if err := tx.Model(product).Association("Colors").Clear(); err != nil {
			return err
		}
		if err := tx.Model(product).Association("Sizes").Clear(); err != nil {
			return err
		}
		if err := tx.Model(product).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, id).Error
	})
}

// CountBySlug 统计 slug 数量
func (r *GormProductRepository) CountBySlug(slug string, excludeID uint) (int64, error) {
	return countWhere(r.db.Model(&models.Product{}).Where("slug = ?", slug), excludeID)
}

// CountActive 统计上架商品数
func (r *GormProductRepository) CountActive() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
