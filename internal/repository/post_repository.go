package repository

import (
	"github.com/art-exhibition/internal/models"

	"gorm.io/gorm"
)

// PostRepository 博客文章数据访问
type PostRepository interface {
	List(filter PostListFilter) ([]models.Post, int64, error)
	GetBySlug(slug string, onlyPublished bool) (*models.Post, error)
	GetByID(id uint) (*models.Post, error)
	Create(post *models.Post) error
	Update(post *models.Post) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID uint) (int64, error)
}

// GormPostRepository GORM 实现
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建文章仓库
func NewPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

func (r *GormPostRepository) scoped(onlyPublished bool) *gorm.DB {
	query := r.db.Model(&models.Post{})
	if onlyPublished {
		query = query.Where("is_published = ?", true)
	}
	return query
}

// List 按发布时间倒序分页，search 匹配 slug/标题/摘要
func (r *GormPostRepository) List(filter PostListFilter) ([]models.Post, int64, error) {
	query := r.scoped(filter.OnlyPublished).Scopes(keywordScope(filter.Search, "slug", "title", "summary"))
	return findPage[models.Post](query, filter.Page, filter.PageSize, "published_at DESC, id DESC")
}

// GetBySlug onlyPublished 为 true 时草稿视为不存在
func (r *GormPostRepository) GetBySlug(slug string, onlyPublished bool) (*models.Post, error) {
	return firstOrNil[models.Post](r.scoped(onlyPublished).Where("slug = ?", slug))
}

func (r *GormPostRepository) GetByID(id uint) (*models.Post, error) {
	return firstOrNil[models.Post](r.db, id)
}

func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *GormPostRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

func (r *GormPostRepository) Delete(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}

// CountBySlug slug 唯一性校验
func (r *GormPostRepository) CountBySlug(slug string, excludeID uint) (int64, error) {
	return countWhere(r.db.Model(&models.Post{}).Where("slug = ?", slug), excludeID)
}
