package service

import (
	"strings"

	"github.com/art-exhibition/internal/models"
	"github.com/art-exhibition/internal/repository"
)

// CategoryInput 创建/更新分类输入
type CategoryInput struct {
	Name        string
	Slug        string
	Description string
	SortOrder   int
}

// CategoryService 分类业务服务
type CategoryService = CatalogService[models.Category, CategoryInput]

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CatalogRepository[models.Category]) *CategoryService {
	return newCatalogService(repo, func(category *models.Category, input CategoryInput) (string, error) {
		name, err := requireName(input.Name)
		if err != nil {
			return "", err
		}
		slug := Slugify(input.Slug)
		if slug == "" {
			slug = Slugify(name)
		}
		category.Name = name
		category.Slug = slug
		category.Description = strings.TrimSpace(input.Description)
		category.SortOrder = input.SortOrder
		return name, nil
	})
}
