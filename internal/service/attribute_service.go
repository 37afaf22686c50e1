package service

import (
	"strings"

	"github.com/art-exhibition/internal/models"
	"github.com/art-exhibition/internal/repository"
)

// ScentInput 创建/更新香味输入
type ScentInput struct {
	Name        string
	Description string
}

// ScentService 香味业务服务
type ScentService = CatalogService[models.Scent, ScentInput]

// NewScentService 创建香味服务
func NewScentService(repo repository.CatalogRepository[models.Scent]) *ScentService {
	return newCatalogService(repo, func(scent *models.Scent, input ScentInput) (string, error) {
		name, err := requireName(input.Name)
		if err != nil {
			return "", err
		}
		scent.Name = name
		scent.Description = strings.TrimSpace(input.Description)
		return name, nil
	})
}

// SizeInput 创建/更新尺寸输入
type SizeInput struct {
	Name        string
	Description string
}

// SizeService 尺寸业务服务
type SizeService = CatalogService[models.Size, SizeInput]

// NewSizeService 创建尺寸服务
func NewSizeService(repo repository.CatalogRepository[models.Size]) *SizeService {
	return newCatalogService(repo, func(size *models.Size, input SizeInput) (string, error) {
		name, err := requireName(input.Name)
		if err != nil {
			return "", err
		}
		size.Name = strings.ToUpper(name)
		size.Description = strings.TrimSpace(input.Description)
		return size.Name, nil
	})
}
