package service

import (
	"fmt"
	"strings"

	"github.com/art-exhibition/internal/models"
	"github.com/art-exhibition/internal/repository"

	"github.com/google/uuid"
)

// ProductService 商品业务服务
type ProductService struct {
	repo         repository.ProductRepository
	colorRepo    repository.CatalogRepository[models.Color]
	sizeRepo     repository.CatalogRepository[models.Size]
	categoryRepo repository.CatalogRepository[models.Category]
}

// NewProductService 创建商品服务
func NewProductService(
	repo repository.ProductRepository,
	colorRepo repository.CatalogRepository[models.Color],
	sizeRepo repository.CatalogRepository[models.Size],
	categoryRepo repository.CatalogRepository[models.Category],
) *ProductService {
	return &ProductService{
		repo:         repo,
		colorRepo:    colorRepo,
		sizeRepo:     sizeRepo,
		categoryRepo: categoryRepo,
	}
}

// ProductInput 创建/更新商品输入
type ProductInput struct {
	Name           string
	Slug           string
	Description    string
	OriginalPrice  models.Money
	SalePrice      models.Money
	ThumbnailURL   string
	ImageURLs      []string
	IsCustomizable bool
	IsActive       *bool
	SortOrder      int
	ColorIDs       []uint
	SizeIDs        []uint
	CategoryIDs    []uint
}

// List 获取全部商品（含关联）
func (s *ProductService) List() ([]models.Product, error) {
	return s.repo.ListAll()
}

// Get 获取商品详情
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// ListPublic 获取上架商品分页列表
func (s *ProductService) ListPublic(categoryID uint, search string, page, pageSize int) ([]models.Product, int64, error) {
	return s.repo.List(repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: categoryID,
		Search:     strings.TrimSpace(search),
		OnlyActive: true,
	})
}

// GetPublicBySlug 获取上架商品详情
func (s *ProductService) GetPublicBySlug(slug string) (*models.Product, error) {
	product, err := s.repo.GetBySlug(strings.TrimSpace(slug), true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	var product models.Product
	product.IsActive = true
	relations, err := s.apply(&product, input, 0)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(&product, relations); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return s.Get(product.ID)
}

// Update 更新商品，关联整体替换
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	candidate := *existing
	relations, err := s.apply(&candidate, input, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(&candidate, relations); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return s.Get(id)
}

// Delete 删除商品
func (s *ProductService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *ProductService) apply(product *models.Product, input ProductInput, excludeID uint) (repository.ProductRelations, error) {
	var relations repository.ProductRelations
	name, err := requireName(input.Name)
	if err != nil {
		return relations, err
	}
	if err := validateProductPrices(input.OriginalPrice, input.SalePrice); err != nil {
		return relations, err
	}

	slug := Slugify(input.Slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		slug = "san-pham-" + uuid.NewString()[:8]
	}
	count, err := s.repo.CountBySlug(slug, excludeID)
	if err != nil {
		return relations, err
	}
	if count > 0 {
		return relations, ErrSlugExists
	}

	relations, err = s.loadRelations(input)
	if err != nil {
		return relations, err
	}

	product.Name = name
	product.Slug = slug
	product.Description = strings.TrimSpace(input.Description)
	product.OriginalPrice = input.OriginalPrice
	product.SalePrice = input.SalePrice
	product.ThumbnailURL = strings.TrimSpace(input.ThumbnailURL)
	product.ImageURLs = normalizeImageURLs(input.ImageURLs)
	product.IsCustomizable = input.IsCustomizable
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	product.SortOrder = input.SortOrder
	if product.ThumbnailURL == "" && len(product.ImageURLs) > 0 {
		product.ThumbnailURL = product.ImageURLs[0]
	}
	return relations, nil
}

func (s *ProductService) loadRelations(input ProductInput) (repository.ProductRelations, error) {
	var relations repository.ProductRelations
	colorIDs := uniqueIDs(input.ColorIDs)
	colors, err := s.colorRepo.ListByIDs(colorIDs)
	if err != nil {
		return relations, err
	}
	sizeIDs := uniqueIDs(input.SizeIDs)
	sizes, err := s.sizeRepo.ListByIDs(sizeIDs)
	if err != nil {
		return relations, err
	}
	categoryIDs := uniqueIDs(input.CategoryIDs)
	categories, err := s.categoryRepo.ListByIDs(categoryIDs)
	if err != nil {
		return relations, err
	}
	if len(colors) != len(colorIDs) || len(sizes) != len(sizeIDs) || len(categories) != len(categoryIDs) {
		return relations, ErrRelationInvalid
	}
	relations.Colors = colors
	relations.Sizes = sizes
	relations.Categories = categories
	return relations, nil
}

// validateProductPrices 校验 0 ≤ 售价 ≤ 原价
func validateProductPrices(original, sale models.Money) error {
	if original.IsNegative() || sale.IsNegative() {
		return ErrInvalidPrice
	}
	if sale.GreaterThan(original.Decimal) {
		return ErrSalePriceExceedsOriginal
	}
	return nil
}

func normalizeImageURLs(urls []string) models.StringArray {
	result := make(models.StringArray, 0, len(urls))
	for _, url := range urls {
		if trimmed := strings.TrimSpace(url); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
