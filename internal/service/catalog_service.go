package service

import (
	"fmt"
	"strings"

	"github.com/art-exhibition/internal/repository"
)

// ResourceService 目录资源统一 CRUD 契约，供通用资源处理器使用
type ResourceService[T any, I any] interface {
	List() ([]T, error)
	Get(id uint) (*T, error)
	Create(input I) (*T, error)
	Update(id uint, input I) (*T, error)
	Delete(id uint) error
}

// catalogApplyFunc 校验输入并写入实体，返回用于查重的名称
type catalogApplyFunc[T any, I any] func(entity *T, input I) (string, error)

// CatalogService 分类/颜色/香味/尺寸的通用业务服务
type CatalogService[T repository.CatalogEntity, I any] struct {
	repo       repository.CatalogRepository[T]
	apply      catalogApplyFunc[T, I]
	afterWrite func()
}

func newCatalogService[T repository.CatalogEntity, I any](repo repository.CatalogRepository[T], apply func(entity *T, input I) (string, error)) *CatalogService[T, I] {
	return &CatalogService[T, I]{repo: repo, apply: apply}
}

// List 获取全部
func (s *CatalogService[T, I]) List() ([]T, error) {
	return s.repo.List()
}

// Get 获取单条
func (s *CatalogService[T, I]) Get(id uint) (*T, error) {
	entity, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, ErrNotFound
	}
	return entity, nil
}

// Create 创建
func (s *CatalogService[T, I]) Create(input I) (*T, error) {
	var entity T
	name, err := s.apply(&entity, input)
	if err != nil {
		return nil, err
	}
	if err := s.ensureNameAvailable(name, 0); err != nil {
		return nil, err
	}
	if err := s.repo.Create(&entity); err != nil {
		return nil, fmt.Errorf("create catalog entity: %w", err)
	}
	s.notifyWrite()
	return &entity, nil
}

// Update 更新，校验失败时不修改已存数据
func (s *CatalogService[T, I]) Update(id uint, input I) (*T, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	candidate := *existing
	name, err := s.apply(&candidate, input)
	if err != nil {
		return nil, err
	}
	if err := s.ensureNameAvailable(name, id); err != nil {
		return nil, err
	}
	if err := s.repo.Update(&candidate); err != nil {
		return nil, fmt.Errorf("update catalog entity: %w", err)
	}
	s.notifyWrite()
	return &candidate, nil
}

// Delete 删除
func (s *CatalogService[T, I]) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.notifyWrite()
	return nil
}

func (s *CatalogService[T, I]) notifyWrite() {
	if s.afterWrite != nil {
		s.afterWrite()
	}
}

func (s *CatalogService[T, I]) ensureNameAvailable(name string, excludeID uint) error {
	count, err := s.repo.CountByName(name, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrNameExists
	}
	return nil
}

func requireName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrNameRequired
	}
	return name, nil
}
