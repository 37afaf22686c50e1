package service

import (
	"strings"
	"time"

	"github.com/art-exhibition/internal/models"
	"github.com/art-exhibition/internal/repository"
)

// PostService 文章业务服务
type PostService struct {
	repo repository.PostRepository
	now  func() time.Time
}

// NewPostService 创建文章服务
func NewPostService(repo repository.PostRepository) *PostService {
	return &PostService{repo: repo, now: time.Now}
}

// PostInput 创建/更新文章输入
type PostInput struct {
	Slug        string
	Title       string
	Summary     string
	Content     string
	Thumbnail   string
	IsPublished *bool
}

// ListPublic 获取公开文章列表
func (s *PostService) ListPublic(page, pageSize int) ([]models.Post, int64, error) {
	return s.repo.List(repository.PostListFilter{
		Page:          page,
		PageSize:      pageSize,
		OnlyPublished: true,
	})
}

// GetPublicBySlug 获取公开文章详情
func (s *PostService) GetPublicBySlug(slug string) (*models.Post, error) {
	post, err := s.repo.GetBySlug(strings.TrimSpace(slug), true)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// ListAdmin 获取后台文章列表
func (s *PostService) ListAdmin(search string, page, pageSize int) ([]models.Post, int64, error) {
	return s.repo.List(repository.PostListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   search,
	})
}

// Get 获取文章
func (s *PostService) Get(id uint) (*models.Post, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Create 创建文章
func (s *PostService) Create(input PostInput) (*models.Post, error) {
	post := &models.Post{}
	if err := s.apply(post, input); err != nil {
		return nil, err
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update 更新文章
func (s *PostService) Update(id uint, input PostInput) (*models.Post, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(post, input); err != nil {
		return nil, err
	}
	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete 删除文章
func (s *PostService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *PostService) apply(post *models.Post, input PostInput) error {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return ErrTitleRequired
	}
	slug := Slugify(input.Slug)
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		return ErrTitleRequired
	}
	count, err := s.repo.CountBySlug(slug, post.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugExists
	}

	post.Slug = slug
	post.Title = title
	post.Summary = strings.TrimSpace(input.Summary)
	post.Content = input.Content
	post.Thumbnail = strings.TrimSpace(input.Thumbnail)
	if input.IsPublished != nil {
		post.IsPublished = *input.IsPublished
	}
	// 首次发布时记录发布时间
	if post.IsPublished && post.PublishedAt == nil {
		now := s.now()
		post.PublishedAt = &now
	}
	return nil
}
