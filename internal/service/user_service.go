package service

import (
	"strings"

	"github.com/art-exhibition/internal/config"
	"github.com/art-exhibition/internal/constants"
	"github.com/art-exhibition/internal/models"
	"github.com/art-exhibition/internal/repository"
)

// UserService 后台顾客管理服务
type UserService struct {
	repo   repository.UserRepository
	policy config.PasswordPolicyConfig
}

// NewUserService 创建顾客管理服务
func NewUserService(repo repository.UserRepository, policy config.PasswordPolicyConfig) *UserService {
	return &UserService{repo: repo, policy: policy}
}

// UserInput 创建/更新顾客输入，Password 为空时保留原密码
type UserInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Status   string
}

// UserListInput 顾客列表查询
type UserListInput struct {
	Page     int
	PageSize int
	Keyword  string
	Status   string
}

// List 分页查询顾客
func (s *UserService) List(input UserListInput) ([]models.User, int64, error) {
	status := strings.ToLower(strings.TrimSpace(input.Status))
	if status != "" && !isValidUserStatus(status) {
		return nil, 0, ErrUserStatusInvalid
	}
	return s.repo.List(repository.UserListFilter{
		Page:     input.Page,
		PageSize: input.PageSize,
		Keyword:  strings.TrimSpace(input.Keyword),
		Status:   status,
	})
}

// Get 获取顾客
func (s *UserService) Get(id uint) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Create 创建顾客
func (s *UserService) Create(input UserInput) (*models.User, error) {
	user := &models.User{Status: constants.UserStatusActive}
	if err := s.apply(user, input); err != nil {
		return nil, err
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update 更新顾客
func (s *UserService) Update(id uint, input UserInput) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(user, input); err != nil {
		return nil, err
	}
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateStatus 启用或禁用顾客
func (s *UserService) UpdateStatus(id uint, status string) (*models.User, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !isValidUserStatus(status) {
		return nil, ErrUserStatusInvalid
	}
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	user.Status = status
	return user, nil
}

// Delete 删除顾客
func (s *UserService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *UserService) apply(user *models.User, input UserInput) error {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return err
	}
	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != user.ID {
		return ErrUserEmailExists
	}

	if status := strings.ToLower(strings.TrimSpace(input.Status)); status != "" {
		if !isValidUserStatus(status) {
			return ErrUserStatusInvalid
		}
		user.Status = status
	}
	if input.Password != "" {
		if err := validatePassword(s.policy, input.Password); err != nil {
			return err
		}
		hash, err := HashPassword(input.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}

	user.Name = strings.TrimSpace(input.Name)
	user.Email = email
	user.Phone = strings.TrimSpace(input.Phone)
	return nil
}

func isValidUserStatus(status string) bool {
	return status == constants.UserStatusActive || status == constants.UserStatusDisabled
}
