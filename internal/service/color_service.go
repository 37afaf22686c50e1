package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/art-exhibition/internal/cache"
	"github.com/art-exhibition/internal/logger"
	"github.com/art-exhibition/internal/models"
	"github.com/art-exhibition/internal/repository"
)

var hexCodePattern = regexp.MustCompile(`^#(?:[0-9A-F]{6}|[0-9A-F]{3})$`)

// ColorInput 创建/更新颜色输入
type ColorInput struct {
	Name    string
	HexCode string
}

// ColorService 颜色业务服务
type ColorService = CatalogService[models.Color, ColorInput]

// NewColorService 创建颜色服务
func NewColorService(repo repository.CatalogRepository[models.Color]) *ColorService {
	svc := newCatalogService(repo, func(color *models.Color, input ColorInput) (string, error) {
		name, err := requireName(input.Name)
		if err != nil {
			return "", err
		}
		hex, err := NormalizeHexCode(input.HexCode)
		if err != nil {
			return "", err
		}
		color.Name = name
		color.HexCode = hex
		return name, nil
	})
	svc.afterWrite = func() {
		if err := cache.Del(context.Background(), cache.CatalogColorsKey); err != nil {
			logger.Warnw("customize_colors_cache_invalidate_failed", "error", err)
		}
	}
	return svc
}

// NormalizeHexCode 校验并归一化色值为大写 #RRGGBB（#RGB 展开）
func NormalizeHexCode(raw string) (string, error) {
	hex := strings.ToUpper(strings.TrimSpace(raw))
	if hex == "" {
		return "", ErrHexCodeRequired
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if !hexCodePattern.MatchString(hex) {
		return "", ErrInvalidHexCode
	}
	if len(hex) == 4 {
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	return hex, nil
}
