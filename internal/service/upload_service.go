package service

import (
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/art-exhibition/internal/config"
	"github.com/art-exhibition/internal/constants"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

const (
	defaultThumbnailWidth = 300
	uploadURLPrefix       = "/uploads"
	sniffLen              = 512
)

var uploadScenes = []string{
	constants.UploadSceneLabel,
	constants.UploadSceneProduct,
	constants.UploadScenePost,
	constants.UploadSceneCommon,
}

// UploadResult 上传结果，URL 为站内相对路径
type UploadResult struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
}

// UploadService 图片与附件落盘，按 scene/年/月 分目录
type UploadService struct {
	cfg config.UploadConfig
	now func() time.Time
}

func NewUploadService(cfg config.UploadConfig) *UploadService {
	if strings.TrimSpace(cfg.Dir) == "" {
		cfg.Dir = "uploads"
	}
	if cfg.ThumbnailWidth <= 0 {
		cfg.ThumbnailWidth = defaultThumbnailWidth
	}
	return &UploadService{cfg: cfg, now: time.Now}
}

// Dir 静态文件根目录
func (s *UploadService) Dir() string {
	return s.cfg.Dir
}

// NormalizeUploadScene 空值视为 common
func NormalizeUploadScene(raw string) (string, error) {
	scene := strings.ToLower(strings.TrimSpace(raw))
	if scene == "" {
		return constants.UploadSceneCommon, nil
	}
	if slices.Contains(uploadScenes, scene) {
		return scene, nil
	}
	return "", ErrUploadSceneInvalid
}

// SaveFile 校验大小、扩展名、嗅探类型与图片尺寸后落盘，图片另存缩略图
func (s *UploadService) SaveFile(file *multipart.FileHeader, scene string) (*UploadResult, error) {
	if file == nil {
		return nil, ErrFileMissing
	}
	scene, err := NormalizeUploadScene(scene)
	if err != nil {
		return nil, err
	}
	if s.cfg.MaxSize > 0 && file.Size > s.cfg.MaxSize {
		return nil, ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !s.extensionAllowed(ext) {
		return nil, ErrFileTypeInvalid
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	contentType, err := sniffContentType(src)
	if err != nil {
		return nil, err
	}
	isImage := strings.HasPrefix(contentType, "image/")
	if len(s.cfg.AllowedTypes) > 0 && !containsFold(s.cfg.AllowedTypes, contentType) {
		return nil, ErrFileTypeInvalid
	}
	if scene == constants.UploadSceneLabel && !isImage {
		return nil, ErrFileTypeInvalid
	}

	result := &UploadResult{}
	if isImage {
		if result.Width, result.Height, err = s.checkDimensions(src); err != nil {
			return nil, err
		}
	}

	now := s.now()
	relDir := path.Join(scene, now.Format("2006"), now.Format("01"))
	base := uuid.NewString()
	absDir := filepath.Join(s.cfg.Dir, filepath.FromSlash(relDir))
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, err
	}
	savePath := filepath.Join(absDir, base+ext)
	if err := writeFrom(src, savePath); err != nil {
		return nil, err
	}

	result.URL = path.Join(uploadURLPrefix, relDir, base+ext)
	result.ThumbnailURL = result.URL
	if isImage {
		thumbName := base + "_thumb" + thumbnailExt(ext)
		if err := s.generateThumbnail(savePath, filepath.Join(absDir, thumbName)); err != nil {
			return nil, fmt.Errorf("generate thumbnail: %w", err)
		}
		result.ThumbnailURL = path.Join(uploadURLPrefix, relDir, thumbName)
	}
	return result, nil
}

func (s *UploadService) extensionAllowed(ext string) bool {
	if len(s.cfg.AllowedExtensions) == 0 {
		return true
	}
	if ext == "" {
		return false
	}
	for _, allowed := range s.cfg.AllowedExtensions {
		allowed = strings.ToLower(strings.TrimSpace(allowed))
		if allowed != "" && "."+strings.TrimPrefix(allowed, ".") == ext {
			return true
		}
	}
	return false
}

// checkDimensions 只解码图片头，超出 max_width/max_height 拒绝
func (s *UploadService) checkDimensions(src io.ReadSeeker) (int, int, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return 0, 0, err
	}
	cfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return 0, 0, ErrFileTypeInvalid
	}
	if (s.cfg.MaxWidth > 0 && cfg.Width > s.cfg.MaxWidth) || (s.cfg.MaxHeight > 0 && cfg.Height > s.cfg.MaxHeight) {
		return 0, 0, ErrImageTooLarge
	}
	return cfg.Width, cfg.Height, nil
}

// generateThumbnail 宽度超过配置时等比缩放，否则原样另存
func (s *UploadService) generateThumbnail(srcPath, dstPath string) error {
	img, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return err
	}
	if img.Bounds().Dx() > s.cfg.ThumbnailWidth {
		img = imaging.Resize(img, s.cfg.ThumbnailWidth, 0, imaging.Lanczos)
	}
	return imaging.Save(img, dstPath)
}

func sniffContentType(src io.ReadSeeker) (string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}

func writeFrom(src io.ReadSeeker, dstPath string) error {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return err
	}
	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}

// thumbnailExt imaging 不支持编码 webp，webp 缩略图转 jpg
func thumbnailExt(ext string) string {
	switch ext {
	case ".png", ".gif", ".jpg", ".jpeg":
		return ext
	default:
		return ".jpg"
	}
}
