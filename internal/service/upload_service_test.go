package service

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/art-exhibition/internal/config"
	"github.com/art-exhibition/internal/constants"
)

func newPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, G: 120, B: 40, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func newFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest("POST", "/api/uploads", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parse form: %v", err)
	}
	return req.MultipartForm.File["file"][0]
}

func newTestUploadService(t *testing.T) *UploadService {
	t.Helper()
	svc := NewUploadService(config.UploadConfig{
		Dir:               t.TempDir(),
		MaxSize:           1 << 20,
		AllowedExtensions: []string{"png", ".jpg"},
		MaxWidth:          2000,
		MaxHeight:         2000,
		ThumbnailWidth:    100,
	})
	svc.now = func() time.Time { return time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestSaveFileWritesImageAndThumbnail(t *testing.T) {
	svc := newTestUploadService(t)
	result, err := svc.SaveFile(newFileHeader(t, "Logo.PNG", newPNG(t, 400, 200)), "product")
	if err != nil {
		t.Fatalf("save file: %v", err)
	}
	if !strings.HasPrefix(result.URL, "/uploads/product/2026/03/") || !strings.HasSuffix(result.URL, ".png") {
		t.Fatalf("unexpected url: %s", result.URL)
	}
	if result.Width != 400 || result.Height != 200 {
		t.Fatalf("unexpected dimensions: %+v", result)
	}
	if !strings.HasSuffix(result.ThumbnailURL, "_thumb.png") {
		t.Fatalf("unexpected thumbnail url: %s", result.ThumbnailURL)
	}

	thumbPath := filepath.Join(svc.Dir(), filepath.FromSlash(strings.TrimPrefix(result.ThumbnailURL, "/uploads/")))
	f, err := os.Open(thumbPath)
	if err != nil {
		t.Fatalf("thumbnail missing: %v", err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 50 {
		t.Fatalf("thumbnail want 100x50 got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestSaveFileRejections(t *testing.T) {
	svc := newTestUploadService(t)
	cases := []struct {
		name     string
		filename string
		content  []byte
		scene    string
		want     error
	}{
		{"bad scene", "a.png", newPNG(t, 10, 10), "avatar", ErrUploadSceneInvalid},
		{"bad extension", "a.exe", newPNG(t, 10, 10), "", ErrFileTypeInvalid},
		{"not an image", "a.png", []byte("plain text pretending"), constants.UploadSceneLabel, ErrFileTypeInvalid},
		{"too wide", "a.png", newPNG(t, 2100, 10), "", ErrImageTooLarge},
	}
	for _, tc := range cases {
		_, err := svc.SaveFile(newFileHeader(t, tc.filename, tc.content), tc.scene)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: want %v got %v", tc.name, tc.want, err)
		}
	}
	if _, err := svc.SaveFile(nil, ""); !errors.Is(err, ErrFileMissing) {
		t.Fatalf("nil file should be missing, got %v", err)
	}

	svc.cfg.MaxSize = 10
	if _, err := svc.SaveFile(newFileHeader(t, "a.png", newPNG(t, 10, 10)), ""); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("want too large, got %v", err)
	}
}

func TestNormalizeUploadScene(t *testing.T) {
	if got, err := NormalizeUploadScene("  "); err != nil || got != constants.UploadSceneCommon {
		t.Fatalf("empty scene should be common, got %q %v", got, err)
	}
	if got, err := NormalizeUploadScene("POST"); err != nil || got != constants.UploadScenePost {
		t.Fatalf("scene should be lowercased, got %q %v", got, err)
	}
}
