package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"bizhub-backend/internal/config"
	"bizhub-backend/pkg/logger"
)

var (
	ErrFileTooLarge    = errors.New("file exceeds the upload size limit")
	ErrUnsupportedType = errors.New("unsupported file type")
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// UploadService stores builder images on disk and hands back the reference
// URL. Page documents only ever hold the returned string.
type UploadService struct {
	cfg *config.Config
}

func NewUploadService(cfg *config.Config) *UploadService {
	return &UploadService{cfg: cfg}
}

// SaveImage writes an uploaded image under the upload directory with a fresh
// name and returns its public path.
func (s *UploadService) SaveImage(header *multipart.FileHeader) (string, error) {
	if header.Size > s.cfg.MaxUploadSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExtensions[ext] {
		return "", ErrUnsupportedType
	}

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + ext
	path := filepath.Join(s.cfg.UploadDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	logger.Debug("Image uploaded", map[string]interface{}{
		"file": name,
		"size": header.Size,
	})

	return "/uploads/" + name, nil
}

// Delete removes a previously uploaded file by its public path. Unknown
// paths are ignored.
func (s *UploadService) Delete(publicPath string) error {
	name := filepath.Base(publicPath)
	if name == "." || name == "/" {
		return nil
	}

	err := os.Remove(filepath.Join(s.cfg.UploadDir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
