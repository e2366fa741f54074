package services

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingFile      = errors.New("no file uploaded")
	ErrMissingProjectID = errors.New("project id is required")
	ErrUnsupportedType  = errors.New("unsupported image type")
)

// allowedImageTypes maps accepted MIME types to a fallback extension used
// when the original filename carries none.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ImageService persists uploaded images under
// <publicDir>/projects/<projectId>/{gallery|sections}/ and hands back the
// public-relative path embedded in project records.
type ImageService struct {
	publicDir string
}

func NewImageService(publicDir string) *ImageService {
	return &ImageService{publicDir: publicDir}
}

// SaveImage stores one upload and returns its public URL. The section tag
// only selects the subdirectory; its value is not part of the path.
func (s *ImageService) SaveImage(content io.Reader, contentType, originalName, projectID, section string) (string, error) {
	if strings.TrimSpace(projectID) == "" {
		return "", ErrMissingProjectID
	}

	mediaType := strings.ToLower(strings.TrimSpace(contentType))
	if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
		mediaType = parsed
	}
	fallbackExt, ok := allowedImageTypes[mediaType]
	if !ok {
		return "", ErrUnsupportedType
	}

	subDir := "gallery"
	if section != "" {
		subDir = "sections"
	}
	targetDir := filepath.Join(s.publicDir, "projects", projectID, subDir)
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = fallbackExt
	}
	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
	targetPath := filepath.Join(targetDir, filename)

	dst, err := os.Create(targetPath)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(dst, content); err != nil {
		dst.Close()
		os.Remove(targetPath)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(targetPath)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return "/projects/" + projectID + "/" + subDir + "/" + filename, nil
}

// DeleteProjectImages removes everything the project owns under the public
// root. Removing an absent tree is a no-op.
func (s *ImageService) DeleteProjectImages(projectID string) error {
	if strings.TrimSpace(projectID) == "" {
		return ErrMissingProjectID
	}
	return os.RemoveAll(filepath.Join(s.publicDir, "projects", projectID))
}
