package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix is the public path listings reference their image under.
const URLPrefix = "/uploads"

// ImageStore writes uploaded images below <publicDir>/uploads and hands out
// the relative URL path stored on the listing.
type ImageStore struct {
	uploadDir string
}

func NewImageStore(publicDir string) (*ImageStore, error) {
	uploadDir := filepath.Join(publicDir, "uploads")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &ImageStore{uploadDir: uploadDir}, nil
}

// Dir returns the directory images are written to, for static serving.
func (s *ImageStore) Dir() string {
	return s.uploadDir
}

// Save stores the uploaded file under a fresh uuid filename and returns its
// public URL path, e.g. "/uploads/3f1c...-a2.jpg".
func (s *ImageStore) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return URLPrefix + "/" + name, nil
}

// Remove deletes the file a listing's imageUrl points at. Only paths under
// the uploads prefix are accepted.
func (s *ImageStore) Remove(urlPath string) error {
	name, ok := strings.CutPrefix(urlPath, URLPrefix+"/")
	if !ok || name == "" {
		return fmt.Errorf("not an uploads path: %q", urlPath)
	}
	name = filepath.Base(name) // no traversal out of the uploads dir
	return os.Remove(filepath.Join(s.uploadDir, name))
}
