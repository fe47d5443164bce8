package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jbeshir/article-board/internal/datasources"
	"github.com/jbeshir/article-board/internal/domain"
)

var _ datasources.PhotoStore = (*PhotoStore)(nil)

const articlePhotoDir = "photos/articles"

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

// PhotoStore writes uploaded article photos beneath a media root.
type PhotoStore struct {
	root string
}

func NewPhotoStore(root string) *PhotoStore {
	return &PhotoStore{root: root}
}

// SavePhoto stores content under a fresh name that keeps the upload's
// extension, returning the path relative to the media root.
func (s *PhotoStore) SavePhoto(ctx context.Context, filename string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		return "", domain.NewFieldError("photo", "Upload a valid image.")
	}

	dir := filepath.Join(s.root, filepath.FromSlash(articlePhotoDir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating photo directory: %w", err)
	}

	name := uuid.NewString() + ext
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("creating photo file: %w", err)
	}

	if _, err := io.Copy(f, contextReader{ctx: ctx, r: content}); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("writing photo: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("closing photo file: %w", err)
	}

	return path.Join(articlePhotoDir, name), nil
}

// contextReader stops a copy once the request is cancelled.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
