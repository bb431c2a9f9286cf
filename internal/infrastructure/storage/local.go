package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStore persists uploaded documents under a single configured
// directory so the extractor can read them from disk.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed and returns a store
// rooted there.
func NewLocalStore(dir string) (*LocalStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes the upload to disk and returns its path. The stored name is
// the client-supplied base name behind a timestamp prefix, so concurrent
// uploads of the same filename never clobber each other and path elements
// in the client name are ignored.
func (s *LocalStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	base := filepath.Base(filepath.Clean(filename))
	if base == "." || base == string(filepath.Separator) || base == ".." {
		return "", fmt.Errorf("invalid upload filename %q", filename)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("%d_%s", time.Now().UnixNano(), base))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("writing upload file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("closing upload file: %w", err)
	}

	return path, nil
}

// Remove deletes a stored document. Paths outside the store directory are
// refused.
func (s *LocalStore) Remove(ctx context.Context, path string) error {
	rel, err := filepath.Rel(s.dir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("path %q is outside the upload directory", path)
	}
	return os.Remove(path)
}
