package domain

import (
	"context"
	"io"
	"time"
)

// TextExtractor defines the interface for recovering plain text from an
// uploaded document file. Implementations must return an empty string,
// not an error, when a readable document contains no text.
type TextExtractor interface {
	ExtractText(ctx context.Context, filePath string) (string, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// DocumentStore defines the interface for persisting uploaded documents
// before extraction
type DocumentStore interface {
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
	Remove(ctx context.Context, path string) error
}
