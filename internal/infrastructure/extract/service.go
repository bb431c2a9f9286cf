package extract

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/veridoc/backend/internal/domain"
)

// ServiceConfig holds configuration for the extraction service
type ServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// Service is the text-extraction entry point. It picks an extractor by
// file extension the way the upstream verifier does (images go through
// OCR, PDFs through the text layer, anything else yields no text) and
// caches results by content digest so re-uploads of the same document
// skip extraction.
type Service struct {
	images   domain.TextExtractor
	pdfs     domain.TextExtractor
	cache    domain.CacheRepository
	cacheTTL time.Duration
	debug    bool
}

// NewService creates an extraction service. cache may be nil to disable
// result caching.
func NewService(images, pdfs domain.TextExtractor, cache domain.CacheRepository, config ServiceConfig) *Service {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}

	return &Service{
		images:   images,
		pdfs:     pdfs,
		cache:    cache,
		cacheTTL: cacheTTL,
		debug:    config.EnableDebugLogging,
	}
}

// ExtractText recovers plain text from the document at filePath.
// Unknown file types return an empty string without error; verification
// then simply finds no matches.
func (s *Service) ExtractText(ctx context.Context, filePath string) (string, error) {
	var extractor domain.TextExtractor

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".jpg", ".jpeg", ".png":
		extractor = s.images
	case ".pdf":
		extractor = s.pdfs
	default:
		return "", nil
	}

	key, err := contentDigest(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	if s.cache != nil {
		if text, err := s.cache.Get(ctx, key); err == nil {
			if s.debug {
				log.Printf("[EXTRACT] Cache hit for %s (%s)", filePath, key)
			}
			return text, nil
		}
	}

	text, err := extractor.ExtractText(ctx, filePath)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, text, s.cacheTTL); err != nil && s.debug {
			log.Printf("[EXTRACT] Cache store failed for %s: %v", key, err)
		}
	}

	return text, nil
}

// contentDigest keys the cache by what is in the file, not where it was
// saved, so the same document uploaded twice under different names still
// hits the cache.
func contentDigest(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return "doc:" + hex.EncodeToString(h.Sum(nil)), nil
}
