package extract

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/veridoc/backend/internal/domain"
)

// Default tesseract settings, overridable via configuration
const (
	DefaultTesseractBinary = "tesseract"
	DefaultLanguages       = "eng"
	DefaultOCRTimeout      = 30 * time.Second
)

// TesseractClient runs OCR on image files by invoking the tesseract binary.
// The binary path comes from configuration and is resolved against PATH
// when it is a bare command name.
type TesseractClient struct {
	binaryPath  string
	languages   string
	timeout     time.Duration
	rateLimiter *rate.Limiter
	debug       bool
}

// NewTesseractClient creates a new OCR client
func NewTesseractClient(binaryPath, languages string, timeout time.Duration) *TesseractClient {
	if binaryPath == "" {
		binaryPath = DefaultTesseractBinary
	}
	if languages == "" {
		languages = DefaultLanguages
	}
	if timeout <= 0 {
		timeout = DefaultOCRTimeout
	}

	// OCR pins a core for the duration of a run; cap concurrent load at
	// 2 invocations/sec with a small burst
	limiter := rate.NewLimiter(rate.Limit(2), 4)

	return &TesseractClient{
		binaryPath:  binaryPath,
		languages:   languages,
		timeout:     timeout,
		rateLimiter: limiter,
	}
}

// SetDebug enables or disables debug logging
func (c *TesseractClient) SetDebug(debug bool) {
	c.debug = debug
}

// ExtractText runs tesseract over the image at filePath and returns the
// recognized text. An image with no recognizable text yields an empty
// string; a failed invocation yields ErrExtractionFailed.
func (c *TesseractClient) ExtractText(ctx context.Context, filePath string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// "stdout" as the output base makes tesseract write recognized text
	// to standard output instead of a file
	cmd := exec.CommandContext(ctx, c.binaryPath, filePath, "stdout", "-l", c.languages)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if c.debug {
		log.Printf("[OCR] Running: %s %s stdout -l %s", c.binaryPath, filePath, c.languages)
	}

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("%w: tesseract: %s", domain.ErrExtractionFailed, detail)
	}

	text := stdout.String()
	if c.debug {
		log.Printf("[OCR] Extracted %d bytes from %s", len(text), filePath)
	}

	return text, nil
}
