package extract

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/veridoc/backend/internal/domain"
)

// DefaultMaxPDFPages caps per-document processing time on very large PDFs
const DefaultMaxPDFPages = 50

// PDFExtractor pulls embedded text out of PDF documents. Scanned PDFs
// without a text layer legitimately produce an empty string.
type PDFExtractor struct {
	maxPages int
	debug    bool
}

// NewPDFExtractor creates a new PDF text extractor
func NewPDFExtractor(maxPages int) *PDFExtractor {
	if maxPages <= 0 {
		maxPages = DefaultMaxPDFPages
	}
	return &PDFExtractor{maxPages: maxPages}
}

// SetDebug enables or disables debug logging
func (e *PDFExtractor) SetDebug(debug bool) {
	e.debug = debug
}

// ExtractText concatenates the plain text of every page, up to the page
// cap. Pages that fail to decode are skipped rather than failing the
// whole document; only an unreadable file is an error.
func (e *PDFExtractor) ExtractText(ctx context.Context, filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: pdf: %v", domain.ErrExtractionFailed, err)
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > e.maxPages {
		pages = e.maxPages
	}

	var buf strings.Builder
	skipped := 0

	for i := 1; i <= pages; i++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		page := r.Page(i)
		if page.V.IsNull() {
			skipped++
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			skipped++
			continue
		}

		buf.WriteString(text)
		buf.WriteString("\n")
	}

	if e.debug {
		log.Printf("[PDF] %s: %d pages read, %d skipped, %d bytes of text", filePath, pages-skipped, skipped, buf.Len())
	}

	return buf.String(), nil
}
