package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc/backend/internal/domain"
)

func TestNewPDFExtractor(t *testing.T) {
	t.Run("keeps provided page cap", func(t *testing.T) {
		e := NewPDFExtractor(10)
		assert.Equal(t, 10, e.maxPages)
	})

	t.Run("falls back to default page cap", func(t *testing.T) {
		assert.Equal(t, DefaultMaxPDFPages, NewPDFExtractor(0).maxPages)
		assert.Equal(t, DefaultMaxPDFPages, NewPDFExtractor(-5).maxPages)
	})
}

func TestPDFExtractor_ExtractText(t *testing.T) {
	ctx := context.Background()
	e := NewPDFExtractor(0)

	t.Run("missing file is an extraction failure", func(t *testing.T) {
		_, err := e.ExtractText(ctx, filepath.Join(t.TempDir(), "gone.pdf"))
		assert.ErrorIs(t, err, domain.ErrExtractionFailed)
	})

	t.Run("corrupt file is an extraction failure", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "corrupt.pdf")
		require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0o600))

		_, err := e.ExtractText(ctx, path)
		assert.ErrorIs(t, err, domain.ErrExtractionFailed)
	})
}
