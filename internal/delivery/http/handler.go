package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/veridoc/backend/internal/domain"
	"github.com/veridoc/backend/internal/usecase"
)

// uploadField is the multipart form field carrying the document file,
// kept identical to the legacy API
const uploadField = "document_file"

// Handler holds dependencies for HTTP handlers
type Handler struct {
	verifier      *usecase.VerificationService
	extractor     domain.TextExtractor
	store         domain.DocumentStore
	maxUploadSize int64
}

// NewHandler creates a new HTTP handler
func NewHandler(verifier *usecase.VerificationService, extractor domain.TextExtractor, store domain.DocumentStore, maxUploadSize int64) *Handler {
	return &Handler{
		verifier:      verifier,
		extractor:     extractor,
		store:         store,
		maxUploadSize: maxUploadSize,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "veridoc-backend",
		"version": "1.0.0",
	})
}

// VerifyDocument handles verification for the document type named in the URL
func (h *Handler) VerifyDocument(c *gin.Context) {
	h.verify(c, c.Param("documentType"))
}

// VerifySSCMarksheet is the legacy SSC marksheet verification endpoint
func (h *Handler) VerifySSCMarksheet(c *gin.Context) {
	h.verify(c, domain.ProfileSSCMarksheet)
}

// VerifyCETMarksheet is the legacy CET marksheet verification endpoint
func (h *Handler) VerifyCETMarksheet(c *gin.Context) {
	h.verify(c, domain.ProfileCETMarksheet)
}

// VerifyDomicileCertificate is the legacy domicile certificate verification endpoint
func (h *Handler) VerifyDomicileCertificate(c *gin.Context) {
	h.verify(c, domain.ProfileDomicileCertificate)
}

// verify runs the full upload-extract-verify flow for one document type.
// Claim completeness is validated here, before the file is stored or
// extracted; the verification core assumes complete claims.
func (h *Handler) verify(c *gin.Context, documentType string) {
	profile, err := domain.ProfileByName(documentType)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown document type: " + documentType})
		return
	}

	if h.verifier == nil || h.extractor == nil || h.store == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "document verification not configured"})
		return
	}

	if h.maxUploadSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)
	}

	claims := make(domain.ClaimSet, len(profile.Fields))
	var missing []string
	for _, field := range profile.Fields {
		value := c.PostForm(field.Name)
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field.Name)
			continue
		}
		claims[field.Name] = value
	}

	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		missing = append(missing, uploadField)
	}

	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "missing required fields",
			"fields": missing,
		})
		return
	}

	upload, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer upload.Close()

	path, err := h.store.Save(c.Request.Context(), fileHeader.Filename, upload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store uploaded file"})
		return
	}

	text, err := h.extractor.ExtractText(c.Request.Context(), path)
	if err != nil {
		// A document with no recognizable text is valid input; only an
		// unreadable file ends up here
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not extract text from document"})
		return
	}

	result, err := h.verifier.Verify(c.Request.Context(), profile, claims, text)
	if err != nil {
		if errors.Is(err, domain.ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "verification failed"})
		return
	}

	c.JSON(http.StatusOK, NewVerificationResponse(profile, result))
}
