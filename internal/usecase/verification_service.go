package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/veridoc/backend/internal/domain"
)

// VerificationServiceConfig holds configuration for the verification service
type VerificationServiceConfig struct {
	SuggestionMinRatio float64
	EnableDebugLogging bool
}

// VerificationService checks claimed field values against extracted document
// text. It holds no mutable state; a single instance is safe for concurrent
// use across requests.
type VerificationService struct {
	suggester          *Suggester
	enableDebugLogging bool
}

// NewVerificationService creates a verification service with the given configuration
func NewVerificationService(config VerificationServiceConfig) *VerificationService {
	return &VerificationService{
		suggester: NewSuggester(SuggesterConfig{
			MinRatio:           config.SuggestionMinRatio,
			EnableDebugLogging: config.EnableDebugLogging,
		}),
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// MatchField decides whether one claimed value appears in the normalized
// document text. The claim is lower-cased and tested for substring
// containment against the full text, not token-by-token, since a claim
// may itself span several words. An empty claim matches trivially;
// callers that consider that invalid must reject empty claims upstream.
func MatchField(claimedValue string, doc NormalizedText) domain.MatchStatus {
	if strings.Contains(doc.Full, strings.ToLower(claimedValue)) {
		return domain.StatusMatch
	}
	return domain.StatusNoMatch
}

// Verify runs every field of the profile against the extracted text, in
// profile order. Fields flagged suggest-on-mismatch that fail to match get
// a nearest-token suggestion when one clears the similarity floor.
//
// A claim missing for any profile field aborts the whole call with
// ErrMissingField and no partial result; claim completeness is expected
// to be validated before the document ever reaches verification.
func (s *VerificationService) Verify(
	ctx context.Context,
	profile domain.DocumentTypeProfile,
	claims domain.ClaimSet,
	extractedText string,
) (*domain.VerificationResult, error) {
	doc := Normalize(extractedText)

	results := make([]domain.FieldResult, 0, len(profile.Fields))

	for _, field := range profile.Fields {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		claim, ok := claims[field.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingField, field.Name)
		}

		result := domain.FieldResult{
			Field:  field.Name,
			Status: MatchField(claim, doc),
		}

		if result.Status == domain.StatusNoMatch && field.SuggestOnMismatch {
			result.Suggestion = s.suggester.SuggestNearest(claim, doc.Tokens)
		}

		if s.enableDebugLogging {
			log.Printf("[VERIFY] %s/%s: %s (suggestion: %q)", profile.Name, field.Name, result.Status, result.Suggestion)
		}

		results = append(results, result)
	}

	return &domain.VerificationResult{
		DocumentType: profile.Name,
		Results:      results,
	}, nil
}

// VerifyDocumentType is Verify with a built-in profile lookup by document
// type identifier.
func (s *VerificationService) VerifyDocumentType(
	ctx context.Context,
	documentType string,
	claims domain.ClaimSet,
	extractedText string,
) (*domain.VerificationResult, error) {
	profile, err := domain.ProfileByName(documentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownDocumentType, documentType)
	}
	return s.Verify(ctx, profile, claims, extractedText)
}
