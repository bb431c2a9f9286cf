package domain

import "errors"

var (
	// ErrUnknownDocumentType is returned when no profile exists for a document type
	ErrUnknownDocumentType = errors.New("unknown document type")

	// ErrMissingField is returned when a profile field has no corresponding claim
	ErrMissingField = errors.New("claim missing for required field")

	// ErrExtractionFailed is returned when a document cannot be read at all.
	// A readable document with no recognizable text yields empty text, not this error.
	ErrExtractionFailed = errors.New("text extraction failed")

	// ErrUnsupportedFormat is returned for file types the extractor does not handle
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
