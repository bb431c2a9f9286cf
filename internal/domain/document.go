package domain

// MatchStatus is the outcome of checking one claimed field against document text
type MatchStatus string

const (
	// StatusMatch means the claimed value appears verbatim in the document text
	StatusMatch MatchStatus = "match"

	// StatusNoMatch means the claimed value was not found in the document text
	StatusNoMatch MatchStatus = "no_match"
)

// FieldSpec describes one field of a document type profile
type FieldSpec struct {
	// Name is the form/claim key for the field, unique within a profile
	Name string `json:"name"`

	// SuggestOnMismatch requests a nearest-token suggestion when the field
	// does not match
	SuggestOnMismatch bool `json:"suggestOnMismatch"`
}

// DocumentTypeProfile is the static definition of one document kind.
// Profiles are created at process start and never mutated.
type DocumentTypeProfile struct {
	Name   string      `json:"name"`
	Fields []FieldSpec `json:"fields"`
}

// ClaimSet maps field names to the values a user asserts for them
type ClaimSet map[string]string

// FieldResult is the verification outcome for a single profile field.
// Suggestion is empty unless the field did not match, the profile requested
// a suggestion, and a candidate token was found.
type FieldResult struct {
	Field      string      `json:"field"`
	Status     MatchStatus `json:"status"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// VerificationResult holds one FieldResult per profile field, in the order
// the profile declares them. It is immutable once returned.
type VerificationResult struct {
	DocumentType string        `json:"documentType"`
	Results      []FieldResult `json:"results"`
}

// ExtractedDocument is the text recovered from an uploaded document.
// Text may be empty when the document contains no recognizable text;
// that is valid input for verification, not an error.
type ExtractedDocument struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}
