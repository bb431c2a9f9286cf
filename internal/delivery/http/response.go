package http

import (
	"bytes"
	"encoding/json"

	"github.com/veridoc/backend/internal/domain"
)

// Legacy response vocabulary, reproduced exactly
const (
	labelMatch        = "Match"
	labelNoMatch      = "Does not match"
	labelNoSuggestion = "No suggestions available."
)

// VerificationResponse renders a VerificationResult in the legacy wire
// format: one "<field>_check" key per profile field, in profile order,
// plus a "nearest_<field>" key for suggest-on-mismatch fields that did
// not match. Profile order matters to API consumers, so it marshals
// itself instead of going through a Go map.
type VerificationResponse struct {
	profile domain.DocumentTypeProfile
	result  *domain.VerificationResult
}

// NewVerificationResponse pairs a result with the profile that produced it
func NewVerificationResponse(profile domain.DocumentTypeProfile, result *domain.VerificationResult) VerificationResponse {
	return VerificationResponse{profile: profile, result: result}
}

// MarshalJSON implements json.Marshaler
func (r VerificationResponse) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writePair := func(key, value string) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	// Check keys first, then nearest keys: the legacy backend appended
	// suggestions after building the full check map, so a nearest key
	// always follows every check key on the wire
	for i, field := range r.profile.Fields {
		if i >= len(r.result.Results) {
			break
		}

		label := labelNoMatch
		if r.result.Results[i].Status == domain.StatusMatch {
			label = labelMatch
		}
		if err := writePair(field.Name+"_check", label); err != nil {
			return nil, err
		}
	}

	for i, field := range r.profile.Fields {
		if i >= len(r.result.Results) {
			break
		}
		fieldResult := r.result.Results[i]

		if field.SuggestOnMismatch && fieldResult.Status == domain.StatusNoMatch {
			suggestion := fieldResult.Suggestion
			if suggestion == "" {
				suggestion = labelNoSuggestion
			}
			if err := writePair("nearest_"+field.Name, suggestion); err != nil {
				return nil, err
			}
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
