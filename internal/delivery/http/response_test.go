package http

import (
	"encoding/json"
	"testing"

	"github.com/veridoc/backend/internal/domain"
)

func TestVerificationResponseMarshalJSON(t *testing.T) {
	t.Run("check keys follow profile order", func(t *testing.T) {
		profile := domain.DocumentTypeProfile{
			Name: "test_profile",
			Fields: []domain.FieldSpec{
				{Name: "name"},
				{Name: "roll_no"},
				{Name: "result", SuggestOnMismatch: true},
			},
		}
		result := &domain.VerificationResult{
			DocumentType: profile.Name,
			Results: []domain.FieldResult{
				{Field: "name", Status: domain.StatusMatch},
				{Field: "roll_no", Status: domain.StatusNoMatch},
				{Field: "result", Status: domain.StatusMatch},
			},
		}

		got, err := json.Marshal(NewVerificationResponse(profile, result))
		if err != nil {
			t.Fatalf("Marshal error: %v", err)
		}

		want := `{"name_check":"Match","roll_no_check":"Does not match","result_check":"Match"}`
		if string(got) != want {
			t.Errorf("Marshal = %s, want %s", got, want)
		}
	})

	t.Run("nearest keys come after every check key", func(t *testing.T) {
		// Suggest-on-mismatch field in the middle of the profile: its
		// nearest key still trails all check keys
		profile := domain.DocumentTypeProfile{
			Name: "test_profile",
			Fields: []domain.FieldSpec{
				{Name: "name"},
				{Name: "certificate_number", SuggestOnMismatch: true},
				{Name: "state"},
			},
		}
		result := &domain.VerificationResult{
			DocumentType: profile.Name,
			Results: []domain.FieldResult{
				{Field: "name", Status: domain.StatusMatch},
				{Field: "certificate_number", Status: domain.StatusNoMatch, Suggestion: "dc-443"},
				{Field: "state", Status: domain.StatusMatch},
			},
		}

		got, err := json.Marshal(NewVerificationResponse(profile, result))
		if err != nil {
			t.Fatalf("Marshal error: %v", err)
		}

		want := `{"name_check":"Match","certificate_number_check":"Does not match","state_check":"Match","nearest_certificate_number":"dc-443"}`
		if string(got) != want {
			t.Errorf("Marshal = %s, want %s", got, want)
		}
	})

	t.Run("missing suggestion renders the sentinel", func(t *testing.T) {
		profile := domain.DocumentTypeProfile{
			Name: "test_profile",
			Fields: []domain.FieldSpec{
				{Name: "certificate_number", SuggestOnMismatch: true},
				{Name: "state"},
			},
		}
		result := &domain.VerificationResult{
			DocumentType: profile.Name,
			Results: []domain.FieldResult{
				{Field: "certificate_number", Status: domain.StatusNoMatch},
				{Field: "state", Status: domain.StatusNoMatch},
			},
		}

		got, err := json.Marshal(NewVerificationResponse(profile, result))
		if err != nil {
			t.Fatalf("Marshal error: %v", err)
		}

		want := `{"certificate_number_check":"Does not match","state_check":"Does not match","nearest_certificate_number":"No suggestions available."}`
		if string(got) != want {
			t.Errorf("Marshal = %s, want %s", got, want)
		}
	})

	t.Run("matched suggest field emits no nearest key", func(t *testing.T) {
		profile := domain.DocumentTypeProfile{
			Name: "test_profile",
			Fields: []domain.FieldSpec{
				{Name: "result", SuggestOnMismatch: true},
			},
		}
		result := &domain.VerificationResult{
			DocumentType: profile.Name,
			Results: []domain.FieldResult{
				{Field: "result", Status: domain.StatusMatch},
			},
		}

		got, err := json.Marshal(NewVerificationResponse(profile, result))
		if err != nil {
			t.Fatalf("Marshal error: %v", err)
		}

		want := `{"result_check":"Match"}`
		if string(got) != want {
			t.Errorf("Marshal = %s, want %s", got, want)
		}
	})
}
