package domain

// Built-in document type identifiers
const (
	ProfileSSCMarksheet        = "ssc_marksheet"
	ProfileCETMarksheet        = "cet_marksheet"
	ProfileDomicileCertificate = "domicile_certificate"
)

// builtinProfiles is the static table of known document kinds.
// Adding a document type is a data change here, not new handler code.
var builtinProfiles = []DocumentTypeProfile{
	{
		Name: ProfileSSCMarksheet,
		Fields: []FieldSpec{
			{Name: "name"},
			{Name: "roll_no"},
			{Name: "result", SuggestOnMismatch: true},
		},
	},
	{
		Name: ProfileCETMarksheet,
		Fields: []FieldSpec{
			{Name: "name"},
			{Name: "roll_no"},
			{Name: "application_no"},
			{Name: "category"},
			{Name: "mothers_name"},
		},
	},
	{
		Name: ProfileDomicileCertificate,
		Fields: []FieldSpec{
			{Name: "name"},
			{Name: "certificate_number", SuggestOnMismatch: true},
			{Name: "state"},
		},
	},
}

// Profiles returns all built-in document type profiles
func Profiles() []DocumentTypeProfile {
	profiles := make([]DocumentTypeProfile, len(builtinProfiles))
	copy(profiles, builtinProfiles)
	return profiles
}

// ProfileByName looks up a built-in profile by its document type identifier.
// Returns ErrUnknownDocumentType for identifiers not in the table.
func ProfileByName(name string) (DocumentTypeProfile, error) {
	for _, p := range builtinProfiles {
		if p.Name == name {
			return p, nil
		}
	}
	return DocumentTypeProfile{}, ErrUnknownDocumentType
}
