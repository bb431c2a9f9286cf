package usecase

import "strings"

// NormalizedText is the canonical view of one document's extracted text,
// computed once per verification call. Full is the lower-cased text used
// for substring checks; Tokens is the same text split on whitespace runs,
// in document order, used for nearest-token suggestions.
type NormalizedText struct {
	Full   string
	Tokens []string
}

// Normalize canonicalizes extracted document text for matching.
// Lower-cases the whole string and splits it on whitespace. Punctuation
// attached to a token stays attached; matching works at that granularity
// on purpose, so a token like "distinction," is distinct from "distinction".
func Normalize(text string) NormalizedText {
	lower := strings.ToLower(text)
	return NormalizedText{
		Full:   lower,
		Tokens: strings.Fields(lower),
	}
}
