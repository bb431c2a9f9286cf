package usecase

import (
	"log"
	"strings"
)

// DefaultMinRatio is the similarity floor below which no suggestion is
// offered. Candidates at or above the floor are still best-effort only:
// a returned suggestion is the closest token, not a verified value.
const DefaultMinRatio = 0.6

// SuggesterConfig holds configuration for the nearest-token suggester
type SuggesterConfig struct {
	MinRatio           float64
	EnableDebugLogging bool
}

// Suggester finds the document token most similar to a claimed value
// that failed to match
type Suggester struct {
	minRatio           float64
	enableDebugLogging bool
}

// NewSuggester creates a suggester with the given configuration
func NewSuggester(config SuggesterConfig) *Suggester {
	minRatio := config.MinRatio
	if minRatio <= 0 {
		minRatio = DefaultMinRatio
	}

	return &Suggester{
		minRatio:           minRatio,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// SuggestNearest returns the single document token closest to claimedValue,
// or "" when the token set is empty or no token reaches the similarity floor.
// Tokens are scanned in document order and only a strictly better score
// replaces the current best, so the first of any tied tokens wins.
func (s *Suggester) SuggestNearest(claimedValue string, tokens []string) string {
	claim := strings.ToLower(claimedValue)

	best := ""
	bestRatio := -1.0
	seen := make(map[string]bool, len(tokens))

	for _, token := range tokens {
		// Duplicate tokens can never beat their first occurrence
		if seen[token] {
			continue
		}
		seen[token] = true

		ratio := Ratio(claim, token)
		if ratio > bestRatio {
			best, bestRatio = token, ratio
		}
	}

	if best == "" || bestRatio < s.minRatio {
		if s.enableDebugLogging {
			log.Printf("[SUGGEST] No candidate for %q (best ratio %.3f, floor %.3f)", claimedValue, bestRatio, s.minRatio)
		}
		return ""
	}

	if s.enableDebugLogging {
		log.Printf("[SUGGEST] %q -> %q (ratio %.3f)", claimedValue, best, bestRatio)
	}

	return best
}
