// Package matching maps noisy free text onto fixed option catalogs with a
// calibrated confidence score. All matching is pure and case-insensitive.
package matching

// ScoringConfig contains the tuned scoring constants for option matching.
// The values were calibrated against real receipt text; keep them stable
// unless a reference corpus says otherwise.
type ScoringConfig struct {
	// MatchedThreshold is the confidence above which a match is trusted
	// enough to auto-apply without human review.
	MatchedThreshold float64 // 0.8

	// DefaultConfidence is reported when a field falls back to its
	// documented default value.
	DefaultConfidence float64 // 0.5

	// PropertySimilarityFloor is the minimum whole-string similarity a
	// property candidate needs before it may overwrite the running best.
	// Property names are short and collision-prone.
	PropertySimilarityFloor float64 // 0.7

	// Keyword scoring constants
	InputPrefixScore    float64 // 0.85, input starts with keyword
	KeywordPrefixScore  float64 // 0.9, keyword starts with input
	InputContainsScore  float64 // 0.95, input contains multi-word keyword
	KeywordContainsScore float64 // 0.85, multi-word keyword contains input
	WordExactScore      float64 // 0.95, exact token match across phrases
	WordSimilarityFloor float64 // 0.8, minimum per-word similarity
	WordSimilarityWeight float64 // 0.9, weight applied to per-word similarity

	// MinPrefixLen guards prefix scoring against short keywords: "sia"
	// must not match inside "alesia".
	MinPrefixLen int // 4
	// MinWordLen is the minimum token length for per-word similarity.
	MinWordLen int // 4
}

// DefaultScoringConfig returns the default scoring configuration.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		MatchedThreshold:        0.8,
		DefaultConfidence:       0.5,
		PropertySimilarityFloor: 0.7,
		InputPrefixScore:        0.85,
		KeywordPrefixScore:      0.9,
		InputContainsScore:      0.95,
		KeywordContainsScore:    0.85,
		WordExactScore:          0.95,
		WordSimilarityFloor:     0.8,
		WordSimilarityWeight:    0.9,
		MinPrefixLen:            4,
		MinWordLen:              4,
	}
}
