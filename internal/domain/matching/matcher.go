package matching

import "strings"

// MatchResult is the outcome of matching free text against one catalog.
// Matched is true iff Confidence reached the trusted-match threshold, except
// for the documented empty-input defaults which report Matched=false.
type MatchResult struct {
	Value      string
	Confidence float64
	Matched    bool
}

// Matcher matches free text against the three categorical field catalogs.
// It holds only read-only data and is safe for concurrent use.
type Matcher struct {
	Properties OptionCatalog
	Operations OptionCatalog
	Payments   OptionCatalog
	Shortcuts  map[string]string
	Config     ScoringConfig
}

// NewMatcher creates a matcher over the supplied catalogs with the default
// scoring configuration and property shortcuts.
func NewMatcher(properties, operations, payments OptionCatalog) *Matcher {
	return &Matcher{
		Properties: properties,
		Operations: operations,
		Payments:   payments,
		Shortcuts:  PropertyShortcuts,
		Config:     DefaultScoringConfig(),
	}
}

// NewDefaultMatcher creates a matcher over the built-in catalogs.
func NewDefaultMatcher() *Matcher {
	return NewMatcher(DefaultPropertyCatalog(), DefaultOperationCatalog(), DefaultPaymentCatalog())
}

// fieldRules captures the per-field differences in the matching pipeline.
type fieldRules struct {
	shortcuts         map[string]string
	defaultValue      string
	defaultConfidence float64
	similarityFloor   float64
}

// MatchProperty matches text (plus optional comment context) against the
// property catalog. Single-token shortcut hits short-circuit fuzzy scoring.
func (m *Matcher) MatchProperty(text, comment string) MatchResult {
	return m.match(text, comment, m.Properties, fieldRules{
		shortcuts:         m.Shortcuts,
		defaultValue:      DefaultProperty,
		defaultConfidence: m.Config.DefaultConfidence,
		similarityFloor:   m.Config.PropertySimilarityFloor,
	})
}

// MatchTypeOfOperation matches text against the operation/category catalog.
// There is no default: a sub-threshold best candidate is returned as-is.
func (m *Matcher) MatchTypeOfOperation(text, comment string) MatchResult {
	return m.match(text, comment, m.Operations, fieldRules{})
}

// MatchTypeOfPayment matches text against the payment type catalog.
func (m *Matcher) MatchTypeOfPayment(text, comment string) MatchResult {
	return m.match(text, comment, m.Payments, fieldRules{
		defaultValue:      DefaultPayment,
		defaultConfidence: m.Config.DefaultConfidence,
	})
}

func (m *Matcher) match(text, comment string, catalog OptionCatalog, rules fieldRules) MatchResult {
	if strings.TrimSpace(text) == "" && strings.TrimSpace(comment) == "" {
		return MatchResult{
			Value:      rules.defaultValue,
			Confidence: rules.defaultConfidence,
			Matched:    false,
		}
	}

	search := normalize(text + " " + comment)

	if rules.shortcuts != nil {
		for _, token := range strings.Fields(search) {
			if value, ok := rules.shortcuts[token]; ok {
				return MatchResult{Value: value, Confidence: 1.0, Matched: true}
			}
		}
	}

	for _, value := range catalog.Values {
		if strings.ToLower(value) == search {
			return MatchResult{Value: value, Confidence: 1.0, Matched: true}
		}
	}

	best := MatchResult{}

	if catalog.Keywords != nil {
		for _, value := range catalog.Values {
			keywords := catalog.Keywords[value]
			if len(keywords) == 0 {
				continue
			}
			if score := m.keywordScore(search, keywords); score > best.Confidence {
				best = m.result(value, score)
			}
		}
	}

	for _, value := range catalog.Values {
		score := Similarity(search, value)
		if rules.similarityFloor > 0 && score < rules.similarityFloor {
			continue
		}
		if score > best.Confidence {
			best = m.result(value, score)
		}
	}

	if !best.Matched && rules.defaultValue != "" {
		return MatchResult{
			Value:      rules.defaultValue,
			Confidence: rules.defaultConfidence,
			Matched:    false,
		}
	}
	return best
}

func (m *Matcher) result(value string, confidence float64) MatchResult {
	return MatchResult{
		Value:      value,
		Confidence: confidence,
		Matched:    confidence >= m.Config.MatchedThreshold,
	}
}

// normalize lower-cases the input and collapses runs of whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
