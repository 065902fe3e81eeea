package matching

import "strings"

// keywordScore scores the input against one catalog value's keyword phrases
// and returns the best score across them. The input is expected to be
// lower-cased and trimmed already.
func (m *Matcher) keywordScore(input string, keywords []string) float64 {
	best := 0.0
	cfg := m.Config

	for _, raw := range keywords {
		kw := strings.ToLower(strings.TrimSpace(raw))
		if kw == "" {
			continue
		}
		if input == kw {
			return 1.0
		}

		score := 0.0
		singleKeyword := !strings.Contains(kw, " ")
		singleInput := !strings.Contains(input, " ")

		switch {
		case singleKeyword && singleInput:
			// Prefix relations between single words. Input starting with
			// the keyword is only trusted when the keyword is long enough
			// to rule out short-substring false positives.
			if strings.HasPrefix(input, kw) && (len(kw) >= cfg.MinPrefixLen || len(kw) == len(input)) {
				score = maxFloat(score, cfg.InputPrefixScore)
			}
			if strings.HasPrefix(kw, input) {
				// The keyword is the longer, more specific string here.
				score = maxFloat(score, cfg.KeywordPrefixScore)
			}
		case !singleKeyword:
			if strings.Contains(input, kw) {
				score = maxFloat(score, cfg.InputContainsScore)
			}
			if strings.Contains(kw, input) {
				score = maxFloat(score, cfg.KeywordContainsScore)
			}
		}

		// Word-by-word cross comparison between input and keyword tokens.
		for _, iw := range strings.Fields(input) {
			for _, kwWord := range strings.Fields(kw) {
				if iw == kwWord {
					score = maxFloat(score, cfg.WordExactScore)
					continue
				}
				if len(iw) >= cfg.MinWordLen && len(kwWord) >= cfg.MinWordLen {
					if sim := Similarity(iw, kwWord); sim > cfg.WordSimilarityFloor {
						score = maxFloat(score, sim*cfg.WordSimilarityWeight)
					}
				}
			}
		}

		best = maxFloat(best, score)
	}

	return best
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
