package command

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	currencySymbols = regexp.MustCompile(`[฿$€£¥]`)
	currencyWords   = regexp.MustCompile(`(?i)\b(thb|baht|bath|dollar|usd)\b`)

	// Grouped amounts ("2,000.50") are preferred over plain runs of digits.
	amountPattern = regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d{1,2})?|\d+(?:\.\d{1,2})?`)
)

// extractAmount finds the first numeric token in the input after stripping
// currency symbols and currency words. It returns the parsed value and the
// raw matched token for later detail stripping.
func extractAmount(input string) (amount float64, raw string, found bool) {
	cleaned := currencySymbols.ReplaceAllString(input, " ")
	cleaned = currencyWords.ReplaceAllString(cleaned, " ")

	raw = amountPattern.FindString(cleaned)
	if raw == "" {
		return 0, "", false
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil || value < 0 {
		return 0, "", false
	}
	return value, raw, true
}
