package command

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/bookmate/backend/internal/domain/matching"
)

// Confidence contributions per sub-extraction. The total is capped at 1.0.
const (
	confTransactionType = 0.4
	confAmount          = 0.4
	confDate            = 0.1
	confProperty        = 0.05
	confPayment         = 0.2
	confOperation       = 0.3

	// OKThreshold is the overall confidence required for a ParseResult to
	// report OK. Callers reuse it when re-evaluating a merged draft.
	OKThreshold = 0.75
	// propertyAcceptFloor is the looser bar for accepting a property match
	// inside the parser, below the matcher's own trusted threshold.
	propertyAcceptFloor = 0.5
)

// ParsedEntry is a structured transaction draft extracted from one line.
type ParsedEntry struct {
	Day             string
	Month           string
	Year            string
	Property        string
	TypeOfOperation string
	TypeOfPayment   string
	Detail          string
	Debit           float64
	Credit          float64
	Ref             string
}

// ParseResult is the outcome of parsing. OK is true only when the overall
// confidence reached the threshold, an amount was found, and either an
// operation matched or a transaction-type keyword was present.
type ParseResult struct {
	OK         bool
	Data       *ParsedEntry
	Confidence float64
	Reasons    []string
}

type entryKind int

const (
	kindUnknown entryKind = iota
	kindDebit
	kindCredit
)

var (
	creditKeywords = regexp.MustCompile(`(?i)\b(credit|income|in|revenue|sales|rental|deposit)\b`)
	debitKeywords  = regexp.MustCompile(`(?i)\b(debit|expense|exp|out|payment|paid|cost)\b`)

	detailSeparators = regexp.MustCompile(`[-,|/]+`)
)

// Parser turns free-text command lines into ledger entry drafts using regex
// heuristics plus the fuzzy option matcher for the categorical fields.
type Parser struct {
	matcher *matching.Matcher
	now     func() time.Time
}

// NewParser creates a parser over the given matcher's catalogs.
func NewParser(matcher *matching.Matcher) *Parser {
	return &Parser{
		matcher: matcher,
		now:     time.Now,
	}
}

// Parse extracts a structured entry draft from one line of free text.
// It never returns an error; failure is expressed as OK=false with a low
// confidence so the caller can fall back to AI extraction.
func (p *Parser) Parse(input string) ParseResult {
	line := strings.TrimSpace(input)
	if line == "" {
		return ParseResult{Reasons: []string{"empty input"}}
	}

	entry := &ParsedEntry{Ref: ""}
	confidence := 0.0
	var reasons []string
	var consumed []string

	// Transaction type. Credit keywords win when both vocabularies appear.
	kind, typeWord := detectKind(line)
	switch kind {
	case kindCredit:
		confidence += confTransactionType
		reasons = append(reasons, fmt.Sprintf("credit keyword %q", typeWord))
		consumed = append(consumed, typeWord)
	case kindDebit:
		confidence += confTransactionType
		reasons = append(reasons, fmt.Sprintf("debit keyword %q", typeWord))
		consumed = append(consumed, typeWord)
	default:
		reasons = append(reasons, "no transaction type keyword, defaulting to debit")
	}

	// Date is located first so its digits are masked out of the amount
	// scan: "27/10/2568 500 cash" must yield 500, not 27.
	date, dateFound := extractDate(line)
	amountSource := line
	if dateFound {
		amountSource = strings.Replace(line, date.raw, " ", 1)
	}

	amount, amountRaw, amountFound := extractAmount(amountSource)
	if amountFound {
		confidence += confAmount
		if kind == kindCredit {
			entry.Credit = amount
		} else {
			entry.Debit = amount
		}
		reasons = append(reasons, fmt.Sprintf("amount %s", amountRaw))
		consumed = append(consumed, amountRaw)
	} else {
		reasons = append(reasons, "no amount found")
	}

	if dateFound {
		confidence += confDate
		reasons = append(reasons, fmt.Sprintf("date %s %s %s", date.day, date.month, date.year))
		consumed = append(consumed, date.raw)
	} else {
		date = currentDate(p.now())
		reasons = append(reasons, "no date found, using today")
	}
	entry.Day, entry.Month, entry.Year = date.day, date.month, date.year

	// Property: the matcher result is accepted above a looser bar than the
	// trusted threshold, with a whole-word trigger scan as a last resort.
	property := p.matcher.MatchProperty(line, "")
	switch {
	case property.Confidence > propertyAcceptFloor:
		entry.Property = property.Value
		confidence += confProperty
		reasons = append(reasons, fmt.Sprintf("property %q (%.2f)", property.Value, property.Confidence))
		consumed = append(consumed, p.propertyTokens(property.Value)...)
	default:
		if value, token, ok := scanPropertyTriggers(line); ok {
			entry.Property = value
			confidence += confProperty
			reasons = append(reasons, fmt.Sprintf("property %q from trigger word %q", value, token))
			consumed = append(consumed, token)
		} else {
			entry.Property = matching.DefaultProperty
			reasons = append(reasons, "no property found, using default")
		}
	}

	payment := p.matcher.MatchTypeOfPayment(line, "")
	if payment.Matched {
		entry.TypeOfPayment = payment.Value
		confidence += confPayment
		reasons = append(reasons, fmt.Sprintf("payment %q (%.2f)", payment.Value, payment.Confidence))
		consumed = append(consumed, p.valueTokens(payment.Value, p.matcher.Payments)...)
	} else {
		entry.TypeOfPayment = matching.DefaultPayment
		reasons = append(reasons, "no payment type found, defaulting to Cash")
	}

	operation := p.matcher.MatchTypeOfOperation(line, "")
	operationFound := operation.Matched
	if operationFound {
		entry.TypeOfOperation = operation.Value
		confidence += confOperation
		reasons = append(reasons, fmt.Sprintf("operation %q (%.2f)", operation.Value, operation.Confidence))
		consumed = append(consumed, p.valueTokens(operation.Value, p.matcher.Operations)...)
	} else {
		reasons = append(reasons, "no operation type matched")
	}

	if rule := ApplyPostingRules(entry); rule != nil {
		if rule.Column == ColumnCredit {
			reasons = append(reasons, fmt.Sprintf("%s operation forces credit", rule.Prefix))
		} else {
			reasons = append(reasons, fmt.Sprintf("%s operation forces debit", rule.Prefix))
		}
	}

	entry.Detail = extractDetail(line, consumed)

	if confidence > 1.0 {
		confidence = 1.0
	}

	return ParseResult{
		OK:         confidence >= OKThreshold && amountFound && (operationFound || kind != kindUnknown),
		Data:       entry,
		Confidence: confidence,
		Reasons:    reasons,
	}
}

// detectKind scans for credit/income vocabulary before debit/expense
// vocabulary and returns the first matching keyword.
func detectKind(line string) (entryKind, string) {
	if m := creditKeywords.FindString(line); m != "" {
		return kindCredit, m
	}
	if m := debitKeywords.FindString(line); m != "" {
		return kindDebit, m
	}
	return kindUnknown, ""
}

// scanPropertyTriggers performs the emergency whole-word scan for property
// trigger words, splitting on whitespace, dashes and commas so substrings
// like "sia" inside "alesia" cannot match.
func scanPropertyTriggers(line string) (value, token string, ok bool) {
	words := strings.FieldsFunc(strings.ToLower(line), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '-' || r == ','
	})
	for _, w := range words {
		if v, found := matching.PropertyShortcuts[w]; found {
			return v, w, true
		}
	}
	return "", "", false
}

// propertyTokens returns the strippable tokens for a matched property:
// the words of the value itself plus every shortcut word that maps to it.
func (p *Parser) propertyTokens(value string) []string {
	tokens := p.valueTokens(value, p.matcher.Properties)
	for shortcut, mapped := range p.matcher.Shortcuts {
		if mapped == value {
			tokens = append(tokens, shortcut)
		}
	}
	return tokens
}

// valueTokens returns the strippable tokens for a matched catalog value:
// the alphanumeric words of the value plus its keyword phrases.
func (p *Parser) valueTokens(value string, catalog matching.OptionCatalog) []string {
	var tokens []string
	for _, w := range strings.Fields(value) {
		if isWordToken(w) {
			tokens = append(tokens, w)
		}
	}
	if catalog.Keywords != nil {
		tokens = append(tokens, catalog.Keywords[value]...)
	}
	return tokens
}

func isWordToken(w string) bool {
	for _, r := range w {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// extractDetail removes every consumed token from the original line via
// word-boundary substitution, collapses separators, and falls back to
// "Manual entry" when nothing is left.
func extractDetail(line string, consumed []string) string {
	out := line
	for _, token := range consumed {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(token) + `\b`)
		if err != nil {
			continue
		}
		out = re.ReplaceAllString(out, " ")
	}

	out = currencySymbols.ReplaceAllString(out, " ")
	out = currencyWords.ReplaceAllString(out, " ")
	out = detailSeparators.ReplaceAllString(out, " ")
	out = strings.Join(strings.Fields(out), " ")
	if out == "" {
		return "Manual entry"
	}
	return out
}
