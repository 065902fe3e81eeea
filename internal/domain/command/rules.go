// Package command parses one line of free-form text into a structured
// ledger entry draft. Parsing never fails with an error; every field has a
// safe default and overall quality is communicated through a confidence
// score so callers can decide whether to escalate to AI extraction.
package command

import "strings"

// Column identifies which amount column of an entry holds the value.
type Column int

const (
	// ColumnDebit is the expense side of the ledger.
	ColumnDebit Column = iota
	// ColumnCredit is the income side of the ledger.
	ColumnCredit
)

// PostingRule forces the amount into a fixed column for operations whose
// name starts with the given prefix, regardless of what the transaction-type
// keywords said. Revenue always posts as credit and expenses as debit.
type PostingRule struct {
	Prefix string
	Column Column
}

// PostingRules is the ordered rule table applied after operation resolution.
// It is exported so the review/merge layer applies the same rules instead of
// duplicating them.
var PostingRules = []PostingRule{
	{Prefix: "Revenue", Column: ColumnCredit},
	{Prefix: "EXP", Column: ColumnDebit},
}

// ApplyPostingRules moves the amount between debit and credit when the
// operation name demands it. It returns the applied rule, or nil when no
// rule matched or nothing had to move.
func ApplyPostingRules(entry *ParsedEntry) *PostingRule {
	for i := range PostingRules {
		rule := &PostingRules[i]
		if !strings.HasPrefix(entry.TypeOfOperation, rule.Prefix) {
			continue
		}
		switch rule.Column {
		case ColumnCredit:
			if entry.Debit > 0 && entry.Credit == 0 {
				entry.Credit = entry.Debit
				entry.Debit = 0
				return rule
			}
		case ColumnDebit:
			if entry.Credit > 0 && entry.Debit == 0 {
				entry.Debit = entry.Credit
				entry.Credit = 0
				return rule
			}
		}
		return nil
	}
	return nil
}
