// Package report contains financial report use cases.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bookmate/backend/internal/application/adapter"
)

// LineKind distinguishes income from expense report lines.
type LineKind string

const (
	LineKindIncome  LineKind = "income"
	LineKindExpense LineKind = "expense"
)

// ReportLine is one operation type's total within the report month.
type ReportLine struct {
	TypeOfOperation string
	Kind            LineKind
	Total           decimal.Decimal
}

// ProfitLossInput represents the month to report on.
type ProfitLossInput struct {
	OwnerID uuid.UUID
	Year    int
	Month   time.Month
}

// ProfitLossOutput is a monthly profit and loss statement.
type ProfitLossOutput struct {
	Year       int
	Month      time.Month
	Income     decimal.Decimal
	Expense    decimal.Decimal
	Net        decimal.Decimal
	Lines      []ReportLine
	EntryCount int
}

// GetProfitLossUseCase aggregates one month of ledger entries into a P&L.
type GetProfitLossUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewGetProfitLossUseCase creates a new GetProfitLossUseCase instance.
func NewGetProfitLossUseCase(entryRepo adapter.EntryRepository) *GetProfitLossUseCase {
	return &GetProfitLossUseCase{entryRepo: entryRepo}
}

// Execute builds the statement. Credits aggregate as income and debits as
// expense, grouped by operation type.
func (uc *GetProfitLossUseCase) Execute(ctx context.Context, input ProfitLossInput) (*ProfitLossOutput, error) {
	entries, err := uc.entryRepo.FindByMonth(ctx, input.OwnerID, input.Year, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for report: %w", err)
	}

	income := decimal.Zero
	expense := decimal.Zero
	incomeByOp := make(map[string]decimal.Decimal)
	expenseByOp := make(map[string]decimal.Decimal)

	for _, e := range entries {
		if e.IsCredit() {
			income = income.Add(e.Credit)
			incomeByOp[e.TypeOfOperation] = incomeByOp[e.TypeOfOperation].Add(e.Credit)
		} else {
			expense = expense.Add(e.Debit)
			expenseByOp[e.TypeOfOperation] = expenseByOp[e.TypeOfOperation].Add(e.Debit)
		}
	}

	lines := make([]ReportLine, 0, len(incomeByOp)+len(expenseByOp))
	for op, total := range incomeByOp {
		lines = append(lines, ReportLine{TypeOfOperation: op, Kind: LineKindIncome, Total: total})
	}
	for op, total := range expenseByOp {
		lines = append(lines, ReportLine{TypeOfOperation: op, Kind: LineKindExpense, Total: total})
	}
	// Income lines first, then alphabetical, for a stable statement layout.
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Kind != lines[j].Kind {
			return lines[i].Kind == LineKindIncome
		}
		return lines[i].TypeOfOperation < lines[j].TypeOfOperation
	})

	return &ProfitLossOutput{
		Year:       input.Year,
		Month:      input.Month,
		Income:     income,
		Expense:    expense,
		Net:        income.Sub(expense),
		Lines:      lines,
		EntryCount: len(entries),
	}, nil
}
