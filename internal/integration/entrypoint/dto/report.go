package dto

import (
	"github.com/bookmate/backend/internal/application/usecase/report"
)

// EmailReportRequest represents the request body for emailing a P&L report.
type EmailReportRequest struct {
	To string `json:"to" binding:"required,email"`
}

// ReportLineResponse represents one operation type's total in the report.
type ReportLineResponse struct {
	TypeOfOperation string `json:"type_of_operation"`
	Kind            string `json:"kind"`
	Total           string `json:"total"`
}

// ProfitLossResponse represents a monthly profit and loss statement.
type ProfitLossResponse struct {
	Year       int                  `json:"year"`
	Month      string               `json:"month"`
	Income     string               `json:"income"`
	Expense    string               `json:"expense"`
	Net        string               `json:"net"`
	Lines      []ReportLineResponse `json:"lines"`
	EntryCount int                  `json:"entry_count"`
}

// EmailReportResponse acknowledges a delivered report email.
type EmailReportResponse struct {
	ProviderID string `json:"provider_id"`
}

// ToProfitLossResponse converts a use case output to a response DTO.
func ToProfitLossResponse(output *report.ProfitLossOutput) ProfitLossResponse {
	lines := make([]ReportLineResponse, len(output.Lines))
	for i, line := range output.Lines {
		lines[i] = ReportLineResponse{
			TypeOfOperation: line.TypeOfOperation,
			Kind:            string(line.Kind),
			Total:           line.Total.StringFixed(2),
		}
	}
	return ProfitLossResponse{
		Year:       output.Year,
		Month:      output.Month.String(),
		Income:     output.Income.StringFixed(2),
		Expense:    output.Expense.StringFixed(2),
		Net:        output.Net.StringFixed(2),
		Lines:      lines,
		EntryCount: output.EntryCount,
	}
}
