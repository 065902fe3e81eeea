package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bookmate/backend/internal/application/adapter"
)

// EmailReportInput represents the request to email a monthly P&L.
type EmailReportInput struct {
	OwnerID uuid.UUID
	Year    int
	Month   time.Month
	To      string
}

// EmailReportOutput carries the provider acknowledgement.
type EmailReportOutput struct {
	ProviderID string
}

// EmailReportUseCase renders a monthly P&L and delivers it by email.
type EmailReportUseCase struct {
	profitLoss  *GetProfitLossUseCase
	emailSender adapter.EmailSender
}

// NewEmailReportUseCase creates a new EmailReportUseCase instance.
func NewEmailReportUseCase(profitLoss *GetProfitLossUseCase, emailSender adapter.EmailSender) *EmailReportUseCase {
	return &EmailReportUseCase{
		profitLoss:  profitLoss,
		emailSender: emailSender,
	}
}

// Execute builds and sends the report email.
func (uc *EmailReportUseCase) Execute(ctx context.Context, input EmailReportInput) (*EmailReportOutput, error) {
	statement, err := uc.profitLoss.Execute(ctx, ProfitLossInput{
		OwnerID: input.OwnerID,
		Year:    input.Year,
		Month:   input.Month,
	})
	if err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("P&L %s %d", input.Month, input.Year)
	result, err := uc.emailSender.Send(ctx, adapter.SendEmailInput{
		To:      input.To,
		Subject: subject,
		HTML:    renderHTML(statement),
		Text:    renderText(statement),
	})
	if err != nil {
		return nil, err
	}

	return &EmailReportOutput{ProviderID: result.ProviderID}, nil
}

func renderText(s *ProfitLossOutput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Profit & Loss - %s %d\n\n", s.Month, s.Year)
	for _, line := range s.Lines {
		fmt.Fprintf(&b, "%-10s %-40s %s\n", line.Kind, line.TypeOfOperation, line.Total.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nIncome:  %s\n", s.Income.StringFixed(2))
	fmt.Fprintf(&b, "Expense: %s\n", s.Expense.StringFixed(2))
	fmt.Fprintf(&b, "Net:     %s\n", s.Net.StringFixed(2))
	return b.String()
}

func renderHTML(s *ProfitLossOutput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Profit &amp; Loss - %s %d</h2>", s.Month, s.Year)
	b.WriteString("<table><tr><th>Kind</th><th>Operation</th><th>Total</th></tr>")
	for _, line := range s.Lines {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td></tr>",
			line.Kind, line.TypeOfOperation, line.Total.StringFixed(2))
	}
	b.WriteString("</table>")
	fmt.Fprintf(&b, "<p>Income: %s<br>Expense: %s<br><strong>Net: %s</strong></p>",
		s.Income.StringFixed(2), s.Expense.StringFixed(2), s.Net.StringFixed(2))
	return b.String()
}
