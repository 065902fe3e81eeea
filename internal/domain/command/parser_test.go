package command

import (
	"math"
	"testing"
	"time"

	"github.com/bookmate/backend/internal/domain/matching"
)

func newTestParser() *Parser {
	p := NewParser(matching.NewDefaultMatcher())
	p.now = func() time.Time {
		return time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	}
	return p
}

func TestParseEmptyInput(t *testing.T) {
	p := newTestParser()

	result := p.Parse("   ")
	if result.OK {
		t.Error("expected OK=false for empty input")
	}
	if result.Data != nil {
		t.Errorf("expected nil data, got %+v", result.Data)
	}
	if result.Confidence != 0 {
		t.Errorf("confidence = %v, want 0", result.Confidence)
	}
}

func TestParseFullCommandLine(t *testing.T) {
	p := newTestParser()

	result := p.Parse("alesia - 2000 - debit - cash - landscaping")
	if !result.OK {
		t.Fatalf("expected OK=true, got %+v", result)
	}
	if math.Abs(result.Confidence-1.0) > 1e-9 {
		t.Errorf("confidence = %v, want 1.0", result.Confidence)
	}

	data := result.Data
	if data.Property != "Alesia House" {
		t.Errorf("property = %q, want Alesia House", data.Property)
	}
	if data.TypeOfPayment != "Cash" {
		t.Errorf("payment = %q, want Cash", data.TypeOfPayment)
	}
	if data.Debit != 2000 || data.Credit != 0 {
		t.Errorf("amounts = debit %v / credit %v, want 2000 / 0", data.Debit, data.Credit)
	}
	if data.Detail != "landscaping" {
		t.Errorf("detail = %q, want landscaping", data.Detail)
	}
	// No date in the line, so the clock supplies one.
	if data.Day != "31" || data.Month != "Aug" || data.Year != "2026" {
		t.Errorf("date = %s %s %s, want 31 Aug 2026", data.Day, data.Month, data.Year)
	}
}

func TestParseCreditLine(t *testing.T) {
	p := newTestParser()

	result := p.Parse("200 revenue rental sia")
	if !result.OK {
		t.Fatalf("expected OK=true, got %+v", result)
	}

	data := result.Data
	if data.Credit != 200 || data.Debit != 0 {
		t.Errorf("amounts = debit %v / credit %v, want 0 / 200", data.Debit, data.Credit)
	}
	if data.TypeOfOperation != "Revenue - Rental" {
		t.Errorf("operation = %q, want Revenue - Rental", data.TypeOfOperation)
	}
	if data.Property != matching.DefaultProperty {
		t.Errorf("property = %q, want %q", data.Property, matching.DefaultProperty)
	}
	if data.Detail != "Manual entry" {
		t.Errorf("detail = %q, want Manual entry", data.Detail)
	}
}

func TestParseBuddhistEraDate(t *testing.T) {
	p := newTestParser()

	result := p.Parse("27/10/2568 500 cash")

	data := result.Data
	if data.Day != "27" || data.Month != "Oct" || data.Year != "2025" {
		t.Errorf("date = %s %s %s, want 27 Oct 2025", data.Day, data.Month, data.Year)
	}
	// The date digits must not be mistaken for the amount.
	if data.Debit != 500 {
		t.Errorf("debit = %v, want 500", data.Debit)
	}
	if math.Abs(result.Confidence-0.7) > 1e-9 {
		t.Errorf("confidence = %v, want 0.7", result.Confidence)
	}
	// No type keyword and no operation: not confident enough to auto-apply.
	if result.OK {
		t.Error("expected OK=false without operation or type keyword")
	}
}

func TestParsePostingRuleOverridesTypeKeyword(t *testing.T) {
	p := newTestParser()

	// "deposit" reads as credit, but a repair is an expense and the
	// posting rule moves the amount to the debit column.
	result := p.Parse("deposit 300 repair maria")
	if !result.OK {
		t.Fatalf("expected OK=true, got %+v", result)
	}

	data := result.Data
	if data.TypeOfOperation != "EXP - Repairs & Maintenance" {
		t.Errorf("operation = %q, want EXP - Repairs & Maintenance", data.TypeOfOperation)
	}
	if data.Debit != 300 || data.Credit != 0 {
		t.Errorf("amounts = debit %v / credit %v, want 300 / 0", data.Debit, data.Credit)
	}
	if data.Property != "Maria House" {
		t.Errorf("property = %q, want Maria House", data.Property)
	}
}

func TestParseCurrencyAndGrouping(t *testing.T) {
	p := newTestParser()

	result := p.Parse("฿2,000 transfer rental")

	data := result.Data
	if data.Credit != 2000 {
		t.Errorf("credit = %v, want 2000", data.Credit)
	}
	if data.TypeOfPayment != "Bank Transfer" {
		t.Errorf("payment = %q, want Bank Transfer", data.TypeOfPayment)
	}
	if data.TypeOfOperation != "Revenue - Rental" {
		t.Errorf("operation = %q, want Revenue - Rental", data.TypeOfOperation)
	}
}

func TestParseLowConfidenceLine(t *testing.T) {
	p := newTestParser()

	result := p.Parse("coffee 50")
	if result.OK {
		t.Errorf("expected OK=false, got %+v", result)
	}

	data := result.Data
	if data.Debit != 50 {
		t.Errorf("debit = %v, want 50", data.Debit)
	}
	if data.Property != matching.DefaultProperty {
		t.Errorf("property = %q, want default", data.Property)
	}
	if data.TypeOfPayment != matching.DefaultPayment {
		t.Errorf("payment = %q, want default", data.TypeOfPayment)
	}
	if data.TypeOfOperation != "" {
		t.Errorf("operation = %q, want empty", data.TypeOfOperation)
	}
}

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      float64
		wantRaw   string
		wantFound bool
	}{
		{name: "plain integer", input: "pay 500 now", want: 500, wantRaw: "500", wantFound: true},
		{name: "grouped thousands", input: "฿2,000 for rent", want: 2000, wantRaw: "2,000", wantFound: true},
		{name: "decimal", input: "2,000.50 total", want: 2000.50, wantRaw: "2,000.50", wantFound: true},
		{name: "currency word stripped", input: "500 baht", want: 500, wantRaw: "500", wantFound: true},
		{name: "millions", input: "1,234,567 sale", want: 1234567, wantRaw: "1,234,567", wantFound: true},
		{name: "no digits", input: "no amount here", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, raw, found := extractAmount(tt.input)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if !found {
				return
			}
			if got != tt.want || raw != tt.wantRaw {
				t.Errorf("got %v (%q), want %v (%q)", got, raw, tt.want, tt.wantRaw)
			}
		})
	}
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDay   string
		wantMonth string
		wantYear  string
		wantFound bool
	}{
		{name: "dmy slashes", input: "27/10/2025 rent", wantDay: "27", wantMonth: "Oct", wantYear: "2025", wantFound: true},
		{name: "dmy dashes", input: "paid 5-1-2026", wantDay: "5", wantMonth: "Jan", wantYear: "2026", wantFound: true},
		{name: "iso", input: "2025-10-27 rent", wantDay: "27", wantMonth: "Oct", wantYear: "2025", wantFound: true},
		{name: "buddhist era by magnitude", input: "27/10/2568", wantDay: "27", wantMonth: "Oct", wantYear: "2025", wantFound: true},
		{name: "explicit BE marker", input: "27/10/2568 BE", wantDay: "27", wantMonth: "Oct", wantYear: "2025", wantFound: true},
		{name: "invalid month", input: "27/13/2025", wantFound: false},
		{name: "invalid day", input: "45/10/2025", wantFound: false},
		{name: "no date", input: "just text 500", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extractDate(tt.input)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if !found {
				return
			}
			if got.day != tt.wantDay || got.month != tt.wantMonth || got.year != tt.wantYear {
				t.Errorf("got %s %s %s, want %s %s %s",
					got.day, got.month, got.year, tt.wantDay, tt.wantMonth, tt.wantYear)
			}
		})
	}
}
