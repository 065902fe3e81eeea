package quickentry

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bookmate/backend/internal/application/adapter"
	"github.com/bookmate/backend/internal/application/usecase/options"
	"github.com/bookmate/backend/internal/domain/entity"
	domainerror "github.com/bookmate/backend/internal/domain/error"
	"github.com/bookmate/backend/internal/domain/matching"
)

// defaultsOnlyRepo reports nothing stored, so every catalog falls back to
// the built-in defaults.
type defaultsOnlyRepo struct{}

func (defaultsOnlyRepo) FindByField(context.Context, entity.OptionField) (*entity.OptionSet, error) {
	return nil, domainerror.ErrOptionSetNotFound
}

func (defaultsOnlyRepo) FindAll(context.Context) ([]*entity.OptionSet, error) {
	return nil, nil
}

func (defaultsOnlyRepo) Replace(context.Context, *entity.OptionSet) error {
	return nil
}

func (defaultsOnlyRepo) EnsureDefaults(context.Context) error {
	return nil
}

type stubExtractor struct {
	result    *adapter.ExtractionResult
	err       error
	available bool
	calls     int
}

func (s *stubExtractor) Extract(_ context.Context, _ *adapter.ExtractionRequest) (*adapter.ExtractionResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubExtractor) IsAvailable() bool {
	return s.available
}

func newParseUseCase(extractor adapter.AIExtractor) *ParseCommandUseCase {
	getOptions := options.NewGetOptionsUseCase(defaultsOnlyRepo{}, nil)
	return NewParseCommandUseCase(getOptions, extractor)
}

func TestParseCommandConfidentLineSkipsAI(t *testing.T) {
	extractor := &stubExtractor{available: true}
	uc := newParseUseCase(extractor)

	out, err := uc.Execute(context.Background(), ParseCommandInput{
		Line: "alesia - 2000 - debit - cash - landscaping",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Result.OK {
		t.Errorf("OK = false, reasons: %v", out.Result.Reasons)
	}
	if out.UsedAI {
		t.Error("UsedAI = true, want false")
	}
	if extractor.calls != 0 {
		t.Errorf("extractor called %d times, want 0", extractor.calls)
	}
	if out.Result.Data.Property != "Alesia House" {
		t.Errorf("Property = %q, want Alesia House", out.Result.Data.Property)
	}
}

func TestParseCommandMergesAIExtraction(t *testing.T) {
	extractor := &stubExtractor{
		available: true,
		result: &adapter.ExtractionResult{
			TypeOfOperation: "EXP - Office Supplies",
			Confidence:      0.9,
			Reasoning:       "coffee reads as an office expense",
		},
	}
	uc := newParseUseCase(extractor)

	out, err := uc.Execute(context.Background(), ParseCommandInput{Line: "coffee 50"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.UsedAI {
		t.Fatal("UsedAI = false, want true")
	}
	if !out.Result.OK {
		t.Errorf("OK = false, reasons: %v", out.Result.Reasons)
	}
	data := out.Result.Data
	if data.TypeOfOperation != "EXP - Office Supplies" {
		t.Errorf("TypeOfOperation = %q, want EXP - Office Supplies", data.TypeOfOperation)
	}
	if data.Debit != 50 {
		t.Errorf("Debit = %v, want the heuristic amount 50", data.Debit)
	}
	if data.Detail != "coffee 50" {
		t.Errorf("Detail = %q, want the literal line", data.Detail)
	}
	if out.Result.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", out.Result.Confidence)
	}
	found := false
	for _, reason := range out.Result.Reasons {
		if strings.HasPrefix(reason, "ai: ") {
			found = true
		}
	}
	if !found {
		t.Errorf("reasons %v missing the ai reasoning", out.Result.Reasons)
	}
}

func TestParseCommandSnapsAIValuesOntoCatalog(t *testing.T) {
	extractor := &stubExtractor{
		available: true,
		result: &adapter.ExtractionResult{
			Property:        "lanna",
			TypeOfOperation: "EXP - Utilities",
			TypeOfPayment:   "bank transfer",
			Confidence:      0.85,
		},
	}
	uc := newParseUseCase(extractor)

	out, err := uc.Execute(context.Background(), ParseCommandInput{Line: "monthly bill 1200"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.UsedAI {
		t.Fatal("UsedAI = false, want true")
	}
	data := out.Result.Data
	if data.Property != "Lanna House" {
		t.Errorf("Property = %q, want Lanna House", data.Property)
	}
	if data.TypeOfPayment != "Bank Transfer" {
		t.Errorf("TypeOfPayment = %q, want Bank Transfer", data.TypeOfPayment)
	}
	if data.TypeOfOperation != "EXP - Utilities" {
		t.Errorf("TypeOfOperation = %q, want EXP - Utilities", data.TypeOfOperation)
	}
	if data.Debit != 1200 {
		t.Errorf("Debit = %v, want 1200", data.Debit)
	}
}

func TestParseCommandExtractorFailureKeepsHeuristicDraft(t *testing.T) {
	extractor := &stubExtractor{available: true, err: errors.New("model overloaded")}
	uc := newParseUseCase(extractor)

	out, err := uc.Execute(context.Background(), ParseCommandInput{Line: "coffee 50"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.UsedAI {
		t.Error("UsedAI = true, want false")
	}
	if out.Result.OK {
		t.Error("OK = true, want false")
	}
	if out.Result.Data.Debit != 50 {
		t.Errorf("Debit = %v, want 50", out.Result.Data.Debit)
	}
	found := false
	for _, reason := range out.Result.Reasons {
		if strings.Contains(reason, "ai extraction failed") {
			found = true
		}
	}
	if !found {
		t.Errorf("reasons %v missing the ai failure note", out.Result.Reasons)
	}
}

func TestParseCommandWithoutExtractor(t *testing.T) {
	uc := newParseUseCase(nil)

	out, err := uc.Execute(context.Background(), ParseCommandInput{Line: "coffee 50"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.UsedAI {
		t.Error("UsedAI = true, want false")
	}
	if out.Result.OK {
		t.Error("OK = true, want false")
	}
	if out.Result.Data.Property != matching.DefaultProperty {
		t.Errorf("Property = %q, want the default", out.Result.Data.Property)
	}
}

func TestParseCommandUnavailableExtractorIsSkipped(t *testing.T) {
	extractor := &stubExtractor{available: false}
	uc := newParseUseCase(extractor)

	out, err := uc.Execute(context.Background(), ParseCommandInput{Line: "coffee 50"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.UsedAI || extractor.calls != 0 {
		t.Errorf("extractor used while unavailable: calls=%d usedAI=%v", extractor.calls, out.UsedAI)
	}
}
