package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bookmate/backend/internal/domain/entity"
	domainerror "github.com/bookmate/backend/internal/domain/error"
)

// fakeEntryRepo serves a fixed slice of entries for FindByMonth.
type fakeEntryRepo struct {
	entries []*entity.LedgerEntry
	err     error
}

func (r *fakeEntryRepo) Create(_ context.Context, entry *entity.LedgerEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeEntryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.LedgerEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domainerror.ErrEntryNotFound
}

func (r *fakeEntryRepo) FindByMonth(_ context.Context, _ uuid.UUID, _ int, _ time.Month) ([]*entity.LedgerEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.entries, nil
}

func (r *fakeEntryRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrEntryNotFound
}

func testEntry(t *testing.T, ownerID uuid.UUID, operation string, debit, credit int64) *entity.LedgerEntry {
	t.Helper()
	e, err := entity.NewLedgerEntry(
		ownerID,
		time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
		"Alesia House", operation, "Cash", "test entry", "",
		decimal.NewFromInt(debit), decimal.NewFromInt(credit),
	)
	if err != nil {
		t.Fatalf("failed to build entry: %v", err)
	}
	return e
}

func TestProfitLossAggregation(t *testing.T) {
	ownerID := uuid.New()
	repo := &fakeEntryRepo{entries: []*entity.LedgerEntry{
		testEntry(t, ownerID, "Revenue - Rental", 0, 12000),
		testEntry(t, ownerID, "Revenue - Rental", 0, 8000),
		testEntry(t, ownerID, "Revenue - Commission", 0, 500),
		testEntry(t, ownerID, "EXP - Utilities", 1500, 0),
		testEntry(t, ownerID, "EXP - Construction - Materials", 4200, 0),
	}}
	uc := NewGetProfitLossUseCase(repo)

	out, err := uc.Execute(context.Background(), ProfitLossInput{
		OwnerID: ownerID,
		Year:    2026,
		Month:   time.August,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Income.Equal(decimal.NewFromInt(20500)) {
		t.Errorf("Income = %s, want 20500", out.Income)
	}
	if !out.Expense.Equal(decimal.NewFromInt(5700)) {
		t.Errorf("Expense = %s, want 5700", out.Expense)
	}
	if !out.Net.Equal(decimal.NewFromInt(14800)) {
		t.Errorf("Net = %s, want 14800", out.Net)
	}
	if out.EntryCount != 5 {
		t.Errorf("EntryCount = %d, want 5", out.EntryCount)
	}

	wantLines := []struct {
		operation string
		kind      LineKind
		total     int64
	}{
		{"Revenue - Commission", LineKindIncome, 500},
		{"Revenue - Rental", LineKindIncome, 20000},
		{"EXP - Construction - Materials", LineKindExpense, 4200},
		{"EXP - Utilities", LineKindExpense, 1500},
	}
	if len(out.Lines) != len(wantLines) {
		t.Fatalf("got %d lines, want %d", len(out.Lines), len(wantLines))
	}
	for i, want := range wantLines {
		got := out.Lines[i]
		if got.TypeOfOperation != want.operation || got.Kind != want.kind ||
			!got.Total.Equal(decimal.NewFromInt(want.total)) {
			t.Errorf("line %d = %s/%s/%s, want %s/%s/%d",
				i, got.Kind, got.TypeOfOperation, got.Total, want.kind, want.operation, want.total)
		}
	}
}

func TestProfitLossEmptyMonth(t *testing.T) {
	uc := NewGetProfitLossUseCase(&fakeEntryRepo{})

	out, err := uc.Execute(context.Background(), ProfitLossInput{
		OwnerID: uuid.New(),
		Year:    2026,
		Month:   time.January,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Net.IsZero() || out.EntryCount != 0 || len(out.Lines) != 0 {
		t.Errorf("empty month produced net=%s count=%d lines=%d", out.Net, out.EntryCount, len(out.Lines))
	}
}
