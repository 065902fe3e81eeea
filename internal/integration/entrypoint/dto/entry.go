package dto

import (
	"github.com/bookmate/backend/internal/domain/entity"
)

// CreateEntryRequest represents the request body for ledger entry creation.
type CreateEntryRequest struct {
	Date            string  `json:"date" binding:"required"`
	Property        string  `json:"property" binding:"required,min=1,max=255"`
	TypeOfOperation string  `json:"type_of_operation" binding:"required,min=1,max=255"`
	TypeOfPayment   string  `json:"type_of_payment,omitempty" binding:"omitempty,max=255"`
	Detail          string  `json:"detail,omitempty" binding:"omitempty,max=1000"`
	Ref             string  `json:"ref,omitempty" binding:"omitempty,max=64"`
	Debit           float64 `json:"debit"`
	Credit          float64 `json:"credit"`
}

// EntryResponse represents a single ledger entry in API responses.
type EntryResponse struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Property        string `json:"property"`
	TypeOfOperation string `json:"type_of_operation"`
	TypeOfPayment   string `json:"type_of_payment"`
	Detail          string `json:"detail"`
	Ref             string `json:"ref,omitempty"`
	Debit           string `json:"debit"`
	Credit          string `json:"credit"`
	CreatedAt       string `json:"created_at"`
}

// EntryListResponse represents a month of ledger entries.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
	Total   int             `json:"total"`
}

// ToEntryResponse converts a domain LedgerEntry entity to a response DTO.
func ToEntryResponse(entry *entity.LedgerEntry) EntryResponse {
	return EntryResponse{
		ID:              entry.ID.String(),
		Date:            entry.Date.Format("2006-01-02"),
		Property:        entry.Property,
		TypeOfOperation: entry.TypeOfOperation,
		TypeOfPayment:   entry.TypeOfPayment,
		Detail:          entry.Detail,
		Ref:             entry.Ref,
		Debit:           entry.Debit.StringFixed(2),
		Credit:          entry.Credit.StringFixed(2),
		CreatedAt:       entry.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToEntryListResponse converts a slice of entries to a list response DTO.
func ToEntryListResponse(entries []*entity.LedgerEntry) EntryListResponse {
	responses := make([]EntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToEntryResponse(entry)
	}
	return EntryListResponse{
		Entries: responses,
		Total:   len(responses),
	}
}
