package dto

import (
	"github.com/bookmate/backend/internal/application/usecase/quickentry"
)

// ParseCommandRequest represents the request body for quick-entry parsing.
type ParseCommandRequest struct {
	Line string `json:"line" binding:"required,min=1,max=500"`
}

// ParsedEntryResponse represents the structured draft extracted from one line.
type ParsedEntryResponse struct {
	Day             string  `json:"day"`
	Month           string  `json:"month"`
	Year            string  `json:"year"`
	Property        string  `json:"property"`
	TypeOfOperation string  `json:"type_of_operation"`
	TypeOfPayment   string  `json:"type_of_payment"`
	Detail          string  `json:"detail"`
	Debit           float64 `json:"debit"`
	Credit          float64 `json:"credit"`
	Ref             string  `json:"ref,omitempty"`
}

// ParseCommandResponse represents the outcome of quick-entry parsing.
type ParseCommandResponse struct {
	OK         bool                 `json:"ok"`
	Data       *ParsedEntryResponse `json:"data,omitempty"`
	Confidence float64              `json:"confidence"`
	Reasons    []string             `json:"reasons,omitempty"`
	UsedAI     bool                 `json:"used_ai"`
}

// ToParseCommandResponse converts a use case output to a response DTO.
func ToParseCommandResponse(output *quickentry.ParseCommandOutput) ParseCommandResponse {
	response := ParseCommandResponse{
		OK:         output.Result.OK,
		Confidence: output.Result.Confidence,
		Reasons:    output.Result.Reasons,
		UsedAI:     output.UsedAI,
	}
	if output.Result.Data != nil {
		data := output.Result.Data
		response.Data = &ParsedEntryResponse{
			Day:             data.Day,
			Month:           data.Month,
			Year:            data.Year,
			Property:        data.Property,
			TypeOfOperation: data.TypeOfOperation,
			TypeOfPayment:   data.TypeOfPayment,
			Detail:          data.Detail,
			Debit:           data.Debit,
			Credit:          data.Credit,
			Ref:             data.Ref,
		}
	}
	return response
}
