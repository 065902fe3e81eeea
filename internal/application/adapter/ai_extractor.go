package adapter

import "context"

// ExtractionRequest carries one free-text line plus the valid catalog values
// the model must choose from.
type ExtractionRequest struct {
	Input      string
	Properties []string
	Operations []string
	Payments   []string
}

// ExtractionResult is the AI's structured reading of the input line.
// Empty strings and zero amounts mean the model could not determine a field.
type ExtractionResult struct {
	Day             string
	Month           string
	Year            string
	Property        string
	TypeOfOperation string
	TypeOfPayment   string
	Detail          string
	Debit           float64
	Credit          float64
	Confidence      float64
	Reasoning       string
}

// AIExtractor defines the interface for the AI extraction fallback used when
// heuristic parsing is not confident enough.
type AIExtractor interface {
	// Extract asks the model to read the input line into entry fields.
	Extract(ctx context.Context, request *ExtractionRequest) (*ExtractionResult, error)

	// IsAvailable checks if the extractor is configured and usable.
	IsAvailable() bool
}
