// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/bookmate/backend/internal/application/adapter"
)

// GeminiExtractor implements the AIExtractor interface using Google Gemini.
// It is the fallback for quick-entry lines the heuristic parser could not
// read with enough confidence.
type GeminiExtractor struct {
	apiKey    string
	modelName string
}

// NewGeminiExtractor creates a new Gemini extractor instance.
func NewGeminiExtractor(apiKey, modelName string) *GeminiExtractor {
	return &GeminiExtractor{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the extractor is configured.
func (s *GeminiExtractor) IsAvailable() bool {
	return s.apiKey != ""
}

// geminiExtraction is the JSON shape the model is asked to produce.
type geminiExtraction struct {
	Day             string  `json:"day"`
	Month           string  `json:"month"`
	Year            string  `json:"year"`
	Property        string  `json:"property"`
	TypeOfOperation string  `json:"type_of_operation"`
	TypeOfPayment   string  `json:"type_of_payment"`
	Detail          string  `json:"detail"`
	Debit           float64 `json:"debit"`
	Credit          float64 `json:"credit"`
	Confidence      float64 `json:"confidence"`
	Reasoning       string  `json:"reasoning"`
}

// Extract asks Gemini to read one quick-entry line into entry fields.
func (s *GeminiExtractor) Extract(ctx context.Context, request *adapter.ExtractionRequest) (*adapter.ExtractionResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini extractor is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(request)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	result, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result, nil
}

// buildPrompt creates the extraction prompt for Gemini.
func (s *GeminiExtractor) buildPrompt(request *adapter.ExtractionRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are a bookkeeping assistant. Extract a ledger entry from one line of free text.

RULES:
- property, type_of_operation and type_of_payment MUST be chosen verbatim from the lists below, or left empty when nothing fits.
- Exactly one of debit/credit carries the amount. Operations starting with "Revenue" post as credit, operations starting with "EXP" post as debit.
- day is numeric, month is a 3-letter English abbreviation (e.g. "Oct"), year is Gregorian. Convert Buddhist Era years (year - 543). Leave date fields empty when no date appears.
- detail is the leftover descriptive text.
- confidence is your overall certainty in [0,1].
- Respond with a single JSON object using keys: day, month, year, property, type_of_operation, type_of_payment, detail, debit, credit, confidence, reasoning.

VALID PROPERTIES:
`)
	for _, v := range request.Properties {
		sb.WriteString("- " + v + "\n")
	}
	sb.WriteString("\nVALID OPERATION TYPES:\n")
	for _, v := range request.Operations {
		sb.WriteString("- " + v + "\n")
	}
	sb.WriteString("\nVALID PAYMENT TYPES:\n")
	for _, v := range request.Payments {
		sb.WriteString("- " + v + "\n")
	}

	sb.WriteString("\nINPUT LINE:\n")
	sb.WriteString(request.Input)
	sb.WriteString("\n")

	return sb.String()
}

// parseResponse extracts the JSON object from the model response.
func (s *GeminiExtractor) parseResponse(resp *genai.GenerateContentResponse) (*adapter.ExtractionResult, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty response from model")
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text += string(t)
		}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("no text part in model response")
	}

	var extraction geminiExtraction
	if err := json.Unmarshal([]byte(text), &extraction); err != nil {
		return nil, fmt.Errorf("failed to unmarshal extraction JSON: %w", err)
	}

	if extraction.Confidence < 0 {
		extraction.Confidence = 0
	}
	if extraction.Confidence > 1 {
		extraction.Confidence = 1
	}

	return &adapter.ExtractionResult{
		Day:             extraction.Day,
		Month:           extraction.Month,
		Year:            extraction.Year,
		Property:        extraction.Property,
		TypeOfOperation: extraction.TypeOfOperation,
		TypeOfPayment:   extraction.TypeOfPayment,
		Detail:          extraction.Detail,
		Debit:           extraction.Debit,
		Credit:          extraction.Credit,
		Confidence:      extraction.Confidence,
		Reasoning:       extraction.Reasoning,
	}, nil
}
