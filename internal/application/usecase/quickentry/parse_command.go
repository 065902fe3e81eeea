// Package quickentry contains the quick-entry parsing use cases.
package quickentry

import (
	"context"
	"strings"

	"github.com/bookmate/backend/internal/application/adapter"
	"github.com/bookmate/backend/internal/application/usecase/options"
	"github.com/bookmate/backend/internal/domain/command"
	"github.com/bookmate/backend/internal/domain/entity"
	"github.com/bookmate/backend/internal/domain/matching"
)

// ParseCommandInput represents the free-text line to parse.
type ParseCommandInput struct {
	Line string
}

// ParseCommandOutput carries the parse result and whether the AI fallback
// contributed to it.
type ParseCommandOutput struct {
	Result command.ParseResult
	UsedAI bool
}

// ParseCommandUseCase parses a quick-entry line against the stored option
// catalogs, escalating to AI extraction when the heuristic parse is not
// confident enough.
type ParseCommandUseCase struct {
	getOptions *options.GetOptionsUseCase
	extractor  adapter.AIExtractor
}

// NewParseCommandUseCase creates a new ParseCommandUseCase instance.
// The extractor may be nil when no AI fallback is configured.
func NewParseCommandUseCase(getOptions *options.GetOptionsUseCase, extractor adapter.AIExtractor) *ParseCommandUseCase {
	return &ParseCommandUseCase{
		getOptions: getOptions,
		extractor:  extractor,
	}
}

// Execute runs the heuristic parser and, when it is not confident, merges
// in the AI extraction result. A failing AI call never fails the parse; the
// heuristic draft is returned as-is in that case.
func (uc *ParseCommandUseCase) Execute(ctx context.Context, input ParseCommandInput) (*ParseCommandOutput, error) {
	matcher, err := uc.loadMatcher(ctx)
	if err != nil {
		return nil, err
	}

	parser := command.NewParser(matcher)
	result := parser.Parse(input.Line)

	if result.OK || uc.extractor == nil || !uc.extractor.IsAvailable() || result.Data == nil {
		return &ParseCommandOutput{Result: result}, nil
	}

	extracted, err := uc.extractor.Extract(ctx, &adapter.ExtractionRequest{
		Input:      input.Line,
		Properties: matcher.Properties.Values,
		Operations: matcher.Operations.Values,
		Payments:   matcher.Payments.Values,
	})
	if err != nil {
		result.Reasons = append(result.Reasons, "ai extraction failed: "+err.Error())
		return &ParseCommandOutput{Result: result}, nil
	}

	merged := mergeExtraction(result, extracted, matcher, input.Line)
	return &ParseCommandOutput{Result: merged, UsedAI: true}, nil
}

func (uc *ParseCommandUseCase) loadMatcher(ctx context.Context) (*matching.Matcher, error) {
	properties, err := uc.getOptions.Execute(ctx, options.GetOptionsInput{Field: entity.OptionFieldProperty})
	if err != nil {
		return nil, err
	}
	operations, err := uc.getOptions.Execute(ctx, options.GetOptionsInput{Field: entity.OptionFieldOperation})
	if err != nil {
		return nil, err
	}
	payments, err := uc.getOptions.Execute(ctx, options.GetOptionsInput{Field: entity.OptionFieldPayment})
	if err != nil {
		return nil, err
	}
	return matching.NewMatcher(
		properties.Set.Catalog(),
		operations.Set.Catalog(),
		payments.Set.Catalog(),
	), nil
}

// mergeExtraction overlays the AI result onto the heuristic draft. The AI
// only fills fields the parser left at their defaults, AI values are snapped
// back onto the catalogs through the matcher, and the user's literal text is
// preserved as the detail.
func mergeExtraction(result command.ParseResult, extracted *adapter.ExtractionResult, matcher *matching.Matcher, line string) command.ParseResult {
	data := result.Data

	if data.Debit == 0 && data.Credit == 0 {
		data.Debit = extracted.Debit
		data.Credit = extracted.Credit
	}

	if data.TypeOfOperation == "" && extracted.TypeOfOperation != "" {
		if snapped := matcher.MatchTypeOfOperation(extracted.TypeOfOperation, ""); snapped.Matched {
			data.TypeOfOperation = snapped.Value
		}
	}
	if data.Property == matching.DefaultProperty && extracted.Property != "" {
		if snapped := matcher.MatchProperty(extracted.Property, ""); snapped.Matched {
			data.Property = snapped.Value
		}
	}
	if data.TypeOfPayment == matching.DefaultPayment && extracted.TypeOfPayment != "" {
		if snapped := matcher.MatchTypeOfPayment(extracted.TypeOfPayment, ""); snapped.Matched {
			data.TypeOfPayment = snapped.Value
		}
	}

	data.Detail = strings.TrimSpace(line)
	command.ApplyPostingRules(data)

	confidence := result.Confidence
	if extracted.Confidence > confidence {
		confidence = extracted.Confidence
	}
	if confidence > 1.0 {
		confidence = 1.0
	}

	reasons := append(result.Reasons, "merged ai extraction")
	if extracted.Reasoning != "" {
		reasons = append(reasons, "ai: "+extracted.Reasoning)
	}

	amountFound := data.Debit > 0 || data.Credit > 0
	return command.ParseResult{
		OK:         confidence >= command.OKThreshold && amountFound && data.TypeOfOperation != "",
		Data:       data,
		Confidence: confidence,
		Reasons:    reasons,
	}
}
