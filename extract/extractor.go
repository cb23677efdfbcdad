package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/newsdig/newsdig/llm"
)

// defaultMaxTokens bounds the extraction response. Entity lists are short;
// anything larger means the model is rambling.
const defaultMaxTokens = 2048

// Extractor extracts structured entities from text using an LLM.
type Extractor struct {
	client      *llm.Client
	temperature float64
	maxTokens   int
	logger      *slog.Logger
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithMaxTokens overrides the response token budget.
func WithMaxTokens(n int) ExtractorOption {
	return func(e *Extractor) {
		e.maxTokens = n
	}
}

// WithTemperature overrides the sampling temperature.
// The default of 0 keeps extraction deterministic.
func WithTemperature(t float64) ExtractorOption {
	return func(e *Extractor) {
		e.temperature = t
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ExtractorOption {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates a new entity extractor with the given LLM client.
func NewExtractor(client *llm.Client, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		client:    client,
		maxTokens: defaultMaxTokens,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractChunk extracts entities from a single chunk of text.
// Uses the "extraction" capability; temperature defaults to 0 for
// deterministic output.
func (e *Extractor) ExtractChunk(ctx context.Context, content string) (Result, error) {
	temp := e.temperature
	resp, err := e.client.Complete(ctx, llm.Request{
		Capability: "extraction",
		Messages: []llm.Message{
			{Role: "system", Content: extractionSystemPrompt},
			{Role: "user", Content: fmt.Sprintf(extractionUserPrompt, content)},
		},
		Temperature: &temp,
		MaxTokens:   e.maxTokens,
	})
	if err != nil {
		return Result{}, fmt.Errorf("LLM extraction failed: %w", err)
	}

	result, err := ParseResult(resp.Content)
	if err != nil {
		return Result{}, fmt.Errorf("parse extraction response: %w", err)
	}

	e.logger.Debug("Chunk extracted",
		"request_id", resp.RequestID,
		"model", resp.Model,
		"companies", len(result.Companies),
		"persons", len(result.Persons),
		"events", len(result.Events))

	return result, nil
}
