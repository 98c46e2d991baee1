// Package intelligence holds the LLM-backed services. Every service has a
// deterministic fallback, so a missing or broken model never surfaces to the
// user as an error.
package intelligence

import (
	"context"
	"fmt"

	"saarthi/internal/domain"
	"saarthi/internal/llm"
)

// TransportQuotes is the result of a transport option search.
type TransportQuotes struct {
	Options []domain.TransportOption
	Source  string // "llm" or "deterministic"
}

// TransportService generates vehicle quotes for a booking request.
type TransportService interface {
	Quotes(ctx context.Context, req domain.BookingRequest) *TransportQuotes
}

type transportService struct {
	client llm.Client
}

// NewTransportService creates a TransportService backed by an LLM client.
// A nil client always resolves deterministically.
func NewTransportService(client llm.Client) TransportService {
	return &transportService{client: client}
}

// transportLLMResponse is the JSON structure expected from the LLM.
type transportLLMResponse struct {
	Options []domain.TransportOption `json:"options"`
}

func (s *transportService) Quotes(ctx context.Context, req domain.BookingRequest) *TransportQuotes {
	if s.client == nil {
		return &TransportQuotes{Options: DefaultTransportOptions(), Source: "deterministic"}
	}

	options, err := s.generate(ctx, req)
	if err != nil {
		return &TransportQuotes{Options: DefaultTransportOptions(), Source: "deterministic"}
	}
	return &TransportQuotes{Options: options, Source: "llm"}
}

func (s *transportService) generate(ctx context.Context, req domain.BookingRequest) ([]domain.TransportOption, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskTransport,
		SystemPrompt: transportSystemPrompt,
		UserPrompt:   buildTransportUserPrompt(req),
	})
	if err != nil {
		return nil, fmt.Errorf("llm quote generation failed: %w", err)
	}

	parsed, err := llm.ExtractJSON[transportLLMResponse](resp.Text, validateTransportResponse)
	if err != nil {
		return nil, fmt.Errorf("failed to extract quotes: %w", err)
	}

	options := parsed.Options
	if len(options) > 3 {
		options = options[:3]
	}
	for i := range options {
		if options[i].ID == "" {
			options[i].ID = fmt.Sprintf("%d", i+1)
		}
	}
	return options, nil
}

func validateTransportResponse(resp transportLLMResponse) error {
	if len(resp.Options) == 0 {
		return fmt.Errorf("options field is required")
	}
	for i, opt := range resp.Options {
		if opt.Provider == "" {
			return fmt.Errorf("option %d: provider is required", i)
		}
		if opt.Price <= 0 {
			return fmt.Errorf("option %d: price must be positive, got %d", i, opt.Price)
		}
	}
	return nil
}
