package intelligence

import (
	"context"

	"saarthi/internal/llm"
)

// mockLLMClient returns a canned response or error without any network I/O.
type mockLLMClient struct {
	response string
	err      error
	calls    int
}

func (m *mockLLMClient) Generate(_ context.Context, _ llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "mock"}, nil
}

func (m *mockLLMClient) Available(_ context.Context) bool {
	return m.err == nil
}
