package intelligence

import (
	"context"
	"fmt"
	"strings"

	"saarthi/internal/llm"
)

// ConversationTurn is one message in a multi-turn exchange.
type ConversationTurn struct {
	Role    string // "User" or "Assistant"
	Content string
}

// SupportReply is one assistant response in the support chat.
type SupportReply struct {
	Text   string
	Source string // "llm" or "deterministic"
}

// SupportConversation holds multi-turn support chat state.
type SupportConversation struct {
	Turns []ConversationTurn
}

// SupportService answers user-reported issues in a chat loop.
type SupportService interface {
	// StartChat begins a support conversation with the first issue report.
	StartChat(ctx context.Context, issue string) (*SupportConversation, *SupportReply)

	// NextTurn continues an existing conversation.
	NextTurn(ctx context.Context, conv *SupportConversation, message string) *SupportReply
}

type supportService struct {
	client llm.Client
}

// NewSupportService creates a SupportService backed by an LLM client.
// A nil client always resolves deterministically.
func NewSupportService(client llm.Client) SupportService {
	return &supportService{client: client}
}

func (s *supportService) StartChat(ctx context.Context, issue string) (*SupportConversation, *SupportReply) {
	conv := &SupportConversation{}
	reply := s.resolveWithFallback(ctx, conv, issue)
	conv.Turns = append(conv.Turns,
		ConversationTurn{Role: "User", Content: issue},
		ConversationTurn{Role: "Assistant", Content: reply.Text},
	)
	return conv, reply
}

func (s *supportService) NextTurn(ctx context.Context, conv *SupportConversation, message string) *SupportReply {
	if conv == nil {
		conv = &SupportConversation{}
	}
	reply := s.resolveWithFallback(ctx, conv, message)
	conv.Turns = append(conv.Turns,
		ConversationTurn{Role: "User", Content: message},
		ConversationTurn{Role: "Assistant", Content: reply.Text},
	)
	return reply
}

func (s *supportService) resolveWithFallback(ctx context.Context, conv *SupportConversation, message string) *SupportReply {
	if s.client == nil {
		return DeterministicAdvice(message)
	}

	text, err := s.generate(ctx, conv, message)
	if err != nil {
		return DeterministicAdvice(message)
	}
	return &SupportReply{Text: text, Source: "llm"}
}

func (s *supportService) generate(ctx context.Context, conv *SupportConversation, message string) (string, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSupport,
		SystemPrompt: supportSystemPrompt,
		UserPrompt:   buildSupportUserPrompt(conv, message),
	})
	if err != nil {
		return "", fmt.Errorf("llm support generation failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty support response", llm.ErrInvalidOutput)
	}
	return text, nil
}

const supportSystemPrompt = `You are Saarthi, a helpful agri-logistics support assistant for Indian farmers.

Provide a concise, helpful response with 3 clear bullet points on what the user should do. Use simple English mixed with common Indian terms (Hinglish style) if appropriate to make it friendly. Format as plain text, no markdown fences. This is rendered in a terminal, keep it short.`

func buildSupportUserPrompt(conv *SupportConversation, message string) string {
	var b strings.Builder

	if conv != nil && len(conv.Turns) > 0 {
		b.WriteString("Previous conversation:\n")
		for _, turn := range conv.Turns {
			b.WriteString(turn.Role)
			b.WriteString(": ")
			b.WriteString(turn.Content)
			b.WriteString("\n\n")
		}
	}

	b.WriteString("The user has reported this issue: \"")
	b.WriteString(message)
	b.WriteString("\"")

	return b.String()
}
