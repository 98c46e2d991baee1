package intelligence

import (
	"context"
	"testing"

	"saarthi/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportService_FallbackWhenLLMUnavailable(t *testing.T) {
	svc := NewSupportService(&mockLLMClient{err: llm.ErrOllamaUnavailable})

	conv, reply := svc.StartChat(context.Background(), "my payment is stuck")

	require.NotNil(t, conv)
	assert.Equal(t, "deterministic", reply.Source)
	assert.Contains(t, reply.Text, "Wallet")
}

func TestSupportService_NilClientIsDeterministic(t *testing.T) {
	svc := NewSupportService(nil)

	_, reply := svc.StartChat(context.Background(), "where is my shipment")

	assert.Equal(t, "deterministic", reply.Source)
	assert.Contains(t, reply.Text, "Track Shipment")
}

func TestSupportService_ValidLLMResponse(t *testing.T) {
	client := &mockLLMClient{response: "Try these steps:\n  - one\n  - two\n  - three"}
	svc := NewSupportService(client)

	conv, reply := svc.StartChat(context.Background(), "driver is not answering")

	assert.Equal(t, "llm", reply.Source)
	assert.Contains(t, reply.Text, "Try these steps")
	require.Len(t, conv.Turns, 2)
	assert.Equal(t, "User", conv.Turns[0].Role)
	assert.Equal(t, "Assistant", conv.Turns[1].Role)
}

func TestSupportService_EmptyLLMResponseFallsBack(t *testing.T) {
	svc := NewSupportService(&mockLLMClient{response: "   \n"})

	_, reply := svc.StartChat(context.Background(), "rate kya hai")

	assert.Equal(t, "deterministic", reply.Source)
}

func TestSupportService_NextTurnGrowsConversation(t *testing.T) {
	client := &mockLLMClient{response: "ok"}
	svc := NewSupportService(client)

	conv, _ := svc.StartChat(context.Background(), "booking help")
	reply := svc.NextTurn(context.Background(), conv, "and how do I cancel?")

	assert.NotNil(t, reply)
	assert.Len(t, conv.Turns, 4)
	assert.Equal(t, 2, client.calls)
}

func TestSupportService_NextTurnNilConversation(t *testing.T) {
	svc := NewSupportService(nil)
	reply := svc.NextTurn(context.Background(), nil, "help")
	assert.NotNil(t, reply)
}

func TestDeterministicAdvice_TopicMatching(t *testing.T) {
	cases := map[string]string{
		"my wallet shows wrong balance": "transaction",
		"shipment is stuck near Pune":   "Track Shipment",
		"how to cancel a booking":       "SA-",
		"what is the onion bhav":        "Mandi Rates",
		"something else entirely":       "1800-SAARTHI",
	}
	for issue, want := range cases {
		reply := DeterministicAdvice(issue)
		assert.Equal(t, "deterministic", reply.Source)
		assert.Contains(t, reply.Text, want, issue)
	}
}
