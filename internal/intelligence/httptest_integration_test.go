package intelligence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saarthi/internal/domain"
	"saarthi/internal/llm"
)

// These tests exercise the full HTTP serialization path: httptest server →
// OllamaClient → service parsing. They catch mock-drift between the Ollama
// response format and what the services expect.

func newQuoteServer(t *testing.T, payload any) *httptest.Server {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"model":    "test-model",
			"response": string(body),
		})
	}))
}

func httpTestClient(t *testing.T, endpoint string) llm.Client {
	t.Helper()
	cfg := llm.DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.Model = "test-model"
	cfg.MaxRetries = 0
	return llm.NewOllamaClient(cfg, llm.NoopObserver{})
}

func TestTransportService_Quotes_WithHTTPTestServer(t *testing.T) {
	srv := newQuoteServer(t, map[string]any{
		"options": []map[string]any{
			{"id": "1", "provider": "Deccan Freight", "vehicle_type": "Tata 407", "price": 3100, "eta": "5 Hours", "rating": 4.4},
			{"provider": "Vidarbha Carriers", "vehicle_type": "Eicher 17ft", "price": 5200, "eta": "4 Hours", "rating": 4.1},
		},
	})
	defer srv.Close()

	svc := NewTransportService(httpTestClient(t, srv.URL))

	quotes := svc.Quotes(context.Background(), domain.BookingRequest{
		Source: "Nashik", Destination: "Mumbai", Crop: "Onion", Weight: "2 Tons",
	})

	assert.Equal(t, "llm", quotes.Source)
	require.Len(t, quotes.Options, 2)
	assert.Equal(t, "Deccan Freight", quotes.Options[0].Provider)
	assert.Equal(t, 3100, quotes.Options[0].Price)
	assert.Equal(t, "2", quotes.Options[1].ID)
}

func TestTransportService_Quotes_ServerError_FallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewTransportService(httpTestClient(t, srv.URL))

	quotes := svc.Quotes(context.Background(), domain.BookingRequest{Source: "Nashik", Destination: "Pune"})

	assert.Equal(t, "deterministic", quotes.Source)
	assert.Equal(t, DefaultTransportOptions(), quotes.Options)
}

func TestSupportService_StartChat_WithHTTPTestServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"model":    "test-model",
			"response": "Check the Track Shipment screen for live status.",
		})
	}))
	defer srv.Close()

	svc := NewSupportService(httpTestClient(t, srv.URL))

	conv, reply := svc.StartChat(context.Background(), "where is my load?")

	assert.Equal(t, "llm", reply.Source)
	assert.Contains(t, reply.Text, "Track Shipment")
	require.NotNil(t, conv)
	assert.Len(t, conv.Turns, 2)
}
