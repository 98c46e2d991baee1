package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testQuote struct {
	Provider string  `json:"provider"`
	Price    int     `json:"price"`
	Rating   float64 `json:"rating"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	raw := `{"provider":"Saarthi Express","price":2500,"rating":4.5}`
	result, err := ExtractJSON[testQuote](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Saarthi Express", result.Provider)
	assert.Equal(t, 2500, result.Price)
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"provider\":\"Kisan Logistics\",\"price\":1800}\n```"
	result, err := ExtractJSON[testQuote](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Kisan Logistics", result.Provider)
	assert.Equal(t, 1800, result.Price)
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := "Here are your quotes:\n{\"provider\":\"Speedy Transport\",\"price\":4500}\nSafe travels!"
	result, err := ExtractJSON[testQuote](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Speedy Transport", result.Provider)
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	type nested struct {
		Options []testQuote `json:"options"`
	}
	raw := `{"options":[{"provider":"Saarthi Express","price":2500},{"provider":"Kisan Logistics","price":1800}]}`
	result, err := ExtractJSON[nested](raw, nil)
	require.NoError(t, err)
	require.Len(t, result.Options, 2)
	assert.Equal(t, 1800, result.Options[1].Price)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	raw := "I cannot help with that."
	_, err := ExtractJSON[testQuote](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	raw := `{"provider":"X", broken}`
	_, err := ExtractJSON[testQuote](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_CommentsStripped(t *testing.T) {
	raw := `{
		"provider": "Saarthi Express", // the default carrier
		"price": 2500
	}`
	result, err := ExtractJSON[testQuote](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 2500, result.Price)
}

func TestExtractJSON_ValidationFailure(t *testing.T) {
	raw := `{"provider":"X","price":-5}`
	validator := func(q testQuote) error {
		if q.Price < 0 {
			return fmt.Errorf("price must be non-negative, got %d", q.Price)
		}
		return nil
	}
	_, err := ExtractJSON(raw, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestExtractJSON_ValidationSuccess(t *testing.T) {
	raw := `{"provider":"Saarthi Express","price":2500}`
	validator := func(q testQuote) error {
		if q.Provider == "" {
			return fmt.Errorf("missing provider")
		}
		return nil
	}
	result, err := ExtractJSON(raw, validator)
	require.NoError(t, err)
	assert.Equal(t, "Saarthi Express", result.Provider)
}

func TestExtractJSON_MultipleFences(t *testing.T) {
	raw := "Some text\n```\n{\"provider\":\"Speedy Transport\",\"price\":4500}\n```\nMore text"
	result, err := ExtractJSON[testQuote](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Speedy Transport", result.Provider)
}
