package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no fence",
			in:   `{"sex": "f"}`,
			want: `{"sex": "f"}`,
		},
		{
			name: "json fence",
			in:   "```json\n{\"sex\": \"f\"}\n```",
			want: `{"sex": "f"}`,
		},
		{
			name: "bare fence",
			in:   "```\n{\"sex\": \"f\"}\n```",
			want: `{"sex": "f"}`,
		},
		{
			name: "prose around the fence",
			in:   "Here is the look:\n```json\n{\"sex\": \"f\"}\n```\nEnjoy!",
			want: `{"sex": "f"}`,
		},
		{
			name: "unterminated fence",
			in:   "```json\n{\"sex\": \"f\"}",
			want: `{"sex": "f"}`,
		},
		{
			name: "surrounding whitespace",
			in:   "  \n{\"sex\": \"f\"}\n  ",
			want: `{"sex": "f"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFence(tt.in))
		})
	}
}

func TestFallbackLook(t *testing.T) {
	look := FallbackLook()

	assert.Equal(t, "unisex", look.Sex)
	assert.Equal(t, "shirt", look.Top[0].Category)
	assert.Equal(t, "pants", look.Bottom[0].Category)
	assert.Equal(t, "sneakers", look.Shoes[0].Category)
	assert.Empty(t, look.Full)
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{APIKey: "test", Model: "test-model", MaxRetries: -3})
	assert.Equal(t, 0, c.maxRetries, "negative retries clamp to zero")
	assert.Equal(t, "test-model", c.model)
}

func TestExtractMessageContent(t *testing.T) {
	t.Run("nil response", func(t *testing.T) {
		_, err := extractMessageContent(nil)
		assert.Error(t, err)
	})
}
