package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fence with language", "```yaml\nkey: value\n```", "key: value"},
		{"no fence", `{"a": 1}`, `{"a": 1}`},
		{"surrounding whitespace", "  {\"a\": 1}  ", `{"a": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.in))
		})
	}
}

func TestTrimQuotes(t *testing.T) {
	assert.Equal(t, "hello", TrimQuotes(`"hello"`))
	assert.Equal(t, "hello", TrimQuotes("'hello'"))
	assert.Equal(t, "hello", TrimQuotes("“hello”"))
	assert.Equal(t, `say "hi"`, TrimQuotes(`say "hi"`), "interior quotes untouched")
	assert.Equal(t, `"nested"`, TrimQuotes(`""nested""`), "only one layer stripped")
	assert.Equal(t, `""`, TrimQuotes(`""`), "empty pair left alone")
}

func TestConfigModelFallback(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemini-2.5-pro", cfg.Model(TierAdvanced))

	cfg.Models = map[ModelTier]string{TierStandard: "only-standard"}
	assert.Equal(t, "only-standard", cfg.Model(TierAdvanced))

	cfg.Models = map[ModelTier]string{TierLite: "only-lite"}
	assert.Equal(t, "only-lite", cfg.Model(TierAdvanced))
}
