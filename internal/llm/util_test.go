package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"key\": \"value\"}\n```"
	assert.Equal(t, `{"key": "value"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"key\": \"value\"}\n```"
	assert.Equal(t, `{"key": "value"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_LanguageIdentifier(t *testing.T) {
	input := "```javascript\n{\"key\": \"value\"}\n```"
	assert.Equal(t, `{"key": "value"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_NoFence(t *testing.T) {
	input := `{"key": "value"}`
	assert.Equal(t, input, CleanJSONBlock(input))
}

func TestCleanJSONBlock_Whitespace(t *testing.T) {
	assert.Equal(t, `{"a":1}`, CleanJSONBlock("  \n{\"a\":1}\n  "))
}
