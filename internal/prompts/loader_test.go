package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	prompt, err := Get("chat.json", "persona-system")
	require.NoError(t, err)
	assert.Contains(t, prompt, "Kyle")
	assert.Contains(t, prompt, "{{.ProfileContext}}")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("chat.json", "does-not-exist")
	require.ErrorContains(t, err, "not found")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "any")
	require.Error(t, err)
}

func TestMustGet_Panics(t *testing.T) {
	assert.Panics(t, func() { MustGet("chat.json", "does-not-exist") })
}

func TestFormat(t *testing.T) {
	result := Format("Hello {{.Name}}, fit for {{.Role}}?", map[string]string{
		"Name": "Charles",
		"Role": "Producer",
	})
	assert.Equal(t, "Hello Charles, fit for Producer?", result)
}

func TestFormat_MissingKeyLeftIntact(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestTemplatesPresent(t *testing.T) {
	for file, keys := range map[string][]string{
		"chat.json":       {"persona-system"},
		"research.json":   {"company-briefing"},
		"analysis.json":   {"job-fit", "url-narrative", "skill-extraction"},
		"generation.json": {"cover-letter", "cv", "cv-style-localisation", "cv-style-language", "cv-style-product"},
	} {
		for _, key := range keys {
			_, err := Get(file, key)
			assert.NoError(t, err, "%s/%s", file, key)
		}
	}
}
