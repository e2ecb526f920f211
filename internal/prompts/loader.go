// Package prompts provides the externalized prompt templates for every
// assistant task. Templates are stored as JSON files and embedded at compile
// time; placeholders use the {{.Key}} form.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	cache   = make(map[string]map[string]string)
	cacheMu sync.RWMutex
)

// Get retrieves a prompt by filename and key, e.g. Get("analysis.json", "job-fit")
func Get(filename, key string) (string, error) {
	templates, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	prompt, exists := templates[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return prompt, nil
}

// MustGet retrieves a prompt, panicking if the file or key is missing.
// Every template ships inside the binary, so a miss is a programming error.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format replaces {{.Key}} placeholders with values from data
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, fmt.Sprintf("{{.%s}}", key), value)
	}
	return result
}

func loadFile(filename string) (map[string]string, error) {
	cacheMu.RLock()
	if templates, exists := cache[filename]; exists {
		cacheMu.RUnlock()
		return templates, nil
	}
	cacheMu.RUnlock()

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var templates map[string]string
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = templates
	cacheMu.Unlock()

	return templates, nil
}
