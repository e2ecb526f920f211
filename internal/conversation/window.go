// Package conversation builds the ordered message list for a chat turn.
// History is owned by the caller and supplied on every request; the core
// stores nothing between calls.
package conversation

import (
	"strings"

	"github.com/csiboto/kyle/internal/llm"
	"github.com/csiboto/kyle/internal/types"
)

// MaxWindow is the number of prior turns retained per chat call.
// Older turns are dropped, never summarized.
const MaxWindow = 10

// Clip returns a copy of the most recent MaxWindow turns in original order
func Clip(window []llm.Message) []llm.Message {
	if len(window) > MaxWindow {
		window = window[len(window)-MaxWindow:]
	}
	out := make([]llm.Message, len(window))
	copy(out, window)
	return out
}

// BuildThread clips the caller-supplied window and appends the new user
// turn. The message must be non-empty after trimming; role alternation in
// the supplied window is trusted, not enforced.
func BuildThread(window []llm.Message, message string) ([]llm.Message, error) {
	if strings.TrimSpace(message) == "" {
		return nil, &types.ValidationError{Field: "message", Message: "message must not be empty"}
	}

	thread := Clip(window)
	return append(thread, llm.Message{Role: llm.RoleUser, Content: message}), nil
}
